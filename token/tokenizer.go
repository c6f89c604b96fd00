package token

import (
	"unicode"
	"unicode/utf8"
)

// Tokenizer scans JSTP notation one token at a time. A Tokenizer holds
// mutable cursor state and must not be used by more than one goroutine at a
// time.
type Tokenizer struct {
	input string
	i     int
	prev  int
	last  Token
}

func NewTokenizer(input string) *Tokenizer {
	t := &Tokenizer{}
	t.Reset(input)
	return t
}

// Reset installs input and clears the cursor and last token, so that the
// Tokenizer can be reused for an independent scan.
func (t *Tokenizer) Reset(input string) {
	t.input = input
	t.i = 0
	t.prev = 0
	t.last = Token{}
}

// LastToken returns the type of the most recently scanned token without
// advancing. It is TNone before the first call to Next.
func (t *Tokenizer) LastToken() TokenType {
	return t.last.Type
}

// Last returns the most recently scanned token.
func (t *Tokenizer) Last() Token {
	return t.last
}

// PrevIndex returns the byte offset at which scanning of the most recent token
// began, that is the end of the token before it. Whitespace preceding a
// token is attributed to it, so "{a : b : 1}" reports the second colon at 6.
func (t *Tokenizer) PrevIndex() int {
	return t.prev
}

// Str returns the text payload of the last token: the unescaped contents of
// a string, the text of an identifier or keyword, or the canonical rendering
// of a number (see NumberKey).
func (t *Tokenizer) Str() string {
	return t.last.Str
}

// ErrorAt returns a ParsingError for byte offset off of the input, reported
// as a character offset.
func (t *Tokenizer) ErrorAt(off int, msg string) *ParsingError {
	return NewParsingError(CharOffset(t.input, off), msg)
}

// Number returns the value of the last token if it is a TNumber.
func (t *Tokenizer) Number() float64 {
	return t.last.Number
}

// Next scans the next token and returns its type. At the end of the input it
// returns TEOF, repeatedly. A lexical error leaves the last token unchanged
// and is returned as a *ParsingError.
func (t *Tokenizer) Next() (TokenType, error) {
	t.prev = t.i
	t.skipSpace()
	d := t.input
	start := t.i
	if start >= len(d) {
		t.last = Token{Type: TEOF, Offset: len(d)}
		return TEOF, nil
	}
	var tt TokenType
	switch d[start] {
	case '{':
		tt = TLCurl
	case '}':
		tt = TRCurl
	case '[':
		tt = TLSquare
	case ']':
		tt = TRSquare
	case ':':
		tt = TColon
	case ',':
		tt = TComma
	case '\'', '"':
		s, end, perr := scanQuoted(d, start)
		if perr != nil {
			return t.last.Type, t.ErrorAt(perr.Offset, perr.Message)
		}
		t.i = end
		t.last = Token{Type: TString, Offset: start, Str: s}
		return TString, nil
	case '-', '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		return t.number(start)
	default:
		return t.word(start)
	}
	t.i = start + 1
	t.last = Token{Type: tt, Offset: start, Str: d[start:t.i]}
	return tt, nil
}

func (t *Tokenizer) number(start int) (TokenType, error) {
	n := number(t.input[start:])
	if n == 0 {
		return t.last.Type, t.ErrorAt(start, MsgInvalidNumber)
	}
	f, err := parseFloat(t.input[start : start+n])
	if err != nil {
		return t.last.Type, t.ErrorAt(start, MsgInvalidNumber)
	}
	t.i = start + n
	t.last = Token{Type: TNumber, Offset: start, Str: NumberKey(f), Number: f}
	return TNumber, nil
}

func (t *Tokenizer) word(start int) (TokenType, error) {
	n := identifier(t.input[start:])
	if n == 0 {
		return t.last.Type, t.ErrorAt(start, MsgUnexpectedChar)
	}
	w := t.input[start : start+n]
	tt, ok := keywords[w]
	if !ok {
		tt = TKey
	}
	t.i = start + n
	t.last = Token{Type: tt, Offset: start, Str: w}
	return tt, nil
}

func (t *Tokenizer) skipSpace() {
	d := t.input
	for t.i < len(d) {
		c := d[t.i]
		if c < utf8.RuneSelf {
			switch c {
			case ' ', '\t', '\n', '\r', '\v', '\f':
				t.i++
				continue
			}
			return
		}
		r, sz := utf8.DecodeRuneInString(d[t.i:])
		if !unicode.IsSpace(r) && r != '\ufeff' {
			return
		}
		t.i += sz
	}
}

// Tokenize scans all of src and returns its tokens, not including the final
// TEOF.
func Tokenize(dst []Token, src string) ([]Token, error) {
	t := NewTokenizer(src)
	for {
		tt, err := t.Next()
		if err != nil {
			return nil, err
		}
		if tt == TEOF {
			return dst, nil
		}
		dst = append(dst, t.Last())
	}
}
