package parse

import (
	"slices"

	"github.com/metarhia/jstp-go/debug"
	"github.com/metarhia/jstp-go/ir"
	"github.com/metarhia/jstp-go/token"
)

// Parse parses the value in d.
func Parse(d []byte, opts ...ParseOption) (*ir.Node, error) {
	return ParseString(string(d), opts...)
}

func ParseString(s string, opts ...ParseOption) (*ir.Node, error) {
	p := NewParser(s, opts...)
	res, err := p.Parse(true)
	if err != nil {
		if debug.Parse() {
			debug.Logf("parse error %v %s\n", err, token.Context(s, token.ByteOffset(s, errOffset(err))))
		}
		return nil, err
	}
	if p.opts.requireEOF {
		tt, err := p.tk.Next()
		if err != nil {
			return nil, err
		}
		if tt != token.TEOF {
			return nil, p.tk.ErrorAt(p.tk.PrevIndex(), MsgTrailing)
		}
	}
	if debug.Parse() {
		debug.Logf("parsed %d bytes to %s\n", len(s), debug.JSTP{Node: res})
	}
	return res, nil
}

func errOffset(err error) int {
	if pe, ok := err.(*ParsingError); ok {
		return pe.Offset
	}
	return 0
}

// Parser is a recursive descent parser over a token.Tokenizer. It holds the
// tokenizer cursor and must not be shared between goroutines; Reset makes it
// reusable for another input.
type Parser struct {
	tk   *token.Tokenizer
	opts parseOpts
}

func NewParser(input string, opts ...ParseOption) *Parser {
	p := &Parser{
		tk:   token.NewTokenizer(input),
		opts: defaultOpts(),
	}
	for _, f := range opts {
		f(&p.opts)
	}
	return p
}

// Reset installs a new input, discarding any parsing position.
func (p *Parser) Reset(input string) {
	p.tk.Reset(input)
}

// Parse parses a value. If skip is true the next token is read first;
// otherwise parsing starts at the current token. A token which does not
// start a value, including the end of input, yields undefined.
func (p *Parser) Parse(skip bool) (*ir.Node, error) {
	if skip {
		if _, err := p.tk.Next(); err != nil {
			return nil, err
		}
	}

	switch p.tk.LastToken() {
	case token.TTrue:
		return ir.FromBool(true), nil
	case token.TFalse:
		return ir.FromBool(false), nil
	case token.TString:
		return ir.FromString(p.tk.Str()), nil
	case token.TLCurl:
		return p.ParseObject()
	case token.TLSquare:
		return p.ParseArray()
	case token.TNumber:
		return ir.FromFloat(p.tk.Number()), nil
	case token.TNull:
		return ir.Null(), nil
	default:
		return ir.Undefined(), nil
	}
}

// ParseArray parses an array starting at the current (or, failing that, the
// next) token. Consecutive separators produce undefined holes; a separator
// directly before ']' does not add a slot.
func (p *Parser) ParseArray() (*ir.Node, error) {
	if err := p.assureToken(MsgArrayStart, token.TLSquare); err != nil {
		return nil, err
	}

	arr := ir.FromSlice(nil)
	for p.tk.LastToken() != token.TRSquare {
		tt, err := p.tk.Next()
		if err != nil {
			return nil, err
		}
		if tt == token.TRSquare {
			break
		}
		if tt == token.TComma {
			arr.Append(ir.Undefined())
			continue
		}
		elt, err := p.Parse(false)
		if err != nil {
			return nil, err
		}
		arr.Append(elt)
		// skip comma
		tt, err = p.tk.Next()
		if err != nil {
			return nil, err
		}
		if tt != token.TComma && tt != token.TRSquare {
			return nil, p.tk.ErrorAt(p.tk.PrevIndex(), MsgArraySeparator)
		}
	}
	return arr, nil
}

// ParseObject parses an object starting at the current (or, failing that,
// the next) token. A repeated key replaces the earlier value in place.
func (p *Parser) ParseObject() (*ir.Node, error) {
	if err := p.assureToken(MsgObjectStart, token.TLCurl); err != nil {
		return nil, err
	}

	var kvs []ir.KeyVal
	for p.tk.LastToken() != token.TRCurl {
		tt, err := p.tk.Next()
		if err != nil {
			return nil, err
		}
		if tt == token.TRCurl {
			break
		}
		kv, err := p.ParseKeyValuePair()
		if err != nil {
			return nil, err
		}
		kvs = append(kvs, kv)
		// skip comma
		tt, err = p.tk.Next()
		if err != nil {
			return nil, err
		}
		if tt != token.TComma && tt != token.TRCurl {
			return nil, p.tk.ErrorAt(p.tk.PrevIndex(), MsgObjectSeparator)
		}
	}
	return ir.FromKeyVals(kvs), nil
}

var keyTokens = []token.TokenType{
	token.TKey, token.TNumber, token.TString,
	token.TTrue, token.TFalse, token.TNull, token.TUndefined,
}

// ParseKeyValuePair parses `key: value` starting at the current (or, failing
// that, the next) token. Numeric keys are canonicalized through their double
// rendering, so `55: x` has key "55.0".
func (p *Parser) ParseKeyValuePair() (ir.KeyVal, error) {
	if err := p.assureToken(MsgKey, keyTokens...); err != nil {
		return ir.KeyVal{}, err
	}

	key := p.tk.Str()

	tt, err := p.tk.Next()
	if err != nil {
		return ir.KeyVal{}, err
	}
	if tt != token.TColon {
		return ir.KeyVal{}, p.tk.ErrorAt(p.tk.PrevIndex(), MsgKeyValueSep)
	}

	val, err := p.Parse(true)
	if err != nil {
		return ir.KeyVal{}, err
	}
	return ir.KeyVal{Key: key, Val: val}, nil
}

// assureToken checks that the current token is one of tts, advancing once
// if it is not. It does nothing when verbose checking is off.
func (p *Parser) assureToken(msg string, tts ...token.TokenType) error {
	if !p.opts.verbose {
		return nil
	}
	if slices.Contains(tts, p.tk.LastToken()) {
		return nil
	}
	tt, err := p.tk.Next()
	if err != nil {
		return err
	}
	if !slices.Contains(tts, tt) {
		return p.tk.ErrorAt(p.tk.PrevIndex(), msg)
	}
	return nil
}
