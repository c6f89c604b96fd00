package token

import (
	"encoding/hex"
	"strings"
	"unicode"
	"unicode/utf16"
	"unicode/utf8"
)

// scanQuoted scans the quoted string starting at d[start], which must be a
// quote character, and returns its unescaped contents together with the
// offset just past the closing quote. Error offsets are in bytes.
func scanQuoted(d string, start int) (string, int, *ParsingError) {
	qc := d[start]
	b := &strings.Builder{}
	i := start + 1
	for i < len(d) {
		c := d[i]
		switch c {
		case qc:
			return b.String(), i + 1, nil
		case '\\':
			if i+1 == len(d) {
				return "", 0, NewParsingError(start, MsgUnmatchedQuote)
			}
			r, sz := utf8.DecodeRuneInString(d[i+1:])
			switch r {
			case 'n':
				b.WriteByte('\n')
			case 't':
				b.WriteByte('\t')
			case 'r':
				b.WriteByte('\r')
			case 'b':
				b.WriteByte('\b')
			case 'f':
				b.WriteByte('\f')
			case 'v':
				b.WriteByte('\v')
			case '0':
				b.WriteByte(0)
			case 'u':
				u, ok := unicodeEscape(d[i+2:])
				if !ok {
					return "", 0, NewParsingError(i, MsgInvalidUnicode)
				}
				i += 6
				if utf16.IsSurrogate(u) {
					// A lone surrogate becomes U+FFFD.
					if lo, ok := lowSurrogate(d[i:]); ok && u < 0xdc00 {
						u = utf16.DecodeRune(u, lo)
						i += 6
					} else {
						u = utf8.RuneError
					}
				}
				b.WriteRune(u)
				continue
			default:
				// \\, \', \", \/ and any unknown escape stand for the
				// escaped character itself.
				b.WriteRune(r)
			}
			i += 1 + sz
		default:
			r, sz := utf8.DecodeRuneInString(d[i:])
			b.WriteRune(r)
			i += sz
		}
	}
	return "", 0, NewParsingError(start, MsgUnmatchedQuote)
}

// Unquote scans the quoted string at the start of s and returns its
// unescaped contents and the number of bytes consumed.
func Unquote(s string) (string, int, error) {
	if s == "" || (s[0] != '\'' && s[0] != '"') {
		return "", 0, NewParsingError(0, MsgUnmatchedQuote)
	}
	v, end, perr := scanQuoted(s, 0)
	if perr != nil {
		return "", 0, NewParsingError(CharOffset(s, perr.Offset), perr.Message)
	}
	return v, end, nil
}

func unicodeEscape(d string) (rune, bool) {
	if len(d) < 4 {
		return 0, false
	}
	dst := []byte{0, 0}
	if _, err := hex.Decode(dst, []byte(d[:4])); err != nil {
		return 0, false
	}
	return rune(dst[0])<<8 | rune(dst[1]), true
}

// lowSurrogate decodes a \uXXXX escape at the start of d holding the second
// half of a surrogate pair.
func lowSurrogate(d string) (rune, bool) {
	if len(d) < 6 || d[0] != '\\' || d[1] != 'u' {
		return 0, false
	}
	r, ok := unicodeEscape(d[2:])
	if !ok || r < 0xdc00 || r > 0xdfff {
		return 0, false
	}
	return r, true
}

// Quote quotes v with the quote character q, which must be '\'' or '"'.
func Quote(v string, q byte) string {
	d := make([]byte, 1, len(v)+2)
	d[0] = q
	ucs := []byte{0, 0}
	cps := []byte{0, 0, 0, 0}
	for _, r := range v {
		switch r {
		case rune(q):
			d = append(d, '\\', q)
		case '\\':
			d = append(d, '\\', '\\')
		case '\b':
			d = append(d, '\\', 'b')
		case '\f':
			d = append(d, '\\', 'f')
		case '\n':
			d = append(d, '\\', 'n')
		case '\r':
			d = append(d, '\\', 'r')
		case '\t':
			d = append(d, '\\', 't')
		default:
			if unicode.IsControl(r) && r <= 0xffff {
				ucs[0] = byte(r >> 8)
				ucs[1] = byte(r)
				cps = hex.AppendEncode(cps[:0], ucs)
				d = append(d, '\\', 'u', cps[0], cps[1], cps[2], cps[3])
			} else {
				d = utf8.AppendRune(d, r)
			}
		}
	}
	d = append(d, q)
	return string(d)
}
