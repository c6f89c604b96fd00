package token

import (
	"unicode"
	"unicode/utf8"
)

var keywords = map[string]TokenType{
	"true":      TTrue,
	"false":     TFalse,
	"null":      TNull,
	"undefined": TUndefined,
}

func IsKeyword(v string) bool {
	_, ok := keywords[v]
	return ok
}

func isIdentStart(r rune) bool {
	return r == '_' || r == '$' || unicode.IsLetter(r)
}

func isIdentPart(r rune) bool {
	return isIdentStart(r) || unicode.IsDigit(r)
}

// IsIdentifier reports whether v can be written as a bare object key.
// Keywords are identifiers lexically but are not bare keys.
func IsIdentifier(v string) bool {
	if v == "" || IsKeyword(v) {
		return false
	}
	for i, r := range v {
		if i == 0 {
			if !isIdentStart(r) {
				return false
			}
			continue
		}
		if !isIdentPart(r) {
			return false
		}
	}
	return true
}

// identifier returns the length in bytes of the identifier at the start of d.
func identifier(d string) int {
	i := 0
	for i < len(d) {
		r, sz := utf8.DecodeRuneInString(d[i:])
		if i == 0 && !isIdentStart(r) {
			return 0
		}
		if !isIdentPart(r) {
			return i
		}
		i += sz
	}
	return i
}
