package token

type TokenType int

const (
	TNone TokenType = iota
	TEOF
	TLCurl
	TRCurl
	TLSquare
	TRSquare
	TColon
	TComma
	TString
	TNumber
	TKey
	TTrue
	TFalse
	TNull
	TUndefined
)

func (t TokenType) String() string {
	s, ok := map[TokenType]string{
		TNone:      "TNone",
		TEOF:       "TEOF",
		TLCurl:     "TLCurl",
		TRCurl:     "TRCurl",
		TLSquare:   "TLSquare",
		TRSquare:   "TRSquare",
		TColon:     "TColon",
		TComma:     "TComma",
		TString:    "TString",
		TNumber:    "TNumber",
		TKey:       "TKey",
		TTrue:      "TTrue",
		TFalse:     "TFalse",
		TNull:      "TNull",
		TUndefined: "TUndefined",
	}[t]
	if ok {
		return s
	}
	return "<unknown token>"
}

// IsKeyword reports whether t is one of the literal keywords
// true, false, null or undefined.
func (t TokenType) IsKeyword() bool {
	switch t {
	case TTrue, TFalse, TNull, TUndefined:
		return true
	default:
		return false
	}
}

// Token is a scanned token together with its payload and the byte offset
// at which it begins in the input.
type Token struct {
	Type   TokenType
	Offset int
	Str    string
	Number float64
}
