package token

import (
	"fmt"
)

const (
	MsgUnmatchedQuote = "Unmatched quote"
	MsgInvalidUnicode = "Invalid unicode escape"
	MsgInvalidNumber  = "Invalid number"
	MsgUnexpectedChar = "Unexpected character"
)

// ParsingError is the single error kind of the codec. Offset is the zero
// based character (code point) offset of the token at which the problem was
// detected.
type ParsingError struct {
	Offset  int
	Message string
}

func NewParsingError(offset int, msg string) *ParsingError {
	return &ParsingError{Offset: offset, Message: msg}
}

func (e *ParsingError) Error() string {
	return fmt.Sprintf("Index: %d, Message: %s", e.Offset, e.Message)
}
