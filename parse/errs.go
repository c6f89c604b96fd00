package parse

import (
	"github.com/metarhia/jstp-go/token"
)

// ParsingError is returned for every grammar violation. Offset counts the
// characters (code points) before the offending token.
type ParsingError = token.ParsingError

const (
	MsgArraySeparator  = "Expected ',' as separator of array elements"
	MsgObjectSeparator = "Expected ',' as key-value pairs separator"
	MsgKeyValueSep     = "Expected ':' as separator of Key and Value"
	MsgArrayStart      = "Expected '[' at the beginning of array"
	MsgObjectStart     = "Expected '{' at the beginning of object"
	MsgKey             = "Expected valid key"
	MsgTrailing        = "Unexpected token after value"
)
