package transcode

import (
	"github.com/metarhia/jstp-go/ir"
	"github.com/metarhia/jstp-go/parse"

	"github.com/tidwall/jsonc"
)

// FromJSONC parses JSON which may carry // and /* */ comments and trailing
// commas. JSON text is valid JSTP, so the stripped input goes through the
// JSTP parser and object key order is kept.
func FromJSONC(d []byte, opts ...parse.ParseOption) (*ir.Node, error) {
	return parse.Parse(jsonc.ToJSON(d), opts...)
}
