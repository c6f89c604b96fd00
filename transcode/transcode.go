package transcode

import (
	"fmt"
	"io"

	"github.com/metarhia/jstp-go/encode"
	"github.com/metarhia/jstp-go/format"
	"github.com/metarhia/jstp-go/ir"
	"github.com/metarhia/jstp-go/parse"
)

// Encode writes n to w in format f. Text formats are rendered with opts.
func Encode(n *ir.Node, f format.Format, w io.Writer, opts ...encode.EncodeOption) error {
	var (
		d   []byte
		err error
	)
	switch f {
	case format.JSTPFormat, format.JSONFormat:
		return encode.Encode(n, w, append(opts, encode.EncodeFormat(f))...)
	case format.YAMLFormat:
		d, err = ToYAML(n)
	case format.CBORFormat:
		d, err = ToCBOR(n)
	default:
		return fmt.Errorf("%w: %s", format.ErrBadFormat, f)
	}
	if err != nil {
		return err
	}
	_, err = w.Write(d)
	return err
}

// Decode reads a value in format f. JSON input may contain comments and
// trailing commas.
func Decode(d []byte, f format.Format, opts ...parse.ParseOption) (*ir.Node, error) {
	switch f {
	case format.JSTPFormat:
		return parse.Parse(d, opts...)
	case format.JSONFormat:
		return FromJSONC(d, opts...)
	case format.YAMLFormat:
		return FromYAML(d)
	case format.CBORFormat:
		return FromCBOR(d)
	default:
		return nil, fmt.Errorf("%w: %s", format.ErrBadFormat, f)
	}
}
