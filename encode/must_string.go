package encode

import (
	"bytes"
	"strings"

	"github.com/metarhia/jstp-go/ir"
)

// String renders node with opts, without a trailing newline.
func String(node *ir.Node, opts ...EncodeOption) (string, error) {
	buf := bytes.NewBuffer(nil)
	if err := Encode(node, buf, opts...); err != nil {
		return "", err
	}
	return strings.TrimRight(buf.String(), "\n"), nil
}

func MustString(node *ir.Node, opts ...EncodeOption) string {
	s, err := String(node, opts...)
	if err != nil {
		panic(err)
	}
	return s
}
