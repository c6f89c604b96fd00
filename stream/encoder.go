package stream

import (
	"bytes"
	"io"

	"github.com/metarhia/jstp-go/encode"
	"github.com/metarhia/jstp-go/ir"
)

// Encoder writes documents in the compact notation, each followed by a NUL.
type Encoder struct {
	w   io.Writer
	buf bytes.Buffer
}

func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{w: w}
}

// Encode writes n and its separator with a single Write.
func (e *Encoder) Encode(n *ir.Node) error {
	e.buf.Reset()
	if err := encode.Encode(n, &e.buf); err != nil {
		return err
	}
	e.buf.WriteByte(0)
	_, err := e.w.Write(e.buf.Bytes())
	return err
}
