package stream

import (
	"bufio"
	"bytes"
	"errors"
	"io"

	"github.com/metarhia/jstp-go/ir"
	"github.com/metarhia/jstp-go/parse"
)

// Decoder reads NUL separated JSTP documents.
type Decoder struct {
	sc     *bufio.Scanner
	opts   streamOpts
	parse  []parse.ParseOption
	offset int64
	next   int64
}

// NewDecoder creates a Decoder reading from r.
func NewDecoder(r io.Reader, opts ...StreamOption) *Decoder {
	d := &Decoder{}
	d.Reset(r, opts...)
	return d
}

// WithParseOptions sets the options used to parse each frame.
func (d *Decoder) WithParseOptions(opts ...parse.ParseOption) *Decoder {
	d.parse = opts
	return d
}

// Reset makes d read from r, from offset 0.
func (d *Decoder) Reset(r io.Reader, opts ...StreamOption) {
	d.opts = streamOpts{maxFrame: DefaultMaxFrame}
	for _, opt := range opts {
		opt(&d.opts)
	}
	d.sc = bufio.NewScanner(r)
	// The scanner needs room for the separator too.
	d.sc.Buffer(make([]byte, 0, min(4096, d.opts.maxFrame+1)), d.opts.maxFrame+1)
	d.sc.Split(splitFrames)
	d.offset, d.next = 0, 0
}

// Offset returns the byte offset of the frame last returned by Decode.
func (d *Decoder) Offset() int64 {
	return d.offset
}

// Decode returns the next document, or io.EOF once the stream is exhausted.
// A frame which does not parse yields an *Error, and decoding may continue
// with the following frame.
func (d *Decoder) Decode() (*ir.Node, error) {
	for {
		frame, err := d.nextFrame()
		if err != nil {
			return nil, err
		}
		if len(bytes.TrimSpace(frame)) == 0 {
			continue
		}
		n, err := parse.Parse(frame, d.parse...)
		if err != nil {
			return nil, &Error{Offset: d.offset, Err: err}
		}
		return n, nil
	}
}

func (d *Decoder) nextFrame() ([]byte, error) {
	if !d.sc.Scan() {
		err := d.sc.Err()
		switch {
		case err == nil:
			return nil, io.EOF
		case errors.Is(err, bufio.ErrTooLong):
			return nil, &Error{Offset: d.next, Err: ErrFrameTooLarge}
		default:
			return nil, &Error{Offset: d.next, Err: err}
		}
	}
	frame := d.sc.Bytes()
	d.offset = d.next
	d.next += int64(len(frame)) + 1
	if len(frame) > d.opts.maxFrame {
		return nil, &Error{Offset: d.offset, Err: ErrFrameTooLarge}
	}
	return frame, nil
}

func splitFrames(data []byte, atEOF bool) (int, []byte, error) {
	if i := bytes.IndexByte(data, 0); i >= 0 {
		return i + 1, data[:i], nil
	}
	if atEOF && len(data) > 0 {
		return len(data), data, nil
	}
	return 0, nil, nil
}
