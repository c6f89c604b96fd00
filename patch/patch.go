package patch

import (
	"errors"
	"fmt"

	"github.com/metarhia/jstp-go/debug"
	"github.com/metarhia/jstp-go/encode"
	"github.com/metarhia/jstp-go/format"
	"github.com/metarhia/jstp-go/ir"
	"github.com/metarhia/jstp-go/parse"

	jsonpatch "github.com/evanphx/json-patch"
)

var ErrPatch = errors.New("patch error")

func marshalJSON(n *ir.Node) ([]byte, error) {
	s, err := encode.String(n, encode.EncodeFormat(format.JSONFormat))
	if err != nil {
		return nil, err
	}
	return []byte(s), nil
}

// Apply applies the RFC 6902 operations in ops, an array of operation
// objects, to doc. doc is not modified.
func Apply(doc, ops *ir.Node) (*ir.Node, error) {
	od, err := marshalJSON(ops)
	if err != nil {
		return nil, err
	}
	p, err := jsonpatch.DecodePatch(od)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	d, err := marshalJSON(doc)
	if err != nil {
		return nil, err
	}
	if debug.Patch() {
		debug.Logf("json patch %s on %s\n", od, d)
	}
	out, err := p.Apply(d)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	return parse.Parse(out)
}

// Merge applies the RFC 7386 merge patch m to doc: null members of m
// delete, objects merge recursively and anything else replaces.
func Merge(doc, m *ir.Node) (*ir.Node, error) {
	md, err := marshalJSON(m)
	if err != nil {
		return nil, err
	}
	d, err := marshalJSON(doc)
	if err != nil {
		return nil, err
	}
	if debug.Patch() {
		debug.Logf("merge patch %s on %s\n", md, d)
	}
	out, err := jsonpatch.MergePatch(d, md)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	return parse.Parse(out)
}

// CreateMerge returns a merge patch which turns from into to.
func CreateMerge(from, to *ir.Node) (*ir.Node, error) {
	fd, err := marshalJSON(from)
	if err != nil {
		return nil, err
	}
	td, err := marshalJSON(to)
	if err != nil {
		return nil, err
	}
	out, err := jsonpatch.CreateMergePatch(fd, td)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	return parse.Parse(out)
}
