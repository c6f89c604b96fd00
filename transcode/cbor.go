package transcode

import (
	"fmt"
	"maps"
	"reflect"
	"slices"

	"github.com/metarhia/jstp-go/ir"

	"github.com/fxamacker/cbor/v2"
)

var (
	encMode cbor.EncMode
	decMode cbor.DecMode
)

// cborUndefined is the encoding of the CBOR simple value undefined.
var cborUndefined = cbor.RawMessage{0xf7}

func init() {
	var err error
	encMode, err = cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic("transcode: CBOR encoder initialization failed: " + err.Error())
	}
	decMode, err = cbor.DecOptions{
		DefaultMapType: reflect.TypeOf(map[string]any(nil)),
	}.DecMode()
	if err != nil {
		panic("transcode: CBOR decoder initialization failed: " + err.Error())
	}
}

// ToCBOR encodes n with core deterministic encoding. Map keys are sorted
// by that encoding, so object key order is not kept.
func ToCBOR(n *ir.Node) ([]byte, error) {
	v, err := toCBORValue(n)
	if err != nil {
		return nil, err
	}
	return encMode.Marshal(v)
}

func toCBORValue(n *ir.Node) (any, error) {
	if n.IsUndefined() {
		return cborUndefined, nil
	}
	switch n.Type {
	case ir.NullType:
		return nil, nil
	case ir.BoolType:
		return n.Bool, nil
	case ir.NumberType:
		return number(n.Number), nil
	case ir.StringType:
		return n.String, nil
	case ir.ArrayType:
		res := make([]any, len(n.Values))
		for i, e := range n.Values {
			v, err := toCBORValue(e)
			if err != nil {
				return nil, err
			}
			res[i] = v
		}
		return res, nil
	case ir.ObjectType:
		res := make(map[string]any, len(n.Fields))
		for i, f := range n.Fields {
			v, err := toCBORValue(n.Values[i])
			if err != nil {
				return nil, err
			}
			res[f] = v
		}
		return res, nil
	default:
		return nil, fmt.Errorf("%w: unknown node type %s", ErrTranscode, n.Type)
	}
}

// FromCBOR decodes a single CBOR data item. The simple value undefined
// decodes to undefined and byte strings become strings. Maps must have text
// keys; their entries are ordered by key.
func FromCBOR(d []byte) (*ir.Node, error) {
	var raw cbor.RawMessage
	if err := decMode.Unmarshal(d, &raw); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTranscode, err)
	}
	return fromCBORItem(raw)
}

func fromCBORItem(d cbor.RawMessage) (*ir.Node, error) {
	if len(d) == 0 {
		return nil, fmt.Errorf("%w: empty CBOR item", ErrTranscode)
	}
	switch d[0] >> 5 {
	case 4:
		var elts []cbor.RawMessage
		if err := decMode.Unmarshal(d, &elts); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrTranscode, err)
		}
		res := make([]*ir.Node, len(elts))
		for i, e := range elts {
			n, err := fromCBORItem(e)
			if err != nil {
				return nil, err
			}
			res[i] = n
		}
		return ir.FromSlice(res), nil
	case 5:
		var m map[string]cbor.RawMessage
		if err := decMode.Unmarshal(d, &m); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrTranscode, err)
		}
		kvs := make([]ir.KeyVal, 0, len(m))
		for _, k := range slices.Sorted(maps.Keys(m)) {
			n, err := fromCBORItem(m[k])
			if err != nil {
				return nil, err
			}
			kvs = append(kvs, ir.KeyVal{Key: k, Val: n})
		}
		return ir.FromKeyVals(kvs), nil
	}
	if d[0] == cborUndefined[0] {
		return ir.Undefined(), nil
	}
	var v any
	if err := decMode.Unmarshal(d, &v); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTranscode, err)
	}
	return fromDecoded(v)
}

// DiagnoseCBOR returns the RFC 8949 diagnostic notation of d.
func DiagnoseCBOR(d []byte) (string, error) {
	return cbor.Diagnose(d)
}
