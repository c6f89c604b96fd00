package transcode

import (
	"fmt"
	"math"
	"slices"

	"github.com/metarhia/jstp-go/gomap"
	"github.com/metarhia/jstp-go/ir"

	"github.com/goccy/go-yaml"
)

// fromDecoded converts the generic values produced by the YAML and CBOR
// decoders. Map keys which are not strings are rendered with fmt.
func fromDecoded(v any) (*ir.Node, error) {
	switch x := v.(type) {
	case nil:
		return ir.Null(), nil
	case yaml.MapSlice:
		kvs := make([]ir.KeyVal, 0, len(x))
		for _, item := range x {
			val, err := fromDecoded(item.Value)
			if err != nil {
				return nil, err
			}
			kvs = append(kvs, ir.KeyVal{Key: keyString(item.Key), Val: val})
		}
		return ir.FromKeyVals(kvs), nil
	case map[string]any:
		keys := make([]string, 0, len(x))
		for k := range x {
			keys = append(keys, k)
		}
		slices.Sort(keys)
		kvs := make([]ir.KeyVal, 0, len(keys))
		for _, k := range keys {
			val, err := fromDecoded(x[k])
			if err != nil {
				return nil, err
			}
			kvs = append(kvs, ir.KeyVal{Key: k, Val: val})
		}
		return ir.FromKeyVals(kvs), nil
	case map[any]any:
		m := make(map[string]any, len(x))
		for k, val := range x {
			m[keyString(k)] = val
		}
		return fromDecoded(m)
	case []any:
		elts := make([]*ir.Node, len(x))
		for i, e := range x {
			n, err := fromDecoded(e)
			if err != nil {
				return nil, err
			}
			elts[i] = n
		}
		return ir.FromSlice(elts), nil
	case []byte:
		return ir.FromString(string(x)), nil
	default:
		return gomap.FromNative(v)
	}
}

func keyString(k any) string {
	if s, ok := k.(string); ok {
		return s
	}
	return fmt.Sprint(k)
}

// number returns an int64 for integral values so that YAML renders them
// without a fraction.
func number(f float64) any {
	if f == math.Trunc(f) && math.Abs(f) < 1<<53 && !(f == 0 && math.Signbit(f)) {
		return int64(f)
	}
	return f
}
