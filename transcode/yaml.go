package transcode

import (
	"fmt"

	"github.com/metarhia/jstp-go/ir"

	"github.com/goccy/go-yaml"
)

// ToYAML renders n as a YAML document keeping object key order.
func ToYAML(n *ir.Node) ([]byte, error) {
	v, err := toYAMLValue(n)
	if err != nil {
		return nil, err
	}
	return yaml.Marshal(v)
}

func toYAMLValue(n *ir.Node) (any, error) {
	if n.IsUndefined() {
		return nil, nil
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
			v, err := toYAMLValue(e)
			if err != nil {
				return nil, err
			}
			res[i] = v
		}
		return res, nil
	case ir.ObjectType:
		res := make(yaml.MapSlice, 0, len(n.Fields))
		for _, kv := range n.KeyVals() {
			if kv.Val.IsUndefined() {
				continue
			}
			v, err := toYAMLValue(kv.Val)
			if err != nil {
				return nil, err
			}
			res = append(res, yaml.MapItem{Key: kv.Key, Value: v})
		}
		return res, nil
	default:
		return nil, fmt.Errorf("%w: unknown node type %s", ErrTranscode, n.Type)
	}
}

// FromYAML decodes a single YAML document. Mapping order is kept.
func FromYAML(d []byte) (*ir.Node, error) {
	var v any
	if err := yaml.UnmarshalWithOptions(d, &v, yaml.UseOrderedMap()); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTranscode, err)
	}
	return fromDecoded(v)
}
