package gomap

import (
	"github.com/metarhia/jstp-go/debug"
	"github.com/metarhia/jstp-go/ir"
)

// ToNative converts n to a Go value.
//
// Numbers become float64, strings string, booleans bool, null nil and
// undefined [Undefined]. Objects become *OrderedMap, or map[string]any under
// PlainMaps. By default an array whose elements are all strings, numbers,
// booleans or objects becomes []string, []float64, []bool or a slice of the
// object type; other arrays, including arrays of arrays, become []any whose
// elements are converted the same way. MixedArrays turns every array into
// []any.
func ToNative(n *ir.Node, opts ...MapOption) any {
	cfg := &mapConfig{}
	for _, opt := range opts {
		opt(cfg)
	}
	res := toNative(n, cfg)
	if debug.Convert() {
		debug.Logf("to native %s -> %T\n", debug.JSTP{Node: n}, res)
	}
	return res
}

func toNative(n *ir.Node, cfg *mapConfig) any {
	if n == nil {
		return Undefined
	}
	switch n.Type {
	case ir.NullType:
		return nil
	case ir.BoolType:
		return n.Bool
	case ir.NumberType:
		return n.Number
	case ir.StringType:
		return n.String
	case ir.ArrayType:
		return toNativeArray(n, cfg)
	case ir.ObjectType:
		if cfg.plainMaps {
			res := make(map[string]any, len(n.Fields))
			for i, f := range n.Fields {
				res[f] = toNative(n.Values[i], cfg)
			}
			return res
		}
		res := NewOrderedMap()
		for i, f := range n.Fields {
			res.Set(f, toNative(n.Values[i], cfg))
		}
		return res
	default:
		return Undefined
	}
}

func toNativeArray(n *ir.Node, cfg *mapConfig) any {
	if !cfg.mixedArrays && len(n.Values) > 0 {
		switch elemType(n.Values) {
		case ir.StringType:
			res := make([]string, len(n.Values))
			for i, v := range n.Values {
				res[i] = v.String
			}
			return res
		case ir.NumberType:
			res := make([]float64, len(n.Values))
			for i, v := range n.Values {
				res[i] = v.Number
			}
			return res
		case ir.BoolType:
			res := make([]bool, len(n.Values))
			for i, v := range n.Values {
				res[i] = v.Bool
			}
			return res
		case ir.ObjectType:
			if cfg.plainMaps {
				res := make([]map[string]any, len(n.Values))
				for i, v := range n.Values {
					res[i] = toNative(v, cfg).(map[string]any)
				}
				return res
			}
			res := make([]*OrderedMap, len(n.Values))
			for i, v := range n.Values {
				res[i] = toNative(v, cfg).(*OrderedMap)
			}
			return res
		}
	}
	res := make([]any, len(n.Values))
	for i, v := range n.Values {
		res[i] = toNative(v, cfg)
	}
	return res
}

// elemType returns the common type of vs, or UndefinedType when they differ
// or the common type has no typed slice.
func elemType(vs []*ir.Node) ir.Type {
	if vs[0] == nil {
		return ir.UndefinedType
	}
	t := vs[0].Type
	for _, v := range vs[1:] {
		if v == nil || v.Type != t {
			return ir.UndefinedType
		}
	}
	switch t {
	case ir.StringType, ir.NumberType, ir.BoolType, ir.ObjectType:
		return t
	default:
		return ir.UndefinedType
	}
}
