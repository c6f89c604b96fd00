package ir

import (
	"maps"
	"slices"
)

type Node struct {
	Type   Type
	Fields []string
	Values []*Node

	String string
	Bool   bool
	Number float64
}

type KeyVal struct {
	Key string
	Val *Node
}

func Undefined() *Node {
	return &Node{Type: UndefinedType}
}

func Null() *Node {
	return &Node{Type: NullType}
}

func FromBool(v bool) *Node {
	return &Node{
		Type: BoolType,
		Bool: v,
	}
}

func FromFloat(f float64) *Node {
	return &Node{
		Type:   NumberType,
		Number: f,
	}
}

func FromInt(v int64) *Node {
	return FromFloat(float64(v))
}

func FromString(v string) *Node {
	return &Node{
		Type:   StringType,
		String: v,
	}
}

func FromSlice(ySlice []*Node) *Node {
	res := &Node{
		Type: ArrayType,
	}
	res.Values = make([]*Node, len(ySlice))
	for i, y := range ySlice {
		if y == nil {
			y = Undefined()
		}
		res.Values[i] = y
	}
	return res
}

// FromKeyVals builds an object from kvs in order, in time linear in
// len(kvs). A repeated key replaces the earlier value and keeps the earlier
// position.
func FromKeyVals(kvs []KeyVal) *Node {
	res := &Node{
		Type:   ObjectType,
		Fields: make([]string, 0, len(kvs)),
		Values: make([]*Node, 0, len(kvs)),
	}
	pos := make(map[string]int, len(kvs))
	for _, kv := range kvs {
		v := kv.Val
		if v == nil {
			v = Undefined()
		}
		if i, ok := pos[kv.Key]; ok {
			res.Values[i] = v
			continue
		}
		pos[kv.Key] = len(res.Fields)
		res.Fields = append(res.Fields, kv.Key)
		res.Values = append(res.Values, v)
	}
	return res
}

// FromMap builds an object from yMap with keys in sorted order.
func FromMap(yMap map[string]*Node) *Node {
	res := &Node{Type: ObjectType}
	keys := slices.Sorted(maps.Keys(yMap))
	res.Fields = keys
	res.Values = make([]*Node, len(keys))
	for i, key := range keys {
		y := yMap[key]
		if y == nil {
			y = Undefined()
		}
		res.Values[i] = y
	}
	return res
}

func ToMap(node *Node) map[string]*Node {
	if node.Type != ObjectType {
		return nil
	}
	res := make(map[string]*Node, len(node.Fields))
	for i, field := range node.Fields {
		res[field] = node.Values[i]
	}
	return res
}

func (y *Node) index(key string) int {
	return slices.Index(y.Fields, key)
}

// Get returns the value of field key, or nil if y is not an object or has no
// such field.
func (y *Node) Get(key string) *Node {
	if y.Type != ObjectType {
		return nil
	}
	i := y.index(key)
	if i < 0 {
		return nil
	}
	return y.Values[i]
}

func (y *Node) Has(key string) bool {
	return y.Get(key) != nil
}

// Set sets field key of object y to v. An existing field keeps its position.
func (y *Node) Set(key string, v *Node) {
	if y.Type != ObjectType {
		panic("ir: Set on " + y.Type.String())
	}
	if v == nil {
		v = Undefined()
	}
	if i := y.index(key); i >= 0 {
		y.Values[i] = v
		return
	}
	y.Fields = append(y.Fields, key)
	y.Values = append(y.Values, v)
}

// Delete removes field key from object y and reports whether it was present.
func (y *Node) Delete(key string) bool {
	if y.Type != ObjectType {
		return false
	}
	i := y.index(key)
	if i < 0 {
		return false
	}
	y.Fields = slices.Delete(y.Fields, i, i+1)
	y.Values = slices.Delete(y.Values, i, i+1)
	return true
}

func (y *Node) Keys() []string {
	if y.Type != ObjectType {
		return nil
	}
	return slices.Clone(y.Fields)
}

func (y *Node) KeyVals() []KeyVal {
	if y.Type != ObjectType {
		return nil
	}
	res := make([]KeyVal, len(y.Fields))
	for i, f := range y.Fields {
		res[i] = KeyVal{Key: f, Val: y.Values[i]}
	}
	return res
}

// Append appends vs to array y. A nil element appends a hole.
func (y *Node) Append(vs ...*Node) {
	if y.Type != ArrayType {
		panic("ir: Append on " + y.Type.String())
	}
	for _, v := range vs {
		if v == nil {
			v = Undefined()
		}
		y.Values = append(y.Values, v)
	}
}

// Index returns element i of array y, or nil when out of range.
func (y *Node) Index(i int) *Node {
	if y.Type != ArrayType || i < 0 || i >= len(y.Values) {
		return nil
	}
	return y.Values[i]
}

// Len returns the number of elements of an array or fields of an object.
func (y *Node) Len() int {
	switch y.Type {
	case ArrayType, ObjectType:
		return len(y.Values)
	default:
		return 0
	}
}

func (y *Node) SetBool(v bool) {
	if y.Type != BoolType {
		panic("ir: SetBool on " + y.Type.String())
	}
	y.Bool = v
}

func (y *Node) IsUndefined() bool {
	return y == nil || y.Type == UndefinedType
}

func (y *Node) Clone() *Node {
	res := &Node{}
	return y.cloneTo(res)
}

func (y *Node) cloneTo(dst *Node) *Node {
	dst.Type = y.Type
	dst.String = y.String
	dst.Bool = y.Bool
	dst.Number = y.Number
	dst.Fields = slices.Clone(y.Fields)
	dst.Values = nil
	if y.Values != nil {
		dst.Values = make([]*Node, len(y.Values))
	}
	for i, yv := range y.Values {
		dst.Values[i] = yv.Clone()
	}
	return dst
}
