package gomap

import (
	"encoding"
	"fmt"
	"reflect"
	"slices"
	"strings"

	"github.com/metarhia/jstp-go/debug"
	"github.com/metarhia/jstp-go/ir"
)

// Marshaler is implemented by types which build their own IR.
type Marshaler interface {
	ToJSTP() (*ir.Node, error)
}

var (
	marshalerType     = reflect.TypeFor[Marshaler]()
	textMarshalerType = reflect.TypeFor[encoding.TextMarshaler]()
	nodeType          = reflect.TypeFor[*ir.Node]()
	orderedMapType    = reflect.TypeFor[*OrderedMap]()
	undefinedType     = reflect.TypeFor[UndefinedValue]()
)

// FromNative converts a Go value to an IR node.
//
// Integers, unsigned integers and floats become numbers. Maps must have
// string keys and convert with sorted keys; *OrderedMap keeps its order.
// Struct fields are named by a `jstp:"name,omitempty"` tag or by the field
// name; a tag of "-" skips the field and embedded structs are flattened. A
// *ir.Node is cloned. Types implementing [Marshaler] or
// encoding.TextMarshaler are converted by those methods.
func FromNative(v any) (*ir.Node, error) {
	res, err := fromValue(reflect.ValueOf(v), "")
	if debug.Convert() {
		debug.Logf("from native %T -> %s %v\n", v, debug.JSTP{Node: res}, err)
	}
	return res, err
}

func fromValue(val reflect.Value, path string) (*ir.Node, error) {
	if !val.IsValid() {
		return ir.Null(), nil
	}
	typ := val.Type()
	if typ.Kind() == reflect.Interface {
		if val.IsNil() {
			return ir.Null(), nil
		}
		return fromValue(val.Elem(), path)
	}

	switch typ {
	case nodeType:
		if val.IsNil() {
			return ir.Undefined(), nil
		}
		return val.Interface().(*ir.Node).Clone(), nil
	case orderedMapType:
		if val.IsNil() {
			return ir.Null(), nil
		}
		return fromOrderedMap(val.Interface().(*OrderedMap), path)
	case undefinedType:
		return ir.Undefined(), nil
	}
	if typ.Implements(marshalerType) {
		if typ.Kind() == reflect.Pointer && val.IsNil() {
			return ir.Null(), nil
		}
		return callMarshaler(val.Interface().(Marshaler), path)
	}
	if typ.Kind() != reflect.Pointer && reflect.PointerTo(typ).Implements(marshalerType) {
		ptr := reflect.New(typ)
		ptr.Elem().Set(val)
		return callMarshaler(ptr.Interface().(Marshaler), path)
	}
	if typ.Implements(textMarshalerType) {
		if typ.Kind() == reflect.Pointer && val.IsNil() {
			return ir.Null(), nil
		}
		d, err := val.Interface().(encoding.TextMarshaler).MarshalText()
		if err != nil {
			return nil, &MarshalError{FieldPath: path, Err: err}
		}
		return ir.FromString(string(d)), nil
	}

	switch typ.Kind() {
	case reflect.Pointer:
		if val.IsNil() {
			return ir.Null(), nil
		}
		return fromValue(val.Elem(), path)
	case reflect.Bool:
		return ir.FromBool(val.Bool()), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return ir.FromInt(val.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return ir.FromFloat(float64(val.Uint())), nil
	case reflect.Float32, reflect.Float64:
		return ir.FromFloat(val.Float()), nil
	case reflect.String:
		return ir.FromString(val.String()), nil
	case reflect.Slice:
		if val.IsNil() {
			return ir.Null(), nil
		}
		return fromSlice(val, path)
	case reflect.Array:
		return fromSlice(val, path)
	case reflect.Map:
		return fromMap(val, path)
	case reflect.Struct:
		res := ir.FromKeyVals(nil)
		if err := fromStruct(val, path, res); err != nil {
			return nil, err
		}
		return res, nil
	default:
		return nil, &ConversionError{FieldPath: path, Type: typ}
	}
}

func callMarshaler(m Marshaler, path string) (*ir.Node, error) {
	n, err := m.ToJSTP()
	if err != nil {
		return nil, &MarshalError{FieldPath: path, Err: err}
	}
	if n == nil {
		return ir.Undefined(), nil
	}
	return n, nil
}

func fromSlice(val reflect.Value, path string) (*ir.Node, error) {
	elts := make([]*ir.Node, val.Len())
	for i := range elts {
		elt, err := fromValue(val.Index(i), fmt.Sprintf("%s[%d]", path, i))
		if err != nil {
			return nil, err
		}
		elts[i] = elt
	}
	return ir.FromSlice(elts), nil
}

func fromOrderedMap(m *OrderedMap, path string) (*ir.Node, error) {
	kvs := make([]ir.KeyVal, 0, m.Len())
	for k, v := range m.All() {
		n, err := fromValue(reflect.ValueOf(v), joinPath(path, k))
		if err != nil {
			return nil, err
		}
		kvs = append(kvs, ir.KeyVal{Key: k, Val: n})
	}
	return ir.FromKeyVals(kvs), nil
}

func fromMap(val reflect.Value, path string) (*ir.Node, error) {
	if val.Type().Key().Kind() != reflect.String {
		return nil, &ConversionError{FieldPath: path, Type: val.Type()}
	}
	if val.IsNil() {
		return ir.Null(), nil
	}
	keys := val.MapKeys()
	slices.SortFunc(keys, func(a, b reflect.Value) int {
		return strings.Compare(a.String(), b.String())
	})
	kvs := make([]ir.KeyVal, 0, len(keys))
	for _, k := range keys {
		n, err := fromValue(val.MapIndex(k), joinPath(path, k.String()))
		if err != nil {
			return nil, err
		}
		kvs = append(kvs, ir.KeyVal{Key: k.String(), Val: n})
	}
	return ir.FromKeyVals(kvs), nil
}

func fromStruct(val reflect.Value, path string, dst *ir.Node) error {
	typ := val.Type()
	for i := range typ.NumField() {
		field := typ.Field(i)
		if !field.IsExported() && !field.Anonymous {
			continue
		}
		fVal := val.Field(i)
		tag := parseTag(field)
		if tag.skip {
			continue
		}
		if field.Anonymous && !tag.named {
			ft := field.Type
			if ft.Kind() == reflect.Pointer {
				if fVal.IsNil() {
					continue
				}
				fVal = fVal.Elem()
				ft = ft.Elem()
			}
			if ft.Kind() == reflect.Struct {
				if err := fromStruct(fVal, path, dst); err != nil {
					return err
				}
				continue
			}
		}
		if !field.IsExported() {
			continue
		}
		if tag.omitEmpty && fVal.IsZero() {
			continue
		}
		n, err := fromValue(fVal, joinPath(path, tag.name))
		if err != nil {
			return err
		}
		dst.Set(tag.name, n)
	}
	return nil
}

type fieldTag struct {
	name      string
	named     bool
	omitEmpty bool
	skip      bool
}

func parseTag(field reflect.StructField) fieldTag {
	res := fieldTag{name: field.Name}
	tag, ok := field.Tag.Lookup("jstp")
	if !ok {
		return res
	}
	if tag == "-" {
		res.skip = true
		return res
	}
	name, rest, _ := strings.Cut(tag, ",")
	if name != "" {
		res.name = name
		res.named = true
	}
	for opt := range strings.SplitSeq(rest, ",") {
		if opt == "omitempty" {
			res.omitEmpty = true
		}
	}
	return res
}

func joinPath(path, key string) string {
	if path == "" {
		return key
	}
	return path + "." + key
}
