// Package ir contains the value model of JSTP object notation.
//
// A value is a [Node], a tagged union discriminated by [Node.Type]:
//
//   - UndefinedType, the zero value, also used for array holes
//   - NullType
//   - BoolType, payload in Node.Bool
//   - NumberType, payload in Node.Number (always a float64)
//   - StringType, payload in Node.String
//   - ArrayType, elements in Node.Values
//   - ObjectType, keys in Node.Fields and values in the parallel Node.Values
//
// Objects keep insertion order. Setting an existing key replaces its value
// in place.
//
// Nodes are built bottom-up by the parser or by constructors such as
// [FromString] and [FromKeyVals]; a tree never contains cycles and a node
// belongs to exactly one parent.
//
// # Related Packages
//
//   - github.com/metarhia/jstp-go/parse - Parse text to IR
//   - github.com/metarhia/jstp-go/encode - Encode IR to text
//   - github.com/metarhia/jstp-go/gomap - Convert between IR and Go values
package ir
