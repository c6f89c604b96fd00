// Package gomap converts between IR nodes and native Go values.
//
// # Usage
//
//	// IR to Go
//	v := gomap.ToNative(node)                        // typed slices, *OrderedMap
//	v := gomap.ToNative(node, gomap.MixedArrays(true)) // every array is []any
//	v := gomap.ToNative(node, gomap.PlainMaps(true))   // objects as map[string]any
//
//	// Go to IR
//	type User struct {
//	    Name  string `jstp:"name"`
//	    Email string `jstp:"email,omitempty"`
//	    Token string `jstp:"-"`
//	}
//	node, err := gomap.FromNative(User{Name: "alice"})
//
// Undefined converts to the [Undefined] sentinel, which is distinct from
// nil. Go values with no counterpart (channels, functions, complex
// numbers, maps with non-string keys) fail with a *[ConversionError].
//
// # Related Packages
//
//   - github.com/metarhia/jstp-go/ir - IR representation
package gomap
