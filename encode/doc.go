// Package encode renders IR nodes as JSTP or JSON text.
//
// # Usage
//
//	node := ir.FromKeyVals([]ir.KeyVal{
//	    {Key: "name", Val: ir.FromString("alice")},
//	    {Key: "age", Val: ir.FromInt(30)},
//	})
//
//	// Compact wire form: {name:'alice',age:30}
//	err := encode.Encode(node, w)
//
//	// Indented JSON
//	err := encode.Encode(node, w,
//	    encode.EncodeFormat(format.JSONFormat),
//	    encode.EncodeIndent(2))
//
//	// As a string
//	s, err := encode.String(node)
//
// JSTP output always parses back to an equal node. Array holes are kept as
// empty slots in the compact form.
//
// # Related Packages
//
//   - github.com/metarhia/jstp-go/ir - IR representation
//   - github.com/metarhia/jstp-go/parse - Parse text to IR
package encode
