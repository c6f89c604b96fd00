// Package transcode moves IR nodes in and out of formats other than JSTP
// text: YAML, CBOR and JSON with comments.
//
// # Usage
//
//	node, err := transcode.Decode(data, format.YAMLFormat)
//	if err != nil {
//	    return err
//	}
//	err = transcode.Encode(node, format.CBORFormat, w)
//
// Undefined has no YAML or JSON counterpart: it is dropped from objects and
// written as null in arrays. CBOR keeps it as the simple value undefined,
// and CBOR maps are written with sorted keys.
//
// # Related Packages
//
//   - github.com/metarhia/jstp-go/format - Format names
//   - github.com/metarhia/jstp-go/encode - JSTP and JSON text
package transcode
