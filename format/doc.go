// Package format names the textual and binary representations a JSTP value
// can be read from or written to.
//
// # Usage
//
//	f, err := format.ParseFormat("yaml")
//	if err != nil {
//	    return err
//	}
//	name := "out" + f.Suffix()
//
// # Related Packages
//
//   - github.com/metarhia/jstp-go/encode - Encode IR to JSTP or JSON text
//   - github.com/metarhia/jstp-go/transcode - Read and write YAML and CBOR
package format
