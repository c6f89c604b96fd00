// Package parse parses JSTP object notation into IR nodes.
//
// # Usage
//
//	// Parse text
//	node, err := parse.Parse([]byte(`{name: 'alice', age: 30}`))
//	if err != nil {
//	    return err
//	}
//
//	// Parse from string
//	node, err := parse.ParseString(`[1, , 3]`)
//
//	// Reuse a parser for a stream of packets
//	p := parse.NewParser("")
//	for _, pkt := range packets {
//	    p.Reset(pkt)
//	    node, err := p.Parse(true)
//	    ...
//	}
//
// Failures are reported as *[ParsingError] carrying the character offset
// of the offending token. Empty input and input that does not start with a value
// parse to undefined.
//
// # Related Packages
//
//   - github.com/metarhia/jstp-go/ir - IR representation
//   - github.com/metarhia/jstp-go/encode - Encode IR to text
//   - github.com/metarhia/jstp-go/token - Tokenization
package parse
