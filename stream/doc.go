// Package stream reads and writes JSTP documents framed by NUL bytes, the
// way packets travel over a connection.
//
// # Example: Decoding
//
//	dec := stream.NewDecoder(conn, stream.WithMaxFrame(1<<20))
//	for {
//	    n, err := dec.Decode()
//	    if err == io.EOF {
//	        break
//	    }
//	    ...
//	}
//
// # Example: Encoding
//
//	enc := stream.NewEncoder(conn)
//	err := enc.Encode(packet.NewPing(1).Node())
//
// Frames holding only whitespace are skipped, so a trailing separator or a
// newline after the last NUL does not produce an empty document.
package stream
