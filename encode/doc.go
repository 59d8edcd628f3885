// Package encode encodes [ir.Node] trees as KVS text.
//
// # Usage
//
//	var buf bytes.Buffer
//	if err := encode.Encode(node, &buf); err != nil {
//	    return err
//	}
//
//	// Or
//	d, err := encode.Marshal(node, encode.Pretty(true))
//
// Entries are written in key order.  A string entry is written as
// key=value; with each ";" in the value doubled, and a struct entry as
// key[...].  Metadata is never written.
//
// Trees built by the parser always encode.  Trees built by hand may hold
// keys or values the format cannot represent: empty keys, keys with
// surrounding white space or reserved bytes, and values containing "["
// or "~".  Encoding those fails with ErrEncoding.
//
// Colors are intended for terminals; colored output does not parse.
//
// # Related Packages
//
//   - github.com/signadot/kvs-format/go-kvs/ir - the tree
//   - github.com/signadot/kvs-format/go-kvs/parse - Parse text into trees
package encode
