// Package parse parses KVS text into [ir.Node] trees.
//
// # Usage
//
//	node, err := parse.Parse([]byte(`name=alice;tags[=a;=b;]`))
//	if err != nil {
//	    return err
//	}
//
//	// Parse strictly: unclosed structs and stray ']' are errors
//	node, err := parse.Parse(data, parse.Strict(true))
//
//	// Parse one struct body embedded in a larger buffer.  end is the
//	// offset of the ']' closing it, or len(data).
//	node, end, err := parse.ParseAt(data, off)
//
// # Grammar
//
//	node         ::= pair*
//	pair         ::= key "=" string-value ";" | key "[" node "]"
//	key          ::= (any byte but "=" "~" ";" "[" "]")*
//	string-value ::= (any byte | ";;")*
//
// Keys are trimmed of ASCII white space.  A key which trims to nothing is
// replaced by the Node's next auto key, so `=x;=y;` holds "0" and "1".
// ";;" in a value is a literal ";".  A "~" starts metadata, which is
// skipped up to the next "=".  A "]" inside a value is part of the value.
// A pair with no terminating ";" at the end of the input is dropped.
//
// By default parsing is lenient: the end of input closes any open
// structs and a "]" at the top level ends the document.  Bytes are never
// validated as text.
//
// # Related Packages
//
//   - github.com/signadot/kvs-format/go-kvs/ir - the tree
//   - github.com/signadot/kvs-format/go-kvs/encode - Encode trees to text
//   - github.com/signadot/kvs-format/go-kvs/token - reserved bytes and positions
package parse
