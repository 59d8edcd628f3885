package encode

type EncodeOption func(*EncState)

// Pretty puts each pair on its own line, indenting nested structs.  The
// added white space is trimmed when parsing, so the result parses to the
// same tree.
func Pretty(v bool) EncodeOption {
	return func(es *EncState) { es.pretty = v }
}

// Indent sets the indentation width for Pretty output.
func Indent(n int) EncodeOption {
	return func(es *EncState) { es.indent = n }
}

// Wrap encodes the tree as the body of a struct named name.
func Wrap(name string) EncodeOption {
	return func(es *EncState) { es.wrap = name }
}

// MaxDepth limits struct nesting to n levels.  n <= 0 removes the limit.
func MaxDepth(n int) EncodeOption {
	return func(es *EncState) { es.maxDepth = n }
}

func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) {
		if c == nil {
			es.Color = nil
			return
		}
		es.Color = c.Color
	}
}
