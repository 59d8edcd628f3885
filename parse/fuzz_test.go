package parse

import (
	"testing"

	"github.com/signadot/kvs-format/go-kvs/encode"
)

func FuzzParse(f *testing.F) {
	seeds := []string{
		``,
		`k=v;`,
		`k=a;;b;`,
		`=x;=y;`,
		`outer[inner=v;]`,
		`a[b=1;]c=2;`,
		`k~meta=v;`,
		`k=a]b;`,
		`a[b=1;`,
		`]`,
		`;;;;`,
		`[[[`,
		"k=\x00\xff;",
	}
	for _, s := range seeds {
		f.Add([]byte(s))
	}

	f.Fuzz(func(t *testing.T, data []byte) {
		node, err := Parse(data)
		if err != nil {
			return // only depth errors are expected when lenient
		}
		d, err := encode.Marshal(node)
		if err != nil {
			t.Fatalf("parsed tree does not encode: %v", err)
		}
		back, err := Parse(d, Strict(true))
		if err != nil {
			t.Fatalf("encoding %q does not reparse: %v", d, err)
		}
		if !back.Equal(node) {
			t.Fatalf("round trip of %q through %q changed the tree", data, d)
		}
	})
}
