package encode

import (
	"fmt"
	"io"
	"strings"

	"github.com/signadot/kvs-format/go-kvs/ir"
	"github.com/signadot/kvs-format/go-kvs/token"
)

type EncState struct {
	col           int
	depth, indent int
	pretty        bool
	wrap          string
	maxDepth      int
	path          []string

	Color func(ir.Type, ColorAttr, string) string
}

// Encode writes node to w.  A nil node encodes as an empty one.
func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	if node == nil {
		node = ir.New()
	}
	es := &EncState{
		indent:   2,
		maxDepth: ir.DefaultMaxDepth,
	}
	for _, opt := range opts {
		opt(es)
	}
	var err error
	if es.wrap != "" {
		err = encodeStruct(es.wrap, node, w, es)
	} else {
		err = encodeNode(node, w, es)
	}
	if err != nil {
		return err
	}
	if es.pretty && es.col != 0 {
		return writeString(w, "\n")
	}
	return nil
}

func encodeNode(node *ir.Node, w io.Writer, es *EncState) error {
	var err error
	node.Range(func(key string, v *ir.Value) bool {
		if v.IsStruct() {
			err = encodeStruct(key, v.Node(), w, es)
		} else {
			err = encodeString(key, v, w, es)
		}
		return err == nil
	})
	return err
}

func encodeString(key string, v *ir.Value, w io.Writer, es *EncState) error {
	raw := v.Bytes()
	for i, c := range raw {
		if c == token.StructStart || c == token.Meta {
			return es.errorf(key, "value has %q at %d", c, i)
		}
	}
	if err := writeKey(w, key, ir.StringType, es); err != nil {
		return err
	}
	if err := writeSep(w, token.KeyTerm, ir.StringType, es); err != nil {
		return err
	}
	if err := writeValue(w, string(token.Escape(nil, raw)), es); err != nil {
		return err
	}
	return writeSep(w, token.ValueTerm, ir.StringType, es)
}

func encodeStruct(key string, node *ir.Node, w io.Writer, es *EncState) error {
	if es.maxDepth > 0 && es.depth >= es.maxDepth {
		return es.errorf(key, "more than %d levels", es.maxDepth)
	}
	if err := writeKey(w, key, ir.StructType, es); err != nil {
		return err
	}
	if err := writeSep(w, token.StructStart, ir.StructType, es); err != nil {
		return err
	}
	es.depth++
	es.path = append(es.path, key)
	if err := encodeNode(node, w, es); err != nil {
		return err
	}
	es.path = es.path[:len(es.path)-1]
	es.depth--
	if node.Len() != 0 {
		if err := writeNL(w, es); err != nil {
			return err
		}
	}
	return writeSep(w, token.StructEnd, ir.StructType, es)
}

func checkKey(key string) string {
	switch {
	case key == "":
		return "empty key"
	case token.KeyNeedsTrim(key):
		return "key has surrounding white space"
	}
	if i := token.IndexReserved([]byte(key)); i >= 0 {
		return fmt.Sprintf("key has %q at %d", key[i], i)
	}
	return ""
}

func (es *EncState) errorf(key, f string, args ...any) error {
	path := append(es.path[:len(es.path):len(es.path)], key)
	return fmt.Errorf("%w: at %q: %s", ErrEncoding, path, fmt.Sprintf(f, args...))
}

// Helper functions for writing

func writeNL(w io.Writer, es *EncState) error {
	if !es.pretty || es.col == 0 {
		return nil
	}
	indentString := strings.Repeat(strings.Repeat(" ", es.indent), es.depth)
	if err := writeString(w, "\n"+indentString); err != nil {
		return err
	}
	es.col = len(indentString)
	return nil
}

func writeKey(w io.Writer, key string, t ir.Type, es *EncState) error {
	if msg := checkKey(key); msg != "" {
		return es.errorf(key, "%s", msg)
	}
	if err := writeNL(w, es); err != nil {
		return err
	}
	es.col += len(key)
	return writeString(w, applyColor(es, t, FieldColor, key))
}

func writeSep(w io.Writer, c byte, t ir.Type, es *EncState) error {
	es.col++
	return writeString(w, applyColor(es, t, SepColor, string(c)))
}

func writeValue(w io.Writer, v string, es *EncState) error {
	es.col += len(v)
	return writeString(w, applyColor(es, ir.StringType, ValueColor, v))
}

func writeString(w io.Writer, s string) error {
	_, err := io.WriteString(w, s)
	return err
}

func applyColor(es *EncState, t ir.Type, attr ColorAttr, v string) string {
	if es.Color == nil || v == "" {
		return v
	}
	return es.Color(t, attr, v)
}
