package debug

import (
	"io"
	"os"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/mattn/go-isatty"
	"github.com/signadot/kvs-format/go-kvs/encode"
	"github.com/signadot/kvs-format/go-kvs/ir"
)

// Dump writes node to w for inspection, one entry per line, with the
// entries of nested structs indented under their key.  Output to a
// terminal is colored.
func Dump(w io.Writer, node *ir.Node) error {
	var colors *encode.Colors
	if f, ok := w.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
		colors = encode.NewColors()
	}
	return dump(w, node, 0, colors)
}

func dump(w io.Writer, node *ir.Node, depth int, colors *encode.Colors) error {
	if node == nil {
		return nil
	}
	indent := strings.Repeat("  ", depth)
	var err error
	node.Range(func(key string, v *ir.Value) bool {
		var b strings.Builder
		b.WriteString(indent)
		if v.IsStruct() {
			b.WriteString(paint(colors, ir.StructType, encode.FieldColor, key))
			b.WriteByte('\n')
			if _, err = io.WriteString(w, b.String()); err != nil {
				return false
			}
			err = dump(w, v.Node(), depth+1, colors)
			return err == nil
		}
		b.WriteString(paint(colors, ir.StringType, encode.FieldColor, key))
		b.WriteString(paint(colors, ir.StringType, encode.SepColor, " = "))
		b.WriteString(paint(colors, ir.StringType, encode.ValueColor, printable(v.String())))
		b.WriteByte('\n')
		_, err = io.WriteString(w, b.String())
		return err == nil
	})
	return err
}

func paint(colors *encode.Colors, t ir.Type, a encode.ColorAttr, s string) string {
	if colors == nil {
		return s
	}
	return colors.Color(t, a, s)
}

func printable(s string) string {
	if !utf8.ValidString(s) {
		return strconv.Quote(s)
	}
	for _, r := range s {
		if !strconv.IsPrint(r) {
			return strconv.Quote(s)
		}
	}
	return s
}
