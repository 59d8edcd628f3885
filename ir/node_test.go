package ir

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestZeroNode(t *testing.T) {
	var n Node
	if n.Len() != 0 || n.Get("a") != nil || n.Exists([]string{"a"}) {
		t.Fatal("zero node not empty")
	}
	n.Set("a", FromString("1"))
	if got := n.Get("a").String(); got != "1" {
		t.Errorf("got %q", got)
	}
	n.Clear()
	if n.Len() != 0 {
		t.Error("not cleared")
	}
}

func TestKeysSorted(t *testing.T) {
	n := New()
	for _, k := range []string{"b", "a", "10", "2", "c"} {
		n.Set(k, FromString(k+"v"))
	}
	if diff := cmp.Diff([]string{"10", "2", "a", "b", "c"}, n.Keys()); diff != "" {
		t.Error(diff)
	}
	vals := []string{}
	for _, v := range n.Values() {
		vals = append(vals, v.String())
	}
	if diff := cmp.Diff([]string{"10v", "2v", "av", "bv", "cv"}, vals); diff != "" {
		t.Error(diff)
	}
	n.Delete("a")
	n.Set("0", FromString("0v"))
	if diff := cmp.Diff([]string{"0", "10", "2", "b", "c"}, n.Keys()); diff != "" {
		t.Errorf("view not rebuilt after mutation: %s", diff)
	}
}

func TestRangeStops(t *testing.T) {
	n := FromMap(map[string]*Value{
		"a": FromString("1"),
		"b": FromString("2"),
		"c": FromString("3"),
	})
	seen := []string{}
	n.Range(func(k string, _ *Value) bool {
		seen = append(seen, k)
		return k != "b"
	})
	if diff := cmp.Diff([]string{"a", "b"}, seen); diff != "" {
		t.Error(diff)
	}
}

func TestValueImmutable(t *testing.T) {
	d := []byte("abc")
	v := FromBytes(d)
	d[0] = 'x'
	if v.String() != "abc" {
		t.Errorf("FromBytes did not copy: %q", v.String())
	}
	b := v.Bytes()
	b[0] = 'y'
	if v.String() != "abc" {
		t.Errorf("Bytes did not copy: %q", v.String())
	}
}

func TestValueKinds(t *testing.T) {
	s := FromString("x;y")
	if s.IsStruct() || s.Node() != nil || s.Len() != 3 {
		t.Errorf("string value: %+v", s)
	}
	st := FromNode(nil)
	if !st.IsStruct() || st.Node() == nil || st.Bytes() != nil {
		t.Errorf("struct value: %+v", st)
	}
	if st.String() != "[struct len=0]" {
		t.Errorf("struct string: %q", st.String())
	}
}

func TestBinaryValue(t *testing.T) {
	raw := []byte{0, 0xff, ';', 0x80, '\n'}
	n := New()
	n.Set("bin", FromBytes(raw))
	if diff := cmp.Diff(raw, n.Get("bin").Bytes()); diff != "" {
		t.Error(diff)
	}
}

func TestSetAdoptsUnownedNode(t *testing.T) {
	root := New()
	child := New()
	child.Set("x", FromString("1"))
	root.Set("c", FromNode(child))
	if root.Get("c").Node() != child {
		t.Fatal("unowned child was copied")
	}
	if child.Parent() != root {
		t.Error("parent not set")
	}
}

func TestSetCopiesOwnedNode(t *testing.T) {
	root := New()
	child := New()
	child.Set("x", FromString("1"))
	v := FromNode(child)
	root.Set("a", v)
	root.Set("b", v)
	a, b := root.Get("a").Node(), root.Get("b").Node()
	if a == b {
		t.Fatal("two keys share a child")
	}
	if !a.Equal(b) {
		t.Error("copy differs")
	}
	b.Set("y", FromString("2"))
	if a.Has("y") {
		t.Error("mutation leaked through copy")
	}
}

func TestSetBreaksCycles(t *testing.T) {
	root := New()
	child, _ := root.Ensure([]string{"a", "b"})
	child.Set("self", FromNode(root))
	got := child.Get("self").Node()
	if got == root {
		t.Fatal("cycle stored")
	}
	if !got.Exists([]string{"a", "b"}) {
		t.Error("copy of ancestor lost entries")
	}
	if got.Exists([]string{"a", "b", "self"}) {
		t.Error("copy taken after insertion")
	}
}

func TestSetSameValueNoop(t *testing.T) {
	root := New()
	child, _ := root.Ensure([]string{"a"})
	root.Set("a", root.Get("a"))
	if root.Get("a").Node() != child {
		t.Error("re-setting a value replaced it")
	}
}

func TestSetReplaceDetaches(t *testing.T) {
	root := New()
	child, _ := root.Ensure([]string{"a"})
	root.Set("a", FromString("s"))
	if child.Parent() != nil {
		t.Error("replaced child still attached")
	}
	other := New()
	other.Set("c", FromNode(child))
	if other.Get("c").Node() != child {
		t.Error("detached child not adoptable")
	}
}

func TestClone(t *testing.T) {
	n := New()
	n.Add(FromString("a"))
	sub, _ := n.Ensure([]string{"s"})
	sub.Set("k", FromString("v"))
	c := n.Clone()
	if !c.Equal(n) {
		t.Fatal("clone differs")
	}
	if c.Get("s").Node() == sub || c.Get("s").Node().Parent() != c {
		t.Error("clone shares or misparents child")
	}
	if got := c.Add(FromString("b")); got != "1" {
		t.Errorf("clone auto key %q, want 1", got)
	}
}

func TestTypeText(t *testing.T) {
	for _, ty := range Types() {
		d, err := ty.MarshalText()
		if err != nil {
			t.Fatal(err)
		}
		var back Type
		if err := back.UnmarshalText(d); err != nil {
			t.Fatal(err)
		}
		if back != ty {
			t.Errorf("%s -> %s", ty, back)
		}
	}
	var x Type
	if err := x.UnmarshalText([]byte("Number")); err == nil {
		t.Error("expected error")
	}
	if Type(7).String() != "<unknown type>" {
		t.Error("unknown type name")
	}
}

func TestSetStructWithoutNode(t *testing.T) {
	root := New()
	root.Set("s", &Value{Type: StructType})
	v := root.Get("s")
	if v.Node() == nil || v.Node().Len() != 0 {
		t.Fatalf("got %v", v)
	}
	if v.Node().Parent() != root {
		t.Error("parent not set")
	}
	v.Node().Set("k", FromString("1"))
	if !root.Exists([]string{"s", "k"}) {
		t.Error("child not reachable")
	}
	root.Clear()
	if root.Len() != 0 {
		t.Error("not cleared")
	}
}
