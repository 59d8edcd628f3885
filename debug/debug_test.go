package debug

import (
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/kvs-format/go-kvs/ir"
)

func sample() *ir.Node {
	n := ir.New()
	a, _ := n.Ensure([]string{"a"})
	a.Set("b", ir.FromString("1"))
	a.Set("n", ir.FromString("x\ny"))
	n.Set("c", ir.FromString("two words"))
	return n
}

func TestDump(t *testing.T) {
	buf := bytes.NewBuffer(nil)
	if err := Dump(buf, sample()); err != nil {
		t.Fatal(err)
	}
	want := "a\n  b = 1\n  n = \"x\\ny\"\nc = two words\n"
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Error(diff)
	}
	buf.Reset()
	if err := Dump(buf, nil); err != nil || buf.Len() != 0 {
		t.Errorf("nil node: %v %q", err, buf.String())
	}
}

func TestLogf(t *testing.T) {
	buf := bytes.NewBuffer(nil)
	old := out
	out = buf
	defer func() { out = old }()

	Logf("node %s flag %t\n", sample(), true)
	if diff := cmp.Diff("node a[b=1;n=x\ny;]c=two words; flag true\n", buf.String()); diff != "" {
		t.Error(diff)
	}

	buf.Reset()
	Logf("%s", JSON(map[string]any{"k": "v"}))
	if diff := cmp.Diff("{\n   |  \"k\": \"v\"\n   |}", buf.String()); diff != "" {
		t.Error(diff)
	}

	buf.Reset()
	bad := ir.New()
	bad.Set("", ir.FromString("x"))
	Logf("%s", bad)
	if !bytes.HasPrefix(buf.Bytes(), []byte("[raw *ir.Node]")) {
		t.Errorf("got %q", buf.String())
	}
}

func TestLogAny(t *testing.T) {
	buf := bytes.NewBuffer(nil)
	old := out
	out = buf
	defer func() { out = old }()

	LogAny(sample())
	if diff := cmp.Diff("{\"a\":{\"b\":\"1\",\"n\":\"x\\ny\"},\"c\":\"two words\"}\n", buf.String()); diff != "" {
		t.Error(diff)
	}
	buf.Reset()
	LogAny(func() {})
	if buf.Len() == 0 {
		t.Error("nothing logged for unmarshalable value")
	}
}

func TestBoolEnv(t *testing.T) {
	t.Setenv("KVS_TEST_FLAG", "true")
	if !boolEnv("KVS_TEST_FLAG") {
		t.Error("true not read")
	}
	t.Setenv("KVS_TEST_FLAG", "nope")
	if boolEnv("KVS_TEST_FLAG") {
		t.Error("bad value read as true")
	}
	if boolEnv("KVS_TEST_FLAG_UNSET") {
		t.Error("unset read as true")
	}
}
