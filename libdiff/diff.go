package libdiff

import (
	"fmt"
	"strings"

	"github.com/signadot/kvs-format/go-kvs/debug"
	"github.com/signadot/kvs-format/go-kvs/ir"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

type Op int

const (
	Insert Op = iota
	Delete
	Replace
)

func (o Op) String() string {
	switch o {
	case Insert:
		return "insert"
	case Delete:
		return "delete"
	case Replace:
		return "replace"
	default:
		return "<unknown op>"
	}
}

// Change is a single difference at Path.  From is nil for inserts and To
// is nil for deletes.  Patch holds a textual patch when both sides are
// strings.
type Change struct {
	Path  []string
	Op    Op
	From  *ir.Value
	To    *ir.Value
	Patch string
}

func (c *Change) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %q", c.Op, c.Path)
	switch c.Op {
	case Insert:
		fmt.Fprintf(&b, " %s", c.To)
	case Replace:
		fmt.Fprintf(&b, " %s -> %s", c.From, c.To)
	}
	return b.String()
}

func Diff(from, to *ir.Node) []Change {
	res := diffNode(nil, from, to, nil)
	if debug.Diff() {
		debug.Logf("diff: %d changes from\n%s\nto\n%s\n", len(res), from, to)
	}
	return res
}

// diffNode walks the sorted keys of both nodes together.  A key on one
// side only is a delete or an insert; a key on both sides recurses.
func diffNode(path []string, from, to *ir.Node, res []Change) []Change {
	fromKeys, toKeys := from.Keys(), to.Keys()
	i, j := 0, 0
	for i < len(fromKeys) || j < len(toKeys) {
		c := 0
		switch {
		case i == len(fromKeys):
			c = 1
		case j == len(toKeys):
			c = -1
		default:
			c = strings.Compare(fromKeys[i], toKeys[j])
		}
		switch {
		case c < 0:
			key := fromKeys[i]
			res = append(res, Change{Path: subPath(path, key), Op: Delete, From: from.Get(key)})
			i++
		case c > 0:
			key := toKeys[j]
			res = append(res, Change{Path: subPath(path, key), Op: Insert, To: to.Get(key)})
			j++
		default:
			key := fromKeys[i]
			res = diffValue(subPath(path, key), from.Get(key), to.Get(key), res)
			i++
			j++
		}
	}
	return res
}

func diffValue(path []string, from, to *ir.Value, res []Change) []Change {
	if from.IsStruct() && to.IsStruct() {
		return diffNode(path, from.Node(), to.Node(), res)
	}
	if from.Equal(to) {
		return res
	}
	c := Change{Path: path, Op: Replace, From: from, To: to}
	if !from.IsStruct() && !to.IsStruct() {
		c.Patch = DiffString(from.String(), to.String())
	}
	return append(res, c)
}

// DiffString returns a textual patch turning from into to.
func DiffString(from, to string) string {
	diffCfg := diffpatch.New()
	doMultiLine := strings.Contains(from, "\n") && strings.Contains(to, "\n")
	diffs := diffCfg.DiffMain(from, to, doMultiLine)
	return diffCfg.PatchToText(diffCfg.PatchMake(from, diffs))
}

// PatchString applies a patch made by DiffString to from.
func PatchString(from, patch string) (string, error) {
	diffCfg := diffpatch.New()
	patches, err := diffCfg.PatchFromText(patch)
	if err != nil {
		return "", err
	}
	res, applied := diffCfg.PatchApply(patches, from)
	for i, ok := range applied {
		if !ok {
			return "", fmt.Errorf("%w: hunk %d did not apply", ErrPatch, i)
		}
	}
	return res, nil
}

func subPath(path []string, key string) []string {
	res := make([]string, len(path)+1)
	copy(res, path)
	res[len(path)] = key
	return res
}
