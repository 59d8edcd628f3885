package token

import (
	"bytes"
	"slices"
)

// Escape appends v to dst with every ';' doubled.
func Escape(dst, v []byte) []byte {
	n := bytes.Count(v, []byte{ValueTerm})
	if n == 0 {
		return append(dst, v...)
	}
	dst = slices.Grow(dst, len(v)+n)
	for _, c := range v {
		if c == ValueTerm {
			dst = append(dst, ValueTerm)
		}
		dst = append(dst, c)
	}
	return dst
}

// TrimKey trims leading and trailing ASCII white space from a collected key.
func TrimKey(k []byte) string {
	i, j := 0, len(k)
	for i < j && IsSpace(k[i]) {
		i++
	}
	for j > i && IsSpace(k[j-1]) {
		j--
	}
	return string(k[i:j])
}

// KeyNeedsTrim reports whether k would change under TrimKey.
func KeyNeedsTrim(k string) bool {
	if k == "" {
		return false
	}
	return IsSpace(k[0]) || IsSpace(k[len(k)-1])
}

// IndexReserved returns the index of the first reserved byte in v, or -1.
func IndexReserved(v []byte) int {
	for i, c := range v {
		if IsReserved(c) {
			return i
		}
	}
	return -1
}
