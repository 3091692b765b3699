// Copyright 2025 The strictyaml Project Contributors
// SPDX-License-Identifier: MIT

package strictyaml

// Kind identifies which of the four Node variants a value holds.
type Kind int8

const (
	KindString Kind = iota
	KindArray
	KindHash
	KindBadValue
)

// Node is the sum type every loaded document is built from: String, Array,
// Hash, or the BadValue sentinel. Every leaf is a String — this dialect
// never coerces a scalar's text into a number, bool, or null.
type Node struct {
	kind Kind

	str string
	arr []*Node
	h   *Hash
}

// BadValue is the single shared immutable sentinel returned by failed
// lookups (Key, Index). It is never constructed by the parser and never
// mutated by callers.
var BadValue = &Node{kind: KindBadValue}

func newString(s string) *Node { return &Node{kind: KindString, str: s} }
func newArray() *Node          { return &Node{kind: KindArray} }
func newHash() *Node           { return &Node{kind: KindHash, h: newOrderedHash()} }

// Kind reports which variant n holds.
func (n *Node) Kind() Kind { return n.kind }

// IsAbsent reports whether n is the BadValue sentinel.
func (n *Node) IsAbsent() bool { return n == nil || n.kind == KindBadValue }

// IsArray reports whether n is an Array node.
func (n *Node) IsArray() bool { return n != nil && n.kind == KindArray }

// IsHash reports whether n is a Hash node.
func (n *Node) IsHash() bool { return n != nil && n.kind == KindHash }

// IsString reports whether n is a String node.
func (n *Node) IsString() bool { return n != nil && n.kind == KindString }

// AsString returns n's text and true if n is a String node.
func (n *Node) AsString() (string, bool) {
	if n == nil || n.kind != KindString {
		return "", false
	}
	return n.str, true
}

// AsArray returns n's elements and true if n is an Array node.
func (n *Node) AsArray() ([]*Node, bool) {
	if n == nil || n.kind != KindArray {
		return nil, false
	}
	return n.arr, true
}

// AsHash returns n's Hash and true if n is a Hash node.
func (n *Node) AsHash() (*Hash, bool) {
	if n == nil || n.kind != KindHash {
		return nil, false
	}
	return n.h, true
}

// IntoString returns n's text, or "" if n is not a String node.
func (n *Node) IntoString() string {
	s, _ := n.AsString()
	return s
}

// IntoArray returns n's elements, or nil if n is not an Array node.
func (n *Node) IntoArray() []*Node {
	a, _ := n.AsArray()
	return a
}

// IntoHash returns n's Hash, or nil if n is not a Hash node.
func (n *Node) IntoHash() *Hash {
	h, _ := n.AsHash()
	return h
}

// Key looks up k in n's Hash. It returns BadValue if n is not a Hash or the
// key is absent.
func (n *Node) Key(k string) *Node {
	h, ok := n.AsHash()
	if !ok {
		return BadValue
	}
	if v, found := h.Get(newString(k)); found {
		return v
	}
	return BadValue
}

// Index looks up the element at i in n's Array. It returns BadValue if n is
// not an Array or i is out of bounds.
func (n *Node) Index(i int) *Node {
	a, ok := n.AsArray()
	if !ok || i < 0 || i >= len(a) {
		return BadValue
	}
	return a[i]
}

// Each iterates n's elements in order, calling fn on each and stopping early
// if fn returns false. Iterating a non-Array node is a silent no-op.
func (n *Node) Each(fn func(*Node) bool) {
	a, ok := n.AsArray()
	if !ok {
		return
	}
	for _, v := range a {
		if !fn(v) {
			return
		}
	}
}

// structuralEqual reports whether two nodes are equal by structure, as
// required for Hash key uniqueness: same kind and, recursively, same
// content.
func structuralEqual(a, b *Node) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.kind != b.kind {
		return false
	}
	switch a.kind {
	case KindBadValue:
		return true
	case KindString:
		return a.str == b.str
	case KindArray:
		if len(a.arr) != len(b.arr) {
			return false
		}
		for i := range a.arr {
			if !structuralEqual(a.arr[i], b.arr[i]) {
				return false
			}
		}
		return true
	case KindHash:
		return a.h.equal(b.h)
	default:
		return false
	}
}

// structuralHash computes a hash key suitable for indexing a Node by
// structural equality. Strings (almost all keys in practice) hash directly;
// arrays and hashes fold their elements in, so two structurally equal
// composite keys land in the same bucket.
func structuralHash(n *Node) uint64 {
	const offset64 = 14695981039346656037
	const prime64 = 1099511628211

	h := uint64(offset64)
	mix := func(b byte) {
		h ^= uint64(b)
		h *= prime64
	}
	mixString := func(s string) {
		for i := 0; i < len(s); i++ {
			mix(s[i])
		}
	}

	var walk func(n *Node)
	walk = func(n *Node) {
		if n == nil {
			mix(0)
			return
		}
		mix(byte(n.kind) + 1)
		switch n.kind {
		case KindString:
			mixString(n.str)
		case KindArray:
			for _, v := range n.arr {
				walk(v)
			}
		case KindHash:
			for _, p := range n.h.pairs {
				walk(p.key)
				walk(p.value)
			}
		}
	}
	walk(n)
	return h
}
