// Copyright 2025 The strictyaml Project Contributors
// SPDX-License-Identifier: MIT

package strictyaml

// pair is one key/value entry of a Hash, kept in insertion order.
type pair struct {
	key   *Node
	value *Node
}

// Hash is an insertion-ordered mapping from Node keys to Node values. The
// dialect's mapping keys are compared structurally rather than by identity,
// so a composite key (an array or nested hash) is legal and two structurally
// equal keys collide just like two equal strings would.
//
// No third-party ordered-map implementation appeared anywhere in the
// example corpus, so this is hand-rolled: a slice for order plus a bucket
// index keyed by structuralHash for O(1) average lookup.
type Hash struct {
	pairs   []pair
	buckets map[uint64][]int // hash -> indices into pairs
}

func newOrderedHash() *Hash {
	return &Hash{buckets: make(map[uint64][]int)}
}

// Get returns the value associated with k, and whether it was found.
func (h *Hash) Get(k *Node) (*Node, bool) {
	idx, ok := h.find(k)
	if !ok {
		return nil, false
	}
	return h.pairs[idx].value, true
}

// Has reports whether k is present in h.
func (h *Hash) Has(k *Node) bool {
	_, ok := h.find(k)
	return ok
}

func (h *Hash) find(k *Node) (int, bool) {
	hv := structuralHash(k)
	for _, idx := range h.buckets[hv] {
		if structuralEqual(h.pairs[idx].key, k) {
			return idx, true
		}
	}
	return 0, false
}

// set inserts k/v, or reports false if k is already present (the loader
// turns that into a RepeatedHashKey error — Hash itself never overwrites).
func (h *Hash) set(k, v *Node) bool {
	if h.Has(k) {
		return false
	}
	hv := structuralHash(k)
	idx := len(h.pairs)
	h.pairs = append(h.pairs, pair{key: k, value: v})
	h.buckets[hv] = append(h.buckets[hv], idx)
	return true
}

// Len reports the number of entries in h.
func (h *Hash) Len() int { return len(h.pairs) }

// Keys returns h's keys in insertion order.
func (h *Hash) Keys() []*Node {
	keys := make([]*Node, len(h.pairs))
	for i, p := range h.pairs {
		keys[i] = p.key
	}
	return keys
}

// Each iterates h's entries in insertion order, stopping early if fn
// returns false.
func (h *Hash) Each(fn func(key, value *Node) bool) {
	for _, p := range h.pairs {
		if !fn(p.key, p.value) {
			return
		}
	}
}

func (h *Hash) equal(o *Hash) bool {
	if h == nil || o == nil {
		return h == o
	}
	if len(h.pairs) != len(o.pairs) {
		return false
	}
	for _, p := range h.pairs {
		v, ok := o.Get(p.key)
		if !ok || !structuralEqual(p.value, v) {
			return false
		}
	}
	return true
}
