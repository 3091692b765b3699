// Copyright 2025 The strictyaml Project Contributors
// SPDX-License-Identifier: MIT

package strictyaml

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashSetGetInsertionOrder(t *testing.T) {
	h := newOrderedHash()
	require.True(t, h.set(newString("b"), newString("2")))
	require.True(t, h.set(newString("a"), newString("1")))

	var keys []string
	for _, k := range h.Keys() {
		keys = append(keys, k.IntoString())
	}
	assert.Equal(t, []string{"b", "a"}, keys)

	v, ok := h.Get(newString("a"))
	require.True(t, ok)
	assert.Equal(t, "1", v.IntoString())
}

func TestHashSetRejectsDuplicate(t *testing.T) {
	h := newOrderedHash()
	require.True(t, h.set(newString("a"), newString("1")))
	assert.False(t, h.set(newString("a"), newString("2")))
	assert.Equal(t, 1, h.Len())
}

func TestHashCompositeKey(t *testing.T) {
	h := newOrderedHash()
	k1 := newArray()
	k1.arr = append(k1.arr, newString("x"))
	k2 := newArray()
	k2.arr = append(k2.arr, newString("x"))

	require.True(t, h.set(k1, newString("v")))
	assert.True(t, h.Has(k2), "structurally equal array keys must collide")
}

func TestHashEachStopsEarly(t *testing.T) {
	h := newOrderedHash()
	h.set(newString("a"), newString("1"))
	h.set(newString("b"), newString("2"))
	h.set(newString("c"), newString("3"))

	var seen []string
	h.Each(func(k, v *Node) bool {
		seen = append(seen, k.IntoString())
		return k.IntoString() != "b"
	})
	assert.Equal(t, []string{"a", "b"}, seen)
}
