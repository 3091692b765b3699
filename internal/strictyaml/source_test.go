// Copyright 2025 The strictyaml Project Contributors
// SPDX-License-Identifier: MIT

package strictyaml

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSourcePeekAdvance(t *testing.T) {
	s := NewSource(strings.NewReader("ab\ncd"))
	assert.Equal(t, 'a', s.peek())
	assert.Equal(t, 'b', s.peekAt(1))
	assert.Equal(t, 'a', s.advance())
	assert.Equal(t, 'b', s.advance())
	assert.Equal(t, '\n', s.advance())
	m := s.mark()
	assert.Equal(t, 2, m.Line)
	assert.Equal(t, 1, m.Column)
}

func TestSourceEOF(t *testing.T) {
	s := NewSource(strings.NewReader(""))
	assert.Equal(t, runeEOF, s.peek())
	assert.True(t, s.atEOF())
}

func TestSourceStripsBOM(t *testing.T) {
	s := NewSource(strings.NewReader(string(rune(0xFEFF)) + "foo"))
	assert.Equal(t, 'f', s.peek())
}

func TestSourceNormalizesCRLF(t *testing.T) {
	s := NewSource(strings.NewReader("a\r\nb\rc"))
	var got []rune
	for {
		r := s.advance()
		if r == runeEOF {
			break
		}
		got = append(got, r)
	}
	require.Equal(t, []rune{'a', '\n', 'b', '\n', 'c'}, got)
}
