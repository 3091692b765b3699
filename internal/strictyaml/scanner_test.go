// Copyright 2025 The strictyaml Project Contributors
// SPDX-License-Identifier: MIT

package strictyaml

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scanAll(t *testing.T, text string) []Token {
	t.Helper()
	sc := NewScanner(NewSource(strings.NewReader(text)))
	var toks []Token
	for {
		tok, err := sc.Next()
		require.NoError(t, err)
		toks = append(toks, tok)
		if tok.Kind == TokenStreamEnd {
			return toks
		}
	}
}

func kinds(toks []Token) []TokenKind {
	out := make([]TokenKind, len(toks))
	for i, tok := range toks {
		out[i] = tok.Kind
	}
	return out
}

func TestScannerSimpleMapping(t *testing.T) {
	toks := scanAll(t, "a: 1\nb: 2\n")
	assert.Equal(t, []TokenKind{
		TokenStreamStart,
		TokenBlockMappingStart,
		TokenKey, TokenScalar, TokenValue, TokenScalar,
		TokenKey, TokenScalar, TokenValue, TokenScalar,
		TokenBlockEnd,
		TokenStreamEnd,
	}, kinds(toks))
}

func TestScannerBlockSequence(t *testing.T) {
	toks := scanAll(t, "- a\n- b\n")
	assert.Equal(t, []TokenKind{
		TokenStreamStart,
		TokenBlockSequenceStart,
		TokenBlockEntry, TokenScalar,
		TokenBlockEntry, TokenScalar,
		TokenBlockEnd,
		TokenStreamEnd,
	}, kinds(toks))
}

func TestScannerNestedIndentlessSequence(t *testing.T) {
	toks := scanAll(t, "key:\n- a\n- b\n")
	assert.Equal(t, []TokenKind{
		TokenStreamStart,
		TokenBlockMappingStart,
		TokenKey, TokenScalar, TokenValue,
		TokenBlockEntry, TokenScalar,
		TokenBlockEntry, TokenScalar,
		TokenBlockEnd,
		TokenStreamEnd,
	}, kinds(toks))
}

func TestScannerDocumentMarkers(t *testing.T) {
	toks := scanAll(t, "---\na: 1\n...\n")
	assert.Equal(t, TokenDocumentStart, toks[1].Kind)
	found := false
	for _, tok := range toks {
		if tok.Kind == TokenDocumentEnd {
			found = true
		}
	}
	assert.True(t, found)
}

func TestScannerFourDashesIsNotAMarker(t *testing.T) {
	toks := scanAll(t, "----\n")
	// "----" doesn't satisfy matchesDocMarker (nothing follows the
	// literal "---" but another '-'), so it scans as a plain scalar.
	assert.Contains(t, kinds(toks), TokenScalar)
	for _, tok := range toks {
		if tok.Kind == TokenScalar {
			assert.Equal(t, "----", tok.Text)
		}
	}
}

func TestScannerTabInIndentationIsError(t *testing.T) {
	sc := NewScanner(NewSource(strings.NewReader("\tkey: 1\n")))
	_, err := sc.Next() // stream-start
	require.NoError(t, err)
	_, err = sc.Next()
	require.Error(t, err)
}

func TestScannerTabAsInlineWhitespaceIsFine(t *testing.T) {
	toks := scanAll(t, "-\tfoo\n")
	assert.Contains(t, kinds(toks), TokenScalar)
}

func TestScannerComment(t *testing.T) {
	toks := scanAll(t, "a: 1 # trailing\n# full line\nb: 2\n")
	assert.Equal(t, []TokenKind{
		TokenStreamStart,
		TokenBlockMappingStart,
		TokenKey, TokenScalar, TokenValue, TokenScalar,
		TokenKey, TokenScalar, TokenValue, TokenScalar,
		TokenBlockEnd,
		TokenStreamEnd,
	}, kinds(toks))
}

func TestScannerEmptyInput(t *testing.T) {
	toks := scanAll(t, "")
	assert.Equal(t, []TokenKind{TokenStreamStart, TokenStreamEnd}, kinds(toks))
}
