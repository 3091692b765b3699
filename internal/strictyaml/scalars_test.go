// Copyright 2025 The strictyaml Project Contributors
// SPDX-License-Identifier: MIT

package strictyaml

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scanOneScalar(t *testing.T, text string) Token {
	t.Helper()
	sc := NewScanner(NewSource(strings.NewReader(text)))
	_, err := sc.Next() // stream-start
	require.NoError(t, err)
	tok, err := sc.Next()
	require.NoError(t, err)
	return tok
}

func TestScanPlainScalar(t *testing.T) {
	tok := scanOneScalar(t, "hello world\n")
	assert.Equal(t, TokenScalar, tok.Kind)
	assert.Equal(t, "hello world", tok.Text)
	assert.Equal(t, StylePlain, tok.Style)
}

func TestScanPlainDatatypesAreNeverCoerced(t *testing.T) {
	for _, text := range []string{
		"123", "-321", "1.23", "-1e4", "~", "null", "true", "false",
		"!!str 0", "0xFF", "0o77", "[ 0xF, 0xF ]", "+12345",
	} {
		tok := scanOneScalar(t, text+"\n")
		assert.Equal(t, text, tok.Text, "plain scalar %q must round-trip verbatim", text)
	}
}

func TestScanSingleQuoted(t *testing.T) {
	tok := scanOneScalar(t, "'it''s here'\n")
	assert.Equal(t, "it's here", tok.Text)
	assert.Equal(t, StyleSingleQuoted, tok.Style)
}

func TestScanDoubleQuotedEscapes(t *testing.T) {
	tok := scanOneScalar(t, `"a\tb\nc\x41"` + "\n")
	assert.Equal(t, "a\tb\nc\x41", tok.Text)
}

func TestScanLiteralBlockScalarClip(t *testing.T) {
	tok := scanOneScalar(t, "|\n  line one\n  line two\n")
	assert.Equal(t, "line one\nline two\n", tok.Text)
	assert.Equal(t, StyleLiteral, tok.Style)
}

func TestScanLiteralBlockScalarStrip(t *testing.T) {
	tok := scanOneScalar(t, "|-\n  line one\n  line two\n")
	assert.Equal(t, "line one\nline two", tok.Text)
}

func TestScanFoldedBlockScalar(t *testing.T) {
	tok := scanOneScalar(t, ">\n  line one\n  line two\n")
	assert.Equal(t, "line one line two\n", tok.Text)
	assert.Equal(t, StyleFolded, tok.Style)
}

func TestScanFoldedBlockScalarBlankLineBreaksFold(t *testing.T) {
	tok := scanOneScalar(t, ">\n  para one\n\n  para two\n")
	assert.Equal(t, "para one\npara two\n", tok.Text)
}
