// Copyright 2025 The strictyaml Project Contributors
// SPDX-License-Identifier: MIT

// Package strictyaml loads a restricted, "strict" dialect of YAML into a
// tree of strings, arrays, and ordered maps. There is no type coercion: a
// scalar is always a string, however it looks. There are no anchors,
// aliases, tags, or flow collections.
package strictyaml

import (
	"io"
	"strings"

	"github.com/fralalonde/strictyaml/internal/strictyaml"
)

// Node is a loaded tree value: a String, an Array, a Hash, or the shared
// BadValue sentinel returned by failed lookups.
type Node = strictyaml.Node

// Hash is an insertion-ordered string-keyed (or composite-keyed) mapping.
type Hash = strictyaml.Hash

// Kind identifies which variant a Node holds.
type Kind = strictyaml.Kind

const (
	KindString   = strictyaml.KindString
	KindArray    = strictyaml.KindArray
	KindHash     = strictyaml.KindHash
	KindBadValue = strictyaml.KindBadValue
)

// BadValue is the shared sentinel returned by failed lookups (Key, Index).
var BadValue = strictyaml.BadValue

// Error is returned for any malformed input; it carries the position at
// which the problem was detected.
type Error = strictyaml.Error

// Warning reports a non-fatal condition encountered while loading, such as
// an incompatible %YAML version directive.
type Warning = strictyaml.Warning

// Position is a (byte index, line, column) location within the source.
type Position = strictyaml.Position

// Load parses text as a stream of strict-YAML documents and returns one
// Node per document in order. Any version-directive warnings are
// discarded; use LoadWithWarnings to observe them.
func Load(text string) ([]*Node, error) {
	docs, _, err := LoadWithWarnings(strings.NewReader(text))
	return docs, err
}

// LoadReader is Load reading from r instead of a string, so callers already
// holding an io.Reader (an open file, an HTTP body) need not buffer the
// whole input first. The source is read once, front to back.
func LoadReader(r io.Reader) ([]*Node, error) {
	docs, _, err := LoadWithWarnings(r)
	return docs, err
}

// LoadWithWarnings is Load/LoadReader plus any accumulated Warnings.
func LoadWithWarnings(r io.Reader) ([]*Node, []*Warning, error) {
	sc := strictyaml.NewScanner(strictyaml.NewSource(r))
	p := strictyaml.NewParser(sc)
	ld := strictyaml.NewLoader(p)

	var docs []*Node
	for {
		doc, err := ld.LoadDocument()
		if err != nil {
			return nil, nil, err
		}
		if doc == nil {
			break
		}
		docs = append(docs, doc)
	}
	return docs, ld.Warnings(), nil
}
