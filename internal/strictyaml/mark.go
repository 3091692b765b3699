// Copyright 2025 The strictyaml Project Contributors
// SPDX-License-Identifier: MIT

package strictyaml

import "fmt"

// Position is a byte-index/line/column triple into the source text. Lines
// and columns are one-based; the byte index is zero-based. It exists solely
// for error reporting — nothing downstream of the scanner keys off it.
type Position struct {
	Index  int
	Line   int
	Column int
}

func (m Position) String() string {
	return fmt.Sprintf("line %d, column %d", m.Line, m.Column)
}
