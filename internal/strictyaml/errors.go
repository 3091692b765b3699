// Copyright 2025 The strictyaml Project Contributors
// SPDX-License-Identifier: MIT

package strictyaml

import "fmt"

// Error is the single error type raised anywhere in the scan/parse/load
// pipeline. The teacher's libyaml port keeps three distinct marked-error
// types (scanner, parser, and a generic one) that all carry the same shape;
// strict YAML's narrower grammar doesn't earn that distinction, so it is
// collapsed to one exported type here.
type Error struct {
	Mark    Position
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Mark, e.Message)
}

// Warning reports a condition that does not stop the load: the only one
// currently produced is an incompatible %YAML directive version.
type Warning struct {
	Mark    Position
	Message string
}

func (w *Warning) String() string {
	return fmt.Sprintf("%s: %s", w.Mark, w.Message)
}
