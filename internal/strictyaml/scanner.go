// Copyright 2025 The strictyaml Project Contributors
// SPDX-License-Identifier: MIT

// Package strictyaml implements the scanner, parser, and loader for a
// restricted, block-only dialect of YAML. Every leaf in the resulting tree
// is a string; there is no type coercion, no anchors/aliases, and no flow
// collections.
//
// The pipeline is pull-driven end to end: the Parser asks the Scanner for
// the next token on demand, and the Loader drives the Parser in a loop.
// Nothing here spawns a goroutine or retains state across calls other than
// what a single parse needs.
package strictyaml

import (
	"fmt"
	"strings"
)

// Scanner tokenizes a strict-YAML document stream. It maintains a stack of
// indentation columns and a small output queue: most scan steps produce
// exactly one token, but a confirmed simple key produces Key and the
// buffered scalar together, and a column increase produces a BlockStart
// token ahead of the entry/key token that triggered it.
type Scanner struct {
	src *Source

	queue []Token

	indents []int // indentation stack, starts at {-1}

	streamStarted bool
	streamEnded   bool

	// lineStart is true only while the cursor sits where indentation is
	// still being measured for the current line; it is what distinguishes
	// a tab used as indentation (illegal) from a tab used as ordinary
	// inline whitespace later on the same line (legal).
	lineStart bool
}

// NewScanner creates a Scanner reading from src.
func NewScanner(src *Source) *Scanner {
	return &Scanner{src: src, indents: []int{-1}, lineStart: true}
}

// Next returns the next token, scanning more input as needed.
func (sc *Scanner) Next() (Token, error) {
	for len(sc.queue) == 0 {
		if err := sc.scanMore(); err != nil {
			return Token{}, err
		}
	}
	tok := sc.queue[0]
	sc.queue = sc.queue[1:]
	return tok, nil
}

func (sc *Scanner) enqueue(tok Token) { sc.queue = append(sc.queue, tok) }

func (sc *Scanner) errorf(pos Position, format string, args ...interface{}) error {
	return &Error{Mark: pos, Message: fmt.Sprintf(format, args...)}
}

// scanMore performs one unit of scanning work, appending at least one token
// to the queue (unless the stream has already ended).
func (sc *Scanner) scanMore() error {
	if !sc.streamStarted {
		sc.streamStarted = true
		sc.enqueue(Token{Kind: TokenStreamStart, Start: sc.src.mark(), End: sc.src.mark()})
		return nil
	}

	if err := sc.skipBlankAndCommentLines(); err != nil {
		return err
	}

	if sc.src.atEOF() {
		sc.unrollIndent(-1, sc.src.mark())
		sc.enqueue(Token{Kind: TokenStreamEnd, Start: sc.src.mark(), End: sc.src.mark()})
		sc.streamEnded = true
		return nil
	}

	col := sc.column()
	start := sc.src.mark()

	if col == 0 {
		if ok, err := sc.tryStructuralIndicator(start); err != nil {
			return err
		} else if ok {
			return nil
		}
	}

	sc.unrollIndent(col, start)

	if sc.atBlockEntryIndicator() {
		sc.rollIndent(col, TokenBlockSequenceStart, start)
		sc.enqueue(Token{Kind: TokenBlockEntry, Start: start, End: sc.src.mark()})
		sc.src.advance() // '-'
		sc.skipInlineSpaces()
		return nil
	}

	return sc.scanNodeContent(col, start)
}

// column returns the zero-based column of the upcoming rune.
func (sc *Scanner) column() int { return sc.src.mark().Column - 1 }

// skipInlineSpaces consumes ASCII spaces and tabs without crossing a line
// break. Tabs here are accepted: they are only illegal as leading
// indentation (see skipIndentSpaces).
func (sc *Scanner) skipInlineSpaces() {
	for {
		r := sc.src.peek()
		if r == ' ' || r == '\t' {
			sc.src.advance()
			continue
		}
		break
	}
}

// skipBlankAndCommentLines consumes leading indentation, blank lines, and
// full-line or trailing comments, leaving the cursor at the first
// meaningful character of a line (or at end of input).
func (sc *Scanner) skipBlankAndCommentLines() error {
	for {
		if sc.lineStart {
			if err := sc.skipIndentSpaces(); err != nil {
				return err
			}
		}
		r := sc.src.peek()
		if r == '#' {
			sc.skipToEOL()
			r = sc.src.peek()
		}
		if r == '\n' {
			sc.src.advance()
			sc.lineStart = true
			continue
		}
		if r != runeEOF {
			sc.lineStart = false
		}
		return nil
	}
}

// skipIndentSpaces consumes leading ASCII spaces at the start of a line. A
// tab encountered before any non-whitespace content is a hard error.
func (sc *Scanner) skipIndentSpaces() error {
	for {
		r := sc.src.peek()
		switch r {
		case ' ':
			sc.src.advance()
		case '\t':
			return sc.errorf(sc.src.mark(), "found a tab character where an indentation space was expected")
		default:
			return nil
		}
	}
}

func (sc *Scanner) skipToEOL() {
	for {
		r := sc.src.peek()
		if r == runeEOF || r == '\n' {
			return
		}
		sc.src.advance()
	}
}

// unrollIndent pops indentation levels strictly greater than col, emitting
// one BlockEnd token per popped level.
func (sc *Scanner) unrollIndent(col int, pos Position) {
	for sc.indents[len(sc.indents)-1] > col {
		sc.indents = sc.indents[:len(sc.indents)-1]
		sc.enqueue(Token{Kind: TokenBlockEnd, Start: pos, End: pos})
	}
}

// rollIndent pushes col as a new indentation level and emits the given
// BlockStart kind, but only if col is greater than the current top —
// otherwise we are continuing an already-open collection at this level.
func (sc *Scanner) rollIndent(col int, start TokenKind, pos Position) {
	if col <= sc.indents[len(sc.indents)-1] {
		return
	}
	sc.indents = append(sc.indents, col)
	sc.enqueue(Token{Kind: start, Start: pos, End: pos})
}

func (sc *Scanner) atBlockEntryIndicator() bool {
	if sc.src.peek() != '-' {
		return false
	}
	next := sc.src.peekAt(1)
	return next == runeEOF || next == '\n' || next == ' ' || next == '\t'
}

// tryStructuralIndicator recognizes "---", "...", "%YAML", and "%TAG" at
// column 0. Returns ok=false if none match, leaving the cursor untouched.
func (sc *Scanner) tryStructuralIndicator(start Position) (bool, error) {
	if sc.matchesDocMarker("---") {
		sc.unrollIndent(-1, start)
		sc.src.skip(3)
		sc.enqueue(Token{Kind: TokenDocumentStart, Start: start, End: sc.src.mark()})
		sc.skipInlineSpaces()
		return true, nil
	}
	if sc.matchesDocMarker("...") {
		sc.unrollIndent(-1, start)
		sc.src.skip(3)
		sc.enqueue(Token{Kind: TokenDocumentEnd, Start: start, End: sc.src.mark()})
		sc.skipInlineSpaces()
		return true, nil
	}
	if sc.src.peek() == '%' {
		return sc.scanDirective(start)
	}
	return false, nil
}

// matchesDocMarker reports whether the upcoming runes are exactly lit
// ("---" or "...") followed by whitespace, a comment, a line break, or EOF —
// never by further non-space text, so "----" and "---x" are not markers.
func (sc *Scanner) matchesDocMarker(lit string) bool {
	for i, want := range lit {
		if sc.src.peekAt(i) != want {
			return false
		}
	}
	after := sc.src.peekAt(len(lit))
	return after == runeEOF || after == '\n' || after == ' ' || after == '\t' || after == '#'
}

func (sc *Scanner) scanDirective(start Position) (bool, error) {
	name := sc.scanDirectiveName()
	switch name {
	case "YAML":
		sc.skipInlineSpaces()
		major, minor, err := sc.scanVersionNumber(start)
		if err != nil {
			return false, err
		}
		sc.skipToEOL()
		sc.enqueue(Token{Kind: TokenVersionDirective, Start: start, End: sc.src.mark(), Major: major, Minor: minor})
		return true, nil
	case "TAG":
		sc.skipInlineSpaces()
		handle := sc.scanDirectiveToken()
		sc.skipInlineSpaces()
		prefix := sc.scanDirectiveToken()
		sc.skipToEOL()
		sc.enqueue(Token{Kind: TokenTagDirective, Start: start, End: sc.src.mark(), Handle: handle, Prefix: prefix})
		return true, nil
	default:
		return false, sc.errorf(start, "found unknown directive name %q", name)
	}
}

func (sc *Scanner) scanDirectiveName() string {
	sc.src.advance() // '%'
	var b strings.Builder
	for {
		r := sc.src.peek()
		if r == runeEOF || r == ' ' || r == '\t' || r == '\n' {
			break
		}
		b.WriteRune(r)
		sc.src.advance()
	}
	return b.String()
}

func (sc *Scanner) scanDirectiveToken() string {
	var b strings.Builder
	for {
		r := sc.src.peek()
		if r == runeEOF || r == ' ' || r == '\t' || r == '\n' {
			break
		}
		b.WriteRune(r)
		sc.src.advance()
	}
	return b.String()
}

func (sc *Scanner) scanVersionNumber(start Position) (int, int, error) {
	s := sc.scanDirectiveToken()
	parts := strings.SplitN(s, ".", 2)
	if len(parts) != 2 {
		return 0, 0, sc.errorf(start, "malformed %%YAML version directive %q", s)
	}
	major, minor := 0, 0
	if _, err := fmt.Sscanf(parts[0], "%d", &major); err != nil {
		return 0, 0, sc.errorf(start, "malformed %%YAML version directive %q", s)
	}
	if _, err := fmt.Sscanf(parts[1], "%d", &minor); err != nil {
		return 0, 0, sc.errorf(start, "malformed %%YAML version directive %q", s)
	}
	return major, minor, nil
}

// scanNodeContent scans a scalar at the current position. If it is
// immediately followed by ':' and whitespace/EOL, it is a simple key: a
// Key token, the scalar, and a Value token are enqueued (rolling in a
// BlockMappingStart first if this column opens a new level). Otherwise the
// scalar is enqueued alone, in value position.
func (sc *Scanner) scanNodeContent(col int, start Position) error {
	tok, isKey, err := sc.scanScalarOrKey(start)
	if err != nil {
		return err
	}
	if isKey {
		sc.rollIndent(col, TokenBlockMappingStart, start)
		sc.enqueue(Token{Kind: TokenKey, Start: start, End: start})
		sc.enqueue(tok)
		valuePos := sc.src.mark()
		sc.src.advance() // ':'
		sc.enqueue(Token{Kind: TokenValue, Start: valuePos, End: sc.src.mark()})
		sc.skipInlineSpaces()
		return nil
	}
	sc.enqueue(tok)
	return nil
}
