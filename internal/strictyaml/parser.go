// Copyright 2025 The strictyaml Project Contributors
// SPDX-License-Identifier: MIT

package strictyaml

// parseState is one state in the parser's pushdown automaton.
type parseState int8

const (
	stateStreamStart parseState = iota
	stateImplicitDocumentStart
	stateDocumentStart
	stateDocumentContent
	stateDocumentEnd
	stateBlockNode
	stateBlockSequenceFirstEntry
	stateBlockSequenceEntry
	stateIndentlessSequenceEntry
	stateBlockMappingFirstKey
	stateBlockMappingKey
	stateBlockMappingValue
	stateEnd
)

// Parser consumes a Scanner's token stream through an explicit pushdown
// state machine and emits a flat event stream: stream/document/mapping/
// sequence/scalar boundaries. It mirrors the teacher's libyaml-derived
// Parse/stateMachine split, narrowed to the strict dialect's grammar (no
// flow collections, no anchors/aliases/tags).
type Parser struct {
	sc *Scanner

	state  parseState
	states []parseState

	// peeked holds a token already read from the scanner but not yet
	// consumed by the state machine, giving the parser one token of
	// lookahead over the scanner's Next.
	peeked    *Token
	peekedErr error

	// pendingEvent/hasPending implement the parser-level "peek then
	// next" the loader relies on for document boundary lookahead.
	pendingEvent Event
	hasPending   bool

	done     bool
	warnings []*Warning
}

// NewParser creates a Parser reading tokens from sc.
func NewParser(sc *Scanner) *Parser {
	return &Parser{sc: sc, state: stateStreamStart}
}

// Warnings returns non-fatal warnings accumulated so far (currently just
// incompatible %YAML version directives).
func (p *Parser) Warnings() []*Warning { return p.warnings }

func (p *Parser) peekToken() (Token, error) {
	if p.peeked == nil && p.peekedErr == nil {
		tok, err := p.sc.Next()
		if err != nil {
			p.peekedErr = err
		} else {
			p.peeked = &tok
		}
	}
	if p.peekedErr != nil {
		return Token{}, p.peekedErr
	}
	return *p.peeked, nil
}

func (p *Parser) skipToken() {
	p.peeked = nil
}

func (p *Parser) push(s parseState) { p.states = append(p.states, s) }

func (p *Parser) pop() parseState {
	s := p.states[len(p.states)-1]
	p.states = p.states[:len(p.states)-1]
	return s
}

// Peek returns the next event without consuming it.
func (p *Parser) Peek() (Event, error) {
	if p.hasPending {
		return p.pendingEvent, nil
	}
	ev, err := p.Next()
	if err != nil {
		return Event{}, err
	}
	p.pendingEvent = ev
	p.hasPending = true
	return ev, nil
}

// Next returns the next event, advancing the state machine.
func (p *Parser) Next() (Event, error) {
	if p.hasPending {
		p.hasPending = false
		return p.pendingEvent, nil
	}
	if p.done {
		return Event{}, &Error{Message: "parser called after end of stream"}
	}
	ev, err := p.dispatch()
	if err != nil {
		p.done = true
		return Event{}, err
	}
	if p.state == stateEnd {
		p.done = true
	}
	return ev, nil
}

func (p *Parser) errorf(pos Position, context string, problem string) error {
	msg := problem
	if context != "" {
		msg = context + ", " + problem
	}
	return &Error{Mark: pos, Message: msg}
}

func (p *Parser) dispatch() (Event, error) {
	switch p.state {
	case stateStreamStart:
		return p.parseStreamStart()
	case stateImplicitDocumentStart:
		return p.parseDocumentStart(true)
	case stateDocumentStart:
		return p.parseDocumentStart(false)
	case stateDocumentContent:
		return p.parseDocumentContent()
	case stateDocumentEnd:
		return p.parseDocumentEnd()
	case stateBlockNode:
		return p.parseNode()
	case stateBlockSequenceFirstEntry:
		return p.parseBlockSequenceEntry(true)
	case stateBlockSequenceEntry:
		return p.parseBlockSequenceEntry(false)
	case stateIndentlessSequenceEntry:
		return p.parseIndentlessSequenceEntry()
	case stateBlockMappingFirstKey:
		return p.parseBlockMappingKey(true)
	case stateBlockMappingKey:
		return p.parseBlockMappingKey(false)
	case stateBlockMappingValue:
		return p.parseBlockMappingValue()
	default:
		return Event{}, &Error{Message: "parser reached an invalid internal state"}
	}
}

func (p *Parser) parseStreamStart() (Event, error) {
	tok, err := p.peekToken()
	if err != nil {
		return Event{}, err
	}
	if tok.Kind != TokenStreamStart {
		return Event{}, p.errorf(tok.Start, "", "did not find expected <stream-start>")
	}
	p.state = stateImplicitDocumentStart
	p.skipToken()
	return Event{Kind: EventStreamStart, Start: tok.Start, End: tok.End}, nil
}

// consumeDirectives eats any run of version/tag directive tokens, recording
// an incompatible-version warning rather than failing.
func (p *Parser) consumeDirectives() error {
	for {
		tok, err := p.peekToken()
		if err != nil {
			return err
		}
		switch tok.Kind {
		case TokenVersionDirective:
			if tok.Major != 1 {
				p.warnings = append(p.warnings, &Warning{
					Mark:    tok.Start,
					Message: "found incompatible YAML document",
				})
			}
			p.skipToken()
		case TokenTagDirective:
			p.skipToken()
		default:
			return nil
		}
	}
}

func (p *Parser) parseDocumentStart(implicit bool) (Event, error) {
	if err := p.consumeDirectives(); err != nil {
		return Event{}, err
	}
	tok, err := p.peekToken()
	if err != nil {
		return Event{}, err
	}

	if implicit && tok.Kind == TokenStreamEnd {
		p.state = stateEnd
		p.skipToken()
		return Event{Kind: EventStreamEnd, Start: tok.Start, End: tok.End}, nil
	}

	if tok.Kind == TokenDocumentStart {
		p.push(stateDocumentEnd)
		p.state = stateDocumentContent
		p.skipToken()
		return Event{Kind: EventDocumentStart, Start: tok.Start, End: tok.End}, nil
	}

	if !implicit {
		return Event{}, p.errorf(tok.Start, "while parsing a document", "did not find expected <document start>")
	}

	p.push(stateDocumentEnd)
	p.state = stateBlockNode
	return Event{Kind: EventDocumentStart, Start: tok.Start, End: tok.Start}, nil
}

func (p *Parser) parseDocumentContent() (Event, error) {
	tok, err := p.peekToken()
	if err != nil {
		return Event{}, err
	}
	switch tok.Kind {
	case TokenVersionDirective, TokenTagDirective, TokenDocumentStart, TokenDocumentEnd, TokenStreamEnd:
		p.state = p.pop()
		return Event{Kind: EventScalar, Start: tok.Start, End: tok.Start, Style: StylePlain}, nil
	default:
		p.state = stateBlockNode
		return p.parseNode()
	}
}

func (p *Parser) parseDocumentEnd() (Event, error) {
	tok, err := p.peekToken()
	if err != nil {
		return Event{}, err
	}
	start := tok.Start
	end := tok.Start
	if tok.Kind == TokenDocumentEnd {
		end = tok.End
		p.skipToken()
	}
	p.state = stateImplicitDocumentStart
	return Event{Kind: EventDocumentEnd, Start: start, End: end}, nil
}

// parseNode parses whatever the current position holds as a node: a
// collection start or a bare scalar. It pops the continuation state for a
// scalar or an empty node; the two collection starts and the block entry
// that opens an indentless sequence switch to the collection's entry state
// instead, leaving the continuation on the stack until the collection ends.
func (p *Parser) parseNode() (Event, error) {
	tok, err := p.peekToken()
	if err != nil {
		return Event{}, err
	}
	switch tok.Kind {
	case TokenBlockSequenceStart:
		p.state = stateBlockSequenceFirstEntry
		p.skipToken()
		return Event{Kind: EventSequenceStart, Start: tok.Start, End: tok.End}, nil
	case TokenBlockMappingStart:
		p.state = stateBlockMappingFirstKey
		p.skipToken()
		return Event{Kind: EventMappingStart, Start: tok.Start, End: tok.End}, nil
	case TokenBlockEntry:
		// an indentless sequence begins directly with a block entry, with
		// no BlockSequenceStart token ahead of it (the scanner never rolls
		// an indent level for a sequence continuing its parent's column).
		// The continuation to run once it ends was already pushed by our
		// caller (a mapping key/value handler); we only switch state.
		p.state = stateIndentlessSequenceEntry
		return Event{Kind: EventSequenceStart, Start: tok.Start, End: tok.Start}, nil
	case TokenScalar:
		p.state = p.pop()
		p.skipToken()
		return Event{Kind: EventScalar, Start: tok.Start, End: tok.End, Text: tok.Text, Style: tok.Style}, nil
	default:
		p.state = p.pop()
		return Event{Kind: EventScalar, Start: tok.Start, End: tok.Start, Style: StylePlain}, nil
	}
}

func (p *Parser) parseBlockSequenceEntry(first bool) (Event, error) {
	tok, err := p.peekToken()
	if err != nil {
		return Event{}, err
	}
	if tok.Kind == TokenBlockEntry {
		mark := tok.End
		p.skipToken()
		next, err := p.peekToken()
		if err != nil {
			return Event{}, err
		}
		if next.Kind != TokenBlockEntry && next.Kind != TokenBlockEnd {
			p.push(stateBlockSequenceEntry)
			p.state = stateBlockNode
			return p.parseNode()
		}
		p.state = stateBlockSequenceEntry
		return Event{Kind: EventScalar, Start: mark, End: mark, Style: StylePlain}, nil
	}
	if tok.Kind == TokenBlockEnd {
		p.state = p.pop()
		p.skipToken()
		return Event{Kind: EventSequenceEnd, Start: tok.Start, End: tok.End}, nil
	}
	return Event{}, p.errorf(tok.Start, "while parsing a block collection", "did not find expected '-' indicator")
}

func (p *Parser) parseIndentlessSequenceEntry() (Event, error) {
	tok, err := p.peekToken()
	if err != nil {
		return Event{}, err
	}
	if tok.Kind == TokenBlockEntry {
		mark := tok.End
		p.skipToken()
		next, err := p.peekToken()
		if err != nil {
			return Event{}, err
		}
		if next.Kind != TokenBlockEntry && next.Kind != TokenKey && next.Kind != TokenValue && next.Kind != TokenBlockEnd {
			p.push(stateIndentlessSequenceEntry)
			p.state = stateBlockNode
			return p.parseNode()
		}
		p.state = stateIndentlessSequenceEntry
		return Event{Kind: EventScalar, Start: mark, End: mark, Style: StylePlain}, nil
	}
	p.state = p.pop()
	return Event{Kind: EventSequenceEnd, Start: tok.Start, End: tok.Start}, nil
}

func (p *Parser) parseBlockMappingKey(first bool) (Event, error) {
	tok, err := p.peekToken()
	if err != nil {
		return Event{}, err
	}
	switch tok.Kind {
	case TokenKey:
		mark := tok.End
		p.skipToken()
		next, err := p.peekToken()
		if err != nil {
			return Event{}, err
		}
		if next.Kind != TokenKey && next.Kind != TokenValue && next.Kind != TokenBlockEnd {
			p.push(stateBlockMappingValue)
			p.state = stateBlockNode
			return p.parseNode()
		}
		p.state = stateBlockMappingValue
		return Event{Kind: EventScalar, Start: mark, End: mark, Style: StylePlain}, nil
	case TokenBlockEnd:
		p.state = p.pop()
		p.skipToken()
		return Event{Kind: EventMappingEnd, Start: tok.Start, End: tok.End}, nil
	}
	return Event{}, p.errorf(tok.Start, "while parsing a block mapping", "did not find expected key")
}

func (p *Parser) parseBlockMappingValue() (Event, error) {
	tok, err := p.peekToken()
	if err != nil {
		return Event{}, err
	}
	if tok.Kind == TokenValue {
		mark := tok.End
		p.skipToken()
		next, err := p.peekToken()
		if err != nil {
			return Event{}, err
		}
		if next.Kind != TokenKey && next.Kind != TokenValue && next.Kind != TokenBlockEnd {
			p.push(stateBlockMappingKey)
			p.state = stateBlockNode
			return p.parseNode()
		}
		p.state = stateBlockMappingKey
		return Event{Kind: EventScalar, Start: mark, End: mark, Style: StylePlain}, nil
	}
	p.state = stateBlockMappingKey
	return Event{Kind: EventScalar, Start: tok.Start, End: tok.Start, Style: StylePlain}, nil
}
