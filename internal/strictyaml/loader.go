// Copyright 2025 The strictyaml Project Contributors
// SPDX-License-Identifier: MIT

package strictyaml

// Loader drives a Parser and folds its flat event stream into a tree of
// Nodes, enforcing uniqueness of mapping keys along the way.
type Loader struct {
	p *Parser

	// docStack holds in-progress container nodes, outermost first.
	docStack []*Node

	// keyStack holds, for each in-progress Hash on docStack, the pending
	// key: BadValue while a key is expected, or the completed key node
	// once one has arrived and is waiting for its value.
	keyStack []*Node

	started bool
	done    bool
}

// NewLoader creates a Loader reading events from p.
func NewLoader(p *Parser) *Loader {
	return &Loader{p: p}
}

// Warnings returns non-fatal warnings accumulated during parsing.
func (l *Loader) Warnings() []*Warning { return l.p.Warnings() }

// LoadDocument reads and returns the next document in the stream. It
// returns (nil, nil) once the stream is exhausted.
func (l *Loader) LoadDocument() (*Node, error) {
	if !l.started {
		l.started = true
		if err := l.expect(EventStreamStart); err != nil {
			return nil, err
		}
	}
	if l.done {
		return nil, nil
	}

	ev, err := l.p.Peek()
	if err != nil {
		return nil, err
	}
	if ev.Kind == EventStreamEnd {
		l.p.Next()
		l.done = true
		return nil, nil
	}

	if err := l.expect(EventDocumentStart); err != nil {
		return nil, err
	}

	for {
		ev, err := l.p.Next()
		if err != nil {
			return nil, err
		}
		if ev.Kind == EventDocumentEnd {
			return l.finishDocument()
		}
		if err := l.handleEvent(ev); err != nil {
			return nil, err
		}
	}
}

func (l *Loader) expect(kind EventKind) error {
	ev, err := l.p.Next()
	if err != nil {
		return err
	}
	if ev.Kind != kind {
		return &Error{Mark: ev.Start, Message: "unexpected event " + ev.Kind.String() + " while loading document"}
	}
	return nil
}

// finishDocument implements the DocumentEnd rule: an empty doc_stack
// produces a BadValue document; exactly one element becomes the result.
func (l *Loader) finishDocument() (*Node, error) {
	switch len(l.docStack) {
	case 0:
		return BadValue, nil
	case 1:
		doc := l.docStack[0]
		l.docStack = nil
		l.keyStack = nil
		return doc, nil
	default:
		return nil, &Error{Message: "internal error: unbalanced container stack at document end"}
	}
}

func (l *Loader) handleEvent(ev Event) error {
	switch ev.Kind {
	case EventSequenceStart:
		l.openContainer(newArray())
		return nil
	case EventMappingStart:
		l.openContainer(newHash())
		return nil
	case EventSequenceEnd, EventMappingEnd:
		return l.closeContainer(ev.Start)
	case EventScalar:
		return l.insert(newString(ev.Text), ev.Start)
	default:
		return &Error{Mark: ev.Start, Message: "unexpected event " + ev.Kind.String() + " inside document"}
	}
}

// openContainer pushes a fresh empty container (and, for a Hash, a
// BadValue key sentinel). It is not yet inserted anywhere — that happens
// when it closes, via closeContainer — so a composite key or a deeply
// nested value is only ever written into its parent once, fully built.
func (l *Loader) openContainer(node *Node) {
	l.docStack = append(l.docStack, node)
	if node.kind == KindHash {
		l.keyStack = append(l.keyStack, BadValue)
	}
}

// insert implements the scalar case of the insertion rules: if doc_stack
// is empty the node becomes the root, otherwise it is placed into the top
// container.
func (l *Loader) insert(node *Node, pos Position) error {
	if len(l.docStack) == 0 {
		l.docStack = append(l.docStack, node)
		return nil
	}
	top := l.docStack[len(l.docStack)-1]
	return l.place(top, node, pos)
}

// closeContainer pops the just-completed container off docStack (and its
// key sentinel, if it was a Hash) and inserts it into its parent.
func (l *Loader) closeContainer(pos Position) error {
	done := l.docStack[len(l.docStack)-1]
	l.docStack = l.docStack[:len(l.docStack)-1]
	if done.kind == KindHash {
		l.keyStack = l.keyStack[:len(l.keyStack)-1]
	}
	if len(l.docStack) == 0 {
		l.docStack = append(l.docStack, done)
		return nil
	}
	parent := l.docStack[len(l.docStack)-1]
	return l.place(parent, done, pos)
}

// place inserts value into container per the insertion rules: append to an
// Array, or resolve the pending key/value pair of a Hash.
func (l *Loader) place(container, value *Node, pos Position) error {
	switch container.kind {
	case KindArray:
		container.arr = append(container.arr, value)
		return nil
	case KindHash:
		i := len(l.keyStack) - 1
		pending := l.keyStack[i]
		if pending.IsAbsent() {
			l.keyStack[i] = value
			return nil
		}
		if !container.h.set(pending, value) {
			return &Error{Mark: pos, Message: "RepeatedHashKey: mapping key already defined"}
		}
		l.keyStack[i] = BadValue
		return nil
	default:
		return &Error{Mark: pos, Message: "internal error: cannot insert into a non-container node"}
	}
}
