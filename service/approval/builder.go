package approval

import (
	"errors"
	"fmt"
	"log/slog"
)

// Builder assembles handlers and decides their order. Links are recorded by
// name and resolved by Build, so handlers can be added in any order and a
// handler left unlinked is simply skipped.
type Builder struct {
	handlers []*Handler
	index    map[string]int
	links    map[string]string
	head     string
	errs     []error
}

// NewBuilder creates an empty builder.
func NewBuilder() *Builder {
	return &Builder{
		index: make(map[string]int),
		links: make(map[string]string),
	}
}

// Add registers handlers.
func (b *Builder) Add(handlers ...*Handler) *Builder {
	for _, handler := range handlers {
		switch {
		case handler == nil:
			b.errs = append(b.errs, fmt.Errorf("%w: nil handler", ErrMissingPredicate))
		case handler.Name == "":
			b.errs = append(b.errs, fmt.Errorf("%w: approver %q", ErrUnnamedHandler, handler.Approver))
		case handler.Predicate == nil:
			b.errs = append(b.errs, fmt.Errorf("%w: %s", ErrMissingPredicate, handler.Name))
		default:
			if _, ok := b.index[handler.Name]; ok {
				b.errs = append(b.errs, fmt.Errorf("%w: %s", ErrDuplicateHandler, handler.Name))
				continue
			}
			b.index[handler.Name] = len(b.handlers)
			b.handlers = append(b.handlers, handler)
		}
	}
	return b
}

// Head sets the first handler.
func (b *Builder) Head(name string) *Builder {
	b.head = name
	return b
}

// Link makes to the successor of from, replacing any previous link.
func (b *Builder) Link(from, to string) *Builder {
	b.links[from] = to
	return b
}

// Unlink removes from's successor, making it the last link.
func (b *Builder) Unlink(from string) *Builder {
	delete(b.links, from)
	return b
}

// Sequence sets the head to names[0] and links names in order. A name may
// appear once; a repeat is reported by Build as ErrCycle.
func (b *Builder) Sequence(names ...string) *Builder {
	if len(names) == 0 {
		return b
	}
	seen := make(map[string]bool, len(names))
	for _, name := range names {
		if seen[name] {
			b.errs = append(b.errs, fmt.Errorf("%w: %s repeated in sequence", ErrCycle, name))
			return b
		}
		seen[name] = true
	}
	b.head = names[0]
	for i := 0; i+1 < len(names); i++ {
		b.links[names[i]] = names[i+1]
	}
	delete(b.links, names[len(names)-1])
	return b
}

// Build resolves links into a chain.
func (b *Builder) Build(options ...ChainOption) (*Chain, error) {
	if len(b.errs) > 0 {
		return nil, errors.Join(b.errs...)
	}
	chain := &Chain{
		handlers: append([]*Handler(nil), b.handlers...),
		next:     make([]int, len(b.handlers)),
		head:     noSuccessor,
		index:    make(map[string]int, len(b.index)),
		logger:   slog.Default(),
	}
	for name, i := range b.index {
		chain.index[name] = i
		chain.next[i] = noSuccessor
	}
	for _, option := range options {
		option(chain)
	}
	if len(b.handlers) == 0 {
		if b.head != "" {
			return nil, fmt.Errorf("%w: head %s", ErrUnknownHandler, b.head)
		}
		return chain, nil
	}
	if b.head == "" {
		return nil, ErrMissingHead
	}
	head, ok := b.index[b.head]
	if !ok {
		return nil, fmt.Errorf("%w: head %s", ErrUnknownHandler, b.head)
	}
	chain.head = head
	for from, to := range b.links {
		i, ok := b.index[from]
		if !ok {
			return nil, fmt.Errorf("%w: link from %s", ErrUnknownHandler, from)
		}
		j, ok := b.index[to]
		if !ok {
			return nil, fmt.Errorf("%w: link %s -> %s", ErrUnknownHandler, from, to)
		}
		chain.next[i] = j
	}
	if name, ok := findCycle(chain); ok {
		return nil, fmt.Errorf("%w: through %s", ErrCycle, name)
	}
	return chain, nil
}

// findCycle follows links from every handler; a walk longer than the arena
// revisits some handler.
func findCycle(c *Chain) (string, bool) {
	n := len(c.handlers)
	for start := range c.handlers {
		steps := 0
		for i := start; i != noSuccessor; i = c.next[i] {
			if steps > n {
				return c.handlers[start].Name, true
			}
			steps++
		}
	}
	return "", false
}
