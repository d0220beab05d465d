package command

// History is a LIFO of executed commands; the top is the most recent one.
type History struct {
	items []Command
}

// NewHistory creates an empty history.
func NewHistory() *History {
	return &History{}
}

// Push places cmd on top.
func (h *History) Push(cmd Command) {
	h.items = append(h.items, cmd)
}

// Pop removes and returns the top command, or nil when empty.
func (h *History) Pop() Command {
	n := len(h.items)
	if n == 0 {
		return nil
	}
	cmd := h.items[n-1]
	h.items[n-1] = nil
	h.items = h.items[:n-1]
	return cmd
}

// Peek returns the top command without removing it, or nil when empty.
func (h *History) Peek() Command {
	if len(h.items) == 0 {
		return nil
	}
	return h.items[len(h.items)-1]
}

// DropOldest removes the bottom command.
func (h *History) DropOldest() Command {
	if len(h.items) == 0 {
		return nil
	}
	cmd := h.items[0]
	h.items[0] = nil
	h.items = h.items[1:]
	return cmd
}

// Len returns the number of commands.
func (h *History) Len() int { return len(h.items) }

// Clear removes all commands.
func (h *History) Clear() {
	clear(h.items)
	h.items = h.items[:0]
}

// Items returns a copy ordered most-recent-first.
func (h *History) Items() []Command {
	out := make([]Command, len(h.items))
	for i, cmd := range h.items {
		out[len(h.items)-1-i] = cmd
	}
	return out
}
