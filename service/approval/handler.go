package approval

// Handler is one link of a chain. It knows its predicate, not its position.
type Handler struct {
	Name      string // unique key used for linking
	Approver  string // display name of the decision maker
	Predicate Predicate
}

// NewHandler creates a handler.
func NewHandler(name, approver string, predicate Predicate) *Handler {
	return &Handler{Name: name, Approver: approver, Predicate: predicate}
}

// Accepts evaluates the predicate. A handler without one accepts nothing.
func (h *Handler) Accepts(r *Request) (bool, error) {
	if h.Predicate == nil {
		return false, nil
	}
	return h.Predicate(r)
}
