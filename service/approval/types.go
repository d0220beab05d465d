package approval

import (
	"fmt"
	"strings"
	"time"
)

// Request is the subject of an approval chain.
type Request struct {
	ID          string    `json:"id" yaml:"id"`
	Code        string    `json:"code,omitempty" yaml:"code,omitempty"`
	Description string    `json:"description,omitempty" yaml:"description,omitempty"`
	Type        string    `json:"type,omitempty" yaml:"type,omitempty"`
	Magnitude   int       `json:"magnitude" yaml:"magnitude"` // e.g. days of leave requested
	Approved    bool      `json:"approved" yaml:"approved"`
	ApprovedBy  string    `json:"approvedBy,omitempty" yaml:"approvedBy,omitempty"`
	CreatedAt   time.Time `json:"createdAt" yaml:"createdAt"`
}

// Reset clears the decision so that the request can be dispatched again.
func (r *Request) Reset() {
	r.Approved = false
	r.ApprovedBy = ""
}

// State is the dispatch state of a request.
type State int

const (
	StatePending State = iota
	StateApproved
	StateExhausted
)

var stateNames = [...]string{"pending", "approved", "exhausted"}

func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return fmt.Sprintf("State(%d)", int(s))
	}
	return stateNames[s]
}

// Terminal reports whether no further dispatch changes the state.
func (s State) Terminal() bool { return s == StateApproved || s == StateExhausted }

// MarshalText encodes the state name.
func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText decodes a state name.
func (s *State) UnmarshalText(text []byte) error {
	name := strings.ToLower(string(text))
	for i, candidate := range stateNames {
		if candidate == name {
			*s = State(i)
			return nil
		}
	}
	return fmt.Errorf("unknown approval state: %q", text)
}

// Outcome records how a dispatch ended.
type Outcome struct {
	RequestID string    `json:"requestId"`
	State     State     `json:"state"`
	Handler   string    `json:"handler,omitempty"` // accepting handler
	Visited   []string  `json:"visited,omitempty"` // handlers evaluated, in order
	DecidedAt time.Time `json:"decidedAt"`
}

// Event topics published by the approval ledger.
const (
	TopicRequestApproved  = "request.approved"
	TopicRequestExhausted = "request.exhausted"
)

// Event envelope published after each dispatch.
type Event struct {
	Topic   string            `json:"topic"`
	Request *Request          `json:"request"`
	Outcome *Outcome          `json:"outcome"`
	Headers map[string]string `json:"headers,omitempty"`
}
