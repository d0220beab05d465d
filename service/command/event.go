package command

import "time"

// Event topics published by a Stack with an attached queue.
const (
	TopicExecuted = "command.executed"
	TopicUndone   = "command.undone"
	TopicRedone   = "command.redone"
)

// Event describes a history transition.
type Event struct {
	ID        string    `json:"id"`
	Topic     string    `json:"topic"`
	Command   string    `json:"command"`
	UndoDepth int       `json:"undoDepth"` // history length after the transition
	RedoDepth int       `json:"redoDepth"`
	CreatedAt time.Time `json:"createdAt"`
}
