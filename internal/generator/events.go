package generator

import "github.com/meera/gurukul/internal/course"

// EventType tags the three event shapes Generate can yield.
type EventType string

const (
	EventProgress EventType = "progress"
	EventFailure  EventType = "failure"
	EventComplete EventType = "complete"
)

// Event is one element of the progress sequence a generation run yields.
// Failure and Complete are terminal: the channel closes after either.
// Terminal events always report percent 100.
type Event struct {
	Type     EventType        `json:"type"`
	Status   string           `json:"status"`
	Percent  int              `json:"percent"`
	Error    string           `json:"error,omitempty"`
	Document *course.Document `json:"document,omitempty"`
}
