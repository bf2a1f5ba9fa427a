package monitor

import (
	"fmt"
	"strings"
	"time"
)

// Category classifies event log entries for coloring.
type Category int

const (
	CategoryInfo Category = iota
	CategorySuccess
	CategoryError
	CategoryStage
	CategorySpeaker
)

// String returns the label shown in the log pane.
func (c Category) String() string {
	switch c {
	case CategoryInfo:
		return "info"
	case CategorySuccess:
		return "ok"
	case CategoryError:
		return "error"
	case CategoryStage:
		return "stage"
	case CategorySpeaker:
		return "speaker"
	default:
		return "info"
	}
}

// Entry is one event log line, timestamped when appended.
type Entry struct {
	At       time.Time
	Category Category
	Message  string
}

// maxLogEntries bounds memory on long sessions; the oldest entries are
// dropped once the cap is reached.
const maxLogEntries = 500

// EventLog is the append-only transition log shown under the card grid.
// It is owned by the model and mutated only from Update.
type EventLog struct {
	entries []Entry
}

// NewEventLog creates an empty log.
func NewEventLog() *EventLog {
	return &EventLog{}
}

// Append adds a formatted entry stamped with the current time.
func (l *EventLog) Append(cat Category, format string, args ...any) {
	l.entries = append(l.entries, Entry{
		At:       time.Now(),
		Category: cat,
		Message:  fmt.Sprintf(format, args...),
	})
	if len(l.entries) > maxLogEntries {
		l.entries = l.entries[len(l.entries)-maxLogEntries:]
	}
}

// Entries returns the log in append order.
func (l *EventLog) Entries() []Entry {
	return l.entries
}

// Len returns the number of entries.
func (l *EventLog) Len() int {
	return len(l.entries)
}

// Clear empties the log.
func (l *EventLog) Clear() {
	l.entries = nil
}

// Contains reports whether any entry's message contains the substring.
func (l *EventLog) Contains(substr string) bool {
	for _, e := range l.entries {
		if strings.Contains(e.Message, substr) {
			return true
		}
	}
	return false
}
