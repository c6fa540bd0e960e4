package board

import "fmt"

const actionLogMaxEntries = 32

// ActionCategory groups action log entries.
type ActionCategory string

const (
	ActionTool   ActionCategory = "tool"
	ActionDrag   ActionCategory = "drag"
	ActionShape  ActionCategory = "shape"
	ActionCancel ActionCategory = "cancel"
	ActionSystem ActionCategory = "system"
)

// ActionEntry is one line in the action log.
type ActionEntry struct {
	Seq      int
	Category ActionCategory
	Message  string
}

// String formats the entry as a fixed-width line.
//
//	#007 shape  rect (100,100)->(200,150)
func (e ActionEntry) String() string {
	return fmt.Sprintf("#%03d %-6s %s", e.Seq, e.Category, e.Message)
}

// ActionLog is a ring buffer of the most recent user actions.
type ActionLog struct {
	entries []ActionEntry
	head    int
	count   int
	seq     int
}

// NewActionLog creates an empty log with a fixed capacity.
func NewActionLog() *ActionLog {
	return &ActionLog{entries: make([]ActionEntry, actionLogMaxEntries)}
}

// Add appends an entry, overwriting the oldest when full.
func (al *ActionLog) Add(cat ActionCategory, msg string) {
	al.seq++
	al.entries[al.head] = ActionEntry{Seq: al.seq, Category: cat, Message: msg}
	al.head = (al.head + 1) % actionLogMaxEntries
	if al.count < actionLogMaxEntries {
		al.count++
	}
}

// Recent returns entries oldest first.
func (al *ActionLog) Recent() []ActionEntry {
	out := make([]ActionEntry, al.count)
	for i := 0; i < al.count; i++ {
		idx := (al.head - al.count + i + actionLogMaxEntries) % actionLogMaxEntries
		out[i] = al.entries[idx]
	}
	return out
}

// Last returns the newest entry, if any.
func (al *ActionLog) Last() (ActionEntry, bool) {
	if al.count == 0 {
		return ActionEntry{}, false
	}
	return al.entries[(al.head-1+actionLogMaxEntries)%actionLogMaxEntries], true
}

// Len returns the number of retained entries.
func (al *ActionLog) Len() int { return al.count }
