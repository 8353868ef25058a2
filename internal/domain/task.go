package domain

// Status represents the workflow state of a task.
type Status string

// The three known task statuses. Documents may carry other status values,
// but those are excluded from statistics and never reported.
const (
	StatusToDo      Status = "to-do"
	StatusOngoing   Status = "ongoing"
	StatusCompleted Status = "completed"
)

// Statuses lists the known statuses in their fixed reporting order.
var Statuses = []Status{StatusToDo, StatusOngoing, StatusCompleted}

// IsValid reports whether s is one of the three known statuses.
func (s Status) IsValid() bool {
	switch s {
	case StatusToDo, StatusOngoing, StatusCompleted:
		return true
	}
	return false
}

// Label returns the human-readable label used in statistics reports.
func (s Status) Label() string {
	switch s {
	case StatusToDo:
		return "To-Do"
	case StatusOngoing:
		return "On Going"
	case StatusCompleted:
		return "Completed"
	}
	return string(s)
}

// Task and user documents are opaque payloads (bson.M). Only the fields
// below are governed by the application; everything else passes through
// the store untouched.
const (
	FieldID          = "_id"
	FieldEmail       = "email"
	FieldAuthor      = "author"
	FieldAuthorEmail = "author.email"
	FieldStatus      = "status"
	FieldCreatedAt   = "created_at"
	FieldUpdatedAt   = "updated_at"
)

// StatusSummary holds per-status task counts for a single owner.
type StatusSummary struct {
	ToDo      int64 `json:"toDo"`
	Ongoing   int64 `json:"ongoing"`
	Completed int64 `json:"completed"`
}

// Total returns the number of tasks counted across the three known statuses.
func (s StatusSummary) Total() int64 {
	return s.ToDo + s.Ongoing + s.Completed
}
