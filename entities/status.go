package entities

// TaskStatus is the kanban column a task lives in.
type TaskStatus int

const (
	StatusToDo TaskStatus = iota
	StatusInProgress
	StatusDone
)

// Label returns the human-readable column name.
func (s TaskStatus) Label() string {
	switch s {
	case StatusToDo:
		return "To Do"
	case StatusInProgress:
		return "In Progress"
	case StatusDone:
		return "Done"
	default:
		return "Unknown"
	}
}

// Valid reports whether s is one of the three known statuses.
func (s TaskStatus) Valid() bool {
	return s >= StatusToDo && s <= StatusDone
}
