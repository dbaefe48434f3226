package entities

import "time"

// Task is a single card on a user's board. SortOrder positions the task
// inside its column; UserID never changes after creation.
type Task struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	Title       string     `gorm:"type:varchar(200);not null" json:"title"`
	Description string     `gorm:"type:varchar(1000)" json:"description"`
	Status      TaskStatus `gorm:"not null;default:0;index" json:"status"`
	DueDate     *time.Time `json:"due_date"`
	UserID      uint       `gorm:"not null;index" json:"user_id"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	SortOrder   int        `gorm:"not null;default:0" json:"order"`
}

// Overdue reports whether the task's due date has passed without the task
// being done. Computed at read time, never stored.
func (t *Task) Overdue(now time.Time) bool {
	return t.DueDate != nil && t.DueDate.Before(now) && t.Status != StatusDone
}
