package entities

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTaskStatusLabel(t *testing.T) {
	assert.Equal(t, "To Do", StatusToDo.Label())
	assert.Equal(t, "In Progress", StatusInProgress.Label())
	assert.Equal(t, "Done", StatusDone.Label())
	assert.Equal(t, "Unknown", TaskStatus(7).Label())
}

func TestTaskStatusValid(t *testing.T) {
	assert.True(t, StatusToDo.Valid())
	assert.True(t, StatusInProgress.Valid())
	assert.True(t, StatusDone.Valid())
	assert.False(t, TaskStatus(-1).Valid())
	assert.False(t, TaskStatus(3).Valid())
}

func TestTaskOverdue(t *testing.T) {
	now := time.Now().UTC()
	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)

	tests := []struct {
		name string
		task Task
		want bool
	}{
		{"no due date", Task{Status: StatusToDo}, false},
		{"due in the future", Task{Status: StatusToDo, DueDate: &future}, false},
		{"due in the past, open", Task{Status: StatusToDo, DueDate: &past}, true},
		{"due in the past, in progress", Task{Status: StatusInProgress, DueDate: &past}, true},
		{"due in the past but done", Task{Status: StatusDone, DueDate: &past}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.task.Overdue(now))
		})
	}
}
