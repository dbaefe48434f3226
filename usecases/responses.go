package usecases

import (
	"time"

	"kanban-server/entities"
)

// UserResponse is the public view of a user. The password hash never leaves
// the use-case layer.
type UserResponse struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

func toUserResponse(user *entities.User) UserResponse {
	return UserResponse{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
	}
}

// TaskResponse is the public view of a task, including the derived status
// label and overdue flag.
type TaskResponse struct {
	ID          uint                `json:"id"`
	Title       string              `json:"title"`
	Description string              `json:"description"`
	Status      entities.TaskStatus `json:"status"`
	StatusLabel string              `json:"status_label"`
	DueDate     *time.Time          `json:"due_date"`
	UserID      uint                `json:"user_id"`
	CreatedAt   time.Time           `json:"created_at"`
	UpdatedAt   time.Time           `json:"updated_at"`
	Order       int                 `json:"order"`
	Overdue     bool                `json:"overdue"`
}

func toTaskResponse(task *entities.Task, now time.Time) TaskResponse {
	return TaskResponse{
		ID:          task.ID,
		Title:       task.Title,
		Description: task.Description,
		Status:      task.Status,
		StatusLabel: task.Status.Label(),
		DueDate:     task.DueDate,
		UserID:      task.UserID,
		CreatedAt:   task.CreatedAt,
		UpdatedAt:   task.UpdatedAt,
		Order:       task.SortOrder,
		Overdue:     task.Overdue(now),
	}
}

func toTaskResponses(tasks []entities.Task, now time.Time) []TaskResponse {
	out := make([]TaskResponse, 0, len(tasks))
	for i := range tasks {
		out = append(out, toTaskResponse(&tasks[i], now))
	}
	return out
}

// BoardResponse groups a user's tasks into the three kanban columns.
type BoardResponse struct {
	ToDo         []TaskResponse `json:"to_do"`
	InProgress   []TaskResponse `json:"in_progress"`
	Done         []TaskResponse `json:"done"`
	TotalCount   int            `json:"total_count"`
	OverdueCount int            `json:"overdue_count"`
}

// LoginResponse carries the session token, its expiration and the user
// summary.
type LoginResponse struct {
	Token          string       `json:"token"`
	TokenExpiresAt time.Time    `json:"token_expires_at"`
	User           UserResponse `json:"user"`
}
