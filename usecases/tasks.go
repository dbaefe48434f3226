package usecases

import (
	"strings"
	"time"

	"kanban-server/apperrors"
	"kanban-server/entities"
	"kanban-server/repositories"
)

type CreateTaskRequest struct {
	Title       string              `json:"title"`
	Description string              `json:"description"`
	Status      entities.TaskStatus `json:"status"`
	DueDate     *time.Time          `json:"due_date"`
}

type UpdateTaskRequest struct {
	Title       string              `json:"title"`
	Description string              `json:"description"`
	Status      entities.TaskStatus `json:"status"`
	DueDate     *time.Time          `json:"due_date"`
}

type MoveTaskRequest struct {
	NewStatus entities.TaskStatus `json:"new_status"`
	NewOrder  *int                `json:"new_order"`
}

// TaskFilter narrows a listing. Status takes precedence over the search term
// when both are present.
type TaskFilter struct {
	Status *entities.TaskStatus
	Search string
}

type TaskUseCase struct {
	TaskRepo repositories.TaskRepository
	UserRepo repositories.UserRepository
}

func NewTaskUseCase(taskRepo repositories.TaskRepository, userRepo repositories.UserRepository) *TaskUseCase {
	return &TaskUseCase{TaskRepo: taskRepo, UserRepo: userRepo}
}

// Create persists a new task for userID. The owner must exist; new tasks
// always start at order 0.
func (uc *TaskUseCase) Create(userID uint, req CreateTaskRequest) (*TaskResponse, error) {
	if err := validateTaskFields(req.Title, req.Description, req.Status); err != nil {
		return nil, err
	}

	if _, err := uc.UserRepo.GetByID(userID); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	task := &entities.Task{
		Title:       req.Title,
		Description: req.Description,
		Status:      req.Status,
		DueDate:     req.DueDate,
		UserID:      userID,
		CreatedAt:   now,
		UpdatedAt:   now,
		SortOrder:   0,
	}

	if err := uc.TaskRepo.Create(task); err != nil {
		return nil, err
	}

	resp := toTaskResponse(task, now)
	return &resp, nil
}

// List returns the caller's tasks. A status filter takes priority over a
// search term; with neither, every task comes back.
func (uc *TaskUseCase) List(userID uint, filter *TaskFilter) ([]TaskResponse, error) {
	var (
		tasks []entities.Task
		err   error
	)

	switch {
	case filter != nil && filter.Status != nil:
		tasks, err = uc.TaskRepo.ListByUserAndStatus(userID, *filter.Status)
	case filter != nil && strings.TrimSpace(filter.Search) != "":
		tasks, err = uc.TaskRepo.ListWithFilter(userID, strings.TrimSpace(filter.Search))
	default:
		tasks, err = uc.TaskRepo.ListByUser(userID)
	}
	if err != nil {
		return nil, err
	}

	return toTaskResponses(tasks, time.Now().UTC()), nil
}

// Get returns a single task of the caller.
func (uc *TaskUseCase) Get(userID, taskID uint) (*TaskResponse, error) {
	task, err := uc.ownedTask(userID, taskID, "view")
	if err != nil {
		return nil, err
	}
	resp := toTaskResponse(task, time.Now().UTC())
	return &resp, nil
}

// Board fetches every task of the caller and buckets them by status.
func (uc *TaskUseCase) Board(userID uint) (*BoardResponse, error) {
	tasks, err := uc.TaskRepo.ListByUser(userID)
	if err != nil {
		return nil, err
	}

	responses := toTaskResponses(tasks, time.Now().UTC())
	board := &BoardResponse{
		ToDo:       []TaskResponse{},
		InProgress: []TaskResponse{},
		Done:       []TaskResponse{},
		TotalCount: len(responses),
	}

	for _, t := range responses {
		switch t.Status {
		case entities.StatusToDo:
			board.ToDo = append(board.ToDo, t)
		case entities.StatusInProgress:
			board.InProgress = append(board.InProgress, t)
		case entities.StatusDone:
			board.Done = append(board.Done, t)
		}
		if t.Overdue {
			board.OverdueCount++
		}
	}

	return board, nil
}

// Update overwrites the mutable fields of the caller's task.
func (uc *TaskUseCase) Update(userID, taskID uint, req UpdateTaskRequest) (*TaskResponse, error) {
	if err := validateTaskFields(req.Title, req.Description, req.Status); err != nil {
		return nil, err
	}

	task, err := uc.ownedTask(userID, taskID, "update")
	if err != nil {
		return nil, err
	}

	task.Title = req.Title
	task.Description = req.Description
	task.Status = req.Status
	task.DueDate = req.DueDate
	task.UpdatedAt = time.Now().UTC()

	if err := uc.TaskRepo.Update(task); err != nil {
		return nil, err
	}

	resp := toTaskResponse(task, time.Now().UTC())
	return &resp, nil
}

// Move puts the task into the target column. The status is applied even when
// it matches the current one; the order changes only when supplied.
func (uc *TaskUseCase) Move(userID, taskID uint, req MoveTaskRequest) (*TaskResponse, error) {
	if !req.NewStatus.Valid() {
		return nil, apperrors.NewValidation("status must be one of To Do, In Progress, Done")
	}

	task, err := uc.ownedTask(userID, taskID, "move")
	if err != nil {
		return nil, err
	}

	task.Status = req.NewStatus
	if req.NewOrder != nil {
		task.SortOrder = *req.NewOrder
	}
	task.UpdatedAt = time.Now().UTC()

	if err := uc.TaskRepo.Update(task); err != nil {
		return nil, err
	}

	resp := toTaskResponse(task, time.Now().UTC())
	return &resp, nil
}

// Delete removes the caller's task and reports success.
func (uc *TaskUseCase) Delete(userID, taskID uint) (bool, error) {
	if _, err := uc.ownedTask(userID, taskID, "delete"); err != nil {
		return false, err
	}

	if err := uc.TaskRepo.Delete(taskID); err != nil {
		return false, err
	}
	return true, nil
}

// ownedTask loads the task and enforces ownership: absent tasks are a
// not-found failure, someone else's tasks a forbidden one.
func (uc *TaskUseCase) ownedTask(userID, taskID uint, action string) (*entities.Task, error) {
	task, err := uc.TaskRepo.GetByID(taskID)
	if err != nil {
		return nil, err
	}
	if task.UserID != userID {
		return nil, &apperrors.ForbiddenError{Message: "you do not have permission to " + action + " this task"}
	}
	return task, nil
}

func validateTaskFields(title, description string, status entities.TaskStatus) error {
	var violations []string

	if strings.TrimSpace(title) == "" {
		violations = append(violations, "title is required")
	} else if len(title) > 200 {
		violations = append(violations, "title must be at most 200 characters")
	}

	if len(description) > 1000 {
		violations = append(violations, "description must be at most 1000 characters")
	}

	if !status.Valid() {
		violations = append(violations, "status must be one of To Do, In Progress, Done")
	}

	if len(violations) > 0 {
		return apperrors.NewValidation(violations...)
	}
	return nil
}
