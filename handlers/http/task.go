package httpHandler

import (
	"net/http"
	"strconv"

	"kanban-server/entities"
	"kanban-server/usecases"
	"kanban-server/ws"

	"github.com/gin-gonic/gin"
)

type TaskHandler struct {
	useCase *usecases.TaskUseCase
	hub     *ws.Manager
}

func NewTaskHandler(useCase *usecases.TaskUseCase, hub *ws.Manager) *TaskHandler {
	return &TaskHandler{useCase: useCase, hub: hub}
}

type boardEvent struct {
	Type string      `json:"type"`
	Task interface{} `json:"task,omitempty"`
	ID   uint        `json:"id,omitempty"`
}

// notify pushes a board event to the owner's open connections. Best effort;
// a failed or absent subscriber never fails the request.
func (h *TaskHandler) notify(userID uint, event boardEvent) {
	if h.hub != nil {
		h.hub.Broadcast(userID, event)
	}
}

func taskID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		badRequest(c, "task id must be a positive integer")
		return 0, false
	}
	return uint(id), true
}

// CreateTask handles POST /api/v1/tasks
func (h *TaskHandler) CreateTask(c *gin.Context) {
	var req usecases.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	task, err := h.useCase.Create(CallerID(c), req)
	if err != nil {
		fail(c, err)
		return
	}

	h.notify(CallerID(c), boardEvent{Type: "task_created", Task: task})
	ok(c, http.StatusCreated, task, "task created successfully")
}

// ListTasks handles GET /api/v1/tasks?status=&search=
func (h *TaskHandler) ListTasks(c *gin.Context) {
	filter := &usecases.TaskFilter{Search: c.Query("search")}
	if raw := c.Query("status"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || !entities.TaskStatus(n).Valid() {
			badRequest(c, "status must be 0 (To Do), 1 (In Progress) or 2 (Done)")
			return
		}
		status := entities.TaskStatus(n)
		filter.Status = &status
	}

	tasks, err := h.useCase.List(CallerID(c), filter)
	if err != nil {
		fail(c, err)
		return
	}

	ok(c, http.StatusOK, tasks, "")
}

// GetTask handles GET /api/v1/tasks/:id
func (h *TaskHandler) GetTask(c *gin.Context) {
	id, valid := taskID(c)
	if !valid {
		return
	}

	task, err := h.useCase.Get(CallerID(c), id)
	if err != nil {
		fail(c, err)
		return
	}

	ok(c, http.StatusOK, task, "")
}

// GetBoard handles GET /api/v1/tasks/kanban
func (h *TaskHandler) GetBoard(c *gin.Context) {
	board, err := h.useCase.Board(CallerID(c))
	if err != nil {
		fail(c, err)
		return
	}

	ok(c, http.StatusOK, board, "")
}

// UpdateTask handles PUT /api/v1/tasks/:id
func (h *TaskHandler) UpdateTask(c *gin.Context) {
	id, valid := taskID(c)
	if !valid {
		return
	}

	var req usecases.UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	task, err := h.useCase.Update(CallerID(c), id, req)
	if err != nil {
		fail(c, err)
		return
	}

	h.notify(CallerID(c), boardEvent{Type: "task_updated", Task: task})
	ok(c, http.StatusOK, task, "task updated successfully")
}

// MoveTask handles PATCH /api/v1/tasks/:id/move
func (h *TaskHandler) MoveTask(c *gin.Context) {
	id, valid := taskID(c)
	if !valid {
		return
	}

	var req usecases.MoveTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	task, err := h.useCase.Move(CallerID(c), id, req)
	if err != nil {
		fail(c, err)
		return
	}

	h.notify(CallerID(c), boardEvent{Type: "task_moved", Task: task})
	ok(c, http.StatusOK, task, "task moved successfully")
}

// DeleteTask handles DELETE /api/v1/tasks/:id
func (h *TaskHandler) DeleteTask(c *gin.Context) {
	id, valid := taskID(c)
	if !valid {
		return
	}

	deleted, err := h.useCase.Delete(CallerID(c), id)
	if err != nil {
		fail(c, err)
		return
	}

	h.notify(CallerID(c), boardEvent{Type: "task_deleted", ID: id})
	ok(c, http.StatusOK, gin.H{"deleted": deleted}, "task deleted successfully")
}
