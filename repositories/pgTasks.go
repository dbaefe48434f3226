package repositories

import (
	"errors"
	"time"

	"kanban-server/apperrors"
	"kanban-server/db"
	"kanban-server/entities"

	"gorm.io/gorm"
)

// createRetries bounds the automatic retry of the task insert when the
// connection drops mid-transaction.
const createRetries = 3

type taskPgRepository struct {
	db db.Database
}

func NewTaskPgRepository(database db.Database) TaskRepository {
	return &taskPgRepository{db: database}
}

// Create inserts the task inside a transaction and retries a bounded number
// of times on transient connection failures.
func (r *taskPgRepository) Create(task *entities.Task) error {
	var err error
	for attempt := 0; attempt < createRetries; attempt++ {
		err = r.db.GetDB().Transaction(func(tx *gorm.DB) error {
			return tx.Create(task).Error
		})
		if err == nil {
			return nil
		}
		if !transient(err) {
			break
		}
		time.Sleep(time.Duration(attempt+1) * 100 * time.Millisecond)
	}
	return apperrors.Persistence("create task", err)
}

// transient reports whether the error looks like a dropped connection worth
// retrying rather than a constraint or logic failure.
func transient(err error) bool {
	return errors.Is(err, gorm.ErrInvalidTransaction) || errors.Is(err, gorm.ErrInvalidDB)
}

func (r *taskPgRepository) GetByID(id uint) (*entities.Task, error) {
	var task entities.Task
	err := r.db.GetDB().First(&task, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTaskNotFound
		}
		return nil, apperrors.Persistence("get task by id", err)
	}
	return &task, nil
}

func (r *taskPgRepository) Update(task *entities.Task) error {
	if err := r.db.GetDB().Save(task).Error; err != nil {
		return apperrors.Persistence("update task", err)
	}
	return nil
}

func (r *taskPgRepository) Delete(id uint) error {
	if err := r.db.GetDB().Delete(&entities.Task{}, id).Error; err != nil {
		return apperrors.Persistence("delete task", err)
	}
	return nil
}

func (r *taskPgRepository) ListByUser(userID uint) ([]entities.Task, error) {
	var tasks []entities.Task
	err := r.db.GetDB().
		Where("user_id = ?", userID).
		Order("sort_order asc").
		Order("created_at asc").
		Find(&tasks).Error
	if err != nil {
		return nil, apperrors.Persistence("list tasks", err)
	}
	return tasks, nil
}

func (r *taskPgRepository) ListByUserAndStatus(userID uint, status entities.TaskStatus) ([]entities.Task, error) {
	var tasks []entities.Task
	err := r.db.GetDB().
		Where("user_id = ? AND status = ?", userID, status).
		Order("sort_order asc").
		Order("created_at asc").
		Find(&tasks).Error
	if err != nil {
		return nil, apperrors.Persistence("list tasks by status", err)
	}
	return tasks, nil
}

// ListWithFilter matches term against title and description. The search path
// sorts by status first, unlike the other listings.
func (r *taskPgRepository) ListWithFilter(userID uint, term string) ([]entities.Task, error) {
	query := r.db.GetDB().Where("user_id = ?", userID)
	if term != "" {
		like := "%" + term + "%"
		query = query.Where("title LIKE ? OR description LIKE ?", like, like)
	}

	var tasks []entities.Task
	err := query.
		Order("status asc").
		Order("sort_order asc").
		Order("created_at asc").
		Find(&tasks).Error
	if err != nil {
		return nil, apperrors.Persistence("filter tasks", err)
	}
	return tasks, nil
}

func (r *taskPgRepository) Exists(id uint) (bool, error) {
	var count int64
	err := r.db.GetDB().Model(&entities.Task{}).Where("id = ?", id).Count(&count).Error
	if err != nil {
		return false, apperrors.Persistence("check task", err)
	}
	return count > 0, nil
}

func (r *taskPgRepository) UserOwnsTask(userID, taskID uint) (bool, error) {
	var count int64
	err := r.db.GetDB().Model(&entities.Task{}).
		Where("id = ? AND user_id = ?", taskID, userID).
		Count(&count).Error
	if err != nil {
		return false, apperrors.Persistence("check task owner", err)
	}
	return count > 0, nil
}
