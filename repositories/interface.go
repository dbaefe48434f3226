package repositories

import "kanban-server/entities"

type UserRepository interface {
	Create(user *entities.User) error
	GetByID(id uint) (*entities.User, error)
	GetByEmail(email string) (*entities.User, error)
	GetAll() ([]entities.User, error)
	Update(user *entities.User) error
	Delete(id uint) error
	EmailExists(email string) (bool, error)
}

type TaskRepository interface {
	Create(task *entities.Task) error
	GetByID(id uint) (*entities.Task, error)
	Update(task *entities.Task) error
	Delete(id uint) error
	ListByUser(userID uint) ([]entities.Task, error)
	ListByUserAndStatus(userID uint, status entities.TaskStatus) ([]entities.Task, error)
	ListWithFilter(userID uint, term string) ([]entities.Task, error)
	Exists(id uint) (bool, error)
	UserOwnsTask(userID, taskID uint) (bool, error)
}
