package repositories

import (
	"errors"
	"strings"

	"kanban-server/apperrors"
	"kanban-server/db"
	"kanban-server/entities"

	"gorm.io/gorm"
)

type userPgRepository struct {
	db db.Database
}

func NewUserPgRepository(database db.Database) UserRepository {
	return &userPgRepository{db: database}
}

func (r *userPgRepository) Create(user *entities.User) error {
	user.Email = strings.ToLower(user.Email)
	if err := r.db.GetDB().Create(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return &apperrors.ConflictError{Message: "email already registered"}
		}
		return apperrors.Persistence("create user", err)
	}
	return nil
}

func (r *userPgRepository) GetByID(id uint) (*entities.User, error) {
	var user entities.User
	err := r.db.GetDB().First(&user, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.Persistence("get user by id", err)
	}
	return &user, nil
}

func (r *userPgRepository) GetByEmail(email string) (*entities.User, error) {
	var user entities.User
	err := r.db.GetDB().Where("LOWER(email) = ?", strings.ToLower(email)).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.Persistence("get user by email", err)
	}
	return &user, nil
}

func (r *userPgRepository) GetAll() ([]entities.User, error) {
	var users []entities.User
	if err := r.db.GetDB().Find(&users).Error; err != nil {
		return nil, apperrors.Persistence("list users", err)
	}
	return users, nil
}

func (r *userPgRepository) Update(user *entities.User) error {
	user.Email = strings.ToLower(user.Email)
	if err := r.db.GetDB().Save(user).Error; err != nil {
		return apperrors.Persistence("update user", err)
	}
	return nil
}

func (r *userPgRepository) Delete(id uint) error {
	if err := r.db.GetDB().Delete(&entities.User{}, id).Error; err != nil {
		return apperrors.Persistence("delete user", err)
	}
	return nil
}

func (r *userPgRepository) EmailExists(email string) (bool, error) {
	var count int64
	err := r.db.GetDB().Model(&entities.User{}).
		Where("LOWER(email) = ?", strings.ToLower(email)).
		Count(&count).Error
	if err != nil {
		return false, apperrors.Persistence("check email", err)
	}
	return count > 0, nil
}
