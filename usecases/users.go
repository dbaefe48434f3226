package usecases

import (
	"log"
	"net/mail"
	"strings"
	"time"

	"kanban-server/apperrors"
	"kanban-server/entities"
	"kanban-server/repositories"
	"kanban-server/services"
)

type CreateUserRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type UserUseCase struct {
	UserRepo repositories.UserRepository
	Hasher   services.PasswordHasher
}

func NewUserUseCase(userRepo repositories.UserRepository, hasher services.PasswordHasher) *UserUseCase {
	return &UserUseCase{UserRepo: userRepo, Hasher: hasher}
}

// Create registers a new account. All field rules are checked up front and
// reported together; the uniqueness check runs afterwards and fails with a
// conflict, not a validation error.
func (uc *UserUseCase) Create(req CreateUserRequest) (*UserResponse, error) {
	if err := validateNewUser(req); err != nil {
		return nil, err
	}

	taken, err := uc.UserRepo.EmailExists(req.Email)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, &apperrors.ConflictError{Message: "email already registered"}
	}

	hash, err := uc.Hasher.Hash(req.Password)
	if err != nil {
		return nil, apperrors.Persistence("hash password", err)
	}

	user := &entities.User{
		Name:         strings.TrimSpace(req.Name),
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
		UpdatedAt:    time.Now().UTC(),
	}

	if err := uc.UserRepo.Create(user); err != nil {
		return nil, err
	}

	log.Printf("user created: %d (%s)", user.ID, user.Email)
	resp := toUserResponse(user)
	return &resp, nil
}

func validateNewUser(req CreateUserRequest) error {
	var violations []string

	email := strings.TrimSpace(req.Email)
	if email == "" {
		violations = append(violations, "email is required")
	} else if _, err := mail.ParseAddress(email); err != nil {
		violations = append(violations, "email must be a valid address")
	}

	if req.Password == "" {
		violations = append(violations, "password is required")
	} else if len(req.Password) < 6 {
		violations = append(violations, "password must be at least 6 characters")
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		violations = append(violations, "name is required")
	} else if len(name) < 2 {
		violations = append(violations, "name must be at least 2 characters")
	}

	if len(violations) > 0 {
		return apperrors.NewValidation(violations...)
	}
	return nil
}
