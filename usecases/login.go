package usecases

import (
	"errors"
	"time"

	"kanban-server/apperrors"
	"kanban-server/repositories"
	"kanban-server/services"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginUseCase struct {
	UserRepo repositories.UserRepository
	Hasher   services.PasswordHasher
	Tokens   services.TokenGenerator
}

func NewLoginUseCase(userRepo repositories.UserRepository, hasher services.PasswordHasher, tokens services.TokenGenerator) *LoginUseCase {
	return &LoginUseCase{UserRepo: userRepo, Hasher: hasher, Tokens: tokens}
}

// Execute authenticates the credentials and issues a session token. Unknown
// email and wrong password fail identically so callers cannot tell which
// accounts exist.
func (uc *LoginUseCase) Execute(req LoginRequest) (*LoginResponse, error) {
	user, err := uc.UserRepo.GetByEmail(req.Email)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if !uc.Hasher.Verify(req.Password, user.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}

	token, err := uc.Tokens.Generate(user)
	if err != nil {
		return nil, apperrors.Persistence("issue token", err)
	}

	return &LoginResponse{
		Token:          token,
		TokenExpiresAt: time.Now().UTC().Add(uc.Tokens.ExpiresIn()),
		User:           toUserResponse(user),
	}, nil
}
