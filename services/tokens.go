package services

import (
	"errors"
	"time"

	"kanban-server/confs"
	"kanban-server/entities"

	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidToken = errors.New("invalid or expired token")

// TokenClaims are the identity claims embedded in every session token.
type TokenClaims struct {
	UserID uint   `json:"user_id"`
	Email  string `json:"email"`
	Name   string `json:"name"`
	jwt.RegisteredClaims
}

// TokenGenerator issues and parses signed session tokens.
type TokenGenerator interface {
	Generate(user *entities.User) (string, error)
	Parse(tokenString string) (*TokenClaims, error)
	ExpiresIn() time.Duration
}

type jwtTokenGenerator struct {
	settings confs.JWTSettings
}

func NewJWTTokenGenerator(settings confs.JWTSettings) TokenGenerator {
	return &jwtTokenGenerator{settings: settings}
}

// Generate signs an HS256 token binding the user's id, email and name, valid
// for the configured number of minutes.
func (g *jwtTokenGenerator) Generate(user *entities.User) (string, error) {
	now := time.Now().UTC()
	claims := TokenClaims{
		UserID: user.ID,
		Email:  user.Email,
		Name:   user.Name,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    g.settings.Issuer,
			Audience:  jwt.ClaimStrings{g.settings.Audience},
			ExpiresAt: jwt.NewNumericDate(now.Add(g.ExpiresIn())),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(g.settings.Secret))
}

func (g *jwtTokenGenerator) Parse(tokenString string) (*TokenClaims, error) {
	claims := &TokenClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(g.settings.Secret), nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

func (g *jwtTokenGenerator) ExpiresIn() time.Duration {
	return time.Duration(g.settings.ExpirationMinutes) * time.Minute
}
