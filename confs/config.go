package confs

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// JWTSettings configure token signing and lifetime.
type JWTSettings struct {
	Secret            string
	Issuer            string
	Audience          string
	ExpirationMinutes int
}

// Config holds the runtime settings read from the environment.
type Config struct {
	ServerAddr string
	JWT        JWTSettings
}

// LoadConfig loads environment variables from a .env file if present and
// validates essential settings.
func LoadConfig() (*Config, error) {
	// Load .env if it exists; ignore error if file not found
	if err := godotenv.Load(); err != nil {
		if !os.IsNotExist(err) {
			log.Printf("warning: could not load .env: %v", err)
		}
	}

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}
	if len(secret) < 32 {
		return nil, fmt.Errorf("JWT_SECRET must be at least 32 characters")
	}

	cfg := &Config{
		ServerAddr: envOr("SERVER_ADDR", "0.0.0.0:3536"),
		JWT: JWTSettings{
			Secret:            secret,
			Issuer:            envOr("JWT_ISSUER", "KanbanAPI"),
			Audience:          envOr("JWT_AUDIENCE", "KanbanAPI"),
			ExpirationMinutes: envIntOr("JWT_EXPIRATION_MINUTES", 60),
		},
	}
	return cfg, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envIntOr(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("warning: invalid %s=%q, using %d", key, v, fallback)
		return fallback
	}
	return n
}
