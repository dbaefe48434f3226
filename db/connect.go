package db

import (
	"fmt"
	"log"
	"os"
	"strings"

	"kanban-server/entities"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Connect opens the postgres connection described by the environment and
// migrates the users and tasks tables. Either DB_URL or the individual
// DB_HOST/DB_PORT/DB_USER/DB_PASSWORD/DB_NAME variables must be set.
func Connect() (Database, error) {
	var dsn string

	if dbURL := os.Getenv("DB_URL"); dbURL != "" {
		dsn = dbURL

		// Hosted postgres providers reject plain connections; require SSL
		// unless the URL already says otherwise.
		if !strings.Contains(dsn, "sslmode=") {
			if strings.Contains(dsn, "?") {
				dsn += "&sslmode=require"
			} else {
				dsn += "?sslmode=require"
			}
		}

		log.Println("connecting to postgres via DB_URL")
	} else {
		dbHost := os.Getenv("DB_HOST")
		dbPort := os.Getenv("DB_PORT")
		dbUser := os.Getenv("DB_USER")
		dbPassword := os.Getenv("DB_PASSWORD")
		dbName := os.Getenv("DB_NAME")

		if dbHost == "" || dbPort == "" || dbUser == "" || dbPassword == "" || dbName == "" {
			return nil, fmt.Errorf("database configuration incomplete: set DB_URL or all of DB_HOST, DB_PORT, DB_USER, DB_PASSWORD, DB_NAME")
		}

		sslMode := "require"
		if dbHost == "localhost" || dbHost == "127.0.0.1" {
			sslMode = "disable"
		}

		dsn = fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=UTC",
			dbHost, dbUser, dbPassword, dbName, dbPort, sslMode)
		log.Printf("connecting to postgres at %s:%s (sslmode=%s)", dbHost, dbPort, sslMode)
	}

	// TranslateError turns driver-level unique violations into
	// gorm.ErrDuplicatedKey so the repositories can map them to conflicts.
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Info),
		PrepareStmt:    true,
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("open postgres connection: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("access underlying sql.DB: %w", err)
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(0)

	if err := db.AutoMigrate(&entities.User{}, &entities.Task{}); err != nil {
		return nil, fmt.Errorf("migrate schema: %w", err)
	}

	log.Println("postgres ready, users and tasks tables migrated")

	return &GormDatabase{DB: db}, nil
}
