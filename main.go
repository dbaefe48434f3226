package main

import (
	"log"

	"kanban-server/confs"
	"kanban-server/db"
	"kanban-server/server"
)

func main() {
	// load config
	cfg, err := confs.LoadConfig()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	// connect to database Postgres
	database, err := db.Connect()
	if err != nil {
		log.Fatalf("Failed to connect to DB: %v", err)
	}

	// run server
	serverDb := server.NewServer(database, cfg)
	serverDb.Start()
}
