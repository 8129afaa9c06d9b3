package main

import (
	"log"
	"net"
	"net/http"
	"time"

	"github.com/joho/godotenv"

	"gomessenger/internal/config"
	"gomessenger/internal/dbmysql"
	"gomessenger/internal/di"
)

func main() {
	err := godotenv.Load()
	if err != nil {
		log.Println(".env file not found, using system env variables")
	}

	cfg := config.Load()
	log.Println("Configuration loaded")

	db, err := dbmysql.NewMySQL(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	app, err := di.InitializeApp(cfg, db)
	if err != nil {
		log.Fatalf("Failed to wire dependencies: %v", err)
	}
	log.Println("Dependencies wired successfully")

	addr := net.JoinHostPort(cfg.Server.Host, cfg.Server.Port)
	server := &http.Server{
		Addr:         addr,
		Handler:      app.Router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	log.Printf("Messaging service listening on %s", addr)
	if err := server.ListenAndServe(); err != nil {
		log.Fatalf("Server stopped: %v", err)
	}
}
