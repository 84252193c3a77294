package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/parkguard-dev/parkguard/db"
	"github.com/parkguard-dev/parkguard/internal/router"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	dsn := os.Getenv("DATABASE_URL")

	if dsn == "" {
		log.Fatal("DATABASE_URL is not set")
	}

	if err := db.ConnectDatabase(dsn); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := db.MigrateDatabase(); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	r := router.NewRouter(db.DB)

	var port string

	if port = os.Getenv("PORT"); port == "" {
		port = "5001"
		log.Println("PORT not set, defaulting to 5001")
	}

	if err := r.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
