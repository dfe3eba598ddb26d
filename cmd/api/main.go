package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"

	"github.com/patanova/groomer-api/internal/app/api"
)

func main() {
	// Missing .env is fine; the process then runs on real environment only.
	_ = godotenv.Load()

	if err := api.Run(context.Background()); err != nil {
		log.Fatalf("groomer API exited: %v", err)
	}
}
