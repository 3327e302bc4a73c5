package persistence_test

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

func init() {
	// Load .env file for integration tests. When tests run from
	// internal/infrastructure/persistence/, the file lives at the project root.
	paths := []string{
		"../../../.env",
		"../../.env",
		"../.env",
		".env",
	}

	for _, p := range paths {
		if _, err := os.Stat(p); err == nil {
			if err := godotenv.Load(p); err == nil {
				log.Printf("📁 Loaded .env from %s for tests", p)
				return
			}
		}
	}
}
