package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

func init() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, relying on environment")
	}
}

// Config returns the value of an environment variable.
func Config(key string) string {
	return os.Getenv(key)
}

// ConfigDefault returns the value of an environment variable or a fallback.
func ConfigDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
