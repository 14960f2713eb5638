package config

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Config holds every process-wide setting. It is built once in main and
// passed into constructors; nothing reads the environment after Load.
type Config struct {
	MongoURI  string
	DBName    string
	JWTSecret string
	Port      string
}

// Load reads .env (if present) and builds the configuration.
// MONGODB_URI and JWT_SECRET have no fallback: a store backend with a
// hardcoded secret or connection string is a misconfiguration.
func Load() (*Config, error) {
	if err := godotenv.Load(".env"); err != nil {
		log.Println("No .env file found, using environment")
	}

	cfg := &Config{
		MongoURI:  os.Getenv("MONGODB_URI"),
		DBName:    getEnv("DB_NAME", "provision-store"),
		JWTSecret: os.Getenv("JWT_SECRET"),
		Port:      getEnv("PORT", "5000"),
	}

	if cfg.MongoURI == "" {
		return nil, fmt.Errorf("MONGODB_URI is not set")
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is not set")
	}

	return cfg, nil
}

// getEnv retrieves an environment variable with a fallback
func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
