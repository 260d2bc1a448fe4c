package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort string
	UsersFile  string
}

func NewConfig() (*Config, error) {
	_ = godotenv.Load()

	return &Config{
		ServerPort: getEnvOrDefault("SERVER_PORT", "5000"),
		UsersFile:  getEnvOrDefault("USERS_FILE", "users.json"),
	}, nil
}

func getEnvOrDefault(key, def string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return def
}
