package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Load reads an optional .env file into the environment. A missing file is
// not an error, deployments set variables directly.
func Load() {
	_ = godotenv.Load()
}

func GetSecret(key string) (string, error) {
	val, exist := os.LookupEnv(key)
	if exist {
		return val, nil
	}
	return "", fmt.Errorf("no env variable with key %v", key)
}

func GetPort() string {
	if port := os.Getenv("PORT"); port != "" {
		return port
	}
	return "5000"
}
