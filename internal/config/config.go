package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	DBHost     string
	DBUser     string
	DBPassword string
	DBName     string
	DBPort     string
	AppPort    string
	AppEnv     string

	// GraphQLURL is the endpoint the worker jobs poll. Defaults to the
	// local server when unset.
	GraphQLURL string
}

func LoadConfig() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		DBHost:     os.Getenv("DB_HOST"),
		DBUser:     os.Getenv("DB_USER"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     os.Getenv("DB_NAME"),
		DBPort:     os.Getenv("DB_PORT"),
		AppPort:    appPort(),
		AppEnv:     os.Getenv("APP_ENV"),
		GraphQLURL: graphQLURL(),
	}

	if cfg.DBHost == "" {
		log.Fatal("Environment variables not loaded properly")
	}

	return cfg
}

// WorkerConfig carries the settings the worker binary needs. The jobs only
// talk to the GraphQL API over HTTP, so no database settings are loaded
// and DB_HOST is not required.
type WorkerConfig struct {
	AppEnv     string
	GraphQLURL string

	// AuthToken is an admin JWT forwarded by jobs that hit admin-only
	// mutations (restock).
	AuthToken string
}

func LoadWorkerConfig() *WorkerConfig {
	_ = godotenv.Load()

	return &WorkerConfig{
		AppEnv:     os.Getenv("APP_ENV"),
		GraphQLURL: graphQLURL(),
		AuthToken:  os.Getenv("WORKER_TOKEN"),
	}
}

func appPort() string {
	if port := os.Getenv("APP_PORT"); port != "" {
		return port
	}
	return "8000"
}

func graphQLURL() string {
	if url := os.Getenv("GRAPHQL_URL"); url != "" {
		return url
	}
	return "http://localhost:" + appPort() + "/graphql"
}
