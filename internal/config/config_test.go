package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfig(t *testing.T) {
	t.Run("Success loading from env", func(t *testing.T) {
		t.Setenv("DB_HOST", "localhost")
		t.Setenv("DB_USER", "testuser")
		t.Setenv("DB_PASSWORD", "testpass")
		t.Setenv("DB_NAME", "testdb")
		t.Setenv("DB_PORT", "5432")
		t.Setenv("APP_PORT", "8000")
		t.Setenv("APP_ENV", "test")
		t.Setenv("GRAPHQL_URL", "http://crm:8000/graphql")

		cfg := LoadConfig()

		assert.NotNil(t, cfg)
		assert.Equal(t, "localhost", cfg.DBHost)
		assert.Equal(t, "testuser", cfg.DBUser)
		assert.Equal(t, "testpass", cfg.DBPassword)
		assert.Equal(t, "testdb", cfg.DBName)
		assert.Equal(t, "5432", cfg.DBPort)
		assert.Equal(t, "8000", cfg.AppPort)
		assert.Equal(t, "test", cfg.AppEnv)
		assert.Equal(t, "http://crm:8000/graphql", cfg.GraphQLURL)
	})

	t.Run("GraphQL URL defaults to local server", func(t *testing.T) {
		t.Setenv("DB_HOST", "localhost")
		t.Setenv("APP_PORT", "9000")
		t.Setenv("GRAPHQL_URL", "")

		cfg := LoadConfig()

		assert.Equal(t, "http://localhost:9000/graphql", cfg.GraphQLURL)
	})
}

func TestLoadWorkerConfig(t *testing.T) {
	t.Run("Loads without database settings", func(t *testing.T) {
		t.Setenv("DB_HOST", "")
		t.Setenv("APP_ENV", "production")
		t.Setenv("APP_PORT", "")
		t.Setenv("GRAPHQL_URL", "")
		t.Setenv("WORKER_TOKEN", "admin-jwt")

		cfg := LoadWorkerConfig()

		assert.Equal(t, "production", cfg.AppEnv)
		assert.Equal(t, "http://localhost:8000/graphql", cfg.GraphQLURL)
		assert.Equal(t, "admin-jwt", cfg.AuthToken)
	})

	t.Run("Explicit GraphQL URL wins", func(t *testing.T) {
		t.Setenv("GRAPHQL_URL", "http://crm:9000/graphql")

		cfg := LoadWorkerConfig()

		assert.Equal(t, "http://crm:9000/graphql", cfg.GraphQLURL)
	})
}
