package main

import (
	"bufio"
	"database/sql"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
)

const migrationMarker = "-- +migrate "

func main() {
	_ = godotenv.Load()

	mode := flag.String("mode", "up", "migration mode: up or down")
	dir := flag.String("dir", "./migrations", "directory holding the CRM schema migrations")
	flag.Parse()

	db, err := sql.Open("postgres", databaseURL())
	if err != nil {
		log.Fatalf("failed to connect db: %v", err)
	}
	defer db.Close()

	if err := run(db, *mode, *dir); err != nil {
		log.Fatal(err)
	}
}

// databaseURL prefers an explicit DB_URL and otherwise assembles one from
// the same DB_* variables the server config uses.
func databaseURL() string {
	if url := os.Getenv("DB_URL"); url != "" {
		return url
	}

	host := os.Getenv("DB_HOST")
	if host == "" {
		log.Fatal("neither DB_URL nor DB_HOST set in environment")
	}

	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		host,
		os.Getenv("DB_PORT"),
		os.Getenv("DB_NAME"),
	)
}

func run(db *sql.DB, mode, migrationsDir string) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version TEXT PRIMARY KEY,
			applied_at TIMESTAMP NOT NULL DEFAULT NOW()
		);
	`)
	if err != nil {
		return fmt.Errorf("failed to ensure schema_migrations table: %w", err)
	}

	files, err := filepath.Glob(filepath.Join(migrationsDir, "*.sql"))
	if err != nil {
		return fmt.Errorf("failed to read migrations: %w", err)
	}

	// Deterministic order
	sort.Strings(files)

	switch mode {
	case "up":
		applied, err := runMigrationsUp(db, files)
		if err != nil {
			return err
		}
		if applied == 0 {
			fmt.Println("CRM schema already up to date")
		} else {
			fmt.Printf("CRM schema up to date, %d migration(s) applied\n", applied)
		}
		return nil
	case "down":
		return runMigrationsDown(db, files)
	default:
		return fmt.Errorf("unknown mode: %s (use 'up' or 'down')", mode)
	}
}

func runMigrationsUp(db *sql.DB, files []string) (int, error) {
	applied := 0

	for _, file := range files {
		version := filepath.Base(file)

		var exists bool
		err := db.QueryRow(`SELECT EXISTS(SELECT 1 FROM schema_migrations WHERE version = $1)`, version).Scan(&exists)
		if err != nil {
			return applied, fmt.Errorf("failed to check migration status: %w", err)
		}
		if exists {
			fmt.Printf("skipping %s, already applied\n", version)
			continue
		}

		content, err := os.ReadFile(file)
		if err != nil {
			return applied, fmt.Errorf("failed to read %s: %w", file, err)
		}

		fmt.Printf("applying %s to the CRM schema\n", version)

		if _, err := db.Exec(extractMigrationPart(string(content), "Up")); err != nil {
			return applied, fmt.Errorf("migration %s failed: %w", version, err)
		}

		if _, err := db.Exec(`INSERT INTO schema_migrations (version) VALUES ($1)`, version); err != nil {
			return applied, fmt.Errorf("failed to record migration version: %w", err)
		}
		applied++
	}

	return applied, nil
}

func runMigrationsDown(db *sql.DB, files []string) error {
	var lastVersion string
	err := db.QueryRow(`SELECT version FROM schema_migrations ORDER BY applied_at DESC LIMIT 1`).Scan(&lastVersion)
	if err == sql.ErrNoRows {
		fmt.Println("no CRM schema migrations to roll back")
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to get last applied migration: %w", err)
	}

	filePath := ""
	for _, f := range files {
		if filepath.Base(f) == lastVersion {
			filePath = f
			break
		}
	}
	if filePath == "" {
		return fmt.Errorf("migration file not found for version: %s", lastVersion)
	}

	content, err := os.ReadFile(filePath)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", filePath, err)
	}

	fmt.Printf("rolling back %s from the CRM schema\n", lastVersion)

	if _, err := db.Exec(extractMigrationPart(string(content), "Down")); err != nil {
		return fmt.Errorf("rollback of %s failed: %w", lastVersion, err)
	}

	if _, err := db.Exec(`DELETE FROM schema_migrations WHERE version = $1`, lastVersion); err != nil {
		return fmt.Errorf("failed to remove migration record: %w", err)
	}

	fmt.Println("rollback successful")
	return nil
}

// extractMigrationPart returns the statements under the named
// "-- +migrate <section>" marker, stopping at the next marker.
func extractMigrationPart(content string, section string) string {
	var part strings.Builder
	inPart := false

	scanner := bufio.NewScanner(strings.NewReader(content))
	for scanner.Scan() {
		line := scanner.Text()
		if strings.HasPrefix(strings.TrimSpace(line), migrationMarker) {
			inPart = strings.TrimSpace(line) == migrationMarker+section
			continue
		}
		if inPart {
			part.WriteString(line)
			part.WriteByte('\n')
		}
	}

	return part.String()
}
