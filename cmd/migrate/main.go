package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"

	"book-store-service/internal/config"
	"book-store-service/pkg/logger"
)

func main() {
	command := flag.String("command", "up", "Migration command: up, status")
	flag.Parse()

	_ = godotenv.Load()
	logger.Init(os.Getenv("APP_ENV"), os.Getenv("LOG_LEVEL"))

	if err := run(*command); err != nil {
		log.Fatal().Err(err).Str("command", *command).Msg("migration failed")
	}
}

func run(command string) error {
	dbConfig, err := config.LoadDatabaseConfig()
	if err != nil {
		return err
	}

	db, err := sql.Open("postgres", dbConfig.DSN())
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	migrations, err := loadMigrations(migrationFiles)
	if err != nil {
		return err
	}
	m := &migrator{db: db, migrations: migrations}

	switch command {
	case "up":
		n, err := m.Up(ctx)
		if err != nil {
			return err
		}
		log.Info().Int("applied", n).Msg("migrations up to date")
	case "status":
		statuses, err := m.Status(ctx)
		if err != nil {
			return err
		}
		for _, s := range statuses {
			state := "pending"
			if s.Applied {
				state = "applied"
			}
			fmt.Printf("%04d  %-40s %s\n", s.Version, s.Name, state)
		}
	default:
		return fmt.Errorf("unknown command %q, use: up, status", command)
	}
	return nil
}
