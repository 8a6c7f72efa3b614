package repository

import (
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database"
	migratepostgres "github.com/golang-migrate/migrate/v4/database/postgres"
	migratesqlite "github.com/golang-migrate/migrate/v4/database/sqlite"
	_ "github.com/golang-migrate/migrate/v4/source/file" // Required for file source
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq" // PostgreSQL driver
	"go.uber.org/zap"
	_ "modernc.org/sqlite" // SQLite driver

	"github.com/Adil-Mukhtar/Sentiment-Analysis-Twitter/internal/config"
)

// NewDB opens the configured database (SQLite file or PostgreSQL URL)
func NewDB(cfg *config.Config, logger *zap.Logger) (*sqlx.DB, error) {
	var db *sqlx.DB
	var err error

	switch cfg.Database.Type {
	case "sqlite":
		db, err = sqlx.Connect("sqlite", cfg.Database.Path)
	case "postgres":
		db, err = sqlx.Connect("postgres", cfg.Database.URL)
	default:
		return nil, fmt.Errorf("unsupported database type %q", cfg.Database.Type)
	}
	if err != nil {
		return nil, err
	}

	logger.Info("Successfully connected to the database",
		zap.String("type", cfg.Database.Type))
	return db, nil
}

// MigrateDB runs database migrations for the configured driver
func MigrateDB(db *sqlx.DB, dbType string, logger *zap.Logger) {
	var driver database.Driver
	var sourceURL string
	var err error

	switch dbType {
	case "postgres":
		driver, err = migratepostgres.WithInstance(db.DB, &migratepostgres.Config{})
		sourceURL = "file://migrations/postgres"
	default:
		driver, err = migratesqlite.WithInstance(db.DB, &migratesqlite.Config{})
		sourceURL = "file://migrations/sqlite"
	}
	if err != nil {
		logger.Fatal("Couldn't get database instance for running migrations", zap.Error(err))
	}

	m, err := migrate.NewWithDatabaseInstance(sourceURL, "tweets", driver)
	if err != nil {
		logger.Fatal("Couldn't create migrate instance", zap.Error(err))
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		logger.Fatal("Couldn't run database migration", zap.Error(err))
	}

	logger.Info("Database migration was run successfully")
}
