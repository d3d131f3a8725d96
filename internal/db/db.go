package db

import (
	"errors"
	"fmt"
	"strings"

	migrate "github.com/golang-migrate/migrate/v4"
	// The following blank imports register the database drivers and file
	// source for golang-migrate.
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/database/sqlite3"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/diewo77/go-social/auth"
	"github.com/diewo77/go-social/internal/config"
	"github.com/diewo77/go-social/internal/models"
)

// ConnectAndMigrate opens the database selected by the DSN (postgres:// URL
// or a sqlite file path) and brings the schema up to date. By default the
// schema comes from AutoMigrate; cfg.RunSQLMigrations runs the SQL files
// under ./migrations via golang-migrate instead.
func ConnectAndMigrate(cfg config.Config) (*gorm.DB, error) {
	dsn := cfg.DatabaseDSN
	if strings.TrimSpace(dsn) == "" {
		return nil, fmt.Errorf("DATABASE_DSN is empty, check the environment configuration")
	}
	logLevel := logger.Silent
	if cfg.DBDebug {
		logLevel = logger.Info
	}
	// TranslateError maps driver unique-violation errors to
	// gorm.ErrDuplicatedKey so the services can react to them portably.
	gormCfg := &gorm.Config{Logger: logger.Default.LogMode(logLevel), TranslateError: true}

	var dial gorm.Dialector
	if isPostgres(dsn) {
		dial = postgres.Open(dsn)
	} else {
		dial = sqlite.Open(dsn)
	}
	db, err := gorm.Open(dial, gormCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to connect database: %w", err)
	}

	// Basic connectivity test
	if pingErr := db.Exec("SELECT 1").Error; pingErr != nil {
		return nil, fmt.Errorf("db ping failed: %w", pingErr)
	}

	if cfg.RunSQLMigrations {
		if err := runSQLMigrations(dsn); err != nil {
			return nil, fmt.Errorf("sql migrations failed: %w", err)
		}
	} else {
		modelsToMigrate := []interface{}{
			&models.User{}, &models.Post{}, &models.Comment{}, &models.Friend{},
		}
		for _, m := range modelsToMigrate {
			if migErr := db.AutoMigrate(m); migErr != nil {
				return nil, fmt.Errorf("automigrate %T: %w", m, migErr)
			}
		}
	}

	// sanity check: ensure required core tables exist
	for _, table := range []string{"users", "posts", "comments", "friends"} {
		if !db.Migrator().HasTable(table) {
			return nil, errors.New("missing table after migration: " + table)
		}
	}
	// Seeding only when explicitly requested (e.g. development) via DB_SEED
	if cfg.SeedDemo {
		seed(db)
	}
	return db, nil
}

func isPostgres(dsn string) bool {
	lower := strings.ToLower(strings.TrimSpace(dsn))
	return strings.HasPrefix(lower, "postgres://") || strings.HasPrefix(lower, "postgresql://")
}

// runSQLMigrations executes migrations in ./migrations using the
// golang-migrate file source.
func runSQLMigrations(dsn string) error {
	target := dsn
	if !isPostgres(dsn) {
		target = "sqlite3://" + strings.TrimPrefix(dsn, "file:")
	}
	m, err := migrate.New("file://migrations", target)
	if err != nil {
		return err
	}
	if err = m.Up(); err != nil && err != migrate.ErrNoChange {
		return err
	}
	return nil
}

func seed(db *gorm.DB) {
	demo := []models.User{
		{Username: "alice_demo", FirstName: "Alice", LastName: "Demo"},
		{Username: "bob_demo", FirstName: "Bob", LastName: "Demo"},
	}
	for i := range demo {
		var existing models.User
		if err := db.Where("username = ?", demo[i].Username).First(&existing).Error; err == gorm.ErrRecordNotFound {
			hash, herr := auth.HashPassword("DemoPass1")
			if herr != nil {
				continue
			}
			demo[i].Password = hash
			db.Create(&demo[i])
		}
	}
}
