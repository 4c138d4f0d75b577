package database

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"budgetly/internal/config"
	"budgetly/internal/logger"
	"budgetly/internal/models"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Models lists every table owned by the application, in dependency order.
var Models = []interface{}{
	&models.User{},
	&models.Expense{},
	&models.Budget{},
	&models.AuditLog{},
}

// Manager owns the database connection for the lifetime of the process.
type Manager struct {
	db             *gorm.DB
	driver         string
	migrationsURL  string
	migrationsPath string
}

// NewManager opens the configured database. Postgres is the production
// store; sqlite is meant for local development.
func NewManager(cfg *config.Config) (*Manager, error) {
	gormCfg := &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	}
	if cfg.Env == "development" {
		gormCfg.Logger = gormlogger.Default.LogMode(gormlogger.Warn)
	}

	var (
		db  *gorm.DB
		err error
	)
	switch cfg.DBDriver {
	case "sqlite":
		if err := os.MkdirAll(filepath.Dir(cfg.DBPath), 0o755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
		db, err = gorm.Open(sqlite.Open(cfg.DBPath+"?_foreign_keys=on&_journal_mode=WAL"), gormCfg)
	default:
		db, err = gorm.Open(postgres.New(postgres.Config{
			DSN:                  cfg.PostgresDSN(),
			PreferSimpleProtocol: true, // Required for Supabase Supavisor; harmless for direct connections
		}), gormCfg)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying DB: %w", err)
	}
	if cfg.DBDriver == "sqlite" {
		// one writer keeps sqlite from returning SQLITE_BUSY under concurrent upserts
		sqlDB.SetMaxOpenConns(1)
	} else {
		sqlDB.SetMaxIdleConns(10)
		sqlDB.SetMaxOpenConns(100)
	}
	sqlDB.SetConnMaxLifetime(time.Hour)

	return &Manager{
		db:             db,
		driver:         cfg.DBDriver,
		migrationsURL:  cfg.PostgresURL(),
		migrationsPath: cfg.MigrationsPath,
	}, nil
}

// Migrate brings the schema up to date. Postgres uses the versioned SQL
// files under the migrations directory; sqlite is auto-migrated from the models.
func (m *Manager) Migrate() error {
	if m.driver == "sqlite" {
		logger.Get().Info("Auto-migrating sqlite schema...")
		if err := m.db.AutoMigrate(Models...); err != nil {
			return fmt.Errorf("auto-migration failed: %w", err)
		}
		return nil
	}
	return m.RunMigrations()
}

// RunMigrations applies pending SQL migrations from the migrations/ directory.
func (m *Manager) RunMigrations() error {
	logger.Get().Info("Running database migrations...")

	mig, err := migrate.New("file://"+m.migrationsPath, m.migrationsURL)
	if err != nil {
		return fmt.Errorf("failed to create migrate instance: %w", err)
	}
	defer func() {
		srcErr, dbErr := mig.Close()
		if srcErr != nil {
			logger.Get().Warnf("migrate source close error: %v", srcErr)
		}
		if dbErr != nil {
			logger.Get().Warnf("migrate database close error: %v", dbErr)
		}
	}()

	if err := applyUp(mig.Up); err != nil {
		return err
	}

	logger.Get().Info("Database migrations completed successfully")
	return nil
}

// applyUp runs up and treats an already current schema as success.
func applyUp(up func() error) error {
	if err := up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migration failed: %w", err)
	}
	return nil
}

// DB returns the underlying GORM database instance
func (m *Manager) DB() *gorm.DB {
	return m.db
}

// Close releases the connection pool.
func (m *Manager) Close() error {
	sqlDB, err := m.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying DB: %w", err)
	}
	return sqlDB.Close()
}
