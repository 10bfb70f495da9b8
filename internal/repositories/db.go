// Package repositories provides the data access layer for the voice
// assistant's banking records. Every repository takes a *gorm.DB so the
// same code runs against the shared pool or a transaction handle.
package repositories

import (
	"context"
	"fmt"
	stdlog "log"
	"os"
	"time"

	"finvox/internal/config"
	"finvox/internal/models"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Store owns the database handle and the schema lifecycle. Repositories
// are constructed from its DB (or from a transaction inside
// WithinTransaction); nothing in this package holds package-level state.
type Store struct {
	db  *gorm.DB
	log *logrus.Logger
}

// Open connects to Postgres, applies pool settings and verifies the
// connection. It does not touch the schema; call CreateTables for that.
func Open(cfg *config.Config, log *logrus.Logger) (*Store, error) {
	gormLogger := logger.New(
		stdlog.New(os.Stdout, "\r\n", stdlog.LstdFlags),
		logger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		},
	)

	db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{
		Logger: gormLogger,
	})
	if err != nil {
		return nil, fmt.Errorf("connect to postgres: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql.DB handle: %w", err)
	}

	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	sqlDB.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("ping postgres: %w", err)
	}

	log.Info("✅ PostgreSQL connected")
	return &Store{db: db, log: log}, nil
}

// DB exposes the underlying handle for repository construction.
func (s *Store) DB() *gorm.DB {
	return s.db
}

// Close releases the connection pool.
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// CreateTables installs the pgvector extension and migrates every table.
// It is idempotent: existing tables and data are left untouched, missing
// columns and indexes are added.
func (s *Store) CreateTables(ctx context.Context) error {
	db := s.db.WithContext(ctx)

	if err := db.Exec("CREATE EXTENSION IF NOT EXISTS vector").Error; err != nil {
		return fmt.Errorf("create vector extension: %w", err)
	}

	// Parents before children so foreign keys resolve.
	err := db.AutoMigrate(
		&models.Customer{},
		&models.Loan{},
		&models.EMI{},
		&models.CustomerAccount{},
		&models.Transaction{},
		&models.ClientInteraction{},
		&models.RAGDocument{},
		&models.OTP{},
		&models.UnresolvedChat{},
	)
	if err != nil {
		return fmt.Errorf("migrate tables: %w", err)
	}

	s.log.Info("✅ database tables ready")
	return nil
}

// DropTables removes every table, children first. Meant for tests and
// disposable environments.
func (s *Store) DropTables(ctx context.Context) error {
	return s.db.WithContext(ctx).Migrator().DropTable(
		&models.UnresolvedChat{},
		&models.OTP{},
		&models.RAGDocument{},
		&models.ClientInteraction{},
		&models.Transaction{},
		&models.EMI{},
		&models.CustomerAccount{},
		&models.Loan{},
		&models.Customer{},
	)
}

// WithinTransaction runs fn inside a single database transaction. A nil
// return commits; an error or panic rolls back. The connection is
// released either way.
func (s *Store) WithinTransaction(ctx context.Context, fn func(tx *gorm.DB) error) error {
	if err := s.db.WithContext(ctx).Transaction(fn); err != nil {
		s.log.WithError(err).Error("❌ transaction rolled back")
		return err
	}
	return nil
}
