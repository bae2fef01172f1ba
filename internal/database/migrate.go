package database

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"strings"

	"leadpath/internal/logger"

	"github.com/golang-migrate/migrate/v4/source"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"go.uber.org/zap"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

const (
	versionTable = "SCHEMA_MIGRATIONS"

	createVersionTableQuery = `CREATE TABLE SCHEMA_MIGRATIONS (VERSION NUMBER(19) PRIMARY KEY)`
	versionTableExistsQuery = `SELECT COUNT(*) FROM USER_TABLES WHERE TABLE_NAME = :1`
	currentVersionQuery     = `SELECT NVL(MAX(VERSION), 0) FROM SCHEMA_MIGRATIONS`
	insertVersionQuery      = `INSERT INTO SCHEMA_MIGRATIONS (VERSION) VALUES (:1)`
	deleteVersionQuery      = `DELETE FROM SCHEMA_MIGRATIONS WHERE VERSION = :1`
)

// Migrator applies numbered up/down SQL files. Oracle has no golang-migrate
// database driver, so versions are tracked in SCHEMA_MIGRATIONS and each
// file is split into single statements before execution.
type Migrator struct {
	db  *sql.DB
	src source.Driver
}

// NewMigrator creates a Migrator reading migrations from src.
func NewMigrator(db *sql.DB, src source.Driver) *Migrator {
	return &Migrator{db: db, src: src}
}

// NewEmbeddedMigrator creates a Migrator over the migrations compiled into
// the binary.
func NewEmbeddedMigrator(db *sql.DB) (*Migrator, error) {
	src, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return nil, fmt.Errorf("failed to open embedded migrations: %w", err)
	}
	return NewMigrator(db, src), nil
}

// Version returns the highest applied migration, or 0.
func (m *Migrator) Version(ctx context.Context) (uint, error) {
	if err := m.ensureVersionTable(ctx); err != nil {
		return 0, err
	}
	var v int64
	if err := m.db.QueryRowContext(ctx, currentVersionQuery).Scan(&v); err != nil {
		return 0, fmt.Errorf("failed to read migration version: %w", err)
	}
	return uint(v), nil
}

// Up applies every migration newer than the current version.
func (m *Migrator) Up(ctx context.Context) error {
	current, err := m.Version(ctx)
	if err != nil {
		return err
	}

	version, err := m.src.First()
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to read first migration: %w", err)
	}

	for {
		if version > current {
			if err := m.apply(ctx, version, true); err != nil {
				return err
			}
		}
		version, err = m.src.Next(version)
		if errors.Is(err, fs.ErrNotExist) {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to read next migration: %w", err)
		}
	}
	logger.Get().Info("Migrations completed successfully")
	return nil
}

// Down reverts every applied migration, newest first.
func (m *Migrator) Down(ctx context.Context) error {
	version, err := m.Version(ctx)
	if err != nil {
		return err
	}

	for version > 0 {
		if err := m.apply(ctx, version, false); err != nil {
			return err
		}
		prev, err := m.src.Prev(version)
		if errors.Is(err, fs.ErrNotExist) {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to read previous migration: %w", err)
		}
		version = prev
	}
	logger.Get().Info("Rollback completed successfully")
	return nil
}

func (m *Migrator) apply(ctx context.Context, version uint, up bool) error {
	var (
		r          io.ReadCloser
		identifier string
		err        error
	)
	if up {
		r, identifier, err = m.src.ReadUp(version)
	} else {
		r, identifier, err = m.src.ReadDown(version)
	}
	if err != nil {
		return fmt.Errorf("failed to read migration %d: %w", version, err)
	}
	defer r.Close()

	body, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("failed to read migration %d: %w", version, err)
	}

	tx, err := m.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin migration %d: %w", version, err)
	}
	for _, stmt := range SplitStatements(string(body)) {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			tx.Rollback()
			return fmt.Errorf("could not execute migration %d_%s: %w", version, identifier, err)
		}
	}

	bookkeeping := insertVersionQuery
	if !up {
		bookkeeping = deleteVersionQuery
	}
	if _, err := tx.ExecContext(ctx, bookkeeping, int64(version)); err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to record migration %d: %w", version, err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit migration %d: %w", version, err)
	}

	logger.Get().Info("Executed migration",
		zap.Uint("version", version),
		zap.String("name", identifier),
		zap.Bool("up", up))
	return nil
}

func (m *Migrator) ensureVersionTable(ctx context.Context) error {
	var n int
	if err := m.db.QueryRowContext(ctx, versionTableExistsQuery, versionTable).Scan(&n); err != nil {
		return fmt.Errorf("failed to check migration table: %w", err)
	}
	if n > 0 {
		return nil
	}
	if _, err := m.db.ExecContext(ctx, createVersionTableQuery); err != nil {
		return fmt.Errorf("failed to create migration table: %w", err)
	}
	return nil
}

// SplitStatements splits a SQL script on statement-terminating semicolons.
// go-ora executes one statement per call and rejects a trailing semicolon.
func SplitStatements(script string) []string {
	var stmts []string
	for _, part := range strings.Split(script, ";") {
		if s := strings.TrimSpace(part); s != "" {
			stmts = append(stmts, s)
		}
	}
	return stmts
}
