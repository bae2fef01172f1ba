package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"leadpath/internal/logger"

	"github.com/jmoiron/sqlx"
	_ "github.com/sijms/go-ora/v2" // Oracle driver
	"go.uber.org/zap"
)

const (
	driverName  = "oracle"
	pingTimeout = 5 * time.Second
)

// NewSQLXOracleDB opens and pings an Oracle connection pool through go-ora.
func NewSQLXOracleDB(dsn string) (*sqlx.DB, error) {
	db, err := sqlx.Open(driverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open Oracle database: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping Oracle database: %w", err)
	}

	logger.Get().Info("Successfully connected to Oracle database")
	return db, nil
}

// NewMigrateOracleDB returns a plain *sql.DB for the migration runner.
func NewMigrateOracleDB(dsn string) (*sql.DB, error) {
	db, err := NewSQLXOracleDB(dsn)
	if err != nil {
		return nil, err
	}
	logger.Get().Debug("Using Oracle connection for migrations", zap.String("driver", driverName))
	return db.DB, nil
}
