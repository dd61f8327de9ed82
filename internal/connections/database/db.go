package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/mattn/go-sqlite3"

	"order-desk/internal/config"
)

// ConnectDB opens the configured database and waits until it answers a ping.
func ConnectDB(ctx context.Context, cfg config.DatabaseConfig) (*sql.DB, Dialect, error) {
	dialect, dsn, err := Resolve(cfg)
	if err != nil {
		return nil, "", err
	}

	maxRetries := cfg.ConnectRetries
	if maxRetries <= 0 || dialect == SQLite {
		maxRetries = 1
	}
	const (
		retryDelay = 2 * time.Second
		pingTTL    = 5 * time.Second
	)

	var db *sql.DB
	for i := 1; i <= maxRetries; i++ {
		db, err = sql.Open(dialect.DriverName(), dsn)
		if err == nil {
			pctx, cancel := context.WithTimeout(ctx, pingTTL)
			err = db.PingContext(pctx)
			cancel()
			if err == nil {
				configurePool(db, dialect, cfg.MaxConns)
				return db, dialect, nil
			}
			_ = db.Close()
		}
		if i == maxRetries {
			break
		}

		select {
		case <-time.After(retryDelay):
		case <-ctx.Done():
			return nil, "", fmt.Errorf("db connect canceled: %w", ctx.Err())
		}
	}

	return nil, "", fmt.Errorf("database unreachable after %d attempts: %w", maxRetries, err)
}

func configurePool(db *sql.DB, dialect Dialect, maxConns int) {
	if dialect == SQLite {
		// sqlite allows a single writer
		db.SetMaxOpenConns(1)
		db.SetMaxIdleConns(1)
		return
	}
	if maxConns <= 0 {
		maxConns = 10
	}
	db.SetMaxOpenConns(maxConns)
	db.SetMaxIdleConns(maxConns / 2)
	db.SetConnMaxLifetime(5 * time.Minute)
}
