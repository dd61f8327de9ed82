package database

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"strings"
)

//go:embed schema/*.sql
var schemaFS embed.FS

// EnsureSchema creates the orders and order_items tables if they are missing.
// Safe to run on every start.
func EnsureSchema(ctx context.Context, db *sql.DB, dialect Dialect) error {
	stmts, err := schemaStatements(dialect)
	if err != nil {
		return err
	}
	for _, stmt := range stmts {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("apply schema (%s): %w", dialect, err)
		}
	}
	return nil
}

func schemaStatements(dialect Dialect) ([]string, error) {
	var name string
	switch dialect {
	case Postgres:
		name = "schema/postgres.sql"
	case MySQL:
		name = "schema/mysql.sql"
	case SQLite:
		name = "schema/sqlite.sql"
	default:
		return nil, fmt.Errorf("no schema for dialect %q", dialect)
	}
	b, err := schemaFS.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}
	var out []string
	for _, stmt := range strings.Split(string(b), ";") {
		if stmt = strings.TrimSpace(stmt); stmt != "" {
			out = append(out, stmt)
		}
	}
	return out, nil
}
