package database

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/go-sql-driver/mysql"

	"order-desk/internal/config"
)

type Dialect string

const (
	Postgres Dialect = "postgres"
	SQLite   Dialect = "sqlite3"
	MySQL    Dialect = "mysql"
)

const defaultSQLitePath = "orders.db"

// DriverName is the database/sql driver registered for the dialect.
func (d Dialect) DriverName() string {
	switch d {
	case Postgres:
		return "pgx"
	case MySQL:
		return "mysql"
	default:
		return "sqlite3"
	}
}

// Rebind rewrites ? placeholders into $1, $2, ... for postgres.
func (d Dialect) Rebind(query string) string {
	if d != Postgres {
		return query
	}
	var b strings.Builder
	b.Grow(len(query) + 8)
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Resolve picks the dialect and driver DSN. DATABASE_URL style urls are
// accepted (postgres://, postgresql://, mysql://, sqlite:///path); discrete
// host/user fields describe a postgres server; with nothing set the local
// sqlite file is used.
func Resolve(cfg config.DatabaseConfig) (Dialect, string, error) {
	raw := strings.TrimSpace(cfg.URL)
	switch {
	case raw == "" && cfg.Host != "":
		dsn := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
			cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.Database, sslMode(cfg.SSLMode))
		return Postgres, dsn, nil
	case raw == "":
		return SQLite, sqliteDSN(defaultSQLitePath), nil
	case strings.HasPrefix(raw, "postgres://"), strings.HasPrefix(raw, "postgresql://"):
		return Postgres, raw, nil
	case strings.HasPrefix(raw, "mysql://"):
		dsn, err := mysqlDSN(raw)
		if err != nil {
			return "", "", err
		}
		return MySQL, dsn, nil
	case strings.HasPrefix(raw, "sqlite://"):
		path := strings.TrimPrefix(raw, "sqlite://")
		// sqlite:///orders.db is relative, sqlite:////var/orders.db is absolute
		path = strings.TrimPrefix(path, "/")
		if path == "" {
			path = defaultSQLitePath
		}
		return SQLite, sqliteDSN(path), nil
	default:
		return "", "", fmt.Errorf("unsupported database url scheme in %q", redact(raw))
	}
}

func sslMode(s string) string {
	if s == "" {
		return "disable"
	}
	return s
}

func sqliteDSN(path string) string {
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	return path + sep + "_foreign_keys=on&_busy_timeout=5000"
}

func mysqlDSN(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("parse mysql url: %w", err)
	}
	mc := mysql.NewConfig()
	mc.Net = "tcp"
	mc.Addr = u.Host
	if u.Port() == "" {
		mc.Addr = u.Hostname() + ":3306"
	}
	mc.User = u.User.Username()
	mc.Passwd, _ = u.User.Password()
	mc.DBName = strings.TrimPrefix(u.Path, "/")
	mc.ParseTime = true
	mc.Loc = time.UTC
	return mc.FormatDSN(), nil
}

func redact(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return "<unparseable>"
	}
	return u.Redacted()
}
