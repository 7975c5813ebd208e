package db

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
)

// Dialect selects the DDL and catalog queries for a driver.
type Dialect string

const (
	MySQL  Dialect = "mysql"
	SQLite Dialect = "sqlite"
)

func ParseDialect(s string) (Dialect, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "mysql":
		return MySQL, nil
	case "sqlite", "sqlite3":
		return SQLite, nil
	default:
		return "", fmt.Errorf("unsupported db driver %q", s)
	}
}

type QueryRower interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// HasTable reports whether table exists. Connection errors read as false.
func HasTable(ctx context.Context, q QueryRower, dialect Dialect, table string) bool {
	query := `
		SELECT table_name
		FROM information_schema.tables
		WHERE table_schema = DATABASE()
		  AND table_name = ?
		LIMIT 1
	`
	if dialect == SQLite {
		query = `SELECT name FROM sqlite_master WHERE type = 'table' AND name = ? LIMIT 1`
	}

	var name sql.NullString
	if err := q.QueryRowContext(ctx, query, table).Scan(&name); err != nil {
		return false
	}
	return name.Valid && name.String != ""
}

// MissingTables returns the subset of tables not present in the database.
func MissingTables(ctx context.Context, q QueryRower, dialect Dialect, tables ...string) []string {
	out := []string{}
	for _, t := range tables {
		if !HasTable(ctx, q, dialect, t) {
			out = append(out, t)
		}
	}
	return out
}
