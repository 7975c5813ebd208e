package config

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	intdb "tripbuilder/internal/db"

	_ "github.com/go-sql-driver/mysql"
	_ "modernc.org/sqlite"
)

// ConnectDB opens the pool configured by env and verifies it with a ping.
func ConnectDB(env Env) (*sql.DB, intdb.Dialect, error) {
	dialect, err := intdb.ParseDialect(env.DBDriver)
	if err != nil {
		return nil, "", err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	switch dialect {
	case intdb.SQLite:
		conn, err := OpenSQLite(ctx, env.DBDSN)
		return conn, dialect, err
	default:
		conn, err := OpenMySQL(ctx, env.DBDSN)
		return conn, dialect, err
	}
}

func OpenMySQL(ctx context.Context, dsn string) (*sql.DB, error) {
	conn, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, fmt.Errorf("open mysql: %w", err)
	}

	conn.SetMaxOpenConns(25)
	conn.SetMaxIdleConns(25)
	conn.SetConnMaxLifetime(10 * time.Minute)
	conn.SetConnMaxIdleTime(5 * time.Minute)

	if err := conn.PingContext(ctx); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("ping mysql: %w", err)
	}
	return conn, nil
}

// OpenSQLite opens (and creates) a database file with foreign keys enforced
// on every pooled connection.
func OpenSQLite(ctx context.Context, path string) (*sql.DB, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, fmt.Errorf("sqlite path is empty")
	}

	file := path
	if i := strings.Index(file, "?"); i >= 0 {
		file = file[:i]
	}
	file = strings.TrimPrefix(file, "file:")
	if file != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(file), 0o755); err != nil {
			return nil, fmt.Errorf("create database directory: %w", err)
		}
	}

	dsn := path
	if !strings.Contains(dsn, "foreign_keys") {
		sep := "?"
		if strings.Contains(dsn, "?") {
			sep = "&"
		}
		dsn += sep + "_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"
	}

	conn, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	conn.SetMaxOpenConns(1)

	if err := conn.PingContext(ctx); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}
	return conn, nil
}
