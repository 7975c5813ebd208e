package db

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
)

// Migration is one forward-only schema step. Each statement runs on its own
// because the MySQL driver rejects multi-statement Exec by default.
type Migration struct {
	Version int
	Name    string
	MySQL   []string
	SQLite  []string
}

func (m Migration) statements(d Dialect) []string {
	if d == SQLite {
		return m.SQLite
	}
	return m.MySQL
}

// Tables lists every application table created by Migrations.
var Tables = []string{"users", "trips", "vacations"}

var Migrations = []Migration{
	{
		Version: 1,
		Name:    "create_users",
		MySQL: []string{`
CREATE TABLE IF NOT EXISTS users (
	id BIGINT AUTO_INCREMENT PRIMARY KEY,
	name VARCHAR(255) NOT NULL,
	username VARCHAR(150) NOT NULL,
	email VARCHAR(255) NOT NULL,
	password_hash VARCHAR(255) NOT NULL,
	role VARCHAR(20) NOT NULL DEFAULT 'user',
	status VARCHAR(20) NOT NULL DEFAULT 'active',
	created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
	updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
	UNIQUE KEY uniq_users_username (username),
	UNIQUE KEY uniq_users_email (email)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci`},
		SQLite: []string{`
CREATE TABLE IF NOT EXISTS users (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	name TEXT NOT NULL,
	username TEXT NOT NULL UNIQUE,
	email TEXT NOT NULL UNIQUE,
	password_hash TEXT NOT NULL,
	role TEXT NOT NULL DEFAULT 'user',
	status TEXT NOT NULL DEFAULT 'active',
	created_at TEXT NOT NULL DEFAULT CURRENT_TIMESTAMP,
	updated_at TEXT NOT NULL DEFAULT CURRENT_TIMESTAMP
)`},
	},
	{
		Version: 2,
		Name:    "create_trips",
		MySQL: []string{`
CREATE TABLE IF NOT EXISTS trips (
	id BIGINT AUTO_INCREMENT PRIMARY KEY,
	country VARCHAR(3) NOT NULL,
	origin VARCHAR(255) NOT NULL,
	destination VARCHAR(255) NOT NULL,
	KEY idx_trips_country (country)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci`},
		SQLite: []string{
			`
CREATE TABLE IF NOT EXISTS trips (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	country TEXT NOT NULL,
	origin TEXT NOT NULL,
	destination TEXT NOT NULL
)`,
			`CREATE INDEX IF NOT EXISTS idx_trips_country ON trips(country)`,
		},
	},
	{
		Version: 3,
		Name:    "create_vacations",
		MySQL: []string{`
CREATE TABLE IF NOT EXISTS vacations (
	id BIGINT AUTO_INCREMENT PRIMARY KEY,
	user_id BIGINT NOT NULL,
	name VARCHAR(255) NOT NULL,
	trip_id BIGINT NOT NULL,
	KEY idx_vacations_user (user_id),
	KEY idx_vacations_trip (trip_id),
	CONSTRAINT fk_vacations_user FOREIGN KEY (user_id) REFERENCES users(id) ON DELETE CASCADE,
	CONSTRAINT fk_vacations_trip FOREIGN KEY (trip_id) REFERENCES trips(id) ON DELETE CASCADE
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci`},
		SQLite: []string{
			`
CREATE TABLE IF NOT EXISTS vacations (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	user_id INTEGER NOT NULL,
	name TEXT NOT NULL,
	trip_id INTEGER NOT NULL,
	FOREIGN KEY (user_id) REFERENCES users(id) ON DELETE CASCADE,
	FOREIGN KEY (trip_id) REFERENCES trips(id) ON DELETE CASCADE
)`,
			`CREATE INDEX IF NOT EXISTS idx_vacations_user ON vacations(user_id)`,
			`CREATE INDEX IF NOT EXISTS idx_vacations_trip ON vacations(trip_id)`,
		},
	},
}

func migrationsTableDDL(d Dialect) string {
	if d == SQLite {
		return `
CREATE TABLE IF NOT EXISTS schema_migrations (
	version INTEGER PRIMARY KEY,
	name TEXT NOT NULL,
	applied_at TEXT NOT NULL DEFAULT CURRENT_TIMESTAMP
)`
	}
	return `
CREATE TABLE IF NOT EXISTS schema_migrations (
	version INT PRIMARY KEY,
	name VARCHAR(255) NOT NULL,
	applied_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci`
}

// AppliedVersions returns the set of migration versions already recorded.
func AppliedVersions(ctx context.Context, conn *sql.DB) (map[int]bool, error) {
	rows, err := conn.QueryContext(ctx, `SELECT version FROM schema_migrations`)
	if err != nil {
		return nil, fmt.Errorf("read schema_migrations: %w", err)
	}
	defer rows.Close()

	out := map[int]bool{}
	for rows.Next() {
		var v int
		if err := rows.Scan(&v); err != nil {
			return nil, fmt.Errorf("scan schema_migrations: %w", err)
		}
		out[v] = true
	}
	return out, rows.Err()
}

// Migrate applies every pending migration in version order and returns the
// ones it applied. Running it again is a no-op.
func Migrate(ctx context.Context, conn *sql.DB, dialect Dialect) ([]Migration, error) {
	if conn == nil {
		return nil, fmt.Errorf("db not available")
	}
	if _, err := conn.ExecContext(ctx, migrationsTableDDL(dialect)); err != nil {
		return nil, fmt.Errorf("create schema_migrations: %w", err)
	}

	applied, err := AppliedVersions(ctx, conn)
	if err != nil {
		return nil, err
	}

	done := []Migration{}
	for _, m := range Migrations {
		if applied[m.Version] {
			continue
		}
		if err := apply(ctx, conn, dialect, m); err != nil {
			return done, fmt.Errorf("migration %04d_%s: %w", m.Version, m.Name, err)
		}
		slog.Info("migration applied", "version", m.Version, "name", m.Name)
		done = append(done, m)
	}
	return done, nil
}

func apply(ctx context.Context, conn *sql.DB, dialect Dialect, m Migration) error {
	tx, err := conn.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, stmt := range m.statements(dialect) {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	if _, err := tx.ExecContext(ctx,
		`INSERT INTO schema_migrations (version, name) VALUES (?, ?)`,
		m.Version, m.Name,
	); err != nil {
		return err
	}
	return tx.Commit()
}
