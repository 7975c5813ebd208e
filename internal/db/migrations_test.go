package db_test

import (
	"context"
	"path/filepath"
	"testing"

	"tripbuilder/internal/config"
	intdb "tripbuilder/internal/db"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrateIsIdempotent(t *testing.T) {
	ctx := context.Background()
	conn, err := config.OpenSQLite(ctx, filepath.Join(t.TempDir(), "migrate.db"))
	require.NoError(t, err)
	defer conn.Close()

	assert.ElementsMatch(t, intdb.Tables, intdb.MissingTables(ctx, conn, intdb.SQLite, intdb.Tables...))

	applied, err := intdb.Migrate(ctx, conn, intdb.SQLite)
	require.NoError(t, err)
	assert.Len(t, applied, len(intdb.Migrations))
	assert.Empty(t, intdb.MissingTables(ctx, conn, intdb.SQLite, intdb.Tables...))

	again, err := intdb.Migrate(ctx, conn, intdb.SQLite)
	require.NoError(t, err)
	assert.Empty(t, again)

	versions, err := intdb.AppliedVersions(ctx, conn)
	require.NoError(t, err)
	for _, m := range intdb.Migrations {
		assert.True(t, versions[m.Version], "version %d not recorded", m.Version)
	}
}

func TestParseDialect(t *testing.T) {
	cases := map[string]intdb.Dialect{
		"":        intdb.MySQL,
		"mysql":   intdb.MySQL,
		"SQLite":  intdb.SQLite,
		"sqlite3": intdb.SQLite,
	}
	for in, want := range cases {
		got, err := intdb.ParseDialect(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := intdb.ParseDialect("postgres")
	assert.Error(t, err)
}
