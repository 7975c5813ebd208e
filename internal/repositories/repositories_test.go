package repositories

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"tripbuilder/internal/config"
	intdb "tripbuilder/internal/db"
	"tripbuilder/internal/domain"
	"tripbuilder/internal/domain/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	ctx := context.Background()
	conn, err := config.OpenSQLite(ctx, filepath.Join(t.TempDir(), "repo.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	_, err = intdb.Migrate(ctx, conn, intdb.SQLite)
	require.NoError(t, err)
	return conn
}

func createUser(t *testing.T, repo UserRepository, username string) models.User {
	t.Helper()
	u := models.User{
		Name:         username,
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: "x",
		Role:         domain.RoleUser,
		Status:       domain.StatusActive,
	}
	require.NoError(t, repo.Create(context.Background(), &u))
	return u
}

func TestTripRepository(t *testing.T) {
	conn := openTestDB(t)
	ctx := context.Background()
	trips := TripRepository{DB: conn}

	paris := models.Trip{Country: models.CountryFrance, Origin: "Paris", Destination: "Nice"}
	lyon := models.Trip{Country: models.CountryFrance, Origin: "Lyon", Destination: "Marseille"}
	madrid := models.Trip{Country: models.CountrySpain, Origin: "Madrid", Destination: "Barcelona"}
	for _, tr := range []*models.Trip{&paris, &lyon, &madrid} {
		require.NoError(t, trips.Create(ctx, tr))
		require.NotZero(t, tr.ID)
	}

	t.Run("DistinctCountries only lists countries with trips", func(t *testing.T) {
		countries, err := trips.DistinctCountries(ctx)
		require.NoError(t, err)
		assert.ElementsMatch(t, []models.Country{models.CountryFrance, models.CountrySpain}, countries)
	})

	t.Run("ListByCountry filters and orders by id", func(t *testing.T) {
		fr, err := trips.ListByCountry(ctx, models.CountryFrance)
		require.NoError(t, err)
		require.Len(t, fr, 2)
		assert.Equal(t, paris.ID, fr[0].ID)
		assert.Equal(t, lyon.ID, fr[1].ID)

		de, err := trips.ListByCountry(ctx, models.CountryGermany)
		require.NoError(t, err)
		assert.Empty(t, de)
	})

	t.Run("GetByID", func(t *testing.T) {
		got, err := trips.GetByID(ctx, madrid.ID)
		require.NoError(t, err)
		assert.Equal(t, madrid, got)

		_, err = trips.GetByID(ctx, 9999)
		assert.True(t, domain.IsNotFound(err))
	})

	t.Run("Exists matches the full triple", func(t *testing.T) {
		ok, err := trips.Exists(ctx, paris)
		require.NoError(t, err)
		assert.True(t, ok)

		ok, err = trips.Exists(ctx, models.Trip{Country: models.CountrySpain, Origin: "Paris", Destination: "Nice"})
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("Delete missing trip", func(t *testing.T) {
		err := trips.Delete(ctx, 9999)
		assert.True(t, domain.IsNotFound(err))
	})
}

func TestVacationRepositoryScopesByUser(t *testing.T) {
	conn := openTestDB(t)
	ctx := context.Background()
	users := UserRepository{DB: conn}
	trips := TripRepository{DB: conn}
	vacations := VacationRepository{DB: conn}

	alice := createUser(t, users, "alice")
	bob := createUser(t, users, "bob")

	trip := models.Trip{Country: models.CountryFrance, Origin: "Paris", Destination: "Nice"}
	require.NoError(t, trips.Create(ctx, &trip))

	for _, v := range []models.Vacation{
		{UserID: alice.ID, Name: "Summer", TripID: trip.ID},
		{UserID: alice.ID, Name: "Summer", TripID: trip.ID},
		{UserID: bob.ID, Name: "Winter", TripID: trip.ID},
	} {
		v := v
		require.NoError(t, vacations.Create(ctx, &v))
		require.NotZero(t, v.ID)
	}

	got, err := vacations.ListByUser(ctx, alice.ID)
	require.NoError(t, err)
	require.Len(t, got, 2)
	for _, v := range got {
		assert.Equal(t, alice.ID, v.UserID)
		assert.Equal(t, "Summer", v.Name)
		assert.Equal(t, trip, v.Trip)
	}

	none, err := vacations.ListByUser(ctx, 9999)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestVacationRepositoryRejectsUnknownTrip(t *testing.T) {
	conn := openTestDB(t)
	ctx := context.Background()
	alice := createUser(t, UserRepository{DB: conn}, "alice")

	err := VacationRepository{DB: conn}.Create(ctx, &models.Vacation{UserID: alice.ID, Name: "Ghost", TripID: 42})
	assert.Error(t, err)
}

func TestDeletingTripCascadesToVacations(t *testing.T) {
	conn := openTestDB(t)
	ctx := context.Background()
	alice := createUser(t, UserRepository{DB: conn}, "alice")
	trips := TripRepository{DB: conn}
	vacations := VacationRepository{DB: conn}

	trip := models.Trip{Country: models.CountryGermany, Origin: "Berlin", Destination: "Munich"}
	require.NoError(t, trips.Create(ctx, &trip))
	require.NoError(t, vacations.Create(ctx, &models.Vacation{UserID: alice.ID, Name: "Oktoberfest", TripID: trip.ID}))

	require.NoError(t, trips.Delete(ctx, trip.ID))

	got, err := vacations.ListByUser(ctx, alice.ID)
	require.NoError(t, err)
	assert.Empty(t, got)

	var n int
	require.NoError(t, conn.QueryRowContext(ctx, `SELECT COUNT(*) FROM vacations`).Scan(&n))
	assert.Zero(t, n)
}

func TestUserRepository(t *testing.T) {
	conn := openTestDB(t)
	ctx := context.Background()
	users := UserRepository{DB: conn}
	alice := createUser(t, users, "alice")

	byEmail, err := users.GetByLogin(ctx, "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, alice, byEmail)

	byName, err := users.GetByLogin(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, alice.ID, byName.ID)

	byID, err := users.GetByID(ctx, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice", byID.Username)

	n, err := users.CountByEmailOrUsername(ctx, "other@example.com", "alice")
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	_, err = users.GetByLogin(ctx, "nobody")
	assert.True(t, domain.IsNotFound(err))
}
