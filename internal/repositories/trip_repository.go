package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"tripbuilder/internal/domain"
	"tripbuilder/internal/domain/models"
)

type TripRepository struct {
	DB *sql.DB
}

// DistinctCountries returns every country code that has at least one trip.
func (r TripRepository) DistinctCountries(ctx context.Context) ([]models.Country, error) {
	rows, err := r.DB.QueryContext(ctx, `SELECT DISTINCT country FROM trips`)
	if err != nil {
		return nil, fmt.Errorf("query trip countries: %w", err)
	}
	defer rows.Close()

	out := []models.Country{}
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return nil, fmt.Errorf("scan trip country: %w", err)
		}
		out = append(out, models.Country(c))
	}
	return out, rows.Err()
}

func (r TripRepository) ListByCountry(ctx context.Context, country models.Country) ([]models.Trip, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, country, origin, destination
		FROM trips
		WHERE country = ?
		ORDER BY id ASC
	`, string(country))
	if err != nil {
		return nil, fmt.Errorf("query trips by country: %w", err)
	}
	defer rows.Close()
	return scanTrips(rows)
}

func (r TripRepository) List(ctx context.Context) ([]models.Trip, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, country, origin, destination
		FROM trips
		ORDER BY id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("query trips: %w", err)
	}
	defer rows.Close()
	return scanTrips(rows)
}

func (r TripRepository) GetByID(ctx context.Context, id int64) (models.Trip, error) {
	var (
		t       models.Trip
		country string
	)
	err := r.DB.QueryRowContext(ctx, `
		SELECT id, country, origin, destination
		FROM trips
		WHERE id = ?
		LIMIT 1
	`, id).Scan(&t.ID, &country, &t.Origin, &t.Destination)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Trip{}, domain.NotFoundError{Resource: "trip", Err: err}
		}
		return models.Trip{}, fmt.Errorf("get trip %d: %w", id, err)
	}
	t.Country = models.Country(country)
	return t, nil
}

// Exists matches on the full (country, origin, destination) triple.
func (r TripRepository) Exists(ctx context.Context, t models.Trip) (bool, error) {
	var n int
	err := r.DB.QueryRowContext(ctx, `
		SELECT COUNT(*)
		FROM trips
		WHERE country = ? AND origin = ? AND destination = ?
	`, string(t.Country), t.Origin, t.Destination).Scan(&n)
	if err != nil {
		return false, fmt.Errorf("check trip: %w", err)
	}
	return n > 0, nil
}

func (r TripRepository) Create(ctx context.Context, t *models.Trip) error {
	res, err := r.DB.ExecContext(ctx,
		`INSERT INTO trips (country, origin, destination) VALUES (?, ?, ?)`,
		string(t.Country), t.Origin, t.Destination,
	)
	if err != nil {
		return fmt.Errorf("insert trip: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("trip insert id: %w", err)
	}
	t.ID = id
	return nil
}

// Delete removes a trip; vacations referencing it go with it (FK cascade).
func (r TripRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM trips WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete trip %d: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete trip %d: %w", id, err)
	}
	if n == 0 {
		return domain.NotFoundError{Resource: "trip"}
	}
	return nil
}

func scanTrips(rows *sql.Rows) ([]models.Trip, error) {
	out := []models.Trip{}
	for rows.Next() {
		var (
			t       models.Trip
			country string
		)
		if err := rows.Scan(&t.ID, &country, &t.Origin, &t.Destination); err != nil {
			return nil, fmt.Errorf("scan trip: %w", err)
		}
		t.Country = models.Country(country)
		out = append(out, t)
	}
	return out, rows.Err()
}
