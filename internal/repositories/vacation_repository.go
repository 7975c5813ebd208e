package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"tripbuilder/internal/domain/models"
)

type VacationRepository struct {
	DB *sql.DB
}

func (r VacationRepository) Create(ctx context.Context, v *models.Vacation) error {
	res, err := r.DB.ExecContext(ctx,
		`INSERT INTO vacations (user_id, name, trip_id) VALUES (?, ?, ?)`,
		v.UserID, v.Name, v.TripID,
	)
	if err != nil {
		return fmt.Errorf("insert vacation: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("vacation insert id: %w", err)
	}
	v.ID = id
	return nil
}

// ListByUser returns the user's vacations with their trip, oldest first.
func (r VacationRepository) ListByUser(ctx context.Context, userID int64) ([]models.Vacation, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT v.id, v.user_id, v.name, v.trip_id, t.country, t.origin, t.destination
		FROM vacations v
		JOIN trips t ON t.id = v.trip_id
		WHERE v.user_id = ?
		ORDER BY v.id ASC
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("query vacations: %w", err)
	}
	defer rows.Close()

	out := []models.Vacation{}
	for rows.Next() {
		var (
			v       models.Vacation
			country string
		)
		if err := rows.Scan(&v.ID, &v.UserID, &v.Name, &v.TripID, &country, &v.Trip.Origin, &v.Trip.Destination); err != nil {
			return nil, fmt.Errorf("scan vacation: %w", err)
		}
		v.Trip.ID = v.TripID
		v.Trip.Country = models.Country(country)
		out = append(out, v)
	}
	return out, rows.Err()
}
