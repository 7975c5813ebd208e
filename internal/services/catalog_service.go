package services

import (
	"context"
	"strconv"
	"strings"

	"tripbuilder/internal/domain"
	"tripbuilder/internal/domain/models"
	"tripbuilder/internal/repositories"
	"tripbuilder/internal/utils"
)

const (
	CountryPlaceholder   = "Please select a country"
	ItineraryPlaceholder = "Please select an itinerary"

	maxLabelLen = 255
)

// CatalogService exposes the read-only trip catalog to the vacation form and
// the admin surface that maintains it.
type CatalogService struct {
	Trips     repositories.TripRepository
	RequestID string
}

// ListCountriesWithTrips returns the placeholder followed by every country
// that has at least one trip, in enumeration order.
func (s CatalogService) ListCountriesWithTrips(ctx context.Context) ([]models.Choice, error) {
	present, err := s.Trips.DistinctCountries(ctx)
	if err != nil {
		return nil, domain.InternalError{Err: err}
	}
	has := make(map[models.Country]bool, len(present))
	for _, c := range present {
		has[c] = true
	}

	out := []models.Choice{{Value: "", Label: CountryPlaceholder}}
	for _, info := range models.Countries {
		if has[info.Code] {
			out = append(out, models.Choice{Value: string(info.Code), Label: info.Label})
		}
	}
	return out, nil
}

// ListItineraries returns the placeholder followed by one choice per trip of
// the country. Empty or unknown countries never reach the database.
func (s CatalogService) ListItineraries(ctx context.Context, country string) ([]models.Choice, error) {
	out := []models.Choice{{Value: "", Label: ItineraryPlaceholder}}

	code := models.Country(strings.TrimSpace(country))
	if !code.Valid() {
		return out, nil
	}

	trips, err := s.Trips.ListByCountry(ctx, code)
	if err != nil {
		return nil, domain.InternalError{Err: err}
	}
	for _, t := range trips {
		out = append(out, models.TripChoice(t))
	}
	return out, nil
}

func (s CatalogService) ListTrips(ctx context.Context) ([]models.Trip, error) {
	trips, err := s.Trips.List(ctx)
	if err != nil {
		return nil, domain.InternalError{Err: err}
	}
	return trips, nil
}

func (s CatalogService) GetTrip(ctx context.Context, id int64) (models.Trip, error) {
	if id <= 0 {
		return models.Trip{}, domain.ValidationError{Field: "id", Msg: "invalid trip id"}
	}
	return s.Trips.GetByID(ctx, id)
}

func (s CatalogService) CreateTrip(ctx context.Context, in models.Trip) (models.Trip, error) {
	t, err := normalizeTrip(in)
	if err != nil {
		return models.Trip{}, err
	}
	if err := s.Trips.Create(ctx, &t); err != nil {
		return models.Trip{}, domain.InternalError{Err: err}
	}
	utils.LogEvent(s.RequestID, "catalog", "create_trip", "trip created", "trip_id", t.ID, "country", t.Country)
	return t, nil
}

func (s CatalogService) DeleteTrip(ctx context.Context, id int64) error {
	if id <= 0 {
		return domain.ValidationError{Field: "id", Msg: "invalid trip id"}
	}
	if err := s.Trips.Delete(ctx, id); err != nil {
		if domain.IsNotFound(err) {
			return err
		}
		return domain.InternalError{Err: err}
	}
	utils.LogEvent(s.RequestID, "catalog", "delete_trip", "trip deleted", "trip_id", id)
	return nil
}

// Seed inserts trips that are not already in the catalog and reports how
// many were added.
func (s CatalogService) Seed(ctx context.Context, trips []models.Trip) (int, error) {
	added := 0
	for i, in := range trips {
		t, err := normalizeTrip(in)
		if err != nil {
			return added, domain.ValidationError{Field: "trips", Msg: "entry " + strconv.Itoa(i+1) + ": " + err.Error(), Err: err}
		}
		exists, err := s.Trips.Exists(ctx, t)
		if err != nil {
			return added, domain.InternalError{Err: err}
		}
		if exists {
			continue
		}
		if err := s.Trips.Create(ctx, &t); err != nil {
			return added, domain.InternalError{Err: err}
		}
		added++
	}
	utils.LogEvent(s.RequestID, "catalog", "seed", "catalog seeded", "added", added, "total", len(trips))
	return added, nil
}

func normalizeTrip(in models.Trip) (models.Trip, error) {
	t := models.Trip{
		Country:     models.Country(strings.ToUpper(strings.TrimSpace(string(in.Country)))),
		Origin:      utils.NormalizeSpace(in.Origin),
		Destination: utils.NormalizeSpace(in.Destination),
	}
	if !t.Country.Valid() {
		return models.Trip{}, domain.ValidationError{Field: "country", Msg: "unknown country " + strings.TrimSpace(string(in.Country))}
	}
	if t.Origin == "" {
		return models.Trip{}, domain.ValidationError{Field: "origin", Msg: "required"}
	}
	if t.Destination == "" {
		return models.Trip{}, domain.ValidationError{Field: "destination", Msg: "required"}
	}
	if !utils.MaxLen(t.Origin, maxLabelLen) {
		return models.Trip{}, domain.ValidationError{Field: "origin", Msg: "too long"}
	}
	if !utils.MaxLen(t.Destination, maxLabelLen) {
		return models.Trip{}, domain.ValidationError{Field: "destination", Msg: "too long"}
	}
	return t, nil
}
