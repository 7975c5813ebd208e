package services

import (
	"context"

	"tripbuilder/internal/domain"
	"tripbuilder/internal/domain/models"
	"tripbuilder/internal/repositories"
	"tripbuilder/internal/utils"
)

// SubmitResult is either a created vacation (State == StateSubmitted) or the
// redisplayed form with its errors.
type SubmitResult struct {
	State     FormState
	Form      *VacationForm
	Vacation  models.Vacation
	Vacations []models.Vacation
}

func (r SubmitResult) Created() bool {
	return r.State == StateSubmitted
}

type VacationService struct {
	Catalog   OptionSource
	Vacations repositories.VacationRepository
	RequestID string
}

func (s VacationService) ListForUser(ctx context.Context, userID int64) ([]models.Vacation, error) {
	if userID <= 0 {
		return nil, domain.UnauthorizedError{Msg: "login required"}
	}
	out, err := s.Vacations.ListByUser(ctx, userID)
	if err != nil {
		return nil, domain.InternalError{Err: err}
	}
	return out, nil
}

// NewForm builds a form for partially entered data.
func (s VacationService) NewForm(ctx context.Context, data FormData) (*VacationForm, error) {
	form, err := BuildVacationForm(ctx, s.Catalog, data)
	if err != nil {
		return nil, err
	}
	return form, nil
}

// Reset discards any in-progress selection.
func (s VacationService) Reset(ctx context.Context, userID int64) (*VacationForm, []models.Vacation, error) {
	list, err := s.ListForUser(ctx, userID)
	if err != nil {
		return nil, nil, err
	}
	form, err := s.NewForm(ctx, FormData{})
	if err != nil {
		return nil, nil, err
	}
	return form, list, nil
}

// Submit validates data and, when valid, stores one vacation owned by
// userID. Invalid input yields a result carrying the form and no error.
func (s VacationService) Submit(ctx context.Context, userID int64, data FormData) (SubmitResult, error) {
	if userID <= 0 {
		return SubmitResult{}, domain.UnauthorizedError{Msg: "login required"}
	}

	form, err := s.NewForm(ctx, data)
	if err != nil {
		return SubmitResult{}, err
	}

	cleaned, ok := form.Validate()
	if !ok {
		utils.LogEvent(s.RequestID, "vacation", "submit", "form is invalid",
			"user_id", userID, "errors", form.Errors.Error())
		return SubmitResult{State: form.State(), Form: form}, nil
	}

	v := models.Vacation{
		UserID: userID,
		Name:   cleaned.Name,
		TripID: cleaned.TripID,
	}
	if err := s.Vacations.Create(ctx, &v); err != nil {
		return SubmitResult{}, domain.InternalError{Err: err}
	}
	utils.LogEvent(s.RequestID, "vacation", "submit", "vacation created",
		"user_id", userID, "vacation_id", v.ID, "trip_id", v.TripID)

	list, err := s.ListForUser(ctx, userID)
	if err != nil {
		return SubmitResult{}, err
	}
	for _, item := range list {
		if item.ID == v.ID {
			v = item
			break
		}
	}

	return SubmitResult{
		State:     StateSubmitted,
		Form:      form,
		Vacation:  v,
		Vacations: list,
	}, nil
}
