package services

import (
	"context"
	"fmt"
	"strings"

	"tripbuilder/internal/domain"
	"tripbuilder/internal/domain/models"
	"tripbuilder/internal/utils"
)

// FormState is the position of a vacation form in the
// country -> itinerary -> submit flow.
type FormState string

const (
	StateEmpty           FormState = "empty"
	StateCountrySelected FormState = "country_selected"
	StateReady           FormState = "ready"
	StateSubmitted       FormState = "submitted"
)

const (
	msgRequired = "This field is required."
	msgTooLong  = "Ensure this value has at most 255 characters."
)

func msgInvalidChoice(v string) string {
	return fmt.Sprintf("Select a valid choice. %s is not one of the available choices.", v)
}

// FormData is the raw input of a vacation form submission.
type FormData struct {
	Name      string `json:"name"`
	Country   string `json:"country"`
	Itinerary string `json:"itinerary"`
}

func (d FormData) normalized() FormData {
	return FormData{
		Name:      strings.TrimSpace(d.Name),
		Country:   strings.TrimSpace(d.Country),
		Itinerary: strings.TrimSpace(d.Itinerary),
	}
}

// OptionSource supplies the two option lists of the form.
type OptionSource interface {
	ListCountriesWithTrips(ctx context.Context) ([]models.Choice, error)
	ListItineraries(ctx context.Context, country string) ([]models.Choice, error)
}

// VacationForm holds submitted data plus the option sets computed for it.
type VacationForm struct {
	Data        FormData          `json:"data"`
	Countries   []models.Choice   `json:"countries"`
	Itineraries []models.Choice   `json:"itineraries"`
	Errors      domain.FormErrors `json:"errors,omitempty"`
}

// CleanedVacation is the validated form output.
type CleanedVacation struct {
	Name    string
	Country models.Country
	TripID  int64
}

// BuildVacationForm computes the country options, then the itinerary options
// for the selected country. Both are recomputed on every call.
func BuildVacationForm(ctx context.Context, src OptionSource, data FormData) (*VacationForm, error) {
	data = data.normalized()

	countries, err := src.ListCountriesWithTrips(ctx)
	if err != nil {
		return nil, err
	}
	itineraries, err := src.ListItineraries(ctx, data.Country)
	if err != nil {
		return nil, err
	}

	return &VacationForm{
		Data:        data,
		Countries:   countries,
		Itineraries: itineraries,
	}, nil
}

func (f *VacationForm) State() FormState {
	switch {
	case f.Data.Country == "":
		return StateEmpty
	case f.Data.Itinerary == "":
		return StateCountrySelected
	default:
		return StateReady
	}
}

// Validate checks every field against the current option sets. On failure
// f.Errors is populated and ok is false.
func (f *VacationForm) Validate() (CleanedVacation, bool) {
	errs := domain.FormErrors{}

	switch {
	case f.Data.Name == "":
		errs.Add("name", msgRequired)
	case !utils.MaxLen(f.Data.Name, maxLabelLen):
		errs.Add("name", msgTooLong)
	}

	switch {
	case f.Data.Country == "":
		errs.Add("country", msgRequired)
	case !offered(f.Countries, f.Data.Country):
		errs.Add("country", msgInvalidChoice(f.Data.Country))
	}

	var tripID int64
	switch {
	case f.Data.Itinerary == "":
		errs.Add("itinerary", msgRequired)
	case !offered(f.Itineraries, f.Data.Itinerary):
		errs.Add("itinerary", msgInvalidChoice(f.Data.Itinerary))
	default:
		id, ok := utils.ParseID(f.Data.Itinerary)
		if !ok {
			errs.Add("itinerary", msgInvalidChoice(f.Data.Itinerary))
		}
		tripID = id
	}

	if !errs.Empty() {
		f.Errors = errs
		return CleanedVacation{}, false
	}
	f.Errors = nil
	return CleanedVacation{
		Name:    f.Data.Name,
		Country: models.Country(f.Data.Country),
		TripID:  tripID,
	}, true
}

func offered(choices []models.Choice, value string) bool {
	if value == "" {
		return false
	}
	for _, c := range choices {
		if c.Value == value {
			return true
		}
	}
	return false
}
