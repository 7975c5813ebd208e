package models

import (
	"fmt"
	"strconv"
)

// Country is one of the closed set of codes a Trip can be tagged with.
type Country string

const (
	CountryFrance  Country = "FR"
	CountrySpain   Country = "ES"
	CountryGermany Country = "DE"
)

type CountryInfo struct {
	Code  Country `json:"code"`
	Label string  `json:"label"`
}

// Countries is the fixed enumeration order used for every country listing.
var Countries = []CountryInfo{
	{Code: CountryFrance, Label: "France"},
	{Code: CountrySpain, Label: "Spain"},
	{Code: CountryGermany, Label: "Germany"},
}

func (c Country) Valid() bool {
	for _, info := range Countries {
		if info.Code == c {
			return true
		}
	}
	return false
}

func (c Country) Label() string {
	for _, info := range Countries {
		if info.Code == c {
			return info.Label
		}
	}
	return string(c)
}

// Trip is read-only reference data: one origin/destination pair in a country.
type Trip struct {
	ID          int64   `json:"id" yaml:"-"`
	Country     Country `json:"country" yaml:"country"`
	Origin      string  `json:"origin" yaml:"origin"`
	Destination string  `json:"destination" yaml:"destination"`
}

// Itinerary is the option label shown in the itinerary selector.
func (t Trip) Itinerary() string {
	return t.Origin + " - " + t.Destination
}

func (t Trip) String() string {
	return fmt.Sprintf("[%s] %s -> %s", t.Country, t.Origin, t.Destination)
}

// Choice is one option of a select field. Value "" is the placeholder.
type Choice struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

func TripChoice(t Trip) Choice {
	return Choice{Value: strconv.FormatInt(t.ID, 10), Label: t.Itinerary()}
}
