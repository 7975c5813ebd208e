package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"strings"

	"tripbuilder/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

// Stringish accepts a JSON string, number or bool and keeps it as a string.
type Stringish string

func (s *Stringish) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	switch {
	case string(b) == "null" || len(b) == 0:
		*s = ""
		return nil
	case len(b) >= 2 && b[0] == '"' && b[len(b)-1] == '"':
		var str string
		if err := json.Unmarshal(b, &str); err != nil {
			return err
		}
		*s = Stringish(str)
		return nil
	default:
		*s = Stringish(strings.Trim(string(b), `"`))
		return nil
	}
}

func (s Stringish) String() string { return string(s) }

type vacationFormPayload struct {
	Name      Stringish `json:"name"`
	Country   Stringish `json:"country"`
	Itinerary Stringish `json:"itinerary"`
}

// bindVacationForm reads name/country/itinerary from a JSON body or from
// urlencoded/multipart fields. Missing keys are left empty.
func bindVacationForm(c *gin.Context) (services.FormData, bool) {
	if c.ContentType() == binding.MIMEJSON {
		var p vacationFormPayload
		if !BindJSONOrError(c, &p) {
			return services.FormData{}, false
		}
		return services.FormData{
			Name:      p.Name.String(),
			Country:   p.Country.String(),
			Itinerary: p.Itinerary.String(),
		}, true
	}
	return services.FormData{
		Name:      c.PostForm("name"),
		Country:   c.PostForm("country"),
		Itinerary: c.PostForm("itinerary"),
	}, true
}

// BindJSONOrError ensures body is present and parsable.
func BindJSONOrError[T any](c *gin.Context, dst *T) bool {
	if c.Request.Body == nil || c.Request.ContentLength == 0 {
		respondError(c, http.StatusBadRequest, "bad_request", "empty body", nil)
		return false
	}
	if err := c.ShouldBindJSON(dst); err != nil {
		respondError(c, http.StatusBadRequest, "bad_request", "invalid payload", err.Error())
		return false
	}
	return true
}
