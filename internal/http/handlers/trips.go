package handlers

import (
	"net/http"

	"tripbuilder/internal/domain/models"
	"tripbuilder/internal/utils"

	"github.com/gin-gonic/gin"
)

type tripPayload struct {
	Country     string `json:"country"`
	Origin      string `json:"origin"`
	Destination string `json:"destination"`
}

// ListTrips handles GET /api/trips.
func (h *Handler) ListTrips(c *gin.Context) {
	trips, err := h.catalog(c).ListTrips(c.Request.Context())
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"trips": trips})
}

// CreateTrip handles POST /api/trips.
func (h *Handler) CreateTrip(c *gin.Context) {
	var p tripPayload
	if !BindJSONOrError(c, &p) {
		return
	}
	t, err := h.catalog(c).CreateTrip(c.Request.Context(), models.Trip{
		Country:     models.Country(p.Country),
		Origin:      p.Origin,
		Destination: p.Destination,
	})
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, t)
}

// DeleteTrip handles DELETE /api/trips/:id. Vacations on the trip go with it.
func (h *Handler) DeleteTrip(c *gin.Context) {
	id, ok := utils.ParseID(c.Param("id"))
	if !ok {
		respondError(c, http.StatusBadRequest, "validation_error", "invalid trip id", nil)
		return
	}
	if err := h.catalog(c).DeleteTrip(c.Request.Context(), id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
