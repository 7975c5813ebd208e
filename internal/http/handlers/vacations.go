package handlers

import (
	"net/http"

	"tripbuilder/internal/domain/models"
	"tripbuilder/internal/http/middleware"
	"tripbuilder/internal/services"

	"github.com/gin-gonic/gin"
)

type vacationListResponse struct {
	Vacations []models.Vacation `json:"vacations"`
}

type formResponse struct {
	State     services.FormState     `json:"state"`
	Form      *services.VacationForm `json:"form"`
	Vacation  *models.Vacation       `json:"vacation,omitempty"`
	Vacations []models.Vacation      `json:"vacations,omitempty"`
}

// Index handles GET /: the caller's vacations, oldest first.
func (h *Handler) Index(c *gin.Context) {
	list, err := h.vacations(c).ListForUser(c.Request.Context(), middleware.GetUserID(c))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, vacationListResponse{Vacations: list})
}

// NewVacationForm handles GET /new_vacation. With ?reset it drops any
// in-progress selection and returns the list view instead.
func (h *Handler) NewVacationForm(c *gin.Context) {
	ctx := c.Request.Context()
	svc := h.vacations(c)

	if _, reset := c.GetQuery("reset"); reset {
		form, list, err := svc.Reset(ctx, middleware.GetUserID(c))
		if err != nil {
			RespondDomainError(c, err)
			return
		}
		c.JSON(http.StatusOK, formResponse{State: form.State(), Form: form, Vacations: list})
		return
	}

	form, err := svc.NewForm(ctx, services.FormData{})
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, formResponse{State: form.State(), Form: form})
}

// CreateVacation handles POST /new_vacation.
func (h *Handler) CreateVacation(c *gin.Context) {
	data, ok := bindVacationForm(c)
	if !ok {
		return
	}
	res, err := h.vacations(c).Submit(c.Request.Context(), middleware.GetUserID(c), data)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	if !res.Created() {
		c.JSON(http.StatusUnprocessableEntity, formResponse{State: res.State, Form: res.Form})
		return
	}
	if h.Metrics != nil {
		h.Metrics.VacationCreated()
	}
	c.JSON(http.StatusCreated, formResponse{
		State:     res.State,
		Form:      res.Form,
		Vacation:  &res.Vacation,
		Vacations: res.Vacations,
	})
}

// CountryItineraries handles POST /country_itineraries: the form is rebuilt
// for the posted country so the itinerary selector can be refreshed. Any
// other method is rejected before the body is read.
func (h *Handler) CountryItineraries(c *gin.Context) {
	if c.Request.Method != http.MethodPost {
		respondError(c, http.StatusBadRequest, "bad_request", "country itineraries only accept POST", nil)
		return
	}
	data, ok := bindVacationForm(c)
	if !ok {
		return
	}
	form, err := h.vacations(c).NewForm(c.Request.Context(), data)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, formResponse{State: form.State(), Form: form})
}

// VacationSummary handles GET /vacations/summary.pdf.
func (h *Handler) VacationSummary(c *gin.Context) {
	pdf, filename, err := h.docs(c).VacationSummary(c.Request.Context(), middleware.GetUserID(c))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}
