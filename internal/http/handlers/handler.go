package handlers

import (
	"database/sql"

	"tripbuilder/internal/config"
	intdb "tripbuilder/internal/db"
	"tripbuilder/internal/http/middleware"
	"tripbuilder/internal/repositories"
	"tripbuilder/internal/services"

	"github.com/gin-gonic/gin"
)

// Handler carries the dependencies shared by every endpoint. Services are
// built per request so their log lines carry the request id.
type Handler struct {
	DB      *sql.DB
	Dialect intdb.Dialect
	Env     config.Env
	Metrics *middleware.Metrics
	Engine  *gin.Engine
}

func (h *Handler) catalog(c *gin.Context) services.CatalogService {
	return services.CatalogService{
		Trips:     repositories.TripRepository{DB: h.DB},
		RequestID: middleware.GetRequestID(c),
	}
}

func (h *Handler) vacations(c *gin.Context) services.VacationService {
	return services.VacationService{
		Catalog:   h.catalog(c),
		Vacations: repositories.VacationRepository{DB: h.DB},
		RequestID: middleware.GetRequestID(c),
	}
}

func (h *Handler) docs(c *gin.Context) services.DocsService {
	return services.DocsService{
		Users:     repositories.UserRepository{DB: h.DB},
		Vacations: repositories.VacationRepository{DB: h.DB},
		RequestID: middleware.GetRequestID(c),
	}
}

// Auth is exported for the router, which hands it to RequireAuth.
func (h *Handler) Auth(c *gin.Context) services.AuthService {
	return services.AuthService{
		Users:     repositories.UserRepository{DB: h.DB},
		Secret:    []byte(h.Env.JWTSecret),
		TTL:       h.Env.SessionTTL,
		RequestID: middleware.GetRequestID(c),
	}
}
