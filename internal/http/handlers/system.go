package handlers

import (
	"net/http"

	intdb "tripbuilder/internal/db"

	"github.com/gin-gonic/gin"
)

func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "trip builder is running"})
}

// DBCheck pings the database and reports tables that migrations have not
// created yet.
func (h *Handler) DBCheck(c *gin.Context) {
	if h.DB == nil {
		respondError(c, http.StatusInternalServerError, "db_unavailable", "database is not connected", nil)
		return
	}
	ctx := c.Request.Context()
	if err := h.DB.PingContext(ctx); err != nil {
		respondError(c, http.StatusServiceUnavailable, "db_unavailable", "database ping failed", err.Error())
		return
	}
	missing := intdb.MissingTables(ctx, h.DB, h.Dialect, intdb.Tables...)
	if len(missing) > 0 {
		respondError(c, http.StatusServiceUnavailable, "schema_incomplete", "run migrations first", gin.H{"missing_tables": missing})
		return
	}

	var trips int
	if err := h.DB.QueryRowContext(ctx, "SELECT COUNT(*) FROM trips").Scan(&trips); err != nil {
		respondError(c, http.StatusInternalServerError, "db_error", "failed to query trips", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "database connection OK", "dialect": h.Dialect, "trips_in_db": trips})
}

func (h *Handler) Routes(c *gin.Context) {
	if h.Engine == nil {
		respondError(c, http.StatusServiceUnavailable, "not_ready", "router is not ready", nil)
		return
	}
	routes := h.Engine.Routes()
	out := make([]gin.H, 0, len(routes))
	for _, rt := range routes {
		out = append(out, gin.H{
			"method":  rt.Method,
			"path":    rt.Path,
			"handler": rt.Handler,
		})
	}
	c.JSON(http.StatusOK, gin.H{"routes": out})
}
