package api

import (
	"database/sql"
	"log/slog"
	stdhttp "net/http"

	"tripbuilder/internal/config"
	intdb "tripbuilder/internal/db"
	"tripbuilder/internal/domain"
	h "tripbuilder/internal/http/handlers"
	"tripbuilder/internal/http/middleware"
	"tripbuilder/internal/services"

	"github.com/gin-gonic/gin"
)

func NewRouter(env config.Env, conn *sql.DB, dialect intdb.Dialect) *gin.Engine {
	if env.GinMode != "" {
		gin.SetMode(env.GinMode)
	}

	metrics := middleware.NewMetrics()

	r := gin.New()
	r.Use(
		middleware.RequestID(),
		middleware.Logger(slog.Default()),
		gin.Recovery(),
		middleware.CORS(env.AllowedOrigins()),
		metrics.Middleware(),
	)

	if err := r.SetTrustedProxies(nil); err != nil {
		slog.Warn("failed to set trusted proxies", "error", err)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"error":      "route not found",
			"path":       c.Request.URL.Path,
			"method":     c.Request.Method,
			"request_id": middleware.GetRequestID(c),
		})
	})

	hd := &h.Handler{
		DB:      conn,
		Dialect: dialect,
		Env:     env,
		Metrics: metrics,
		Engine:  r,
	}
	authn := services.AuthService{Secret: []byte(env.JWTSecret), TTL: env.SessionTTL}

	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	// Vacation pages
	pages := r.Group("/", middleware.RequireAuth(authn))
	{
		pages.GET("", hd.Index)
		pages.GET("/new_vacation", hd.NewVacationForm)
		pages.POST("/new_vacation", hd.CreateVacation)
		pages.Any("/country_itineraries", hd.CountryItineraries)
		pages.GET("/vacations/summary.pdf", hd.VacationSummary)
	}

	api := r.Group("/api")
	{
		api.GET("/health", hd.Health)
		api.GET("/db-check", hd.DBCheck)
		api.GET("/routes", hd.Routes)

		// Auth
		auth := api.Group("/auth")
		auth.POST("/register", hd.Register)
		auth.POST("/login", hd.Login)
		auth.POST("/logout", hd.Logout)

		// Trip catalog (admin)
		trips := api.Group("/trips", middleware.RequireAuth(authn), middleware.RequireRoles(domain.RoleAdmin))
		trips.GET("", hd.ListTrips)
		trips.POST("", hd.CreateTrip)
		trips.DELETE("/:id", hd.DeleteTrip)

		// Accounts (admin)
		users := api.Group("/users", middleware.RequireAuth(authn), middleware.RequireRoles(domain.RoleAdmin))
		users.GET("", hd.ListUsers)
	}

	return r
}
