package config

import (
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const defaultSessionTTL = 24 * time.Hour

type Env struct {
	AppAddr            string        `mapstructure:"APP_ADDR"`
	GinMode            string        `mapstructure:"GIN_MODE"`
	DBDriver           string        `mapstructure:"DB_DRIVER"`
	DBDSN              string        `mapstructure:"DB_DSN"`
	JWTSecret          string        `mapstructure:"JWT_SECRET"`
	SessionTTL         time.Duration `mapstructure:"SESSION_TTL"`
	CORSAllowedOrigins string        `mapstructure:"CORS_ALLOWED_ORIGINS"`
	LogLevel           string        `mapstructure:"LOG_LEVEL"`
}

// LoadEnv reads configuration from the process environment, optionally
// seeded from a .env file in the working directory.
func LoadEnv() Env {
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("APP_ADDR", ":8080")
	v.SetDefault("GIN_MODE", "")
	v.SetDefault("DB_DRIVER", "mysql")
	v.SetDefault("DB_DSN", "root:@tcp(127.0.0.1:3306)/trip_builder?parseTime=true&loc=Local&charset=utf8mb4&timeout=5s&readTimeout=30s&writeTimeout=30s")
	v.SetDefault("JWT_SECRET", "dev-secret-change-me")
	v.SetDefault("SESSION_TTL", defaultSessionTTL.String())
	v.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000,http://127.0.0.1:3000,http://localhost:5173,http://127.0.0.1:5173")
	v.SetDefault("LOG_LEVEL", "info")

	var env Env
	_ = v.Unmarshal(&env)

	env.AppAddr = strings.TrimSpace(env.AppAddr)
	if env.AppAddr == "" {
		env.AppAddr = ":8080"
	}
	env.GinMode = strings.TrimSpace(env.GinMode)
	env.DBDriver = strings.ToLower(strings.TrimSpace(env.DBDriver))
	env.DBDSN = strings.TrimSpace(env.DBDSN)
	if env.SessionTTL <= 0 {
		env.SessionTTL = defaultSessionTTL
	}
	return env
}

// AllowedOrigins splits CORS_ALLOWED_ORIGINS into a clean list.
func (e Env) AllowedOrigins() []string {
	out := []string{}
	for _, o := range strings.Split(e.CORSAllowedOrigins, ",") {
		o = strings.TrimSpace(o)
		if o != "" {
			out = append(out, o)
		}
	}
	return out
}
