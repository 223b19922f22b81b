package config

import (
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"solosphere-server/utils"
)

// Config holds all process configuration, read from the environment at startup
type Config struct {
	AppEnv            string `env:"APP_ENV" envDefault:"development"`
	Port              string `env:"PORT" envDefault:"9000"`
	MongoURI          string `env:"MONGO_URI,notEmpty"`
	DBName            string `env:"DB_NAME" envDefault:"soloSphere"`
	AccessTokenSecret string `env:"ACCESS_TOKEN_SECRET,notEmpty"`
	TokenTTLHours     int    `env:"TOKEN_TTL_HOURS" envDefault:"8760"`
}

// Load reads configuration from a .env file (if present) and the process
// environment. Missing required values are fatal.
func Load() Config {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	var c Config
	if err := env.Parse(&c); err != nil {
		utils.Fatal("invalid configuration", map[string]any{"error": err.Error()})
	}
	return c
}

// IsProduction reports whether the server runs with production cookie settings
func (c Config) IsProduction() bool {
	return c.AppEnv == "production"
}

// TokenTTL returns the session token lifetime
func (c Config) TokenTTL() time.Duration {
	return time.Duration(c.TokenTTLHours) * time.Hour
}
