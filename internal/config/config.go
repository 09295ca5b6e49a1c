package config

import (
	"errors"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds application configuration loaded from environment variables.
type Config struct {
	Port               int           `envconfig:"PORT" default:"8080"`
	LogLevel           string        `envconfig:"LOG_LEVEL" default:"info"`
	DatabaseURL        string        `envconfig:"DATABASE_URL" required:"true"`
	AccessTokenSecret  string        `envconfig:"ACCESS_TOKEN_SECRET" required:"true"`
	TokenTTL           time.Duration `envconfig:"TOKEN_TTL" default:"1h"`
	StripeSecretKey    string        `envconfig:"STRIPE_SECRET_KEY" default:""`
	EnablePayments     bool          `envconfig:"ENABLE_PAYMENTS" default:"true"`
	EnableReservations bool          `envconfig:"ENABLE_RESERVATIONS" default:"true"`
	GatePlaceWrites    bool          `envconfig:"GATE_PLACE_WRITES" default:"true"`
	Version            string        `envconfig:"VERSION" default:"dev"`
}

// ErrStripeKeyRequired is returned when payments are enabled without a Stripe key.
var ErrStripeKeyRequired = errors.New("STRIPE_SECRET_KEY is required when ENABLE_PAYMENTS is true")

// Load reads configuration from environment variables into a Config struct.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}

	if cfg.EnablePayments && cfg.StripeSecretKey == "" {
		return nil, ErrStripeKeyRequired
	}

	return &cfg, nil
}
