package config

import (
	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
)

// Throttle holds the per-scope rate-limit thresholds; passed explicitly to
// the limiter middleware at startup.
type Throttle struct {
	OrdersPerMinute  int `envconfig:"THROTTLE_ORDERS_PER_MINUTE" default:"10"`
	ReviewsPerMinute int `envconfig:"THROTTLE_REVIEWS_PER_MINUTE" default:"5"`
	MerchPerMinute   int `envconfig:"THROTTLE_MERCH_PER_MINUTE" default:"120"`
}

type Config struct {
	Port string `envconfig:"PORT" default:"8080"`

	// DATABASE_URL wins over the discrete POSTGRES_* settings when set
	DatabaseURL      string `envconfig:"DATABASE_URL"`
	PostgresHost     string `envconfig:"POSTGRES_HOST" default:"localhost"`
	PostgresPort     int    `envconfig:"POSTGRES_PORT" default:"5432"`
	PostgresUser     string `envconfig:"POSTGRES_USER" default:"postgres"`
	PostgresPassword string `envconfig:"POSTGRES_PASSWORD" default:"postgres"`
	PostgresDB       string `envconfig:"POSTGRES_DB" default:"schoolsite"`
	PostgresSSLMode  string `envconfig:"POSTGRES_SSLMODE" default:"disable"`

	JWTSecret string `envconfig:"JWT_SECRET" required:"true"`

	MediaRoot    string `envconfig:"MEDIA_ROOT" default:"./media"`
	MediaBaseURL string `envconfig:"MEDIA_BASE_URL" default:"/media"`

	// seed admin account, created on startup when missing
	AdminEmail    string `envconfig:"ADMIN_EMAIL"`
	AdminPassword string `envconfig:"ADMIN_PASSWORD"`

	Throttle Throttle
}

func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, errors.Wrap(err, "load config")
	}
	return cfg, nil
}
