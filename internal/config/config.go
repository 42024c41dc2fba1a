package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"

	"github.com/MrJamesThe3rd/clubshop/internal/club"
)

// Cart persistence backends.
const (
	CartBackendMemory   = "memory"
	CartBackendFile     = "file"
	CartBackendRedis    = "redis"
	CartBackendPostgres = "postgres"
)

type Config struct {
	App struct {
		Name string `envconfig:"APP_NAME" default:"Clubshop"`
		Port int    `envconfig:"PORT" default:"8080"`
	}

	API struct {
		BaseURL string        `envconfig:"CLUB_API_URL" default:"http://localhost:3000/api"`
		Timeout time.Duration `envconfig:"CLUB_API_TIMEOUT" default:"15s"`
	}

	Auth struct {
		Token string `envconfig:"IDENTITY_TOKEN"`
		Email string `envconfig:"BUYER_EMAIL"`
	}

	Club struct {
		Name     string `envconfig:"CLUB_NAME"`
		AgeGroup string `envconfig:"CLUB_AGE_GROUP"`
		Division string `envconfig:"CLUB_DIVISION"`
	}

	Cart struct {
		Backend string        `envconfig:"CART_BACKEND" default:"file"`
		Path    string        `envconfig:"CART_PATH" default:"cart.json"`
		Key     string        `envconfig:"CART_KEY" default:"default"`
		TTL     time.Duration `envconfig:"CART_TTL" default:"720h"`
	}

	Redis struct {
		Addr     string `envconfig:"REDIS_ADDR" default:"localhost:6379"`
		Password string `envconfig:"REDIS_PASSWORD" default:""`
		DB       int    `envconfig:"REDIS_DB" default:"0"`
	}

	DB struct {
		Host     string `envconfig:"DB_HOST" default:"localhost"`
		Port     int    `envconfig:"DB_PORT" default:"5432"`
		User     string `envconfig:"DB_USER" default:"postgres"`
		Password string `envconfig:"DB_PASSWORD" default:""`
		Name     string `envconfig:"DB_NAME" default:"clubshop"`
	}

	Server struct {
		Timeout        time.Duration `envconfig:"SERVER_TIMEOUT" default:"30s"`
		AllowedOrigins []string      `envconfig:"ALLOWED_ORIGINS" default:"http://localhost:5173"`
	}

	TUI struct {
		LogPath string `envconfig:"TUI_LOG_PATH" default:"clubshop.log"`
	}
}

func (c *Config) ConnectionString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		c.DB.User, c.DB.Password, c.DB.Host, c.DB.Port, c.DB.Name)
}

// Scope is the club context configured for this client.
func (c *Config) Scope() club.Scope {
	return club.Scope{
		Club:     c.Club.Name,
		AgeGroup: c.Club.AgeGroup,
		Division: c.Club.Division,
	}
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	switch cfg.Cart.Backend {
	case CartBackendMemory, CartBackendFile, CartBackendRedis, CartBackendPostgres:
	default:
		return nil, fmt.Errorf("unknown cart backend %q", cfg.Cart.Backend)
	}

	return &cfg, nil
}
