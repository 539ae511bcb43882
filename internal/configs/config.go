package configs

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type DBconfig struct {
	URL string
}

// RabbitMQConfig is optional; an empty URL disables event publishing.
type RabbitMQConfig struct {
	URL string
}

type RESTconfig struct {
	PORT           string
	AllowedOrigins []string
}

type FluentConfig struct {
	Enabled   bool
	Host      string
	Port      int
	TagPrefix string
}

type LoggingConfig struct {
	Level string
}

type AppConfig struct {
	AppName  string
	Database DBconfig
	RabbitMQ RabbitMQConfig
	Rest     RESTconfig
	Fluent   FluentConfig
	Logging  LoggingConfig
}

// LoadConfig reads configuration from the environment, optionally
// loading a .env file first. A missing .env file is not an error.
func LoadConfig(envPath ...string) (*AppConfig, error) {
	var err error
	if len(envPath) > 0 {
		err = godotenv.Load(envPath[0])
	} else {
		err = godotenv.Load()
	}
	if err != nil {
		log.Printf("Info: Could not load .env file (path: %v): %v.\n", envPath, err)
	}

	cfg := &AppConfig{}

	cfg.AppName = os.Getenv("APP_NAME")
	if cfg.AppName == "" {
		cfg.AppName = "imobteste"
	}

	cfg.Logging.Level = os.Getenv("LOG_LEVEL")
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}

	cfg.Database.URL = os.Getenv("DATABASE_URL")
	if cfg.Database.URL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is required")
	}

	// Event publishing is best-effort; the service runs without a broker.
	cfg.RabbitMQ.URL = os.Getenv("RABBITMQ_URL")

	cfg.Rest.PORT = os.Getenv("PORT")
	if cfg.Rest.PORT == "" {
		cfg.Rest.PORT = "8080"
	}

	origins := os.Getenv("CORS_ALLOWED_ORIGINS")
	if origins == "" {
		origins = "http://localhost:5173"
	}
	for _, origin := range strings.Split(origins, ",") {
		if trimmed := strings.TrimSpace(origin); trimmed != "" {
			cfg.Rest.AllowedOrigins = append(cfg.Rest.AllowedOrigins, trimmed)
		}
	}

	cfg.Fluent.Enabled = os.Getenv("FLUENT_ENABLED") == "true"
	if cfg.Fluent.Enabled {
		cfg.Fluent.Host = os.Getenv("FLUENT_HOST")
		if cfg.Fluent.Host == "" {
			cfg.Fluent.Host = "127.0.0.1"
		}
		cfg.Fluent.Port = 24224
		if rawPort := os.Getenv("FLUENT_PORT"); rawPort != "" {
			port, err := strconv.Atoi(rawPort)
			if err != nil {
				return nil, fmt.Errorf("FLUENT_PORT must be a number: %w", err)
			}
			cfg.Fluent.Port = port
		}
		cfg.Fluent.TagPrefix = os.Getenv("FLUENT_TAG_PREFIX")
		if cfg.Fluent.TagPrefix == "" {
			cfg.Fluent.TagPrefix = "imobteste"
		}
	}

	return cfg, nil
}
