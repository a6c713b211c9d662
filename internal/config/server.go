package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// ServerConfig is the API server's runtime configuration, loaded from
// SEQ_-prefixed environment variables.
type ServerConfig struct {
	Port           int      `envconfig:"PORT" default:"8080"`
	Env            string   `envconfig:"ENV" default:"development"`
	AllowedOrigins []string `envconfig:"ALLOWED_ORIGINS" default:"*"`
	LogLevel       string   `envconfig:"LOG_LEVEL" default:"info"`
}

// LoadServer reads the server configuration from the environment.
func LoadServer() (*ServerConfig, error) {
	var c ServerConfig
	if err := envconfig.Process("SEQ", &c); err != nil {
		return nil, fmt.Errorf("load server config from env: %w", err)
	}
	return &c, nil
}
