// Package config defines the server configuration structures and loads them
// from an optional YAML file plus environment variables.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Configuration holds all runtime settings for the mortgage engine. The
// regulatory thresholds are NOT configuration; they live in
// mortgage.DefaultRules because they change with legislation, not
// deployment.
type Configuration struct {
	Server    Server
	Logging   Logging
	CORS      CORS
	RateLimit RateLimit
}

// Server holds HTTP listener settings.
type Server struct {
	Port      int
	StaticDir string
}

// Logging holds zap logger settings.
type Logging struct {
	Level  string // debug, info, warn, error
	Format string // json or console
}

// CORS holds the allowed browser origins for the form client.
type CORS struct {
	AllowedOrigins []string
}

// RateLimit holds the per-IP request budget; zero disables limiting.
type RateLimit struct {
	RequestsPerSecond float64
	Burst             int
}

// Load reads the YAML-formatted configuration at configPath, layered under
// MORTGAGE_-prefixed environment variables. An empty path uses defaults and
// environment only.
func Load(configPath string) (*Configuration, error) {
	v := viper.New()

	v.SetDefault("server.port", 8080)
	v.SetDefault("server.staticdir", "./web/static")
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")
	v.SetDefault("cors.allowedorigins", []string{"http://localhost:5173", "http://localhost:8080"})
	v.SetDefault("ratelimit.requestspersecond", 10)
	v.SetDefault("ratelimit.burst", 20)

	v.SetEnvPrefix("MORTGAGE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
		v.SetConfigType("yml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading config file, %s", err)
		}
	}

	var configuration Configuration
	if err := v.Unmarshal(&configuration); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %v", err)
	}
	return &configuration, nil
}
