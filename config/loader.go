package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

const (
	defaultPort      = 8080
	defaultTimeoutMS = 10000
)

// Config is the global application configuration
var Config AppConfig

// LoadAppConfig loads and validates the application configuration from
// config.yml. The PORT environment variable, when set, overrides the
// configured listening port.
func LoadAppConfig() error {
	paths := []string{"config.yml", "../config.yml"}
	var data []byte
	var err error
	for _, p := range paths {
		data, err = os.ReadFile(p)
		if err == nil {
			break
		}
	}
	if err != nil {
		return err
	}
	var cfg AppConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return err
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = defaultPort
	}
	if p := os.Getenv("PORT"); p != "" {
		port, err := strconv.Atoi(p)
		if err != nil {
			return fmt.Errorf("invalid PORT value %q: %w", p, err)
		}
		cfg.Server.Port = port
	}
	if cfg.Fetch.TimeoutMS == 0 {
		cfg.Fetch.TimeoutMS = defaultTimeoutMS
	}
	v := validator.New()
	if err := v.Struct(cfg); err != nil {
		return err
	}
	Config = cfg
	return nil
}
