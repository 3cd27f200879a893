package moodle

import (
	"fmt"
	"os"
	"time"
)

// LoadConfigFromEnv reads LMS connection settings from the process
// environment. The variable names are deployment conventions, not part
// of the client's contract.
func LoadConfigFromEnv() (Config, error) {
	cfg := Config{
		BaseURL:  os.Getenv("MOODLE_URL"),
		Username: os.Getenv("MOODLE_USERNAME"),
		Password: os.Getenv("MOODLE_PASSWORD"),
		Service:  os.Getenv("MOODLE_SERVICE"),
	}
	if cfg.BaseURL == "" {
		return Config{}, fmt.Errorf("MOODLE_URL is required")
	}
	if cfg.Username == "" || cfg.Password == "" {
		return Config{}, fmt.Errorf("MOODLE_USERNAME and MOODLE_PASSWORD are required")
	}
	if v := os.Getenv("MOODLE_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid MOODLE_TIMEOUT: %w", err)
		}
		cfg.Timeout = d
	}
	return cfg, nil
}
