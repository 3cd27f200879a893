package config

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"dario.cat/mergo"
	"gopkg.in/yaml.v3"
)

// simwatchYAML is the on-disk structure of simwatch.yaml. Durations are
// plain seconds, matching the operator-facing option names.
type simwatchYAML struct {
	RefreshIntervalSeconds   int                       `yaml:"refresh_interval_seconds"`
	IgnoreFilesLargerThan    *int64                    `yaml:"ignore_files_larger_than"`
	IgnoreFilesOlderThanDays *int                      `yaml:"ignore_files_older_than_days"`
	WakeupIntervalSeconds    int                       `yaml:"wakeup_interval_seconds"`
	PluginSettings           map[string]map[string]any `yaml:"plugin_settings"`
	Scheduler                schedulerYAML             `yaml:"scheduler"`
	Pipeline                 pipelineYAML              `yaml:"pipeline"`
	Pool                     poolYAML                  `yaml:"pool"`
	API                      apiYAML                   `yaml:"api"`
}

type schedulerYAML struct {
	CoursesIntervalSeconds      int `yaml:"courses_interval_seconds"`
	AssignmentsIntervalSeconds  int `yaml:"assignments_interval_seconds"`
	AssignmentsBatchSize        int `yaml:"assignments_batch_size"`
	ActiveIntervalSeconds       int `yaml:"active_interval_seconds"`
	ActiveBatchSize             int `yaml:"active_batch_size"`
	DeadlineIntervalSeconds     int `yaml:"deadline_interval_seconds"`
	DeadlineBatchSize           int `yaml:"deadline_batch_size"`
	DeadlineWindowBeforeSeconds int `yaml:"deadline_window_before_seconds"`
	DeadlineWindowAfterSeconds  int `yaml:"deadline_window_after_seconds"`
}

type pipelineYAML struct {
	BatchSize int `yaml:"batch_size"`
}

type poolYAML struct {
	Workers   int `yaml:"workers"`
	QueueSize int `yaml:"queue_size"`
}

type apiYAML struct {
	ListenAddr string `yaml:"listen_addr"`
}

func defaultYAML() *simwatchYAML {
	return &simwatchYAML{
		RefreshIntervalSeconds: 300,
		WakeupIntervalSeconds:  60,
		Scheduler: schedulerYAML{
			CoursesIntervalSeconds:      3600,
			AssignmentsIntervalSeconds:  900,
			AssignmentsBatchSize:        10,
			ActiveIntervalSeconds:       3600,
			ActiveBatchSize:             10,
			DeadlineIntervalSeconds:     120,
			DeadlineBatchSize:           20,
			DeadlineWindowBeforeSeconds: 3600,
			DeadlineWindowAfterSeconds:  1800,
		},
		Pipeline: pipelineYAML{BatchSize: 4},
		Pool:     poolYAML{Workers: 2, QueueSize: 4},
		API:      apiYAML{ListenAddr: ":8080"},
	}
}

// Initialize loads, validates and returns the ready-to-use
// configuration. This is the primary entry point.
//
// Steps performed:
//  1. Read simwatch.yaml from configDir
//  2. Expand environment variables
//  3. Parse YAML
//  4. Merge user values over built-in defaults
//  5. Validate
//  6. Return the immutable Config
func Initialize(_ context.Context, configDir string) (*Config, error) {
	log := slog.With("config_dir", configDir)
	log.Info("Initializing configuration")

	raw, err := loadYAML(configDir, "simwatch.yaml")
	if err != nil {
		return nil, NewLoadError("simwatch.yaml", err)
	}

	merged := defaultYAML()
	if err := mergo.Merge(merged, raw, mergo.WithOverride); err != nil {
		return nil, NewLoadError("simwatch.yaml", fmt.Errorf("merging defaults: %w", err))
	}

	cfg := resolve(merged)
	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	log.Info("Configuration initialized successfully",
		"refresh_interval", cfg.RefreshInterval,
		"wakeup_interval", cfg.Scheduler.WakeupInterval,
		"pool_workers", cfg.Pool.Workers,
		"plugins_configured", len(cfg.PluginSettings))
	return cfg, nil
}

func loadYAML(configDir, filename string) (*simwatchYAML, error) {
	path := filepath.Join(configDir, filename)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return nil, err
	}

	data = ExpandEnv(data)

	var cfg simwatchYAML
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidYAML, err)
	}
	return &cfg, nil
}

func resolve(y *simwatchYAML) *Config {
	cfg := &Config{
		RefreshInterval:       time.Duration(y.RefreshIntervalSeconds) * time.Second,
		IgnoreFilesLargerThan: y.IgnoreFilesLargerThan,
		PluginSettings:        y.PluginSettings,
		Scheduler: SchedulerConfig{
			WakeupInterval:       time.Duration(y.WakeupIntervalSeconds) * time.Second,
			CoursesInterval:      time.Duration(y.Scheduler.CoursesIntervalSeconds) * time.Second,
			AssignmentsInterval:  time.Duration(y.Scheduler.AssignmentsIntervalSeconds) * time.Second,
			AssignmentsBatchSize: y.Scheduler.AssignmentsBatchSize,
			ActiveInterval:       time.Duration(y.Scheduler.ActiveIntervalSeconds) * time.Second,
			ActiveBatchSize:      y.Scheduler.ActiveBatchSize,
			DeadlineInterval:     time.Duration(y.Scheduler.DeadlineIntervalSeconds) * time.Second,
			DeadlineBatchSize:    y.Scheduler.DeadlineBatchSize,
			DeadlineWindowBefore: time.Duration(y.Scheduler.DeadlineWindowBeforeSeconds) * time.Second,
			DeadlineWindowAfter:  time.Duration(y.Scheduler.DeadlineWindowAfterSeconds) * time.Second,
		},
		Pipeline: PipelineConfig{BatchSize: y.Pipeline.BatchSize},
		Pool:     PoolConfig{Workers: y.Pool.Workers, QueueSize: y.Pool.QueueSize},
		API:      APIConfig{ListenAddr: y.API.ListenAddr},
	}
	if y.IgnoreFilesOlderThanDays != nil {
		age := time.Duration(*y.IgnoreFilesOlderThanDays) * 24 * time.Hour
		cfg.IgnoreFilesOlderThan = &age
	}
	if cfg.PluginSettings == nil {
		cfg.PluginSettings = map[string]map[string]any{}
	}
	return cfg
}

func validate(cfg *Config) error {
	if cfg.RefreshInterval <= 0 {
		return NewValidationError("refresh_interval_seconds", fmt.Errorf("%w: must be positive", ErrInvalidValue))
	}
	if cfg.IgnoreFilesLargerThan != nil && *cfg.IgnoreFilesLargerThan <= 0 {
		return NewValidationError("ignore_files_larger_than", fmt.Errorf("%w: must be positive when set", ErrInvalidValue))
	}
	if cfg.IgnoreFilesOlderThan != nil && *cfg.IgnoreFilesOlderThan <= 0 {
		return NewValidationError("ignore_files_older_than_days", fmt.Errorf("%w: must be positive when set", ErrInvalidValue))
	}

	s := cfg.Scheduler
	if s.WakeupInterval <= 0 {
		return NewValidationError("wakeup_interval_seconds", fmt.Errorf("%w: must be positive", ErrInvalidValue))
	}
	intervals := map[string]time.Duration{
		"scheduler.courses_interval_seconds":     s.CoursesInterval,
		"scheduler.assignments_interval_seconds": s.AssignmentsInterval,
		"scheduler.active_interval_seconds":      s.ActiveInterval,
		"scheduler.deadline_interval_seconds":    s.DeadlineInterval,
	}
	for field, d := range intervals {
		if d <= 0 {
			return NewValidationError(field, fmt.Errorf("%w: must be positive", ErrInvalidValue))
		}
	}
	batches := map[string]int{
		"scheduler.assignments_batch_size": s.AssignmentsBatchSize,
		"scheduler.active_batch_size":      s.ActiveBatchSize,
		"scheduler.deadline_batch_size":    s.DeadlineBatchSize,
		"pipeline.batch_size":              cfg.Pipeline.BatchSize,
		"pool.workers":                     cfg.Pool.Workers,
	}
	for field, n := range batches {
		if n <= 0 {
			return NewValidationError(field, fmt.Errorf("%w: must be positive", ErrInvalidValue))
		}
	}
	if s.DeadlineWindowBefore < 0 || s.DeadlineWindowAfter < 0 {
		return NewValidationError("scheduler.deadline_window", fmt.Errorf("%w: window bounds must not be negative", ErrInvalidValue))
	}
	if cfg.API.ListenAddr == "" {
		return NewValidationError("api.listen_addr", fmt.Errorf("%w: must not be empty", ErrInvalidValue))
	}
	return nil
}
