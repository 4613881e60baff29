package config

import (
	"fmt"
	"strings"
)

// Validate checks the configuration and returns every problem found.
func (c *Config) Validate() []error {
	var errors []error

	if c.Task.Name == "" {
		errors = append(errors, fmt.Errorf("task.name is required"))
	} else if strings.ContainsAny(c.Task.Name, "/ \t") {
		errors = append(errors, fmt.Errorf("invalid task.name: %q (must not contain slashes or whitespace)", c.Task.Name))
	}

	if c.Task.IntervalMinutes < 1 || c.Task.IntervalMinutes > 1439 {
		errors = append(errors, fmt.Errorf("invalid task.interval_minutes: %d (expected: 1..1439)", c.Task.IntervalMinutes))
	}

	if c.Task.TimeoutSeconds < 1 {
		errors = append(errors, fmt.Errorf("invalid task.timeout_seconds: %d (must be positive)", c.Task.TimeoutSeconds))
	}

	if c.Task.EntryPoint == "" {
		errors = append(errors, fmt.Errorf("task.entry_point is required"))
	}

	if c.Task.UnitDirectory == "" {
		errors = append(errors, fmt.Errorf("task.unit_directory is required"))
	}

	if c.Bootstrap.ConfigFile == c.Bootstrap.ConfigTemplate {
		errors = append(errors, fmt.Errorf("bootstrap.config_file and bootstrap.config_template must differ"))
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[strings.ToLower(c.Logging.Level)] {
		errors = append(errors, fmt.Errorf("invalid logging.level: %s (expected: debug, info, warn, error)", c.Logging.Level))
	}

	validFormats := map[string]bool{"json": true, "text": true}
	if !validFormats[strings.ToLower(c.Logging.Format)] {
		errors = append(errors, fmt.Errorf("invalid logging.format: %s (expected: json, text)", c.Logging.Format))
	}

	if c.Logging.Output == "" {
		errors = append(errors, fmt.Errorf("logging.output is required"))
	}

	return errors
}
