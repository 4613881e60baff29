// Package config provides settings loading and validation for mailtask.
// Settings live in a TOML file with environment variable expansion and
// defaults for every key, so the file itself is optional.
//
// Settings structure:
//   - [task]: scheduled task name, interval, timeout and unit directory
//   - [bootstrap]: worker environment layout (venv, manifest, config files)
//   - [logging]: logging level, format, and output
//
// Environment variables can be referenced as ${VAR} or ${VAR:default},
// for example: unit_directory = "${MAILTASK_UNIT_DIR:/etc/systemd/system}".
package config

// Config represents the mailtask settings file.
type Config struct {
	Task      TaskConfig      `toml:"task"`
	Bootstrap BootstrapConfig `toml:"bootstrap"`
	Logging   LoggingConfig   `toml:"logging"`
}

// TaskConfig configures the recurring scheduled task.
type TaskConfig struct {
	Name            string `toml:"name"`
	IntervalMinutes int    `toml:"interval_minutes"`
	TimeoutSeconds  int    `toml:"timeout_seconds"`
	RunAsUser       string `toml:"run_as_user"`
	EntryPoint      string `toml:"entry_point"`
	UnitDirectory   string `toml:"unit_directory"`
}

// BootstrapConfig configures the worker environment layout.
type BootstrapConfig struct {
	VenvDir        string `toml:"venv_dir"`
	Manifest       string `toml:"manifest"`
	ConfigFile     string `toml:"config_file"`
	ConfigTemplate string `toml:"config_template"`
	WorkerScript   string `toml:"worker_script"`
}

// LoggingConfig configures the diagnostic logger.
type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
	Output string `toml:"output"`
}
