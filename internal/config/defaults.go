package config

import "mailtask/internal/constants"

// Default returns a configuration with every key set to its default value.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

// applyDefaults fills unset keys so a partial (or absent) settings file
// still yields a complete configuration.
func applyDefaults(cfg *Config) {
	if cfg.Task.Name == "" {
		cfg.Task.Name = constants.DefaultTaskName
	}
	if cfg.Task.IntervalMinutes == 0 {
		cfg.Task.IntervalMinutes = constants.DefaultIntervalMinutes
	}
	if cfg.Task.TimeoutSeconds == 0 {
		cfg.Task.TimeoutSeconds = constants.DefaultTimeoutSeconds
	}
	if cfg.Task.RunAsUser == "" {
		cfg.Task.RunAsUser = constants.DefaultRunAsUser
	}
	if cfg.Task.EntryPoint == "" {
		cfg.Task.EntryPoint = constants.DefaultEntryPoint
	}
	if cfg.Task.UnitDirectory == "" {
		cfg.Task.UnitDirectory = constants.DefaultUnitDirectory
	}

	if cfg.Bootstrap.VenvDir == "" {
		cfg.Bootstrap.VenvDir = constants.DefaultVenvDir
	}
	if cfg.Bootstrap.Manifest == "" {
		cfg.Bootstrap.Manifest = constants.DefaultManifest
	}
	if cfg.Bootstrap.ConfigFile == "" {
		cfg.Bootstrap.ConfigFile = constants.DefaultConfigFile
	}
	if cfg.Bootstrap.ConfigTemplate == "" {
		cfg.Bootstrap.ConfigTemplate = constants.DefaultConfigTemplate
	}
	if cfg.Bootstrap.WorkerScript == "" {
		cfg.Bootstrap.WorkerScript = constants.DefaultWorkerScript
	}

	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = "text"
	}
	if cfg.Logging.Output == "" {
		cfg.Logging.Output = "stderr"
	}
}
