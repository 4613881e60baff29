package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Load reads the settings file at path, expands environment variables and
// applies defaults. A missing file is not an error: the defaults are used.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, fmt.Errorf("failed to read settings file: %w", err)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse settings file: %w", err)
	}

	applyDefaults(&cfg)
	expandEnvVars(&cfg)

	return &cfg, nil
}

// expandEnvVars expands ${VAR} and ${VAR:default} references in every
// string-valued setting.
func expandEnvVars(cfg *Config) {
	fields := []*string{
		&cfg.Task.Name,
		&cfg.Task.RunAsUser,
		&cfg.Task.EntryPoint,
		&cfg.Task.UnitDirectory,
		&cfg.Bootstrap.VenvDir,
		&cfg.Bootstrap.Manifest,
		&cfg.Bootstrap.ConfigFile,
		&cfg.Bootstrap.ConfigTemplate,
		&cfg.Bootstrap.WorkerScript,
		&cfg.Logging.Level,
		&cfg.Logging.Format,
		&cfg.Logging.Output,
	}
	for _, f := range fields {
		*f = expandString(*f)
	}
}

// expandString resolves ${VAR} and ${VAR:default} in a single value.
func expandString(s string) string {
	return os.Expand(s, func(ref string) string {
		name := ref
		def := ""
		for i := 0; i < len(ref); i++ {
			if ref[i] == ':' {
				name = ref[:i]
				def = ref[i+1:]
				break
			}
		}
		if v, ok := os.LookupEnv(name); ok && v != "" {
			return v
		}
		return def
	})
}
