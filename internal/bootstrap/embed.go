package bootstrap

import (
	_ "embed"
)

//go:embed embeddefaults/config.env.template
var defaultConfigTemplate []byte

//go:embed embeddefaults/run_auto_reply.sh
var launcherTemplate []byte

// DefaultConfigTemplate returns the built-in worker configuration template,
// used when no template file ships next to the tool.
func DefaultConfigTemplate() []byte {
	return defaultConfigTemplate
}
