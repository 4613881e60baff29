// Package bootstrap provisions the worker's runtime environment: interpreter
// discovery, isolated dependency environment, dependency installation and
// configuration-file materialization.
//
// The steps carry two distinct idempotency classes and stay separate
// operations on purpose: MaterializeConfig creates the operator-owned config
// only when absent and never updates it, while InstallDependencies re-applies
// the manifest on every run.
package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"mailtask/internal/config"
	"mailtask/internal/constants"
	"mailtask/internal/logger"
)

// ErrInterpreterNotFound marks a bootstrap aborted before any filesystem
// mutation because no usable Python runtime was discoverable.
var ErrInterpreterNotFound = errors.New("python interpreter not found")

// ErrDependencyInstall marks a failed manifest install. The environment may
// be partially provisioned; re-running the bootstrap is the recovery path.
var ErrDependencyInstall = errors.New("dependency install failed")

// interpreterCandidates is the discovery order: the preferred command first,
// the generic fallback second.
var interpreterCandidates = []string{"python3", "python"}

// Bootstrapper provisions the worker environment rooted at dir.
type Bootstrapper struct {
	dir    string
	cfg    config.BootstrapConfig
	runner Runner
	out    io.Writer
	log    *logger.Logger
}

// New creates a bootstrapper for the worker directory dir.
func New(dir string, cfg config.BootstrapConfig, runner Runner, out io.Writer, log *logger.Logger) *Bootstrapper {
	return &Bootstrapper{
		dir:    dir,
		cfg:    cfg,
		runner: runner,
		out:    out,
		log:    log,
	}
}

// VenvPath returns the isolated dependency environment directory.
func (b *Bootstrapper) VenvPath() string {
	return filepath.Join(b.dir, b.cfg.VenvDir)
}

// LauncherPath returns the entry-point script the scheduled task invokes.
func (b *Bootstrapper) LauncherPath() string {
	return filepath.Join(b.dir, constants.DefaultEntryPoint)
}

// ConfigPath returns the worker configuration file path.
func (b *Bootstrapper) ConfigPath() string {
	return filepath.Join(b.dir, b.cfg.ConfigFile)
}

// DiscoverInterpreter probes the candidate commands in order and returns the
// first that resolves. No filesystem state is touched on failure.
func (b *Bootstrapper) DiscoverInterpreter() (string, error) {
	for _, candidate := range interpreterCandidates {
		if _, err := b.runner.LookPath(candidate); err == nil {
			b.log.Debug("interpreter resolved", logger.Field{Key: "command", Value: candidate})
			return candidate, nil
		}
	}
	return "", ErrInterpreterNotFound
}

// EnsureEnvironment creates the isolated dependency environment if it does
// not exist yet. Returns whether it was created on this run.
func (b *Bootstrapper) EnsureEnvironment(ctx context.Context, interpreter string) (bool, error) {
	if _, err := os.Stat(b.VenvPath()); err == nil {
		return false, nil
	} else if !os.IsNotExist(err) {
		return false, fmt.Errorf("failed to check %s: %w", b.VenvPath(), err)
	}

	if err := b.runner.Run(ctx, b.dir, interpreter, "-m", "venv", b.cfg.VenvDir); err != nil {
		return false, fmt.Errorf("failed to create virtual environment: %w", err)
	}
	return true, nil
}

// InstallDependencies applies the declared manifest to the environment. It
// runs on every bootstrap; re-installing satisfied packages is a no-op at
// the package-manager level.
func (b *Bootstrapper) InstallDependencies(ctx context.Context) error {
	pip := filepath.Join(b.VenvPath(), "bin", "pip")
	if err := b.runner.Run(ctx, b.dir, pip, "install", "-r", b.cfg.Manifest); err != nil {
		return fmt.Errorf("%w: %v", ErrDependencyInstall, err)
	}
	return nil
}

// MaterializeConfig creates the worker configuration from its template when
// absent. An existing file is operator-owned and is never touched; the
// second return value reports whether the file was created on this run.
func (b *Bootstrapper) MaterializeConfig() (bool, error) {
	cfgPath := b.ConfigPath()
	if _, err := os.Stat(cfgPath); err == nil {
		return false, nil
	} else if !os.IsNotExist(err) {
		return false, fmt.Errorf("failed to check %s: %w", cfgPath, err)
	}

	template, err := os.ReadFile(filepath.Join(b.dir, b.cfg.ConfigTemplate))
	if err != nil {
		if !os.IsNotExist(err) {
			return false, fmt.Errorf("failed to read config template: %w", err)
		}
		template = DefaultConfigTemplate()
	}

	if err := os.WriteFile(cfgPath, template, 0644); err != nil {
		return false, fmt.Errorf("failed to write %s: %w", cfgPath, err)
	}
	return true, nil
}

// WriteLauncher regenerates the entry-point script binding the worker to the
// isolated environment's interpreter. The launcher is tool-owned and is
// rewritten on every bootstrap.
func (b *Bootstrapper) WriteLauncher() (string, error) {
	python := filepath.Join(b.VenvPath(), "bin", "python")

	script := string(launcherTemplate)
	script = strings.ReplaceAll(script, "{{PYTHON}}", python)
	script = strings.ReplaceAll(script, "{{WORKER}}", b.cfg.WorkerScript)

	path := b.LauncherPath()
	if err := os.WriteFile(path, []byte(script), 0755); err != nil {
		return "", fmt.Errorf("failed to write launcher: %w", err)
	}
	return path, nil
}

// Run executes the full bootstrap sequence, printing each step's outcome
// before the next step begins. Errors abort the sequence and surface to the
// caller for exit-code handling.
func (b *Bootstrapper) Run(ctx context.Context) error {
	fmt.Fprint(b.out, constants.MsgStepInterpreter)
	interpreter, err := b.DiscoverInterpreter()
	if err != nil {
		return err
	}
	fmt.Fprintf(b.out, constants.MsgInterpreterFound, interpreter)

	fmt.Fprint(b.out, constants.MsgStepDependencies)
	created, err := b.EnsureEnvironment(ctx, interpreter)
	if err != nil {
		return err
	}
	if created {
		fmt.Fprintf(b.out, constants.MsgVenvCreated, b.VenvPath())
	} else {
		fmt.Fprintf(b.out, constants.MsgVenvExists, b.VenvPath())
	}
	if err := b.InstallDependencies(ctx); err != nil {
		return err
	}
	fmt.Fprint(b.out, constants.MsgDependenciesInstalled)

	fmt.Fprint(b.out, constants.MsgStepConfig)
	configCreated, err := b.MaterializeConfig()
	if err != nil {
		return err
	}
	if configCreated {
		fmt.Fprintf(b.out, constants.MsgConfigCreated, b.cfg.ConfigFile)
	} else {
		fmt.Fprintf(b.out, constants.MsgConfigExists, b.cfg.ConfigFile)
	}

	launcher, err := b.WriteLauncher()
	if err != nil {
		return err
	}
	fmt.Fprintf(b.out, constants.MsgLauncherWritten, launcher)

	fmt.Fprint(b.out, constants.MsgNextSteps)
	return nil
}
