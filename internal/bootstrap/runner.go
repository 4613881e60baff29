package bootstrap

import (
	"context"
	"io"
	"os/exec"
)

// Runner abstracts process lookup and execution so the bootstrap flow can be
// exercised without a Python installation.
type Runner interface {
	// LookPath resolves a command name to an executable path.
	LookPath(name string) (string, error)

	// Run executes a command in dir, streaming its output, and returns the
	// command's error as-is.
	Run(ctx context.Context, dir string, name string, args ...string) error
}

// ExecRunner runs real processes with output wired to the given writers.
type ExecRunner struct {
	Stdout io.Writer
	Stderr io.Writer
}

// LookPath resolves the command through the PATH.
func (r ExecRunner) LookPath(name string) (string, error) {
	return exec.LookPath(name)
}

// Run executes the command synchronously.
func (r ExecRunner) Run(ctx context.Context, dir string, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	cmd.Stdout = r.Stdout
	cmd.Stderr = r.Stderr
	return cmd.Run()
}
