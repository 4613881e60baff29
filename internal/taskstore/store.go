// Package taskstore gives the registrar a key-addressed view of the host's
// persistent task store. On this platform the store is systemd: one task is
// one service/timer unit pair installed under the unit directory. Mutations
// go through a narrow client so the store logic stays testable without a
// running systemd.
package taskstore

import (
	"context"

	"mailtask/internal/task"
)

// Store is the host task-store contract consumed by the registrar:
// query-by-name, unregister-by-name and a single atomic create.
type Store interface {
	// Get returns the task registered under name, or (nil, nil) when absent.
	Get(ctx context.Context, name string) (*task.Status, error)

	// Delete removes the task registered under name. No confirmation, no
	// error when parts of the registration are already gone.
	Delete(ctx context.Context, name string) error

	// Create installs the spec as a durable registration and arms its trigger.
	Create(ctx context.Context, spec task.Spec) error
}

// Client is the slice of systemd the store needs.
type Client interface {
	// Reload makes systemd re-read unit files (daemon-reload).
	Reload(ctx context.Context) error

	// EnableUnit enables a unit file by absolute path.
	EnableUnit(ctx context.Context, unitPath string) error

	// DisableUnit disables a unit by name.
	DisableUnit(ctx context.Context, unitName string) error

	// StartUnit starts a unit and waits for the job to complete.
	StartUnit(ctx context.Context, unitName string) error

	// StopUnit stops a unit and waits for the job to complete.
	StopUnit(ctx context.Context, unitName string) error

	// ActiveState reports a unit's ActiveState property (e.g. "active").
	ActiveState(ctx context.Context, unitName string) (string, error)
}
