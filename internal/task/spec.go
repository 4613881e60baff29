// Package task defines the durable descriptor of the recurring job as held
// by the host task store, and the readback record used for confirmation.
package task

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"mailtask/internal/schedule"
)

// Spec describes one named recurring task. The name is both the lookup key
// and the idempotency key: registering under an existing name replaces the
// prior definition.
type Spec struct {
	Name           string
	Trigger        schedule.Trigger
	Action         Action
	Principal      Principal
	Settings       Settings
	Description    string
	RegistrationID string
}

// Action binds the task to its entry point. The working directory is set so
// the worker's relative file references resolve regardless of who starts it.
type Action struct {
	ExecutablePath   string
	WorkingDirectory string
}

// Principal is the unattended execution account. The job runs under it with
// no interactive session and survives logoff.
type Principal struct {
	User string
}

// Settings are the execution constraints applied by the host scheduler.
type Settings struct {
	// AllowOnBattery keeps the task runnable on battery power and prevents
	// suspension on a power-source change.
	AllowOnBattery bool
	// StartWhenAvailable runs a missed fire as soon as the host is able to.
	StartWhenAvailable bool
	// ExecutionTimeLimit is the hard wall-clock limit per invocation. The
	// host scheduler terminates a run exceeding it; nothing retries it.
	ExecutionTimeLimit time.Duration
}

// DefaultSettings returns the execution constraints used for the mail task.
func DefaultSettings(timeout time.Duration) Settings {
	return Settings{
		AllowOnBattery:     true,
		StartWhenAvailable: true,
		ExecutionTimeLimit: timeout,
	}
}

// Description renders the human-readable task summary embedding the
// configured interval.
func Description(intervalMinutes int) string {
	return fmt.Sprintf("初動メール自動送信（%d分間隔）", intervalMinutes)
}

// New assembles a complete task spec and stamps it with a fresh
// registration ID for traceability.
func New(name string, trig schedule.Trigger, action Action, principal Principal, settings Settings) Spec {
	return Spec{
		Name:           name,
		Trigger:        trig,
		Action:         action,
		Principal:      principal,
		Settings:       settings,
		Description:    Description(trig.IntervalMinutes()),
		RegistrationID: uuid.NewString(),
	}
}

// Validate checks that the spec is complete enough to register.
func (s Spec) Validate() error {
	if s.Name == "" {
		return fmt.Errorf("task name is empty")
	}
	if s.Action.ExecutablePath == "" {
		return fmt.Errorf("task %s: executable path is empty", s.Name)
	}
	if s.Principal.User == "" {
		return fmt.Errorf("task %s: execution account is empty", s.Name)
	}
	if s.Settings.ExecutionTimeLimit <= 0 {
		return fmt.Errorf("task %s: execution time limit must be positive", s.Name)
	}
	return nil
}

// Status is the readback record returned by the task store after a query.
type Status struct {
	Name        string
	State       string
	Description string
	NextRun     time.Time
}
