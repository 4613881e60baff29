// Package registrar installs the recurring mail task: it checks the
// preconditions, removes any stale registration under the same name and
// submits the new spec to the host task store as one create call.
package registrar

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"mailtask/internal/logger"
	"mailtask/internal/schedule"
	"mailtask/internal/task"
	"mailtask/internal/taskstore"
)

// ErrEntryPointMissing marks a registration attempted before the bootstrap
// produced the launcher script. Nothing in the task store was touched.
var ErrEntryPointMissing = errors.New("entry point not found")

// ErrPrivilegeRequired marks a registration attempted without the privilege
// the host task store demands. Nothing in the task store was touched.
var ErrPrivilegeRequired = errors.New("root privilege required")

// Request carries the desired registration.
type Request struct {
	TaskName         string
	EntryPoint       string // absolute path to the launcher script
	WorkingDirectory string
	IntervalMinutes  int
	RunAsUser        string
	Timeout          time.Duration
}

// Result is the outcome of a successful registration.
type Result struct {
	// Status is the task store readback after the create call.
	Status *task.Status
	// Replaced reports whether a stale registration was removed first.
	Replaced bool
}

// Registrar applies a desired task spec to the host task store.
type Registrar struct {
	store taskstore.Store
	log   *logger.Logger
	euid  func() int
}

// New creates a registrar over the given store.
func New(store taskstore.Store, log *logger.Logger) *Registrar {
	return &Registrar{
		store: store,
		log:   log,
		euid:  os.Geteuid,
	}
}

// Register installs the requested task, replacing any prior registration
// under the same name. All preconditions are checked before the first store
// mutation; a failed precondition leaves any existing registration intact.
func (r *Registrar) Register(ctx context.Context, req Request) (*Result, error) {
	if _, err := os.Stat(req.EntryPoint); err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrEntryPointMissing, req.EntryPoint)
		}
		return nil, fmt.Errorf("failed to check entry point %s: %w", req.EntryPoint, err)
	}

	if r.euid() != 0 {
		return nil, ErrPrivilegeRequired
	}

	trig, err := schedule.NewTrigger(req.IntervalMinutes)
	if err != nil {
		return nil, err
	}

	spec := task.New(
		req.TaskName,
		trig,
		task.Action{ExecutablePath: req.EntryPoint, WorkingDirectory: req.WorkingDirectory},
		task.Principal{User: req.RunAsUser},
		task.DefaultSettings(req.Timeout),
	)
	if err := spec.Validate(); err != nil {
		return nil, err
	}

	existing, err := r.store.Get(ctx, req.TaskName)
	if err != nil {
		return nil, fmt.Errorf("failed to query task store: %w", err)
	}
	replaced := existing != nil
	if replaced {
		r.log.Info("removing stale registration", logger.Field{Key: "task", Value: req.TaskName})
		if err := r.store.Delete(ctx, req.TaskName); err != nil {
			return nil, fmt.Errorf("failed to remove stale registration: %w", err)
		}
	}

	if err := r.store.Create(ctx, spec); err != nil {
		return nil, err
	}

	status, err := r.store.Get(ctx, req.TaskName)
	if err != nil {
		return nil, fmt.Errorf("failed to read back registration: %w", err)
	}
	if status == nil {
		return nil, fmt.Errorf("task %s vanished after registration", req.TaskName)
	}

	return &Result{Status: status, Replaced: replaced}, nil
}

// Unregister removes the named task. Returns false when no task was
// registered under the name; that is not an error.
func (r *Registrar) Unregister(ctx context.Context, name string) (bool, error) {
	if r.euid() != 0 {
		return false, ErrPrivilegeRequired
	}

	existing, err := r.store.Get(ctx, name)
	if err != nil {
		return false, fmt.Errorf("failed to query task store: %w", err)
	}
	if existing == nil {
		return false, nil
	}

	if err := r.store.Delete(ctx, name); err != nil {
		return false, err
	}
	return true, nil
}

// Status queries the named task. Returns (nil, nil) when absent.
func (r *Registrar) Status(ctx context.Context, name string) (*task.Status, error) {
	return r.store.Get(ctx, name)
}
