package taskstore

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"mailtask/internal/logger"
	"mailtask/internal/schedule"
	"mailtask/internal/task"
)

// SystemdStore implements Store over the systemd unit directory and a Client.
type SystemdStore struct {
	unitDir string
	client  Client
	log     *logger.Logger
}

// NewSystemdStore creates a store writing unit files into unitDir and
// driving systemd through client.
func NewSystemdStore(unitDir string, client Client, log *logger.Logger) *SystemdStore {
	return &SystemdStore{
		unitDir: unitDir,
		client:  client,
		log:     log,
	}
}

func (s *SystemdStore) servicePath(name string) string {
	return filepath.Join(s.unitDir, ServiceUnit(name))
}

func (s *SystemdStore) timerPath(name string) string {
	return filepath.Join(s.unitDir, TimerUnit(name))
}

// Get looks the task up by name. Absence is not an error: (nil, nil).
func (s *SystemdStore) Get(ctx context.Context, name string) (*task.Status, error) {
	data, err := os.ReadFile(s.timerPath(name))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read timer unit for %s: %w", name, err)
	}

	status := &task.Status{
		Name:        name,
		Description: parseDescription(string(data)),
	}

	if minutes, ok := parseIntervalMinutes(string(data)); ok {
		if trig, err := schedule.NewTrigger(minutes); err == nil {
			status.NextRun = trig.Next(time.Now())
		}
	}

	state, err := s.client.ActiveState(ctx, TimerUnit(name))
	if err != nil {
		// Unit files on disk but systemd cannot report on them (e.g. not yet
		// reloaded). The registration still exists; state is just unknown.
		s.log.Debug("active state unavailable",
			logger.Field{Key: "unit", Value: TimerUnit(name)},
			logger.Field{Key: "error", Value: err})
		state = "unknown"
	}
	status.State = state

	return status, nil
}

// Create installs the spec: write both unit files, reload, enable and start
// the timer. Failures propagate to the caller untouched.
func (s *SystemdStore) Create(ctx context.Context, spec task.Spec) error {
	if err := spec.Validate(); err != nil {
		return err
	}

	if err := os.MkdirAll(s.unitDir, 0755); err != nil {
		return fmt.Errorf("failed to create unit directory %s: %w", s.unitDir, err)
	}

	servicePath := s.servicePath(spec.Name)
	if err := os.WriteFile(servicePath, []byte(renderService(spec)), 0644); err != nil {
		return fmt.Errorf("failed to write service unit: %w", err)
	}

	timerPath := s.timerPath(spec.Name)
	if err := os.WriteFile(timerPath, []byte(renderTimer(spec)), 0644); err != nil {
		return fmt.Errorf("failed to write timer unit: %w", err)
	}

	if err := s.client.Reload(ctx); err != nil {
		return fmt.Errorf("failed to reload systemd: %w", err)
	}
	if err := s.client.EnableUnit(ctx, timerPath); err != nil {
		return fmt.Errorf("failed to enable %s: %w", TimerUnit(spec.Name), err)
	}
	if err := s.client.StartUnit(ctx, TimerUnit(spec.Name)); err != nil {
		return fmt.Errorf("failed to start %s: %w", TimerUnit(spec.Name), err)
	}

	s.log.Info("task registered",
		logger.Field{Key: "task", Value: spec.Name},
		logger.Field{Key: "interval_minutes", Value: spec.Trigger.IntervalMinutes()},
		logger.Field{Key: "registration_id", Value: spec.RegistrationID})

	return nil
}

// Delete removes the registration unconditionally. Stop/disable failures are
// tolerated (the timer may never have been armed); file removal failures and
// the final reload are not.
func (s *SystemdStore) Delete(ctx context.Context, name string) error {
	if err := s.client.StopUnit(ctx, TimerUnit(name)); err != nil {
		s.log.Warn("failed to stop timer, continuing removal",
			logger.Field{Key: "unit", Value: TimerUnit(name)},
			logger.Field{Key: "error", Value: err})
	}
	if err := s.client.DisableUnit(ctx, TimerUnit(name)); err != nil {
		s.log.Warn("failed to disable timer, continuing removal",
			logger.Field{Key: "unit", Value: TimerUnit(name)},
			logger.Field{Key: "error", Value: err})
	}

	for _, path := range []string{s.timerPath(name), s.servicePath(name)} {
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("failed to remove %s: %w", path, err)
		}
	}

	if err := s.client.Reload(ctx); err != nil {
		return fmt.Errorf("failed to reload systemd: %w", err)
	}

	s.log.Info("task unregistered", logger.Field{Key: "task", Value: name})

	return nil
}
