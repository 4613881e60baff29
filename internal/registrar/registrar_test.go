package registrar

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mailtask/internal/logger"
	"mailtask/internal/task"
)

// memStore is an in-memory task store recording every mutation.
type memStore struct {
	tasks     map[string]task.Spec
	deletes   int
	creates   int
	getErr    error
	createErr error
}

func newMemStore() *memStore {
	return &memStore{tasks: make(map[string]task.Spec)}
}

func (m *memStore) Get(ctx context.Context, name string) (*task.Status, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	spec, ok := m.tasks[name]
	if !ok {
		return nil, nil
	}
	return &task.Status{
		Name:        spec.Name,
		State:       "active",
		Description: spec.Description,
		NextRun:     spec.Trigger.Next(time.Now()),
	}, nil
}

func (m *memStore) Delete(ctx context.Context, name string) error {
	m.deletes++
	delete(m.tasks, name)
	return nil
}

func (m *memStore) Create(ctx context.Context, spec task.Spec) error {
	m.creates++
	if m.createErr != nil {
		return m.createErr
	}
	m.tasks[spec.Name] = spec
	return nil
}

func (m *memStore) mutations() int { return m.deletes + m.creates }

func testLogger(t *testing.T) *logger.Logger {
	t.Helper()
	log, err := logger.New(logger.Config{Level: "error", Format: "text", Output: "stderr"})
	require.NoError(t, err)
	return log
}

func newTestRegistrar(t *testing.T, store *memStore) *Registrar {
	t.Helper()
	r := New(store, testLogger(t))
	r.euid = func() int { return 0 }
	return r
}

func testRequest(t *testing.T, intervalMinutes int) Request {
	t.Helper()
	dir := t.TempDir()
	entry := filepath.Join(dir, "run_auto_reply.sh")
	require.NoError(t, os.WriteFile(entry, []byte("#!/bin/sh\n"), 0755))

	return Request{
		TaskName:         "auto-reply-mail",
		EntryPoint:       entry,
		WorkingDirectory: dir,
		IntervalMinutes:  intervalMinutes,
		RunAsUser:        "root",
		Timeout:          10 * time.Minute,
	}
}

func TestRegisterInstallsTask(t *testing.T) {
	store := newMemStore()
	r := newTestRegistrar(t, store)

	result, err := r.Register(context.Background(), testRequest(t, 5))
	require.NoError(t, err)

	assert.False(t, result.Replaced)
	assert.Equal(t, "auto-reply-mail", result.Status.Name)
	assert.Equal(t, "active", result.Status.State)
	assert.Contains(t, result.Status.Description, "5分間隔")
	assert.Len(t, store.tasks, 1)
}

func TestRegisterIsIdempotent(t *testing.T) {
	store := newMemStore()
	r := newTestRegistrar(t, store)
	req := testRequest(t, 5)

	for i := 0; i < 3; i++ {
		_, err := r.Register(context.Background(), req)
		require.NoError(t, err)
	}

	require.Len(t, store.tasks, 1, "repeated registration converges to one task")
	assert.Equal(t, 5, store.tasks["auto-reply-mail"].Trigger.IntervalMinutes())
}

func TestRegisterReplacesOnReconfigure(t *testing.T) {
	store := newMemStore()
	r := newTestRegistrar(t, store)

	_, err := r.Register(context.Background(), testRequest(t, 5))
	require.NoError(t, err)

	result, err := r.Register(context.Background(), testRequest(t, 10))
	require.NoError(t, err)

	assert.True(t, result.Replaced)
	require.Len(t, store.tasks, 1)
	assert.Equal(t, 10, store.tasks["auto-reply-mail"].Trigger.IntervalMinutes(), "prior interval fully superseded")
	assert.Contains(t, store.tasks["auto-reply-mail"].Description, "10分間隔")
	assert.Equal(t, 1, store.deletes)
}

func TestRegisterMissingEntryPointMutatesNothing(t *testing.T) {
	store := newMemStore()
	r := newTestRegistrar(t, store)

	// A pre-existing task must survive the failed attempt untouched.
	_, err := r.Register(context.Background(), testRequest(t, 5))
	require.NoError(t, err)
	mutationsBefore := store.mutations()

	req := testRequest(t, 10)
	req.EntryPoint = filepath.Join(t.TempDir(), "missing.sh")

	_, err = r.Register(context.Background(), req)
	assert.ErrorIs(t, err, ErrEntryPointMissing)
	assert.Equal(t, mutationsBefore, store.mutations(), "zero store mutations on precondition failure")
	assert.Equal(t, 5, store.tasks["auto-reply-mail"].Trigger.IntervalMinutes())
}

func TestRegisterRequiresPrivilege(t *testing.T) {
	store := newMemStore()
	r := New(store, testLogger(t))
	r.euid = func() int { return 1000 }

	_, err := r.Register(context.Background(), testRequest(t, 5))
	assert.ErrorIs(t, err, ErrPrivilegeRequired)
	assert.Zero(t, store.mutations())
}

func TestRegisterRejectsInvalidInterval(t *testing.T) {
	store := newMemStore()
	r := newTestRegistrar(t, store)

	req := testRequest(t, 5)
	req.IntervalMinutes = 0

	_, err := r.Register(context.Background(), req)
	assert.Error(t, err)
	assert.Zero(t, store.mutations())
}

func TestRegisterPropagatesStoreFailure(t *testing.T) {
	store := newMemStore()
	store.createErr = errors.New("registration rejected")
	r := newTestRegistrar(t, store)

	_, err := r.Register(context.Background(), testRequest(t, 5))
	assert.ErrorContains(t, err, "registration rejected")
}

func TestRegisterTenMinuteScenario(t *testing.T) {
	store := newMemStore()
	r := newTestRegistrar(t, store)

	result, err := r.Register(context.Background(), testRequest(t, 10))
	require.NoError(t, err)

	assert.Contains(t, result.Status.Description, "10分間隔")

	spec := store.tasks["auto-reply-mail"]
	assert.Equal(t, []string{"*-*-* *:00/10:00"}, spec.Trigger.OnCalendar())

	// Fires at every 10-minute multiple starting at the 00:00 anchor.
	midnight := time.Date(2026, 8, 23, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, midnight.Add(10*time.Minute), spec.Trigger.Next(midnight))
}

func TestUnregisterPresent(t *testing.T) {
	store := newMemStore()
	r := newTestRegistrar(t, store)

	_, err := r.Register(context.Background(), testRequest(t, 5))
	require.NoError(t, err)

	removed, err := r.Unregister(context.Background(), "auto-reply-mail")
	require.NoError(t, err)
	assert.True(t, removed)
	assert.Empty(t, store.tasks)
}

func TestUnregisterAbsentIsNotAnError(t *testing.T) {
	store := newMemStore()
	r := newTestRegistrar(t, store)

	removed, err := r.Unregister(context.Background(), "auto-reply-mail")
	require.NoError(t, err)
	assert.False(t, removed)
	assert.Zero(t, store.mutations())
}

func TestStatusAbsent(t *testing.T) {
	store := newMemStore()
	r := newTestRegistrar(t, store)

	status, err := r.Status(context.Background(), "auto-reply-mail")
	require.NoError(t, err)
	assert.Nil(t, status)
}
