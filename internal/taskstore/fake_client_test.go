package taskstore

import (
	"context"
	"sync"
)

// fakeClient records systemd interactions and tracks which units the fake
// host considers armed.
type fakeClient struct {
	mu sync.Mutex

	reloads  int
	enabled  map[string]bool // by unit path
	started  map[string]bool // by unit name
	calls    []string
	startErr error
	stopErr  error
}

func newFakeClient() *fakeClient {
	return &fakeClient{
		enabled: make(map[string]bool),
		started: make(map[string]bool),
	}
}

func (f *fakeClient) record(call string) {
	f.calls = append(f.calls, call)
}

func (f *fakeClient) Reload(ctx context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.reloads++
	f.record("reload")
	return nil
}

func (f *fakeClient) EnableUnit(ctx context.Context, unitPath string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.enabled[unitPath] = true
	f.record("enable " + unitPath)
	return nil
}

func (f *fakeClient) DisableUnit(ctx context.Context, unitName string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for path := range f.enabled {
		delete(f.enabled, path)
	}
	f.record("disable " + unitName)
	return nil
}

func (f *fakeClient) StartUnit(ctx context.Context, unitName string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("start " + unitName)
	if f.startErr != nil {
		return f.startErr
	}
	f.started[unitName] = true
	return nil
}

func (f *fakeClient) StopUnit(ctx context.Context, unitName string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("stop " + unitName)
	if f.stopErr != nil {
		return f.stopErr
	}
	delete(f.started, unitName)
	return nil
}

func (f *fakeClient) ActiveState(ctx context.Context, unitName string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.started[unitName] {
		return "active", nil
	}
	return "inactive", nil
}
