package taskstore

import (
	"context"
	"fmt"

	sd "github.com/coreos/go-systemd/v22/dbus"
)

// DBusClient implements Client over systemd's D-Bus manager API.
type DBusClient struct {
	conn *sd.Conn
}

// Connect opens a connection to the system bus. Requires privilege for the
// mutating calls; the registrar checks that before touching the store.
func Connect(ctx context.Context) (*DBusClient, error) {
	conn, err := sd.NewSystemConnectionContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to systemd: %w", err)
	}
	return &DBusClient{conn: conn}, nil
}

// Close releases the bus connection.
func (c *DBusClient) Close() {
	c.conn.Close()
}

// Reload asks systemd to re-read unit files.
func (c *DBusClient) Reload(ctx context.Context) error {
	return c.conn.ReloadContext(ctx)
}

// EnableUnit enables a unit file by absolute path, replacing stale symlinks.
func (c *DBusClient) EnableUnit(ctx context.Context, unitPath string) error {
	_, _, err := c.conn.EnableUnitFilesContext(ctx, []string{unitPath}, false, true)
	return err
}

// DisableUnit disables a unit by name.
func (c *DBusClient) DisableUnit(ctx context.Context, unitName string) error {
	_, err := c.conn.DisableUnitFilesContext(ctx, []string{unitName}, false)
	return err
}

// StartUnit starts a unit and waits for the queued job to finish.
func (c *DBusClient) StartUnit(ctx context.Context, unitName string) error {
	return c.runJob(ctx, unitName, c.conn.StartUnitContext)
}

// StopUnit stops a unit and waits for the queued job to finish.
func (c *DBusClient) StopUnit(ctx context.Context, unitName string) error {
	return c.runJob(ctx, unitName, c.conn.StopUnitContext)
}

func (c *DBusClient) runJob(ctx context.Context, unitName string, op func(context.Context, string, string, chan<- string) (int, error)) error {
	done := make(chan string, 1)
	if _, err := op(ctx, unitName, "replace", done); err != nil {
		return err
	}
	select {
	case result := <-done:
		if result != "done" {
			return fmt.Errorf("systemd job for %s finished with result %q", unitName, result)
		}
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// ActiveState reports the ActiveState property of a unit.
func (c *DBusClient) ActiveState(ctx context.Context, unitName string) (string, error) {
	props, err := c.conn.GetUnitPropertiesContext(ctx, unitName)
	if err != nil {
		return "", err
	}
	state, _ := props["ActiveState"].(string)
	return state, nil
}
