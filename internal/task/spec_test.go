package task

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mailtask/internal/schedule"
)

func newTestSpec(t *testing.T, intervalMinutes int) Spec {
	t.Helper()
	trig, err := schedule.NewTrigger(intervalMinutes)
	require.NoError(t, err)

	return New(
		"auto-reply-mail",
		trig,
		Action{ExecutablePath: "/opt/mailer/run_auto_reply.sh", WorkingDirectory: "/opt/mailer"},
		Principal{User: "root"},
		DefaultSettings(10*time.Minute),
	)
}

func TestDescriptionEmbedsInterval(t *testing.T) {
	assert.Equal(t, "初動メール自動送信（5分間隔）", Description(5))
	assert.Contains(t, Description(10), "10分間隔")
}

func TestNewStampsRegistrationID(t *testing.T) {
	a := newTestSpec(t, 5)
	b := newTestSpec(t, 5)

	assert.NotEmpty(t, a.RegistrationID)
	assert.NotEqual(t, a.RegistrationID, b.RegistrationID)
}

func TestNewBuildsDescriptionFromTrigger(t *testing.T) {
	spec := newTestSpec(t, 10)
	assert.Contains(t, spec.Description, "10分間隔")
}

func TestDefaultSettings(t *testing.T) {
	settings := DefaultSettings(10 * time.Minute)

	assert.True(t, settings.AllowOnBattery)
	assert.True(t, settings.StartWhenAvailable)
	assert.Equal(t, 10*time.Minute, settings.ExecutionTimeLimit)
}

func TestValidate(t *testing.T) {
	spec := newTestSpec(t, 5)
	assert.NoError(t, spec.Validate())

	missing := spec
	missing.Name = ""
	assert.Error(t, missing.Validate())

	missing = spec
	missing.Action.ExecutablePath = ""
	assert.Error(t, missing.Validate())

	missing = spec
	missing.Principal.User = ""
	assert.Error(t, missing.Validate())

	missing = spec
	missing.Settings.ExecutionTimeLimit = 0
	assert.Error(t, missing.Validate())
}
