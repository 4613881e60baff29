package constants

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorMessagesCarryMarker(t *testing.T) {
	errorMessages := []string{
		MsgEntryPointMissing,
		MsgPrivilegeRequired,
		MsgRegisterFailed,
		MsgInvalidInterval,
		MsgUnregisterFailed,
		MsgInterpreterMissing,
		MsgDependencyInstallFailed,
		MsgConfigWriteFailed,
		MsgSettingsLoadError,
	}

	for _, msg := range errorMessages {
		assert.True(t, strings.HasPrefix(msg, "❌"), "error message must start with ❌: %q", msg)
	}
}

func TestSuccessMessagesCarryMarker(t *testing.T) {
	successMessages := []string{
		MsgTaskRegistered,
		MsgTaskUnregistered,
		MsgInterpreterFound,
		MsgVenvCreated,
		MsgVenvExists,
		MsgDependenciesInstalled,
		MsgConfigCreated,
		MsgConfigExists,
		MsgLauncherWritten,
	}

	for _, msg := range successMessages {
		assert.True(t, strings.HasPrefix(msg, "✅"), "success message must start with ✅: %q", msg)
	}
}

func TestStepBannersAreOrdered(t *testing.T) {
	assert.True(t, strings.HasPrefix(MsgStepInterpreter, "[1/3]"))
	assert.True(t, strings.HasPrefix(MsgStepDependencies, "[2/3]"))
	assert.True(t, strings.HasPrefix(MsgStepConfig, "[3/3]"))
}

func TestNextStepsMentionRegistration(t *testing.T) {
	assert.Contains(t, MsgNextSteps, "mailtask register")
	assert.Contains(t, MsgNextSteps, "--dry-run")
}

func TestFormatMessages(t *testing.T) {
	assert.Contains(t, fmt.Sprintf(MsgTaskRegistered, 10), "10分間隔")
	assert.Contains(t, fmt.Sprintf(MsgEntryPointMissing, "/opt/run_auto_reply.sh"), "/opt/run_auto_reply.sh")
	assert.Contains(t, fmt.Sprintf(MsgTaskNotRegistered, "auto-reply-mail"), "auto-reply-mail")
}
