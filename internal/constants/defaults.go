package constants

// Default values for the scheduled task and its registration.
const (
	// DefaultTaskName is the name of the single scheduled task managed by mailtask.
	// It doubles as the idempotency key in the host task store.
	DefaultTaskName = "auto-reply-mail"

	// DefaultIntervalMinutes is the repetition interval of the task in minutes.
	DefaultIntervalMinutes = 5

	// DefaultTimeoutSeconds is the per-run wall-clock limit enforced by the
	// host scheduler. A run exceeding it is terminated, not retried.
	DefaultTimeoutSeconds = 600

	// DefaultUnitDirectory is where the systemd unit files are installed.
	DefaultUnitDirectory = "/etc/systemd/system"

	// DefaultRunAsUser is the unattended execution account for the task.
	DefaultRunAsUser = "root"
)

// Default values for the worker environment bootstrap.
const (
	// DefaultEntryPoint is the launcher script the scheduled task invokes.
	DefaultEntryPoint = "run_auto_reply.sh"

	// DefaultWorkerScript is the worker program started by the launcher.
	DefaultWorkerScript = "auto_reply.py"

	// DefaultVenvDir is the isolated dependency environment directory.
	DefaultVenvDir = ".venv"

	// DefaultManifest is the dependency manifest consumed by the bootstrap.
	DefaultManifest = "requirements.txt"

	// DefaultConfigFile is the worker configuration file. It is created from
	// the template only when absent and never overwritten afterwards.
	DefaultConfigFile = "config.env"

	// DefaultConfigTemplate is the on-disk template for the worker config.
	DefaultConfigTemplate = "config.env.template"
)
