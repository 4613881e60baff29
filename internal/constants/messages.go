package constants

// All operator-facing text used by mailtask. Error, warning and success
// lines carry a distinguishing marker so every step's outcome is visible on
// the console before the next step begins.

// Task registrar messages
const (
	// MsgEntryPointMissing is printed when the launcher script is absent.
	MsgEntryPointMissing = "❌ エントリポイントが見つかりません: %s\n"

	// MsgEntryPointHint tells the operator how to produce the entry point.
	MsgEntryPointHint = "   先に 'mailtask bootstrap' を実行して環境を準備してください\n"

	// MsgPrivilegeRequired is printed when the registrar runs without root.
	MsgPrivilegeRequired = "❌ root 権限が必要です。sudo で実行してください\n"

	// MsgStaleTaskRemoved is printed when a prior registration is superseded.
	MsgStaleTaskRemoved = "⚠️ 既存のタスク '%s' を削除しました（再登録します）\n"

	// MsgTaskRegistered is the success line after registration.
	MsgTaskRegistered = "✅ タスクを登録しました（%d分間隔）\n"

	// MsgRegisterFailed is printed when the host task store rejects the registration.
	MsgRegisterFailed = "❌ タスクの登録に失敗しました: %v\n"

	// MsgInvalidInterval is printed when the interval flag is out of range.
	MsgInvalidInterval = "❌ 無効な間隔です: %v\n"

	// MsgTaskUnregistered is the success line after explicit removal.
	MsgTaskUnregistered = "✅ タスク '%s' を削除しました\n"

	// MsgTaskNotRegistered is printed when a lookup finds no task. Not an error.
	MsgTaskNotRegistered = "タスク '%s' は登録されていません\n"

	// MsgUnregisterFailed is printed when removal fails at the host task store.
	MsgUnregisterFailed = "❌ タスクの削除に失敗しました: %v\n"

	// MsgStatusFailed is printed when the task store query fails.
	MsgStatusFailed = "❌ タスクの状態取得に失敗しました: %v\n"
)

// Confirmation table headers (name / state / description readback).
const (
	TableHeaderName        = "タスク名"
	TableHeaderState       = "状態"
	TableHeaderDescription = "説明"
)

// MsgNextRun shows the task's next fire time after a successful query.
const MsgNextRun = "次回実行: %s\n"

// Environment bootstrapper messages
const (
	// MsgStepInterpreter is the banner for the interpreter discovery step.
	MsgStepInterpreter = "[1/3] Python インタープリタを確認しています...\n"

	// MsgStepDependencies is the banner for the venv / dependency step.
	MsgStepDependencies = "[2/3] 仮想環境と依存パッケージを準備しています...\n"

	// MsgStepConfig is the banner for the config materialization step.
	MsgStepConfig = "[3/3] 設定ファイルを確認しています...\n"

	// MsgInterpreterFound reports the resolved interpreter command.
	MsgInterpreterFound = "✅ %s を使用します\n"

	// MsgInterpreterMissing is printed when no interpreter is discoverable.
	MsgInterpreterMissing = "❌ Python が見つかりません。https://www.python.org/downloads/ からインストールしてください\n"

	// MsgVenvCreated reports creation of the isolated environment.
	MsgVenvCreated = "✅ 仮想環境を作成しました: %s\n"

	// MsgVenvExists reports that the isolated environment is reused.
	MsgVenvExists = "✅ 仮想環境は既に存在します: %s\n"

	// MsgDependenciesInstalled reports a successful manifest install.
	MsgDependenciesInstalled = "✅ 依存パッケージをインストールしました\n"

	// MsgDependencyInstallFailed is printed when the install step fails.
	// Re-running the bootstrap is the documented recovery path.
	MsgDependencyInstallFailed = "❌ 依存パッケージのインストールに失敗しました: %v\n   再度 'mailtask bootstrap' を実行してください\n"

	// MsgConfigCreated reports config materialization from the template.
	MsgConfigCreated = "✅ %s を作成しました。内容を編集してください\n"

	// MsgConfigExists reports that an operator-owned config was left untouched.
	MsgConfigExists = "✅ %s は既に存在します（変更しません）\n"

	// MsgConfigWriteFailed is printed when materialization fails.
	MsgConfigWriteFailed = "❌ 設定ファイルの作成に失敗しました: %v\n"

	// MsgLauncherWritten reports regeneration of the launcher script.
	MsgLauncherWritten = "✅ 起動スクリプトを更新しました: %s\n"

	// MsgBootstrapFailed is the generic bootstrap failure line.
	MsgBootstrapFailed = "❌ 環境の準備に失敗しました: %v\n"

	// MsgNextSteps lists the remaining manual setup steps after a bootstrap.
	MsgNextSteps = "\n次の手順:\n" +
		"  1. GOOGLE_SERVICE_ACCOUNT_JSON 環境変数にサービスアカウント鍵を設定する\n" +
		"  2. （任意）credentials.json をこのディレクトリに配置する\n" +
		"  3. 動作確認: .venv/bin/python auto_reply.py --dry-run\n" +
		"  4. 定期実行を登録: sudo mailtask register\n"
)

// Settings file messages
const (
	// MsgSettingsLoadError is printed when the mailtask.toml file cannot be loaded.
	MsgSettingsLoadError = "❌ 設定の読み込みに失敗しました: %v\n"

	// MsgSettingsValidationError is the header for validation failures.
	MsgSettingsValidationError = "❌ 設定の検証に失敗しました:\n"

	// MsgSettingsValidatePrefix is the per-error line prefix.
	MsgSettingsValidatePrefix = "  - %v\n"

	// MsgSettingsValid is printed when the settings file is valid.
	MsgSettingsValid = "✅ 設定は有効です"
)
