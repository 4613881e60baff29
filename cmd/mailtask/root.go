package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"mailtask/internal/config"
	"mailtask/internal/console"
	"mailtask/internal/constants"
	"mailtask/internal/logger"
	"mailtask/internal/task"
)

var (
	settingsPath string
	baseDirFlag  string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "mailtask",
	Short: "初動メール自動送信ワーカーの定期実行と環境を管理するツール",
	Long: `mailtask は初動メール自動送信ワーカーの無人運用を準備します。
'bootstrap' でワーカーの実行環境（Python 仮想環境・依存パッケージ・設定
ファイル）を用意し、'register' でホストのタスクストアに定期実行を登録します。`,
	Version: Version,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&settingsPath, "settings", constants.DefaultSettingsPath, "mailtask 設定ファイルのパス")
	rootCmd.PersistentFlags().StringVar(&baseDirFlag, "dir", "", "ワーカーのディレクトリ（既定: mailtask 実行ファイルのディレクトリ）")

	// Add subcommands
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(bootstrapCmd)
	rootCmd.AddCommand(registerCmd)
	rootCmd.AddCommand(unregisterCmd)
	rootCmd.AddCommand(statusCmd)
}

// mustSetup loads the settings and builds the diagnostic logger, exiting on
// any failure.
func mustSetup() (*config.Config, *logger.Logger) {
	if err := config.LoadEnvOptional(constants.DefaultEnvPath); err != nil {
		fmt.Fprintf(os.Stderr, constants.MsgSettingsLoadError, err)
		os.Exit(1)
	}

	cfg, err := config.Load(settingsPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, constants.MsgSettingsLoadError, err)
		os.Exit(1)
	}

	if errs := cfg.Validate(); len(errs) > 0 {
		fmt.Fprint(os.Stderr, constants.MsgSettingsValidationError)
		for _, e := range errs {
			fmt.Fprintf(os.Stderr, constants.MsgSettingsValidatePrefix, e)
		}
		os.Exit(1)
	}

	log, err := logger.New(logger.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Output: cfg.Logging.Output,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, constants.MsgSettingsLoadError, err)
		os.Exit(1)
	}

	return cfg, log
}

// workerDir resolves the directory holding the worker and its launcher: the
// --dir flag when given, otherwise the directory of the running executable
// so relative references work regardless of the caller's current directory.
func workerDir() string {
	if baseDirFlag != "" {
		if abs, err := filepath.Abs(baseDirFlag); err == nil {
			return abs
		}
		return baseDirFlag
	}

	exe, err := os.Executable()
	if err == nil {
		if resolved, rerr := filepath.EvalSymlinks(exe); rerr == nil {
			exe = resolved
		}
		return filepath.Dir(exe)
	}

	wd, _ := os.Getwd()
	return wd
}

// printStatus renders the confirmation table for a registered task.
func printStatus(status *task.Status) {
	table := console.NewTable(constants.TableHeaderName, constants.TableHeaderState, constants.TableHeaderDescription)
	table.AddRow(status.Name, status.State, status.Description)
	table.Render(os.Stdout)
	if !status.NextRun.IsZero() {
		fmt.Printf(constants.MsgNextRun, status.NextRun.Format("2006-01-02 15:04:05"))
	}
}
