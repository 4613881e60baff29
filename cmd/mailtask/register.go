package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"mailtask/internal/constants"
	"mailtask/internal/registrar"
	"mailtask/internal/schedule"
	"mailtask/internal/taskstore"
)

var registerIntervalMinutes int

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "定期実行タスクを登録する",
	Long: `ワーカーの定期実行をホストのタスクストアに登録します。同名のタスクが
既に存在する場合は削除してから登録し直すため、間隔を変えた再実行で
以前の定義が完全に置き換わります。root 権限が必要です。`,
	Run: runRegister,
}

func init() {
	registerCmd.Flags().IntVar(&registerIntervalMinutes, "interval", constants.DefaultIntervalMinutes, "実行間隔（分）")
}

func runRegister(cmd *cobra.Command, args []string) {
	cfg, log := mustSetup()

	interval := cfg.Task.IntervalMinutes
	if cmd.Flags().Changed("interval") {
		interval = registerIntervalMinutes
	}
	if interval < 1 || interval > schedule.MaxIntervalMinutes {
		fmt.Fprintf(os.Stderr, constants.MsgInvalidInterval, interval)
		os.Exit(1)
	}

	dir := workerDir()
	entryPoint := filepath.Join(dir, cfg.Task.EntryPoint)

	client, err := taskstore.Connect(cmd.Context())
	if err != nil {
		fmt.Fprintf(os.Stderr, constants.MsgRegisterFailed, err)
		os.Exit(1)
	}
	defer client.Close()

	store := taskstore.NewSystemdStore(cfg.Task.UnitDirectory, client, log)
	reg := registrar.New(store, log)

	result, err := reg.Register(cmd.Context(), registrar.Request{
		TaskName:         cfg.Task.Name,
		EntryPoint:       entryPoint,
		WorkingDirectory: dir,
		IntervalMinutes:  interval,
		RunAsUser:        cfg.Task.RunAsUser,
		Timeout:          time.Duration(cfg.Task.TimeoutSeconds) * time.Second,
	})
	if err != nil {
		switch {
		case errors.Is(err, registrar.ErrEntryPointMissing):
			fmt.Fprintf(os.Stderr, constants.MsgEntryPointMissing, entryPoint)
			fmt.Fprint(os.Stderr, constants.MsgEntryPointHint)
		case errors.Is(err, registrar.ErrPrivilegeRequired):
			fmt.Fprint(os.Stderr, constants.MsgPrivilegeRequired)
		default:
			fmt.Fprintf(os.Stderr, constants.MsgRegisterFailed, err)
		}
		os.Exit(1)
	}

	if result.Replaced {
		fmt.Printf(constants.MsgStaleTaskRemoved, cfg.Task.Name)
	}
	fmt.Printf(constants.MsgTaskRegistered, interval)
	printStatus(result.Status)
}
