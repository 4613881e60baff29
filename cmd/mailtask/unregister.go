package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"mailtask/internal/constants"
	"mailtask/internal/registrar"
	"mailtask/internal/taskstore"
)

var unregisterCmd = &cobra.Command{
	Use:   "unregister",
	Short: "定期実行タスクを削除する",
	Run:   runUnregister,
}

func runUnregister(cmd *cobra.Command, args []string) {
	cfg, log := mustSetup()

	client, err := taskstore.Connect(cmd.Context())
	if err != nil {
		fmt.Fprintf(os.Stderr, constants.MsgUnregisterFailed, err)
		os.Exit(1)
	}
	defer client.Close()

	store := taskstore.NewSystemdStore(cfg.Task.UnitDirectory, client, log)
	reg := registrar.New(store, log)

	removed, err := reg.Unregister(cmd.Context(), cfg.Task.Name)
	if err != nil {
		if errors.Is(err, registrar.ErrPrivilegeRequired) {
			fmt.Fprint(os.Stderr, constants.MsgPrivilegeRequired)
		} else {
			fmt.Fprintf(os.Stderr, constants.MsgUnregisterFailed, err)
		}
		os.Exit(1)
	}

	if removed {
		fmt.Printf(constants.MsgTaskUnregistered, cfg.Task.Name)
	} else {
		fmt.Printf(constants.MsgTaskNotRegistered, cfg.Task.Name)
	}
}
