package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"mailtask/internal/constants"
	"mailtask/internal/registrar"
	"mailtask/internal/taskstore"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "登録済みタスクの状態を表示する",
	Run:   runStatus,
}

func runStatus(cmd *cobra.Command, args []string) {
	cfg, log := mustSetup()

	client, err := taskstore.Connect(cmd.Context())
	if err != nil {
		fmt.Fprintf(os.Stderr, constants.MsgStatusFailed, err)
		os.Exit(1)
	}
	defer client.Close()

	store := taskstore.NewSystemdStore(cfg.Task.UnitDirectory, client, log)
	reg := registrar.New(store, log)

	status, err := reg.Status(cmd.Context(), cfg.Task.Name)
	if err != nil {
		fmt.Fprintf(os.Stderr, constants.MsgStatusFailed, err)
		os.Exit(1)
	}
	if status == nil {
		fmt.Printf(constants.MsgTaskNotRegistered, cfg.Task.Name)
		return
	}

	printStatus(status)
}
