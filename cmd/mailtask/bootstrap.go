package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"mailtask/internal/bootstrap"
	"mailtask/internal/constants"
)

var bootstrapCmd = &cobra.Command{
	Use:   "bootstrap",
	Short: "ワーカーの実行環境を準備する",
	Long: `ワーカーの実行環境を準備します: Python インタープリタの検出、
仮想環境の作成、依存パッケージのインストール、設定ファイルの生成。
各ステップは再実行しても安全です。既存の設定ファイルは変更されません。`,
	Run: runBootstrap,
}

func runBootstrap(cmd *cobra.Command, args []string) {
	cfg, log := mustSetup()

	runner := bootstrap.ExecRunner{Stdout: os.Stdout, Stderr: os.Stderr}
	b := bootstrap.New(workerDir(), cfg.Bootstrap, runner, os.Stdout, log)

	if err := b.Run(cmd.Context()); err != nil {
		switch {
		case errors.Is(err, bootstrap.ErrInterpreterNotFound):
			fmt.Fprint(os.Stderr, constants.MsgInterpreterMissing)
		case errors.Is(err, bootstrap.ErrDependencyInstall):
			fmt.Fprintf(os.Stderr, constants.MsgDependencyInstallFailed, err)
		default:
			fmt.Fprintf(os.Stderr, constants.MsgBootstrapFailed, err)
		}
		os.Exit(1)
	}
}
