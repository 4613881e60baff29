package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"mailtask/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(version.Format())
	},
}
