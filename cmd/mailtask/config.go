package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"mailtask/internal/config"
	"mailtask/internal/constants"
)

// configCmd represents the config command
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage settings",
	Long:  `Validate and manage the mailtask settings file.`,
}

// configValidateCmd represents the config validate command
var configValidateCmd = &cobra.Command{
	Use:   "validate [settings-file]",
	Short: "Validate the settings file",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		path := settingsPath
		if len(args) > 0 {
			path = args[0]
		}

		cfg, err := config.Load(path)
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

		fmt.Println(constants.MsgSettingsValid)
	},
}

func init() {
	configCmd.AddCommand(configValidateCmd)
}
