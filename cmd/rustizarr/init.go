package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vmunix/rustizarr/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a configuration file",
	Long: `Write a configuration file.

By default the example file is written, with ${VAR} references to the
environment. With --from-env the current environment and .env values are
written out instead.`,
	Args: cobra.NoArgs,
	RunE: runInitCmd,
}

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().StringP("output", "o", "", "Destination (default: user config dir)")
	initCmd.Flags().Bool("from-env", false, "Write the values resolved from the environment")
}

func runInitCmd(cmd *cobra.Command, args []string) error {
	path, _ := cmd.Flags().GetString("output")
	fromEnv, _ := cmd.Flags().GetBool("from-env")

	if path == "" {
		path = config.DefaultPath()
	}
	if err := writeConfig(path, fromEnv); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "config written to %s\n", path)
	return nil
}

func writeConfig(path string, fromEnv bool) error {
	if !fromEnv {
		return config.WriteTemplate(path)
	}
	if err := config.LoadDotEnv(".env"); err != nil {
		return err
	}
	cfg, err := config.LoadWithoutValidation("")
	if err != nil {
		return err
	}
	return cfg.WriteResolved(path)
}
