package cmd

import (
	"github.com/spf13/cobra"

	"github.com/rtgeorge/resourceboard/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize resourceboard configuration with an interactive wizard",
	Long:  `Runs an interactive wizard to configure resourceboard and generates a .resourceboard.yml file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := config.RunWizard()
		return err
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
