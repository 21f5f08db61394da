package cmd

import (
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "resourceboard",
	Short: "Resource listing widget server",
	Long: `Resourceboard serves the resource listing widget: a searchable,
filterable catalog of downloads, books and videos rendered as HTML
fragments, backed by a SQLite content store.`,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", ".resourceboard.yml", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
