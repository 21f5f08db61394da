package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/rtgeorge/resourceboard/internal/catalog"
	"github.com/rtgeorge/resourceboard/internal/config"
	"github.com/rtgeorge/resourceboard/internal/db"
	"github.com/rtgeorge/resourceboard/internal/progress"
	"github.com/rtgeorge/resourceboard/internal/seed"
)

var seedCmd = &cobra.Command{
	Use:   "seed <pattern>",
	Short: "Import resource records from YAML files",
	Long: `Imports resource records into the content store from YAML files
matching the given glob pattern (doublestar syntax, e.g. "seeds/**/*.yml").
Records with an id replace existing records; records without one get a
generated id.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}

		if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
			return fmt.Errorf("creating data dir: %w", err)
		}
		database, err := db.Open(filepath.Join(cfg.DataDir, "resourceboard.db"))
		if err != nil {
			return fmt.Errorf("opening database: %w", err)
		}
		defer database.Close()

		n, err := seed.Run(cmd.Context(), catalog.NewStore(database), args[0], progress.NewReporter())
		if err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "Imported %d resources\n", n)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(seedCmd)
}
