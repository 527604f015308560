package cli

import (
	"fmt"

	"github.com/MakeNowJust/heredoc"
	"github.com/goto/lineage/internal/store/postgres"
	"github.com/spf13/cobra"
)

func migrateCommand(cfg *Config) *cobra.Command {
	var down bool

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Run snapshot storage migration",
		Example: heredoc.Doc(`
			$ lineage migrate
			$ lineage migrate --down
		`),
		Args: cobra.NoArgs,
		Annotations: map[string]string{
			"group": "core",
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := initLogger(cfg.LogLevel)
			logger.Info("lineage is migrating", "version", Version)

			logger.Info("Initiating Postgres client...")
			pgClient, err := postgres.NewClient(cfg.DB)
			if err != nil {
				logger.Error("failed to prepare migration", "error", err)
				return err
			}
			defer pgClient.Close()

			migrateFn := pgClient.Migrate
			if down {
				migrateFn = pgClient.MigrateDown
			}
			ver, err := migrateFn(cfg.DB)
			if err != nil {
				return fmt.Errorf("problem with migration %w", err)
			}

			logger.Info("Migration Postgres done.", "version", ver)
			return nil
		},
	}

	cmd.Flags().BoolVar(&down, "down", false, "roll back the latest migration")
	return cmd
}
