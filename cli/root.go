package cli

import (
	"github.com/MakeNowJust/heredoc"
	"github.com/goto/salt/cmdx"
	"github.com/spf13/cobra"
)

var envHelp = map[string]string{
	"short": "List of supported environment variables",
	"long": heredoc.Doc(`
		LINEAGE_CLIENT_HOST: base url of the catalog REST API.

		LINEAGE_CLIENT_API_TOKEN: bearer token sent with every catalog request.

		LINEAGE_DB_HOST, LINEAGE_DB_PORT, LINEAGE_DB_NAME, LINEAGE_DB_USER, LINEAGE_DB_PASSWORD:
		postgres connection used to store lineage snapshots.

		LINEAGE_STATSD_ENABLED, LINEAGE_STATSD_ADDRESS: client side metrics of catalog calls.

		NO_COLOR: set to any value to avoid printing ANSI escape sequences for color output.
	`),
}

func New(cfg *Config) *cobra.Command {
	var rootCmd = &cobra.Command{
		Use:           "lineage <command> <subcommand> [flags]",
		Short:         "Catalog lineage explorer",
		Long:          "Query, traverse and snapshot the lineage graph of a metadata catalog.",
		SilenceErrors: true,
		SilenceUsage:  false,
		Example: heredoc.Doc(`
		$ lineage list <guid>
		$ lineage graph <guid> --direction both
		$ lineage snapshot save <guid>
		`),
		Annotations: map[string]string{
			"group": "core",
			"help:learn": heredoc.Doc(`
				Use 'lineage <command> --help' for info about a command.
			`),
			"help:feedback": heredoc.Doc(`
				Open an issue here https://github.com/goto/lineage/issues
			`),
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfgFile, _ := cmd.Flags().GetString(configFlag)
			if cfgFile == "" {
				return nil
			}
			return LoadConfigFromFlag(cfgFile, cfg)
		},
	}

	rootCmd.AddCommand(
		configCommand(cfg),
		migrateCommand(cfg),
		versionCmd(),
	)
	rootCmd.AddCommand(lineageCommands(cfg)...)

	// Help topics
	rootCmd.AddCommand(cmdx.SetCompletionCmd(appName))
	rootCmd.AddCommand(cmdx.SetRefCmd(rootCmd))
	rootCmd.AddCommand(cmdx.SetHelpTopicCmd("environment", envHelp))
	cmdx.SetHelp(rootCmd)

	rootCmd.PersistentFlags().StringP(configFlag, "c", "", "Override config file")

	return rootCmd
}
