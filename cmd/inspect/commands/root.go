package commands

import (
	"github.com/spf13/cobra"

	"ring-inspector/config"
	"ring-inspector/internal/logging"
)

var (
	cfg    *config.Config
	logger *logging.Logger

	logLevel string
)

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "ring-inspect",
		Short:        "Shape inspection of annular parts",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := config.Load()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("log-level") {
				loaded.LogLevel = logLevel
			}

			level, err := logging.ParseLevel(loaded.LogLevel)
			if err != nil {
				return err
			}

			cfg = loaded
			logger = logging.NewLogger("inspect", level)
			return nil
		},
	}

	root.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level: debug, info, warn, error")

	root.AddCommand(runCmd())
	return root
}
