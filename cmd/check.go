package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/whyarkadas/optimized-xml-writer/internal/logger"
	"github.com/whyarkadas/optimized-xml-writer/wellformed"
)

// NewCheckCommand returns the command that re-parses a produced document
// and reports whether it is well formed.
func NewCheckCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check <file>",
		Short: "Check that a document starts with an XML declaration and its tags balance",
		Args:  cobra.ExactArgs(1),
		PreRun: func(cmd *cobra.Command, _ []string) {
			bindFlags(cmd.Flags(), "log-format", "log-level")
		},
		RunE: runCheck,
	}

	flags := cmd.Flags()
	flags.String("log-format", "text", `log format: "text" or "json"`)
	flags.String("log-level", "info", "log level")

	return cmd
}

func runCheck(cmd *cobra.Command, args []string) error {
	log, err := logger.New(viper.GetString("log-format"), viper.GetString("log-level"))
	if err != nil {
		return err
	}
	defer log.Sync()

	if err := wellformed.CheckFile(args[0]); err != nil {
		return err
	}
	log.Info("document is well formed", zap.String("file", args[0]))
	return nil
}
