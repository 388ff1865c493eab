// Package cmd contains all the commands included in the binary file.
package cmd

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// NewRootCommand enables all children commands to read configuration from
// CLI flags or environment variables prefixed with XMLRECORD (in that
// order).
func NewRootCommand() *cobra.Command {
	viper.SetEnvPrefix("XMLRECORD")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	return &cobra.Command{
		Use:   "xmlrecord",
		Short: "Stream key/value records into well-formed XML documents",
		Long: `Stream key/value records into well-formed XML documents.

xmlrecord converts JSONL or CSV record streams into an XML document,
writing and flushing each record as it arrives so memory use stays flat
no matter how many records pass through.`,
	}
}
