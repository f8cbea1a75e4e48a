package protocol

import (
	"github.com/fireant-io/tap-fireant/logger"
	"github.com/spf13/cobra"
)

// specCmd emits the connector's config JSON schema.
var specCmd = &cobra.Command{
	Use:   "spec",
	Short: "spec command",
	RunE: func(_ *cobra.Command, _ []string) error {
		logger.LogSpec(connector.Spec())
		return nil
	},
}
