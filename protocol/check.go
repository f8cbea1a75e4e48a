package protocol

import (
	"fmt"

	"github.com/fireant-io/tap-fireant/logger"
	"github.com/fireant-io/tap-fireant/utils"
	"github.com/spf13/cobra"
)

// checkCmd probes the API with the provided credentials and reports a
// CONNECTION_STATUS row; a failed probe is carried in the status, not in
// the exit code.
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "check command",
	PreRunE: func(_ *cobra.Command, _ []string) error {
		if configPath == "not-set" {
			return fmt.Errorf("--config not passed")
		}
		return utils.UnmarshalFile(configPath, connector.GetConfigRef())
	},
	Run: func(cmd *cobra.Command, _ []string) {
		logger.LogConnectionStatus(connector.Setup(cmd.Context()))
	},
}
