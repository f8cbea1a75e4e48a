package protocol

import (
	"errors"
	"fmt"

	"github.com/fireant-io/tap-fireant/logger"
	"github.com/fireant-io/tap-fireant/utils"
	"github.com/spf13/cobra"
)

// discoverCmd emits the catalog of every stream the connector can extract.
var discoverCmd = &cobra.Command{
	Use:   "discover",
	Short: "discover command",
	PreRunE: func(_ *cobra.Command, _ []string) error {
		if configPath == "not-set" {
			return fmt.Errorf("--config not passed")
		}
		return utils.UnmarshalFile(configPath, connector.GetConfigRef())
	},
	RunE: func(cmd *cobra.Command, _ []string) error {
		if err := connector.Setup(cmd.Context()); err != nil {
			return err
		}

		streams, err := connector.Discover(cmd.Context())
		if err != nil {
			return err
		}
		if len(streams) == 0 {
			return errors.New("no streams found in connector")
		}

		logger.LogCatalog(streams)
		return nil
	},
}
