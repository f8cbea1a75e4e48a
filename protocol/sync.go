package protocol

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/fireant-io/tap-fireant/logger"
	"github.com/fireant-io/tap-fireant/types"
	"github.com/fireant-io/tap-fireant/utils"
	"github.com/spf13/cobra"
)

// syncCmd drives every selected stream to completion, persisting bookmarks
// after each stream+context unit.
var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "sync command",
	Long:  `Sync runs the extraction engine over the selected streams and emits RECORD/STATE rows`,
	Example: `
// Full catalog:
tap-fireant sync --config path/to/config.json

// Narrowed catalog with resumable state:
tap-fireant sync --config path/to/config.json --catalog path/to/streams.json --state path/to/state.json
`,
	PreRunE: func(_ *cobra.Command, _ []string) error {
		if configPath == "not-set" {
			return fmt.Errorf("--config not passed")
		}
		if err := utils.UnmarshalFile(configPath, connector.GetConfigRef()); err != nil {
			return err
		}

		if catalogPath != "" {
			catalog = &types.Catalog{}
			if err := utils.UnmarshalFile(catalogPath, catalog); err != nil {
				return err
			}
		}

		state = types.NewState()
		if statePath != "" {
			if err := utils.UnmarshalFile(statePath, state); err != nil {
				return err
			}
			state.RWMutex = &sync.RWMutex{}
		}

		return nil
	},
	RunE: func(cmd *cobra.Command, _ []string) error {
		if err := connector.Setup(cmd.Context()); err != nil {
			return err
		}

		streams, err := connector.Discover(cmd.Context())
		if err != nil {
			return err
		}
		streamsMap := types.StreamsToMap(streams...)

		// default to the full catalog when none was provided
		if catalog == nil {
			catalog = types.GetWrappedCatalog(streams)
		}

		// validate configured streams against the source definitions
		selectedStreams := []string{}
		validStreams := []types.StreamInterface{}
		_, _ = utils.ArrayContains(catalog.Streams, func(elem *types.ConfiguredStream) bool {
			source, found := streamsMap[elem.ID()]
			if !found {
				logger.Warnf("Skipping; configured stream %s not found in source", elem.ID())
				return false
			}

			if err := elem.Validate(source); err != nil {
				logger.Warnf("Skipping; configured stream %s found invalid due to reason: %s", elem.ID(), err)
				return false
			}

			selectedStreams = append(selectedStreams, elem.ID())
			validStreams = append(validStreams, elem)
			return false
		})
		if len(validStreams) == 0 {
			return fmt.Errorf("no valid streams found in catalog")
		}
		logger.Infof("Valid selected streams are %s", strings.Join(selectedStreams, ", "))

		connector.SetupState(state)

		syncStartTime := time.Now()
		err = connector.Sync(cmd.Context(), validStreams)
		if !state.IsZero() {
			logger.LogState(state)
		}
		if err != nil {
			return fmt.Errorf("error occurred while reading records: %s", err)
		}

		logger.Infof("Sync finished in %s", time.Since(syncStartTime).String())
		return nil
	},
}
