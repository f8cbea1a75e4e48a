package logger

import (
	"github.com/fireant-io/tap-fireant/constants"
	"github.com/fireant-io/tap-fireant/types"
	"github.com/fireant-io/tap-fireant/utils"
	"github.com/spf13/viper"
)

// LogRecord emits one RECORD row for the stream.
func LogRecord(stream string, record types.Record) {
	writeMessage(types.Message{
		Type: types.RecordMessage,
		Record: &types.RecordRow{
			Stream: stream,
			Data:   record,
		},
	})
}

// LogState emits a STATE row and durably rewrites the state file. Called
// after every fully drained stream+context unit so an interrupted run
// resumes from the last completed unit.
func LogState(state *types.State) {
	writeMessage(types.Message{
		Type:  types.StateMessage,
		State: state,
	})

	statePath := viper.GetString(constants.StatePath)
	if statePath == "" {
		return
	}
	if err := utils.WriteFile(statePath, state); err != nil {
		Warnf("failed to persist state to %s: %s", statePath, err)
	}
}

// LogCatalog emits the CATALOG row and saves a streams file next to the
// config for later catalog edits.
func LogCatalog(streams []*types.Stream) {
	catalog := types.GetWrappedCatalog(streams)
	writeMessage(types.Message{
		Type:    types.CatalogMessage,
		Catalog: catalog,
	})

	streamsPath := viper.GetString(constants.StreamsPath)
	if streamsPath == "" {
		return
	}
	if err := utils.WriteFile(streamsPath, catalog); err != nil {
		Warnf("failed to persist catalog to %s: %s", streamsPath, err)
	}
}

// LogSpec emits the connector's config schema.
func LogSpec(spec map[string]any) {
	writeMessage(types.Message{
		Type: types.SpecMessage,
		Spec: spec,
	})
}

// LogConnectionStatus reports the outcome of a check probe. A failed probe
// is a reported status, not a process failure.
func LogConnectionStatus(err error) {
	status := types.StatusRow{
		Status: types.ConnectionSucceed,
	}
	if err != nil {
		status.Status = types.ConnectionFailed
		status.Message = err.Error()
	}
	writeMessage(types.Message{
		Type:             types.ConnectionStatusMessage,
		ConnectionStatus: &status,
	})
}
