package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStreamPathSuffix(t *testing.T) {
	tests := []struct {
		path   string
		suffix string
	}{
		{"/symbols/{symbol}/historical-quotes", "historical-quotes"},
		{"/symbols/{symbol}/timescale-marks", "timescale-marks"},
		{"/symbols/{symbol}/full-financial-reports", "full-financial-reports"},
		{"/instruments", ""},
	}

	for _, test := range tests {
		s := NewStream("any", test.path)
		assert.Equal(t, test.suffix, s.PathSuffix(), "path %s", test.path)
	}
}

func TestStreamWrapCarriesSourceDefinition(t *testing.T) {
	s := NewStream("quotes", "/symbols/{symbol}/historical-quotes", "symbol", "date")
	s.SyncMode = INCREMENTAL
	s.CursorField = "date"

	cfg := s.Wrap()
	assert.Equal(t, "quotes", cfg.ID())
	assert.Equal(t, INCREMENTAL, cfg.GetSyncMode())
	assert.Equal(t, "date", cfg.Cursor())
	assert.Same(t, s, cfg.GetStream())
}

func TestConfiguredStreamValidate(t *testing.T) {
	source := NewStream("quotes", "/symbols/{symbol}/historical-quotes", "symbol", "date")
	source.SyncMode = INCREMENTAL
	source.CursorField = "date"

	// empty mode and cursor default to the source definition
	cfg := &ConfiguredStream{Stream: source}
	require.NoError(t, cfg.Validate(source))
	assert.Equal(t, INCREMENTAL, cfg.SyncMode)
	assert.Equal(t, "date", cfg.CursorField)

	// a full-table downgrade is always allowed
	cfg = &ConfiguredStream{Stream: source, SyncMode: FULLTABLE}
	require.NoError(t, cfg.Validate(source))

	// a cursor the source does not define is rejected
	cfg = &ConfiguredStream{Stream: source, SyncMode: INCREMENTAL, CursorField: "updated_at"}
	assert.Error(t, cfg.Validate(source))

	// incremental on a full-table source is rejected
	fullTable := NewStream("indicators", "/symbols/{symbol}/financial-indicators", "symbol")
	cfg = &ConfiguredStream{Stream: fullTable, SyncMode: INCREMENTAL}
	assert.Error(t, cfg.Validate(fullTable))
}
