package types

import (
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newConfiguredStream(name string, cursor string, mode SyncMode) *ConfiguredStream {
	s := NewStream(name, "/symbols/{symbol}/"+name)
	s.CursorField = cursor
	s.SyncMode = mode
	return s.Wrap()
}

func TestCursorSetAndGet(t *testing.T) {
	s := NewState()
	cfg := newConfiguredStream("quotes", "date", INCREMENTAL)

	// empty key is ignored
	s.SetCursor(cfg, "", "2024-01-01")
	assert.Nil(t, s.GetCursor(cfg, ""))

	s.SetCursor(cfg, "VNM", "2024-01-05")
	got := s.GetCursor(cfg, "VNM")
	require.NotNil(t, got)
	assert.Equal(t, "2024-01-05", got)

	// unknown key and unknown stream return nil
	assert.Nil(t, s.GetCursor(cfg, "HPG"))
	assert.Nil(t, s.GetCursor(newConfiguredStream("events", "date", FULLTABLE), "VNM"))
}

func TestCursorMonotonicMerge(t *testing.T) {
	s := NewState()
	cfg := newConfiguredStream("quotes", "date", INCREMENTAL)

	s.SetCursor(cfg, "VNM", "2024-01-05")

	// an older value never rewinds the bookmark
	s.SetCursor(cfg, "VNM", "2023-12-31")
	assert.Equal(t, "2024-01-05", s.GetCursor(cfg, "VNM"))

	// re-applying the same value is a no-op
	s.SetCursor(cfg, "VNM", "2024-01-05")
	assert.Equal(t, "2024-01-05", s.GetCursor(cfg, "VNM"))

	// a newer value advances it
	s.SetCursor(cfg, "VNM", "2024-02-01")
	assert.Equal(t, "2024-02-01", s.GetCursor(cfg, "VNM"))

	// per-key isolation within the stream
	s.SetCursor(cfg, "HPG", "2024-01-01")
	assert.Equal(t, "2024-02-01", s.GetCursor(cfg, "VNM"))
	assert.Equal(t, "2024-01-01", s.GetCursor(cfg, "HPG"))
}

func TestResetCursorAndStreams(t *testing.T) {
	s := NewState()
	assert.True(t, s.IsZero())

	cfg := newConfiguredStream("quotes", "date", INCREMENTAL)
	s.SetCursor(cfg, "VNM", "2024-01-05")
	require.False(t, s.IsZero())

	s.ResetCursor(cfg)
	assert.Nil(t, s.GetCursor(cfg, "VNM"))
	assert.True(t, s.IsZero())

	// a reset stream accepts bookmarks again, including older ones
	s.SetCursor(cfg, "VNM", "2023-06-01")
	assert.Equal(t, "2023-06-01", s.GetCursor(cfg, "VNM"))
	assert.False(t, s.IsZero())

	s.SetCursor(cfg, "VNM", "2024-01-05")
	s.ResetStreams()
	assert.Equal(t, 0, len(s.Streams))
}

func TestStateMarshalPopulatedStreamsOnly(t *testing.T) {
	s := NewState()
	holding := newConfiguredStream("quotes", "date", INCREMENTAL)
	empty := newConfiguredStream("events", "date", FULLTABLE)

	s.SetCursor(holding, "VNM", "2024-01-05")
	// create a stream state that never held a value
	s.Lock()
	s.initStreamState(empty)
	s.Unlock()

	b, err := json.Marshal(s)
	require.NoError(t, err)

	var root map[string]any
	require.NoError(t, json.Unmarshal(b, &root))
	streams, ok := root["streams"].([]any)
	require.True(t, ok)
	assert.Equal(t, 1, len(streams), "only populated streams must be serialized")
}

func TestStreamStateMarshalRoundTrip(t *testing.T) {
	s := NewState()
	cfg := newConfiguredStream("quotes", "date", INCREMENTAL)
	s.SetCursor(cfg, "VNM", "2024-01-05")
	s.SetCursor(cfg, "HPG", "2024-01-02")

	b, err := json.Marshal(s)
	require.NoError(t, err)

	restored := NewState()
	require.NoError(t, json.Unmarshal(b, restored))
	assert.Equal(t, "2024-01-05", restored.GetCursor(cfg, "VNM"))
	assert.Equal(t, "2024-01-02", restored.GetCursor(cfg, "HPG"))
	assert.False(t, restored.IsZero())
}
