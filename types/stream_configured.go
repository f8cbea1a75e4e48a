package types

import "fmt"

// ConfiguredStream is the catalog-side view of a stream: the source
// definition plus the user's sync mode and cursor selection.
type ConfiguredStream struct {
	Stream *Stream `json:"stream,omitempty"`

	SyncMode SyncMode `json:"sync_mode,omitempty"`
	// Column being used as cursor; MUST NOT be mutated during a run
	CursorField string `json:"cursor_field,omitempty"`
}

func (s *ConfiguredStream) ID() string {
	return s.Stream.ID()
}

func (s *ConfiguredStream) Self() *ConfiguredStream {
	return s
}

func (s *ConfiguredStream) Name() string {
	return s.Stream.Name
}

func (s *ConfiguredStream) GetStream() *Stream {
	return s.Stream
}

func (s *ConfiguredStream) GetSyncMode() SyncMode {
	return s.SyncMode
}

func (s *ConfiguredStream) Cursor() string {
	return s.CursorField
}

// Validate checks a configured stream against its source definition.
func (s *ConfiguredStream) Validate(source *Stream) error {
	if s.SyncMode == "" {
		s.SyncMode = source.SyncMode
	}
	if s.SyncMode != source.SyncMode && s.SyncMode != FULLTABLE {
		return fmt.Errorf("invalid sync mode[%s]; source supports [%s, %s]", s.SyncMode, source.SyncMode, FULLTABLE)
	}

	if s.CursorField == "" {
		s.CursorField = source.CursorField
	}
	if s.CursorField != source.CursorField {
		return fmt.Errorf("invalid cursor field [%s]; valid is [%s]", s.CursorField, source.CursorField)
	}

	return nil
}
