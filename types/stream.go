package types

import (
	"strings"

	"github.com/goccy/go-json"
)

type SyncMode string

const (
	FULLTABLE   SyncMode = "FULL_TABLE"
	INCREMENTAL SyncMode = "INCREMENTAL"
)

// PaginationMode tags the continuation strategy a stream uses.
type PaginationMode string

const (
	// SingleShot issues exactly one request per stream+context unit.
	SingleShot PaginationMode = "single_shot"
	// DateWindow slides contiguous [start, end] day windows up to today.
	DateWindow PaginationMode = "date_window"
)

// Stream is the immutable definition of one extraction unit: a path
// template, key configuration and the behavior tags consumed by the
// generic sync engine.
type Stream struct {
	Name        string          `json:"name"`
	Path        string          `json:"path"` // may contain the {symbol} placeholder
	PrimaryKeys []string        `json:"primary_keys"`
	CursorField string          `json:"cursor_field,omitempty"`
	SyncMode    SyncMode        `json:"sync_mode"`
	Pagination  PaginationMode  `json:"pagination"`
	Parent      string          `json:"parent_stream,omitempty"`
	ReportType  int             `json:"report_type,omitempty"` // full-financial-reports discriminator; 0 when unused
	Schema      json.RawMessage `json:"json_schema,omitempty"`
}

func NewStream(name, path string, primaryKeys ...string) *Stream {
	return &Stream{
		Name:        name,
		Path:        path,
		PrimaryKeys: primaryKeys,
		SyncMode:    FULLTABLE,
		Pagination:  SingleShot,
	}
}

func (s *Stream) ID() string {
	return s.Name
}

// PathSuffix returns the endpoint segment following the {symbol}
// placeholder, used by the response mapper to re-derive the symbol from a
// resolved request URL.
func (s *Stream) PathSuffix() string {
	_, suffix, found := strings.Cut(s.Path, "{symbol}/")
	if !found {
		return ""
	}
	return suffix
}

// Wrap converts a source stream into its configured form, carrying over
// the source-defined sync mode and cursor.
func (s *Stream) Wrap() *ConfiguredStream {
	return &ConfiguredStream{
		Stream:      s,
		SyncMode:    s.SyncMode,
		CursorField: s.CursorField,
	}
}

func StreamsToMap(streams ...*Stream) map[string]*Stream {
	output := make(map[string]*Stream, len(streams))
	for _, stream := range streams {
		output[stream.ID()] = stream
	}
	return output
}
