package driver

import (
	"context"
	"fmt"
	"net/url"

	"github.com/fireant-io/tap-fireant/logger"
	"github.com/fireant-io/tap-fireant/types"
	"github.com/fireant-io/tap-fireant/utils"
)

// Fireant extracts market data from the FireAnt REST API: one root
// instruments stream fanning out per-symbol child streams.
type Fireant struct {
	config Config
	client *Client
	state  *types.State

	// emit is the record sink; defaults to protocol RECORD rows on stdout.
	// Tests swap it for a collector.
	emit recordSink
}

type recordSink func(stream string, record types.Record) error

func (f *Fireant) GetConfigRef() any {
	return &f.config
}

func (f *Fireant) Type() string {
	return "fireant"
}

func (f *Fireant) SetupState(state *types.State) {
	f.state = state
}

// Setup validates the config and probes the API with the credentials; an
// invalid token fails here so no partial extraction ever starts without
// valid credentials.
func (f *Fireant) Setup(ctx context.Context) error {
	if err := f.config.Validate(); err != nil {
		return fmt.Errorf("failed to validate config: %s", err)
	}

	f.client = NewClient(&f.config)
	if f.emit == nil {
		f.emit = func(stream string, record types.Record) error {
			logger.LogRecord(stream, record)
			return nil
		}
	}

	probe := url.Values{}
	probe.Set("limit", "1")
	if _, _, err := f.client.Get(ctx, "/instruments", probe); err != nil {
		return fmt.Errorf("connection probe failed: %s", err)
	}

	return nil
}

// Discover returns the full stream table with schemas attached.
func (f *Fireant) Discover(_ context.Context) ([]*types.Stream, error) {
	streams := streamDefinitions()
	err := utils.ForEach(streams, func(stream *types.Stream) error {
		schema, err := loadSchema(stream.Name)
		if err != nil {
			return err
		}
		stream.Schema = schema
		return nil
	})
	if err != nil {
		return nil, err
	}
	return streams, nil
}

// Spec returns the JSON schema of the connector configuration.
func (f *Fireant) Spec() map[string]any {
	return map[string]any{
		"$schema":  "http://json-schema.org/draft-07/schema#",
		"title":    "FireAnt Source Spec",
		"type":     "object",
		"required": []string{"access_token"},
		"properties": map[string]any{
			"access_token": map[string]any{
				"type":        "string",
				"description": "Bearer token for api.fireant.vn",
				"secret":      true,
			},
			"start_date": map[string]any{
				"type":        "string",
				"format":      "date",
				"description": "Initial window start (YYYY-MM-DD) when no bookmark exists",
			},
			"user_agent": map[string]any{
				"type":        "string",
				"description": "Optional User-Agent header override",
			},
			"request_timeout": map[string]any{
				"type":        "integer",
				"description": "Per-request timeout in seconds",
				"default":     30,
			},
			"retry_count": map[string]any{
				"type":        "integer",
				"description": "Retries on transient HTTP failures",
				"default":     3,
			},
		},
	}
}
