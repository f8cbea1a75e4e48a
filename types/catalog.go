package types

// Record is one normalized output row after enrichment.
type Record map[string]any

// Message is the envelope for every protocol row on stdout.
type Message struct {
	Type             MessageType    `json:"type"`
	Log              *Log           `json:"log,omitempty"`
	ConnectionStatus *StatusRow     `json:"connectionStatus,omitempty"`
	State            *State         `json:"state,omitempty"`
	Catalog          *Catalog       `json:"catalog,omitempty"`
	Record           *RecordRow     `json:"record,omitempty"`
	Spec             map[string]any `json:"spec,omitempty"`
}

// Log is a dto for log row serialization
type Log struct {
	Level   string `json:"level,omitempty"`
	Message string `json:"message,omitempty"`
}

// StatusRow is a dto for connection check result serialization
type StatusRow struct {
	Status  ConnectionStatus `json:"status,omitempty"`
	Message string           `json:"message,omitempty"`
}

// RecordRow is a dto for one emitted record
type RecordRow struct {
	Stream string `json:"stream"`
	Data   Record `json:"data"`
}

// Catalog is the discoverable stream set, optionally narrowed by the user.
type Catalog struct {
	Streams []*ConfiguredStream `json:"streams,omitempty"`
}

// GetWrappedCatalog wraps source streams into a configured catalog carrying
// the source-defined sync modes and cursors.
func GetWrappedCatalog(streams []*Stream) *Catalog {
	catalog := &Catalog{
		Streams: []*ConfiguredStream{},
	}
	for _, stream := range streams {
		catalog.Streams = append(catalog.Streams, stream.Wrap())
	}
	return catalog
}
