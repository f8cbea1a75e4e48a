package types

type StreamInterface interface {
	ID() string
	Self() *ConfiguredStream
	Name() string
	GetStream() *Stream
	GetSyncMode() SyncMode
	Cursor() string
	Validate(source *Stream) error
}
