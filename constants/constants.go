package constants

import "time"

// viper keys shared between protocol and logger
const (
	ConfigFolder = "CONFIG_FOLDER"
	StatePath    = "STATE_PATH"
	StreamsPath  = "STREAMS_PATH"
)

const (
	// DateFormat is the day granularity the FireAnt API speaks.
	DateFormat = "2006-01-02"

	// DefaultLookback is the window start when neither a bookmark nor a
	// configured start_date exists.
	DefaultLookback = 7 * 24 * time.Hour

	// WindowDays is the stride of the date-window paginator.
	WindowDays = 90

	// DefaultPageLimit is the page size sent on date-windowed streams.
	DefaultPageLimit = 100

	DefaultRetryCount    = 3
	DefaultTimeoutSecond = 30
)

const (
	// SymbolField is attached to every child-stream record.
	SymbolField = "symbol"

	// InstrumentTypeField and TradableInstrumentType drive child-context
	// qualification on the instruments stream.
	InstrumentTypeField    = "type"
	TradableInstrumentType = "stock"

	// TradableSymbolLength is the exact symbol length qualifying an
	// instrument for child extraction.
	TradableSymbolLength = 3
)
