package logger

import (
	"io"
	"os"
	"strings"
	"testing"

	"github.com/fireant-io/tap-fireant/types"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func captureStdout(t *testing.T, fn func()) []types.Message {
	t.Helper()
	orig := os.Stdout
	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stdout = w
	defer func() { os.Stdout = orig }()

	fn()
	require.NoError(t, w.Close())
	data, err := io.ReadAll(r)
	require.NoError(t, err)

	messages := []types.Message{}
	for _, line := range strings.Split(strings.TrimSpace(string(data)), "\n") {
		if line == "" {
			continue
		}
		var message types.Message
		require.NoError(t, json.Unmarshal([]byte(line), &message))
		messages = append(messages, message)
	}
	return messages
}

func TestWarnAndErrorEmitLogRows(t *testing.T) {
	messages := captureStdout(t, func() {
		Warnf("skipping stream %s", "quotes")
		Errorf("aborted unit %s", "events")
	})
	require.Len(t, messages, 2)

	assert.Equal(t, types.LogMessage, messages[0].Type)
	require.NotNil(t, messages[0].Log)
	assert.Equal(t, "warn", messages[0].Log.Level)
	assert.Equal(t, "skipping stream quotes", messages[0].Log.Message)

	assert.Equal(t, types.LogMessage, messages[1].Type)
	require.NotNil(t, messages[1].Log)
	assert.Equal(t, "error", messages[1].Log.Level)
	assert.Equal(t, "aborted unit events", messages[1].Log.Message)
}

func TestInfoStaysOffStdout(t *testing.T) {
	messages := captureStdout(t, func() {
		Infof("finished reading stream %s", "quotes")
	})
	assert.Empty(t, messages, "info logs belong to stderr only")
}

func TestLogRecordRow(t *testing.T) {
	messages := captureStdout(t, func() {
		LogRecord("quotes", types.Record{"symbol": "VNM", "priceClose": 10.5})
	})
	require.Len(t, messages, 1)

	assert.Equal(t, types.RecordMessage, messages[0].Type)
	require.NotNil(t, messages[0].Record)
	assert.Equal(t, "quotes", messages[0].Record.Stream)
	assert.Equal(t, "VNM", messages[0].Record.Data["symbol"])
}
