package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/fireant-io/tap-fireant/constants"
	"github.com/fireant-io/tap-fireant/types"
	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"
)

var logger zerolog.Logger

func init() {
	// usable before Init for early failures; Init adds the file sink
	logger = zerolog.New(console()).With().Timestamp().Logger()
}

func console() zerolog.ConsoleWriter {
	return zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
	}
}

// Init wires the console and rotating-file sinks. Protocol messages go to
// stdout untouched; human logs go to stderr and the log file under the
// config folder.
func Init() {
	logDir := filepath.Join(viper.GetString(constants.ConfigFolder), "logs")
	fileWriter := &lumberjack.Logger{
		Filename:   filepath.Join(logDir, fmt.Sprintf("sync_%d.log", time.Now().Unix())),
		MaxSize:    100, // megabytes
		MaxBackups: 5,
		MaxAge:     30, // days
	}

	logger = zerolog.New(io.MultiWriter(console(), fileWriter)).With().Timestamp().Logger()
}

func Info(v ...any) {
	logger.Info().Msg(fmt.Sprint(v...))
}

func Infof(format string, v ...any) {
	logger.Info().Msgf(format, v...)
}

func Debug(v ...any) {
	logger.Debug().Msg(fmt.Sprint(v...))
}

func Debugf(format string, v ...any) {
	logger.Debug().Msgf(format, v...)
}

// Warnings and errors also surface as LOG protocol rows so a consumer
// reading stdout sees aborts without scraping stderr.
func Warn(v ...any) {
	logger.Warn().Msg(fmt.Sprint(v...))
	logRow(zerolog.LevelWarnValue, fmt.Sprint(v...))
}

func Warnf(format string, v ...any) {
	logger.Warn().Msgf(format, v...)
	logRow(zerolog.LevelWarnValue, fmt.Sprintf(format, v...))
}

func Error(v ...any) {
	logger.Error().Msg(fmt.Sprint(v...))
	logRow(zerolog.LevelErrorValue, fmt.Sprint(v...))
}

func Errorf(format string, v ...any) {
	logger.Error().Msgf(format, v...)
	logRow(zerolog.LevelErrorValue, fmt.Sprintf(format, v...))
}

func Fatal(v ...any) {
	logger.Fatal().Msg(fmt.Sprint(v...))
}

func Fatalf(format string, v ...any) {
	logger.Fatal().Msgf(format, v...)
}

// logRow emits one LOG protocol row.
func logRow(level, message string) {
	writeMessage(types.Message{
		Type: types.LogMessage,
		Log: &types.Log{
			Level:   level,
			Message: message,
		},
	})
}

// writeMessage emits one protocol row on stdout.
func writeMessage(message types.Message) {
	data, err := json.Marshal(message)
	if err != nil {
		Fatalf("failed to marshal %s message: %s", message.Type, err)
	}
	fmt.Fprintln(os.Stdout, string(data))
}
