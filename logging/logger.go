package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/streamguard/ingest-sdk/constants"
)

func Initialize(componentName string) {
	slog.SetDefault(ingestLogger(componentName))
}

// ingestLogger returns a logger that writes JSON log lines to stderr
func ingestLogger(componentName string) *slog.Logger {
	level := getLogLevel()
	if level == constants.LogLevelOff {
		return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))
	}

	handlerOptions := &slog.HandlerOptions{
		Level: level,
	}

	// add component name as source
	componentLongName := fmt.Sprintf("streamguard-ingest-%s", componentName)
	return slog.New(slog.NewJSONHandler(os.Stderr, handlerOptions)).With("source", componentLongName)
}

func getLogLevel() slog.Leveler {
	levelEnv := os.Getenv(constants.EnvLogLevel)

	switch strings.ToLower(levelEnv) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	case "off":
		return constants.LogLevelOff
	default:
		return constants.LogLevelOff
	}
}
