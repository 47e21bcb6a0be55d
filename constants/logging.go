package constants

import "log/slog"

const EnvLogLevel = "STREAMGUARD_LOG_LEVEL"

// LogLevelOff is above every level slog will ever emit
const LogLevelOff = slog.Level(8192)
