// logging/logging.go
package logging

import (
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Bootstrap returns a development-friendly logger for early startup, before
// config is loaded. It logs to stderr at info level.
func Bootstrap() *zap.Logger {
	cfg := zap.NewDevelopmentConfig()
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)

	logger, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}

// ValidLevels lists the accepted log levels, in increasing severity.
var ValidLevels = []string{"debug", "info", "warn", "error", "dpanic", "panic", "fatal"}

// IsValidLevel reports whether level is an accepted log level.
// Comparison is case-insensitive.
func IsValidLevel(level string) bool {
	level = strings.ToLower(level)
	for _, valid := range ValidLevels {
		if level == valid {
			return true
		}
	}
	return false
}

// Build constructs the final logger from the configured level and env.
// "prod" gets a JSON encoder; anything else gets the development config.
// An invalid level defaults to info with a warning on stderr so the
// misconfiguration is visible.
func Build(level, env string) (*zap.Logger, error) {
	var cfg zap.Config
	if env == "prod" {
		cfg = zap.NewProductionConfig()
		cfg.Encoding = "json"
	} else {
		cfg = zap.NewDevelopmentConfig()
	}

	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	if err := cfg.Level.UnmarshalText([]byte(strings.ToLower(level))); err != nil {
		_, _ = os.Stderr.WriteString("WARNING: invalid log level \"" + level +
			"\"; valid levels are: " + strings.Join(ValidLevels, ", ") + ". Defaulting to \"info\".\n")
		cfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}

	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}

	return cfg.Build()
}

// Must is a convenience for main() that wants to exit on logger build
// failure.
func Must(level, env string) *zap.Logger {
	logger, err := Build(level, env)
	if err != nil {
		_, _ = os.Stderr.WriteString("failed to build logger: " + err.Error() + "\n")
		os.Exit(1)
	}
	return logger
}
