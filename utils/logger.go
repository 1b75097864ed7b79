package utils

import (
	"io"
	"os"

	log "github.com/sirupsen/logrus"
)

// init sets JSON output with ISO 8601 timestamps so logs are usable before Configure runs.
func init() {
	log.SetFormatter(&log.JSONFormatter{
		TimestampFormat: "2006-01-02T15:04:05Z07:00",
	})
	log.SetOutput(os.Stdout)
	log.SetLevel(log.InfoLevel)
}

// Configure applies the level from config. Unknown levels keep info.
func Configure(level string, out io.Writer) {
	if out != nil {
		log.SetOutput(out)
	}
	lvl, err := log.ParseLevel(level)
	if err != nil {
		Warn("unknown log level, keeping info", map[string]any{"level": level})
		lvl = log.InfoLevel
	}
	log.SetLevel(lvl)
}

// Debug logs a message at debug level with optional fields
func Debug(message string, fields map[string]any) {
	log.WithFields(fields).Debug(message)
}

// Info logs a message at info level with optional fields
func Info(message string, fields map[string]any) {
	log.WithFields(fields).Info(message)
}

// Warn logs a message at warning level with optional fields
func Warn(message string, fields map[string]any) {
	log.WithFields(fields).Warn(message)
}

// Error logs a message at error level with optional fields
func Error(message string, fields map[string]any) {
	log.WithFields(fields).Error(message)
}

// Fatal logs a message at fatal level and exits the application
func Fatal(message string, fields map[string]any) {
	log.WithFields(fields).Fatal(message)
}
