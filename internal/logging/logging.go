package logging

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

var log = logrus.New()

// New builds a logger writing to stdout. Format is "json" (default) or
// "text"; an unknown level falls back to info.
func New(level, format string) *logrus.Logger {
	return newLogger(os.Stdout, level, format)
}

func newLogger(out io.Writer, level, format string) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(out)
	if format == "text" {
		l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true, TimestampFormat: "2006-01-02 15:04:05"})
	} else {
		l.SetFormatter(&logrus.JSONFormatter{}) // Use JSON format for structured logs
	}
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	l.SetLevel(lvl)
	return l
}

// InitializeLogger initializes the package logger and returns it.
func InitializeLogger(level, format string) *logrus.Logger {
	log = New(level, format)
	return log
}

// Logger returns the package logger.
func Logger() *logrus.Logger {
	return log
}

// Info logs informational messages.
func Info(message string, fields map[string]interface{}) {
	log.WithFields(fields).Info(message)
}

// Error logs error messages.
func Error(message string, fields map[string]interface{}) {
	log.WithFields(fields).Error(message)
}

// Debug logs debug messages.
func Debug(message string, fields map[string]interface{}) {
	log.WithFields(fields).Debug(message)
}
