// Package logger builds go-logging loggers for emitters and the replay tool.
package logger

import (
	"io"

	"github.com/go-errors/errors"
	"github.com/op/go-logging"
)

const DefaultLevel = "DEBUG"

var format = logging.MustStringFormatter(
	`%{color}%{time:15:04:05.000} %{module} ▶ %{level:.4s} %{id:03x}%{color:reset} %{message}`,
)

// DefaultLogger returns a logger for module that writes to out at level and above.
// The backend is process wide, as go-logging keeps a single one.
func DefaultLogger(out io.Writer, level logging.Level, module string) *logging.Logger {
	log := logging.MustGetLogger(module)

	backend := logging.NewLogBackend(out, "", 0)
	leveled := logging.AddModuleLevel(logging.NewBackendFormatter(backend, format))
	leveled.SetLevel(level, module)
	logging.SetBackend(leveled)

	return log
}

// ParseLevel turns a level name such as "INFO" into a logging.Level.
// An empty name means DefaultLevel.
func ParseLevel(name string) (logging.Level, error) {
	if name == "" {
		name = DefaultLevel
	}

	level, err := logging.LogLevel(name)
	if err != nil {
		return 0, errors.Errorf("unable to get log level: %s: %s", name, err)
	}
	return level, nil
}
