package logger

import (
	"os"

	"github.com/rs/zerolog"
)

const permission = 0664

// New returns the application logger writing to stdout.
func New() zerolog.Logger {
	return zerolog.New(os.Stdout).With().Timestamp().Logger()
}

// NewFile returns a logger appending to the given path, used for the
// feedback log. The caller owns the returned file handle.
func NewFile(path string) (zerolog.Logger, *os.File, error) {
	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, permission)

	if err != nil {
		return zerolog.Logger{}, nil, err
	}

	log := zerolog.New(zerolog.SyncWriter(file)).With().Timestamp().Logger()
	return log, file, nil
}
