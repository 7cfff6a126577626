// Package logging builds the zerolog loggers shared by the three services.
package logging

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// logger fields
const (
	SERVICE    = "svc"
	REQUEST_ID = "rid"
	PRODUCT_ID = "product_id"
)

func init() {
	zerolog.TimeFieldFormat = time.RFC3339Nano
}

// New returns a JSON logger on stdout tagged with svc={service}.
// Unknown levels fall back to info.
func New(service, level string) zerolog.Logger {
	return NewWithWriter(os.Stdout, service, level)
}

func NewWithWriter(w io.Writer, service, level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	return zerolog.New(w).Level(lvl).With().
		Timestamp().
		Str(SERVICE, service).
		Logger()
}
