package logging

import (
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// New returns a human readable logger writing to w. An empty level means info.
func New(w io.Writer, level string) (zerolog.Logger, error) {
	var lvl = zerolog.InfoLevel
	if level = strings.TrimSpace(level); level != "" {
		var err error
		lvl, err = zerolog.ParseLevel(strings.ToLower(level))
		if err != nil {
			return zerolog.Nop(), err
		}
	}
	var output = zerolog.ConsoleWriter{Out: w, TimeFormat: time.TimeOnly, NoColor: true}
	return zerolog.New(output).Level(lvl).With().Timestamp().Logger(), nil
}
