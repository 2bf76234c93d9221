package log

import (
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/rs/zerolog/pkgerrors"
	config "github.com/thirdweb-dev/safecosts/configs"
)

func InitLogger() {
	// overrides zerolog global logger
	log.Logger = NewLogger("safecosts")
}

func NewLogger(name string) zerolog.Logger {
	return newLogger(os.Stderr, name, config.Cfg.Log)
}

// stdout carries the ranked cost report, so logs always go to the given writer (stderr in practice)
func newLogger(out io.Writer, name string, cfg config.LogConfig) zerolog.Logger {
	zerolog.ErrorStackMarshaler = pkgerrors.MarshalStack

	level := zerolog.InfoLevel
	if lvl, err := zerolog.ParseLevel(cfg.Level); err == nil && lvl != zerolog.NoLevel {
		level = lvl
	}
	zerolog.SetGlobalLevel(level)

	if cfg.Prettify {
		out = zerolog.ConsoleWriter{Out: out}
	}
	return zerolog.New(out).With().Timestamp().Str("component", name).Logger()
}
