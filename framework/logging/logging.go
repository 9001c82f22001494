package logging

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"

	"github.com/km-arc/go-container/framework/config"
)

// Logger wraps zerolog.Logger so callers depend on the framework type, not
// on zerolog directly.
type Logger struct {
	zl zerolog.Logger
}

// New builds a logger from the application's log config.
func New(cfg config.LogConfig) *Logger {
	return NewWriter(cfg, os.Stdout)
}

// NewWriter is New with an explicit output, for tests.
func NewWriter(cfg config.LogConfig, out io.Writer) *Logger {
	level, err := zerolog.ParseLevel(strings.ToLower(cfg.Level))
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}

	if strings.ToLower(cfg.Format) == "console" {
		out = zerolog.ConsoleWriter{Out: out}
	}

	zl := zerolog.New(out).Level(level).With().Timestamp().Logger()
	return &Logger{zl: zl}
}

// Nop returns a logger that discards everything.
func Nop() *Logger {
	return &Logger{zl: zerolog.Nop()}
}

// WithComponent returns a logger tagged with a component name.
func (l *Logger) WithComponent(name string) *Logger {
	return &Logger{zl: l.zl.With().Str("component", name).Logger()}
}

// Raw exposes the underlying zerolog.Logger for structured event chains:
//
//	log.Raw().Info().Str("id", id).Msg("resolved")
func (l *Logger) Raw() *zerolog.Logger { return &l.zl }

func (l *Logger) Debug(msg string) { l.zl.Debug().Msg(msg) }
func (l *Logger) Info(msg string)  { l.zl.Info().Msg(msg) }
func (l *Logger) Warn(msg string)  { l.zl.Warn().Msg(msg) }
func (l *Logger) Error(msg string) { l.zl.Error().Msg(msg) }

func (l *Logger) Debugf(format string, args ...any) { l.zl.Debug().Msgf(format, args...) }
func (l *Logger) Infof(format string, args ...any)  { l.zl.Info().Msgf(format, args...) }
func (l *Logger) Warnf(format string, args ...any)  { l.zl.Warn().Msgf(format, args...) }
func (l *Logger) Errorf(format string, args ...any) { l.zl.Error().Msgf(format, args...) }

// Fatalf logs and exits. Bootstrap use only.
func (l *Logger) Fatalf(format string, args ...any) { l.zl.Fatal().Msgf(format, args...) }
