package logger

import (
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Config — опции логгера.
type Config struct {
	Env   string // development -> читаемая консоль; иначе JSON
	Level string // trace, debug, info, warn, error
}

// Logger — обёртка над zerolog для инъекции и единообразия.
type Logger struct {
	zl zerolog.Logger
}

// New создаёт структурированный логгер. В development пишет в консоль в
// читаемом виде, в остальных окружениях — JSON.
func New(cfg Config) *Logger {
	var w io.Writer = os.Stdout
	if cfg.Env == "development" {
		w = zerolog.ConsoleWriter{Out: os.Stdout}
	}

	zl := zerolog.New(w).Level(parseLevel(cfg.Level)).With().Timestamp().Logger()

	// Перенаправляем глобальный логгер zerolog: пакеты, использующие
	// rs/zerolog/log напрямую, пишут туда же.
	log.Logger = zl

	return &Logger{zl: zl}
}

func parseLevel(s string) zerolog.Level {
	switch s {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// Debug, Info, Warn, Error, Fatal делегируют в zerolog.
func (l *Logger) Debug() *zerolog.Event { return l.zl.Debug() }
func (l *Logger) Info() *zerolog.Event  { return l.zl.Info() }
func (l *Logger) Warn() *zerolog.Event  { return l.zl.Warn() }
func (l *Logger) Error() *zerolog.Event { return l.zl.Error() }
func (l *Logger) Fatal() *zerolog.Event { return l.zl.Fatal() }

// With создаёт сублоггер с фиксированными полями.
func (l *Logger) With() zerolog.Context {
	return l.zl.With()
}
