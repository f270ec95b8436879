package logger

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	mu     sync.Mutex
	output io.Writer     = os.Stderr
	level  zerolog.Level = zerolog.InfoLevel
)

// Configure sets the process-wide log level and destinations. A non-empty
// file path adds a rotating file writer alongside the terminal output.
// Loggers created before Configure keep their previous settings.
func Configure(lvl, file string, console bool) error {
	parsed, err := zerolog.ParseLevel(lvl)
	if err != nil {
		return fmt.Errorf("parse log level: %w", err)
	}

	var writers []io.Writer
	if console {
		writers = append(writers, zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	} else {
		writers = append(writers, os.Stderr)
	}
	if file != "" {
		writers = append(writers, &lumberjack.Logger{
			Filename:   file,
			MaxSize:    10, // megabytes
			MaxBackups: 5,
			MaxAge:     30, // days
			Compress:   true,
		})
	}

	mu.Lock()
	defer mu.Unlock()
	output = io.MultiWriter(writers...)
	level = parsed
	return nil
}

// ZerologLogger implements Logger using rs/zerolog.
type ZerologLogger struct {
	log zerolog.Logger
}

// NewZerologLogger creates a ZerologLogger writing to the configured
// destinations. All logs include the provided component field.
func NewZerologLogger(component string) Logger {
	mu.Lock()
	defer mu.Unlock()
	z := zerolog.New(output).Level(level).With().Timestamp().Str("component", component).Logger()
	return &ZerologLogger{log: z}
}

func (l *ZerologLogger) Debugf(format string, args ...any) {
	l.log.Debug().Msgf(format, args...)
}

func (l *ZerologLogger) Infof(format string, args ...any) {
	l.log.Info().Msgf(format, args...)
}

func (l *ZerologLogger) Warnf(format string, args ...any) {
	l.log.Warn().Msgf(format, args...)
}

func (l *ZerologLogger) Errorf(format string, args ...any) {
	l.log.Error().Msgf(format, args...)
}
