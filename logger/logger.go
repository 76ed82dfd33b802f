package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/rs/zerolog"
)

// FormatPretty is an alias of the console format.
const FormatPretty = "pretty"

// Logger wraps zerolog.Logger with a component tag.
type Logger struct {
	logger    zerolog.Logger
	component string
}

// Init initializes the global logger from config.
func Init(cfg Config) {
	cfg.ApplyDefaults()
	SetGlobalLogger(New(&cfg, ""))
}

// New creates a new logger instance writing to the configured output.
func New(cfg *Config, component string) *Logger {
	return NewWithWriter(outputWriter(cfg.Output), cfg, component)
}

// NewWithWriter creates a logger that writes to w instead of the configured output.
func NewWithWriter(w io.Writer, cfg *Config, component string) *Logger {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}

	var zl zerolog.Logger
	if f := strings.ToLower(cfg.Format); f == "console" || f == FormatPretty {
		zl = newConsoleLogger(w, cfg)
	} else {
		zl = zerolog.New(w)
	}
	zl = zl.Level(level)

	if cfg.Timestamp {
		zl = zl.With().Timestamp().Logger()
	}
	if cfg.Caller {
		zl = zl.With().Caller().Logger()
	}
	if component != "" {
		zl = zl.With().Str(FieldComponent, component).Logger()
	}

	return &Logger{logger: zl, component: component}
}

// NewDefault creates a logger with default configuration.
func NewDefault(component string) *Logger {
	cfg := &Config{}
	cfg.ApplyDefaults()
	return New(cfg, component)
}

// WithComponent returns a logger tagged with a component name.
func (l *Logger) WithComponent(name string) *Logger {
	return &Logger{
		logger:    l.logger.With().Str(FieldComponent, name).Logger(),
		component: name,
	}
}

// WithFields returns a logger with additional fields.
func (l *Logger) WithFields(fields map[string]interface{}) *Logger {
	zc := l.logger.With()
	for k, v := range fields {
		zc = zc.Interface(k, v)
	}
	return &Logger{logger: zc.Logger(), component: l.component}
}

// DebugEnabled reports whether debug events would be written.
func (l *Logger) DebugEnabled() bool {
	return l.logger.GetLevel() <= zerolog.DebugLevel && zerolog.GlobalLevel() <= zerolog.DebugLevel
}

// Debug logs a debug message.
func (l *Logger) Debug(msg string, fields ...map[string]interface{}) {
	event := l.logger.Debug()
	addFields(event, fields...)
	event.Msg(msg)
}

// Info logs an info message.
func (l *Logger) Info(msg string, fields ...map[string]interface{}) {
	event := l.logger.Info()
	addFields(event, fields...)
	event.Msg(msg)
}

// Warn logs a warning message.
func (l *Logger) Warn(msg string, fields ...map[string]interface{}) {
	event := l.logger.Warn()
	addFields(event, fields...)
	event.Msg(msg)
}

// Error logs an error message.
func (l *Logger) Error(msg string, fields ...map[string]interface{}) {
	event := l.logger.Error()
	addFields(event, fields...)
	event.Msg(msg)
}

// --- Global logger ---

var (
	globalMu     sync.RWMutex
	globalLogger *Logger
)

// SetGlobalLogger sets the global logger instance.
func SetGlobalLogger(l *Logger) {
	globalMu.Lock()
	globalLogger = l
	globalMu.Unlock()
}

// GetGlobalLogger returns the global logger, creating a default one if needed.
func GetGlobalLogger() *Logger {
	globalMu.RLock()
	l := globalLogger
	globalMu.RUnlock()
	if l != nil {
		return l
	}

	globalMu.Lock()
	defer globalMu.Unlock()
	if globalLogger == nil {
		globalLogger = NewDefault("")
	}
	return globalLogger
}

// --- internal helpers ---

func addFields(event *zerolog.Event, fields ...map[string]interface{}) {
	for _, fm := range fields {
		for k, v := range fm {
			event.Interface(k, v)
		}
	}
}

func outputWriter(output string) io.Writer {
	switch strings.ToLower(output) {
	case "stdout":
		return os.Stdout
	default:
		return os.Stderr
	}
}

func newConsoleLogger(w io.Writer, cfg *Config) zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: "15:04:05",
		NoColor:    cfg.NoColor,
		FormatLevel: func(i interface{}) string {
			lvl := strings.ToUpper(fmt.Sprintf("%s", i))
			tag, ok := levelTags[lvl]
			if !ok {
				return fmt.Sprintf("[%s]", lvl)
			}
			if cfg.NoColor {
				return "[" + tag.short + "]"
			}
			return tag.color + "[" + tag.short + "]\033[0m"
		},
		FormatFieldName: func(i interface{}) string {
			return fmt.Sprintf("%s:", i)
		},
		FormatFieldValue: func(i interface{}) string {
			if i == nil {
				return ""
			}
			return fmt.Sprintf("%s", i)
		},
	})
}

var levelTags = map[string]struct{ short, color string }{
	"TRACE": {"TRC", "\033[90m"},
	"DEBUG": {"DBG", "\033[36m"},
	"INFO":  {"INF", "\033[32m"},
	"WARN":  {"WRN", "\033[33m"},
	"ERROR": {"ERR", "\033[31m"},
}
