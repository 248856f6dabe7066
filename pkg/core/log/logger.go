// File: logger.go
// Title: Core Logger Implementation
// Description: Implements the Logger type providing leveled, structured
//              logging with contextual fields and configurable output.
//              Loggers are cloned by the With* methods so derived loggers
//              never mutate their parent.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2026-08-18
// Modified: 2026-08-24
//
// Change History:
// - 2026-08-18 v0.1.0: Initial implementation

package log

import (
	"io"
	"os"
	"sync"
)

// Logger represents a structured logger with contextual information
type Logger struct {
	level     Level
	formatter Formatter
	output    io.Writer
	name      string

	// Context fields added to all log entries
	contextFields Fields

	mutex sync.RWMutex
}

// Config represents logger configuration
type Config struct {
	Level  Level
	Format Format
	Output io.Writer
	Name   string
}

// New creates a new logger with default configuration
func New() *Logger {
	return &Logger{
		level:         DefaultLevel(),
		formatter:     NewJSONFormatter(),
		output:        os.Stdout,
		contextFields: make(Fields),
	}
}

// NewWithConfig creates a new logger with the specified configuration
func NewWithConfig(config Config) *Logger {
	logger := &Logger{
		level:         config.Level,
		output:        config.Output,
		name:          config.Name,
		contextFields: make(Fields),
	}
	if config.Output == nil {
		logger.output = os.Stdout
	}
	logger.formatter = GetFormatter(config.Format)
	return logger
}

// clone creates a copy of the logger for derived configurations
func (l *Logger) clone() *Logger {
	return &Logger{
		level:         l.level,
		formatter:     l.formatter,
		output:        l.output,
		name:          l.name,
		contextFields: l.contextFields.Clone(),
	}
}

// WithLevel returns a logger with the given minimum level
func (l *Logger) WithLevel(level Level) *Logger {
	l.mutex.Lock()
	defer l.mutex.Unlock()

	clone := l.clone()
	clone.level = level
	return clone
}

// WithFormat returns a logger with the given output format
func (l *Logger) WithFormat(format Format) *Logger {
	l.mutex.Lock()
	defer l.mutex.Unlock()

	clone := l.clone()
	clone.formatter = GetFormatter(format)
	return clone
}

// WithOutput returns a logger writing to the given destination
func (l *Logger) WithOutput(output io.Writer) *Logger {
	l.mutex.Lock()
	defer l.mutex.Unlock()

	clone := l.clone()
	clone.output = output
	return clone
}

// WithName returns a logger with the given name
func (l *Logger) WithName(name string) *Logger {
	l.mutex.Lock()
	defer l.mutex.Unlock()

	clone := l.clone()
	clone.name = name
	return clone
}

// WithField returns a logger with a persistent field on all entries
func (l *Logger) WithField(key string, value interface{}) *Logger {
	l.mutex.Lock()
	defer l.mutex.Unlock()

	clone := l.clone()
	if clone.contextFields == nil {
		clone.contextFields = make(Fields)
	}
	clone.contextFields[key] = value
	return clone
}

// WithFields returns a logger with persistent fields on all entries
func (l *Logger) WithFields(fields Fields) *Logger {
	l.mutex.Lock()
	defer l.mutex.Unlock()

	clone := l.clone()
	if clone.contextFields == nil {
		clone.contextFields = make(Fields)
	}
	for k, v := range fields {
		clone.contextFields[k] = v
	}
	return clone
}

// Level returns the minimum log level of the logger
func (l *Logger) Level() Level {
	l.mutex.RLock()
	defer l.mutex.RUnlock()
	return l.level
}

// Debug logs a message at debug level
func (l *Logger) Debug(message string, fields ...Fields) {
	l.log(LevelDebug, message, nil, fields...)
}

// Info logs a message at info level
func (l *Logger) Info(message string, fields ...Fields) {
	l.log(LevelInfo, message, nil, fields...)
}

// Warn logs a message at warn level
func (l *Logger) Warn(message string, fields ...Fields) {
	l.log(LevelWarn, message, nil, fields...)
}

// Error logs a message at error level
func (l *Logger) Error(message string, fields ...Fields) {
	l.log(LevelError, message, nil, fields...)
}

// ErrorWith logs a message at error level with an attached error value
func (l *Logger) ErrorWith(message string, err error, fields ...Fields) {
	l.log(LevelError, message, err, fields...)
}

// Fatal logs a message at fatal level and exits the process
func (l *Logger) Fatal(message string, fields ...Fields) {
	l.log(LevelFatal, message, nil, fields...)
	os.Exit(1)
}

// log creates, formats and writes an entry if the level is enabled
func (l *Logger) log(level Level, message string, err error, fields ...Fields) {
	l.mutex.RLock()
	defer l.mutex.RUnlock()

	if !level.ShouldLog(l.level) {
		return
	}

	entry := NewEntry(level, message).WithLogger(l.name)
	entry.WithFields(l.contextFields)
	for _, f := range fields {
		entry.WithFields(f)
	}
	if err != nil {
		entry.WithError(err)
	}

	formatted, ferr := l.formatter.Format(entry)
	if ferr != nil {
		return
	}
	_, _ = l.output.Write(formatted)
}

var (
	defaultLogger *Logger
	defaultOnce   sync.Once
	defaultMutex  sync.RWMutex
)

// GetDefault returns the package default logger
func GetDefault() *Logger {
	defaultOnce.Do(func() {
		defaultMutex.Lock()
		defer defaultMutex.Unlock()
		if defaultLogger == nil {
			defaultLogger = New()
		}
	})
	defaultMutex.RLock()
	defer defaultMutex.RUnlock()
	return defaultLogger
}

// SetDefault replaces the package default logger
func SetDefault(logger *Logger) {
	defaultMutex.Lock()
	defer defaultMutex.Unlock()
	defaultLogger = logger
}
