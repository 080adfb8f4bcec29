// Copyright 2023 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package log

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"
)

// Logger is a thread safe leveled logger writing
// one line per log entry.
type Logger struct {
	level   Level
	writer  io.Writer
	context []contextKeyValues
	mutex   *sync.Mutex // shared with child loggers
}

type contextKeyValues struct {
	key    string
	values []string
}

// New creates a new logger from the options given.
// Defaults are the info level writing to stdout with no context.
func New(options ...Option) *Logger {
	logger := &Logger{
		level:  Info,
		writer: os.Stdout,
		mutex:  new(sync.Mutex),
	}
	for _, option := range options {
		option(logger)
	}
	return logger
}

// New creates a child logger inheriting the settings of the
// parent logger, modified with the options given. The child
// shares the parent's mutex so both may write to the same writer.
func (l *Logger) New(options ...Option) *Logger {
	child := &Logger{
		level:   l.level,
		writer:  l.writer,
		context: make([]contextKeyValues, len(l.context)),
		mutex:   l.mutex,
	}
	copy(child.context, l.context)
	for _, option := range options {
		option(child)
	}
	return child
}

// Patch patches the existing logger with the options given.
func (l *Logger) Patch(options ...Option) {
	l.mutex.Lock()
	defer l.mutex.Unlock()
	for _, option := range options {
		option(l)
	}
}

func (l *Logger) log(logLevel Level, s string) {
	l.mutex.Lock()
	defer l.mutex.Unlock()

	if logLevel < l.level {
		return
	}

	line := time.Now().Format("2006-01-02T15:04:05.000") +
		" " + logLevel.ColouredString() + " " + s
	if len(l.context) > 0 {
		keyValues := make([]string, 0, len(l.context))
		for _, kvs := range l.context {
			keyValues = append(keyValues, kvs.key+"="+strings.Join(kvs.values, ","))
		}
		line += "\t" + strings.Join(keyValues, " ")
	}

	fmt.Fprintln(l.writer, line)
}

// Trace logs with the trce level.
func (l *Logger) Trace(s string) { l.log(Trace, s) }

// Debug logs with the dbug level.
func (l *Logger) Debug(s string) { l.log(Debug, s) }

// Info logs with the info level.
func (l *Logger) Info(s string) { l.log(Info, s) }

// Warn logs with the warn level.
func (l *Logger) Warn(s string) { l.log(Warn, s) }

// Error logs with the eror level.
func (l *Logger) Error(s string) { l.log(Error, s) }

// Critical logs with the crit level.
func (l *Logger) Critical(s string) { l.log(Critical, s) }

// Tracef formats and logs at the trce level.
func (l *Logger) Tracef(format string, args ...interface{}) {
	l.log(Trace, fmt.Sprintf(format, args...))
}

// Debugf formats and logs at the dbug level.
func (l *Logger) Debugf(format string, args ...interface{}) {
	l.log(Debug, fmt.Sprintf(format, args...))
}

// Infof formats and logs at the info level.
func (l *Logger) Infof(format string, args ...interface{}) {
	l.log(Info, fmt.Sprintf(format, args...))
}

// Warnf formats and logs at the warn level.
func (l *Logger) Warnf(format string, args ...interface{}) {
	l.log(Warn, fmt.Sprintf(format, args...))
}

// Errorf formats and logs at the eror level.
func (l *Logger) Errorf(format string, args ...interface{}) {
	l.log(Error, fmt.Sprintf(format, args...))
}

// Criticalf formats and logs at the crit level.
func (l *Logger) Criticalf(format string, args ...interface{}) {
	l.log(Critical, fmt.Sprintf(format, args...))
}
