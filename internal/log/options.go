// Copyright 2023 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package log

import (
	"io"
)

// Option is the type to specify settings modifiers
// for the logger operation.
type Option func(l *Logger)

// SetLevel sets the level for the logger.
// The level defaults to Info.
func SetLevel(level Level) Option {
	return func(l *Logger) {
		l.level = level
	}
}

// SetWriter sets the writer for the logger.
// The writer defaults to os.Stdout.
func SetWriter(writer io.Writer) Option {
	return func(l *Logger) {
		l.writer = writer
	}
}

// AddContext adds the context for the logger as a key values pair.
// If a key already exists, the value is added to the existing values.
func AddContext(key, value string) Option {
	return func(l *Logger) {
		for i := range l.context {
			if l.context[i].key == key {
				l.context[i].values = append(l.context[i].values, value)
				return
			}
		}
		l.context = append(l.context, contextKeyValues{
			key:    key,
			values: []string{value},
		})
	}
}
