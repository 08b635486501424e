/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package log provides leveled, module-scoped logging for the framework.
package log

import (
	"github.com/sirupsen/logrus"
)

// Level is the severity of a log line.
type Level = logrus.Level

// Log levels.
const (
	ERROR = logrus.ErrorLevel
	WARN  = logrus.WarnLevel
	INFO  = logrus.InfoLevel
	DEBUG = logrus.DebugLevel
)

// Log is a module-scoped logger.
// Framework packages obtain their logger through New at package init.
type Log struct {
	entry *logrus.Entry
}

// New returns a logger scoped to the given module name.
func New(module string) *Log {
	return &Log{entry: logrus.WithField("module", module)}
}

// SetLevel sets the global log level.
func SetLevel(level Level) {
	logrus.SetLevel(level)
}

// GetLevel returns the global log level.
func GetLevel() Level {
	return logrus.GetLevel()
}

// Errorf logs at ERROR level.
func (l *Log) Errorf(msg string, args ...interface{}) {
	l.entry.Errorf(msg, args...)
}

// Warnf logs at WARN level.
func (l *Log) Warnf(msg string, args ...interface{}) {
	l.entry.Warnf(msg, args...)
}

// Infof logs at INFO level.
func (l *Log) Infof(msg string, args ...interface{}) {
	l.entry.Infof(msg, args...)
}

// Debugf logs at DEBUG level.
func (l *Log) Debugf(msg string, args ...interface{}) {
	l.entry.Debugf(msg, args...)
}
