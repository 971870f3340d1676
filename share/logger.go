//
// logger.go
//
// Copyright (c) 2026 Share Lab
//
// All rights reserved.
//

package share

import (
	"log"
)

// Logger receives error and debug reports from share operations.
// Degenerate but recoverable conditions, like mismatched equality
// operand lengths, are reported here rather than silently dropped.
type Logger interface {
	Errorf(format string, args ...interface{})
	Debugf(format string, args ...interface{})
}

// GoLogger adapts a standard library logger to the Logger interface.
type GoLogger struct {
	Log     *log.Logger
	Verbose bool
}

// Errorf implements Logger.Errorf.
func (l *GoLogger) Errorf(format string, args ...interface{}) {
	l.Log.Printf("error: "+format, args...)
}

// Debugf implements Logger.Debugf. Debug output is suppressed unless
// the logger is verbose.
func (l *GoLogger) Debugf(format string, args ...interface{}) {
	if l.Verbose {
		l.Log.Printf(format, args...)
	}
}

type nopLogger struct{}

func (nopLogger) Errorf(format string, args ...interface{}) {}
func (nopLogger) Debugf(format string, args ...interface{}) {}
