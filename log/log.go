/*
Copyright 2024 The Universal Ink Library Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package log provides the logging abstraction used by every package
// in this module. The core never forces a concrete backend on
// callers: all four sinks default to a no-op and are wired by the
// embedding application, typically to go.uber.org/zap (see
// cmd/uimtool).
package log

import (
	stdlog "log"
	"os"
)

// Logger defines the minimal interface the core logs through.
type Logger interface {
	Printf(format string, args ...interface{})
	Println(args ...interface{})
}

type logger struct {
	log Logger
}

// The four sinks used across this module.
var (
	Debug = &logger{}
	Info  = &logger{}
	Trace = &logger{}
	Stats = &logger{}
)

// SetDebugLogger sets the debug sink.
func SetDebugLogger(l Logger) { Debug.log = l }

// SetInfoLogger sets the info sink.
func SetInfoLogger(l Logger) { Info.log = l }

// SetTraceLogger sets the trace sink.
func SetTraceLogger(l Logger) { Trace.log = l }

// SetStatsLogger sets the stats sink.
func SetStatsLogger(l Logger) { Stats.log = l }

// SetDefaultDebugLogger wires the debug sink to a stderr stdlib logger.
func SetDefaultDebugLogger() {
	SetDebugLogger(stdlog.New(os.Stderr, "DEBUG: ", stdlog.Ldate|stdlog.Ltime))
}

// SetDefaultInfoLogger wires the info sink to a stderr stdlib logger.
func SetDefaultInfoLogger() {
	SetInfoLogger(stdlog.New(os.Stderr, "INFO: ", stdlog.Ldate|stdlog.Ltime))
}

// SetDefaultLoggers wires the debug and info sinks to a default
// stdlib logger; the trace and stats sinks are left as they are.
func SetDefaultLoggers() {
	SetDefaultDebugLogger()
	SetDefaultInfoLogger()
}

// DisableLoggers turns every sink back into a no-op.
func DisableLoggers() {
	SetDebugLogger(nil)
	SetInfoLogger(nil)
	SetTraceLogger(nil)
	SetStatsLogger(nil)
}

func (l *logger) Printf(format string, args ...interface{}) {
	if l.log == nil {
		return
	}
	l.log.Printf(format, args...)
}

func (l *logger) Println(args ...interface{}) {
	if l.log == nil {
		return
	}
	l.log.Println(args...)
}
