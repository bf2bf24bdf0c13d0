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

package main

import (
	"go.uber.org/zap"

	"github.com/Wacom-Developer/universal-ink-library/log"
)

// zapSink adapts a zap.SugaredLogger to the core log.Logger interface
// at a fixed level, so the same *zap.Logger backs the Info, Debug
// and Trace core sinks at different verbosities. The Stats sink is
// not wired to zap.
type zapSink struct {
	sugar *zap.SugaredLogger
	level string
}

func (z zapSink) Printf(format string, args ...interface{}) {
	switch z.level {
	case "debug":
		z.sugar.Debugf(format, args...)
	default:
		z.sugar.Infof(format, args...)
	}
}

func (z zapSink) Println(args ...interface{}) {
	switch z.level {
	case "debug":
		z.sugar.Debug(args...)
	default:
		z.sugar.Info(args...)
	}
}

// setupLogging wires the core log package's sinks to a zap logger,
// mirroring the teacher's setupLogging: verbose turns on info-level
// output, veryVerbose additionally turns on debug-level output.
// With neither flag set, every sink stays a no-op.
func setupLogging(verbose, veryVerbose bool) {
	if !verbose && !veryVerbose {
		log.DisableLoggers()
		return
	}

	cfg := zap.NewDevelopmentConfig()
	if veryVerbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	} else {
		cfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}
	zl, err := cfg.Build()
	if err != nil {
		// Logging setup failing shouldn't take the tool down with it.
		log.DisableLoggers()
		return
	}
	sugar := zl.Sugar()

	log.SetInfoLogger(zapSink{sugar: sugar, level: "info"})
	if veryVerbose {
		log.SetDebugLogger(zapSink{sugar: sugar, level: "debug"})
		log.SetTraceLogger(zapSink{sugar: sugar, level: "debug"})
	}
}
