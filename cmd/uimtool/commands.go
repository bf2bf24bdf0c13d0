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
	"fmt"
	"os"

	"github.com/Wacom-Developer/universal-ink-library/export"
	"github.com/Wacom-Developer/universal-ink-library/ink"
	"github.com/Wacom-Developer/universal-ink-library/model"
)

// codecModel wraps a decoded InkModel so subcommands share one
// loading path (loadModel in main.go).
type codecModel struct {
	m *model.InkModel
}

func runInfo() {
	path := requireFile()
	cm := loadModel(path)
	m := cm.m

	fmt.Printf("version:          %s\n", m.Version)
	fmt.Printf("unitScaleFactor:   %g\n", m.UnitScaleFactor)
	fmt.Printf("properties:        %d\n", len(m.Properties))
	fmt.Printf("strokes:           %d\n", m.Strokes.Len())
	fmt.Printf("brushes:           %d\n", len(m.Brushes.VectorBrushes())+len(m.Brushes.RasterBrushes()))
	fmt.Printf("triples:           %d\n", m.Triples.Len())
	fmt.Printf("views:             %d\n", len(m.Views()))
	if m.HasMainTree() {
		fmt.Printf("main tree nodes:   %d\n", len(m.MainTree().AllAttached()))
	} else {
		fmt.Printf("main tree:         (none)\n")
	}
}

func runValidate() {
	path := requireFile()
	cm := loadModel(path)
	if err := cm.m.ValidateInvariants(); err != nil {
		fmt.Fprintf(os.Stderr, "invalid: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("ok")
}

// runDump writes m as a protobuf-JSON capture to stdout (spec §6's
// parse_json's write-side counterpart, cmd/uimtool's one real
// consumer of export.DumpJSON).
func runDump() {
	path := requireFile()
	cm := loadModel(path)
	if err := export.DumpJSON(os.Stdout, cm.m); err != nil {
		fail(err)
	}
}

// runTriples prints every semantic triple in N-Triples-like form.
func runTriples() {
	path := requireFile()
	cm := loadModel(path)
	for _, t := range cm.m.Triples.All() {
		if t.Object.IsURI {
			fmt.Printf("%s %s <%s>\n", t.Subject, t.Predicate, t.Object.Value)
		} else {
			fmt.Printf("%s %s %q\n", t.Subject, t.Predicate, t.Object.Value)
		}
	}
}

// runCSV writes every stroke's X/Y/size strided array to stdout,
// one CSV block per stroke (spec §6's strided-array export surface).
func runCSV() {
	path := requireFile()
	cm := loadModel(path)
	layout := []model.Attr{
		model.SplineAttr(ink.X),
		model.SplineAttr(ink.Y),
		model.SplineAttr(ink.SIZE),
	}
	for _, s := range cm.m.Strokes.All() {
		fmt.Printf("# stroke %s\n", s.ID())
		if err := export.WriteStrokeCSV(os.Stdout, cm.m, s, layout, ink.FillWithZeros); err != nil {
			fail(err)
		}
	}
}
