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

// Package model implements InkModel, the root aggregate of spec §3.7:
// global transform, unit scale, properties, brushes, input-config and
// sensor-data repositories, the main tree and any view trees, and the
// triple store, plus the mutation APIs and invariant checks (I1-I5)
// that keep them mutually consistent.
package model

import (
	"github.com/Wacom-Developer/universal-ink-library/identity"
	"github.com/Wacom-Developer/universal-ink-library/ink"
	"github.com/Wacom-Developer/universal-ink-library/inputconfig"
	"github.com/Wacom-Developer/universal-ink-library/matrix"
	"github.com/Wacom-Developer/universal-ink-library/semantic"
	"github.com/Wacom-Developer/universal-ink-library/sensor"
	"github.com/Wacom-Developer/universal-ink-library/tree"
	"github.com/Wacom-Developer/universal-ink-library/uimerr"
)

// CurrentVersion is the binary format version this library always
// encodes to, per spec §4.9.
const CurrentVersion = "3.1.0"

// Property is one ordered (key, value) string pair (spec §3.7).
type Property struct {
	Key   string
	Value string
}

// InkModel is the root aggregate tying every data plane together.
type InkModel struct {
	Version         string
	UnitScaleFactor float64
	Transform       matrix.Matrix
	Properties      []Property

	InputConfig *inputconfig.Repository
	SensorData  *sensor.Repository
	Brushes     *ink.BrushRepository
	Strokes     *StrokeRepository

	mainTree  *tree.Tree
	viewTrees []*tree.Tree
	viewIndex map[string]int

	Triples *semantic.Store
}

// New returns an empty InkModel with the given unit scale factor and
// an identity transform, matching scenario 1 of spec §8.
func New(unitScaleFactor float64) *InkModel {
	return &InkModel{
		Version:         CurrentVersion,
		UnitScaleFactor: unitScaleFactor,
		Transform:       matrix.Ident,
		InputConfig:     inputconfig.NewRepository(),
		SensorData:      sensor.NewRepository(),
		Brushes:         ink.NewBrushRepository(),
		Strokes:         NewStrokeRepository(),
		viewIndex:       map[string]int{},
		Triples:         semantic.NewStore(),
	}
}

// AddProperty appends a (key, value) pair, preserving insertion
// order and allowing duplicate keys (spec §3.7 treats properties as
// an ordered list, not a map).
func (m *InkModel) AddProperty(key, value string) {
	m.Properties = append(m.Properties, Property{Key: key, Value: value})
}

// RemoveProperty removes every property entry with the given key,
// returning the number removed.
func (m *InkModel) RemoveProperty(key string) int {
	kept := m.Properties[:0:0]
	removed := 0
	for _, p := range m.Properties {
		if p.Key == key {
			removed++
			continue
		}
		kept = append(kept, p)
	}
	m.Properties = kept
	return removed
}

// HasMainTree reports whether a main tree has been created yet. An
// empty model has none, per spec §8 scenario 1.
func (m *InkModel) HasMainTree() bool { return m.mainTree != nil }

// MainTree returns the main tree, creating it on first use.
func (m *InkModel) MainTree() *tree.Tree {
	if m.mainTree == nil {
		m.mainTree = tree.New(tree.MainTreeName)
	}
	return m.mainTree
}

// AddView creates a new named view tree. It fails InvalidArgument if
// name is empty (reserved for the main tree) and DuplicateUri if a
// view with that name already exists.
func (m *InkModel) AddView(name string) (*tree.Tree, error) {
	if name == tree.MainTreeName {
		return nil, uimerr.New(uimerr.KindInvalidArgument, "model: view tree name must not be empty")
	}
	if _, ok := m.viewIndex[name]; ok {
		return nil, uimerr.At(uimerr.KindDuplicateURI, name, "model: view tree already exists")
	}
	t := tree.New(name)
	m.viewIndex[name] = len(m.viewTrees)
	m.viewTrees = append(m.viewTrees, t)
	return t, nil
}

// RemoveView drops a named view tree and cascades removal of every
// semantic triple whose subject was one of its nodes.
func (m *InkModel) RemoveView(name string) error {
	i, ok := m.viewIndex[name]
	if !ok {
		return uimerr.At(uimerr.KindNotFound, name, "model: no such view tree")
	}
	t := m.viewTrees[i]
	if root := t.Root(); root != -1 {
		for _, uri := range t.Unregister(root) {
			m.Triples.RemoveSubject(uri)
		}
	}
	m.viewTrees = append(m.viewTrees[:i], m.viewTrees[i+1:]...)
	delete(m.viewIndex, name)
	for n, idx := range m.viewIndex {
		if idx > i {
			m.viewIndex[n] = idx - 1
		}
	}
	return nil
}

// View returns the named view tree.
func (m *InkModel) View(name string) (*tree.Tree, error) {
	if i, ok := m.viewIndex[name]; ok {
		return m.viewTrees[i], nil
	}
	return nil, uimerr.At(uimerr.KindNotFound, name, "model: no such view tree")
}

// Views returns every view tree in insertion order.
func (m *InkModel) Views() []*tree.Tree { return m.viewTrees }

// Tree resolves either the main tree (name == "") or a named view.
func (m *InkModel) Tree(name string) (*tree.Tree, error) {
	if name == tree.MainTreeName {
		return m.MainTree(), nil
	}
	return m.View(name)
}

// AddStroke inserts a stroke's content into the stroke repository. It
// is not yet part of any tree; callers place it with AttachStrokeRef.
func (m *InkModel) AddStroke(s *ink.Stroke) identity.ID {
	return m.Strokes.Add(s)
}

// SetMainTree installs an already-built tree as the model's main
// tree, used by the codec when reconstructing a decoded file instead
// of growing a tree through the mutation API.
func (m *InkModel) SetMainTree(t *tree.Tree) {
	m.mainTree = t
}

// AddDecodedView installs an already-built, already-named view tree,
// used by the codec on decode. It fails DuplicateUri if a view with
// that name is already present.
func (m *InkModel) AddDecodedView(t *tree.Tree) error {
	if _, ok := m.viewIndex[t.Name]; ok {
		return uimerr.At(uimerr.KindDuplicateURI, t.Name, "model: view tree already exists")
	}
	m.viewIndex[t.Name] = len(m.viewTrees)
	m.viewTrees = append(m.viewTrees, t)
	return nil
}

// StrokeByID looks up a stroke's content by id (spec §6 accessor).
func (m *InkModel) StrokeByID(id identity.ID) (*ink.Stroke, error) {
	return m.Strokes.Get(id)
}
