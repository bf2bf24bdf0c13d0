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

package model

import (
	"github.com/Wacom-Developer/universal-ink-library/identity"
	"github.com/Wacom-Developer/universal-ink-library/ink"
	"github.com/Wacom-Developer/universal-ink-library/uimerr"
)

// StrokeRepository holds every stroke's content, keyed by its
// Random-Id, insertion order preserved. Trees only ever hold a
// reference (stroke id, optional fragment); the stroke's spline,
// style and sensor linkage live here exactly once.
type StrokeRepository struct {
	strokes []*ink.Stroke
	index   map[identity.ID]int
}

// NewStrokeRepository returns an empty, ready-to-use StrokeRepository.
func NewStrokeRepository() *StrokeRepository {
	return &StrokeRepository{index: map[identity.ID]int{}}
}

// Add inserts s, preserving insertion order, and returns its id.
func (r *StrokeRepository) Add(s *ink.Stroke) identity.ID {
	if i, ok := r.index[s.ID()]; ok {
		r.strokes[i] = s
		return s.ID()
	}
	r.index[s.ID()] = len(r.strokes)
	r.strokes = append(r.strokes, s)
	return s.ID()
}

// Get looks up a stroke by id.
func (r *StrokeRepository) Get(id identity.ID) (*ink.Stroke, error) {
	if i, ok := r.index[id]; ok {
		return r.strokes[i], nil
	}
	return nil, uimerr.At(uimerr.KindNotFound, id.H(), "model: no such stroke")
}

// Has reports whether a stroke with the given id is present.
func (r *StrokeRepository) Has(id identity.ID) bool {
	_, ok := r.index[id]
	return ok
}

// All returns every stroke in insertion order.
func (r *StrokeRepository) All() []*ink.Stroke { return r.strokes }

// Len returns the number of strokes held.
func (r *StrokeRepository) Len() int { return len(r.strokes) }
