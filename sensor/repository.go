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

package sensor

import (
	"github.com/Wacom-Developer/universal-ink-library/identity"
	"github.com/Wacom-Developer/universal-ink-library/uimerr"
)

// Repository maps Random-Id to sensor-data frames, preserving
// insertion order for round-trip stability (spec §4.4). Frames are
// immutable once added: re-adding a frame under the same id only
// happens via the decoder reconstructing a file, never via a public
// mutation the writer would need to guard against.
type Repository struct {
	frames []SensorData
	index  map[identity.ID]int
}

// NewRepository returns an empty, ready-to-use Repository.
func NewRepository() *Repository {
	return &Repository{index: map[identity.ID]int{}}
}

// Add inserts a frame, preserving insertion order. Inserting a frame
// whose id is already present overwrites its content in place but
// keeps its original position, which only the decoder relies on.
func (r *Repository) Add(frame SensorData) identity.ID {
	if i, ok := r.index[frame.ID()]; ok {
		r.frames[i] = frame
		return frame.ID()
	}
	r.index[frame.ID()] = len(r.frames)
	r.frames = append(r.frames, frame)
	return frame.ID()
}

// Get looks up a frame by id.
func (r *Repository) Get(id identity.ID) (SensorData, error) {
	if i, ok := r.index[id]; ok {
		return r.frames[i], nil
	}
	return SensorData{}, uimerr.At(uimerr.KindNotFound, id.H(), "sensor: no such sensor-data frame")
}

// Has reports whether a frame with the given id is present.
func (r *Repository) Has(id identity.ID) bool {
	_, ok := r.index[id]
	return ok
}

// All returns every frame in insertion order.
func (r *Repository) All() []SensorData { return r.frames }

// Len returns the number of frames held.
func (r *Repository) Len() int { return len(r.frames) }
