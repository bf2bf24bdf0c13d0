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

package ink

import (
	"github.com/Wacom-Developer/universal-ink-library/identity"
	"github.com/Wacom-Developer/universal-ink-library/precision"
)

// Stroke is a rendered pen/touch/mouse path: a Random-Id addressed
// spline plus its style and an optional link back to the raw sensor
// frame it was captured from (spec §3.4).
type Stroke struct {
	id identity.ID

	Spline Spline
	Style  Style

	SensorDataID      *identity.ID
	SensorDataOffset  *int
	SensorDataMapping []int // spline sample index -> sensor sample index, optional

	RandomSeed      uint32
	PrecisionScheme *precision.Scheme
}

// NewStroke builds a stroke with a fresh Random-Id.
func NewStroke(spline Spline, style Style) *Stroke {
	return &Stroke{id: identity.NewRandom(), Spline: spline, Style: style}
}

// FromWire rebuilds a stroke with an id read off the wire.
func FromWire(id identity.ID, spline Spline, style Style) *Stroke {
	return &Stroke{id: id, Spline: spline, Style: style}
}

// ID returns this stroke's Random-Id.
func (s *Stroke) ID() identity.ID { return s.id }

// SensorIndex maps a spline sample index to its sensor-frame sample
// index, honoring SensorDataMapping when set and otherwise falling
// back to a 1:1 identity mapping offset by SensorDataOffset, per
// spec §4.5.
func (s *Stroke) SensorIndex(splineSampleIndex int) int {
	if len(s.SensorDataMapping) > splineSampleIndex {
		return s.SensorDataMapping[splineSampleIndex]
	}
	offset := 0
	if s.SensorDataOffset != nil {
		offset = *s.SensorDataOffset
	}
	return splineSampleIndex + offset
}

// BoundingBox returns the stroke's axis-aligned bounds in its
// spline's X/Y channels, used by group bbox recomputation (spec
// §4.8). ok is false if the spline carries no X/Y data.
func (s *Stroke) BoundingBox() (minX, minY, maxX, maxY float64, ok bool) {
	return s.Spline.BoundsXY()
}
