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

// Package ink implements the rendered-geometry data model of spec
// §3.4/§4.5/§4.6: strokes as Catmull-Rom splines, their styles and
// brushes, and path-point properties.
package ink

import (
	"math"

	"github.com/Wacom-Developer/universal-ink-library/identity"
)

// PathPointProperties is the Hash-Id addressed bag of constant
// per-point values a Style can carry (spec §3.4). Colour and size
// fields are floats in [0, 1]; the transform fields are free-range.
type PathPointProperties struct {
	Size                       float64
	Red, Green, Blue, Alpha    float64
	Rotation                   float64
	ScaleX, ScaleY, ScaleZ     float64
	OffsetX, OffsetY, OffsetZ float64
}

// Regenerate recomputes this value's Hash-Id.
func (p PathPointProperties) Regenerate() identity.ID {
	return identity.NewHash("PathPointProperties").
		AddFloat(p.Size).
		AddFloat(p.Red).AddFloat(p.Green).AddFloat(p.Blue).AddFloat(p.Alpha).
		AddFloat(p.Rotation).
		AddFloat(p.ScaleX).AddFloat(p.ScaleY).AddFloat(p.ScaleZ).
		AddFloat(p.OffsetX).AddFloat(p.OffsetY).AddFloat(p.OffsetZ).
		Sum()
}

// ID returns the content-addressed identifier of p.
func (p PathPointProperties) ID() identity.ID { return p.Regenerate() }

// ColorByteFromFloat converts a [0,1] colour channel to its 8-bit
// on-disk representation. Per design note (c) the conversion uses
// round-half-to-even, saturating to [0, 255].
func ColorByteFromFloat(f float64) byte {
	v := math.RoundToEven(f * 255)
	if v < 0 {
		v = 0
	}
	if v > 255 {
		v = 255
	}
	return byte(v)
}

// ColorFloatFromByte is the inverse of ColorByteFromFloat.
func ColorFloatFromByte(b byte) float64 {
	return float64(b) / 255.0
}
