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
	"github.com/Wacom-Developer/universal-ink-library/deltacode"
	"github.com/Wacom-Developer/universal-ink-library/precision"
)

// FieldFor maps a spline Attribute onto the precision subfield that
// governs its fixed-point scale (spec §4.2/§4.5). Colour attributes
// (RED/GREEN/BLUE/ALPHA) are not scaled by a precision field at all:
// they are stored as 8-bit bytes on the wire (see ColorByteFromFloat)
// and ok is false for them. Tangents are treated as Position-family,
// the closest of the five families to a directional delta; the spec
// does not separately budget precision for them.
func FieldFor(a Attribute) (precision.Field, bool) {
	switch a {
	case X, Y, Z, TANGENT_X, TANGENT_Y:
		return precision.Position, true
	case SIZE:
		return precision.Size, true
	case ROTATION:
		return precision.Rotation, true
	case SCALE_X, SCALE_Y, SCALE_Z:
		return precision.Scale, true
	case OFFSET_X, OFFSET_Y, OFFSET_Z:
		return precision.Offset, true
	default:
		return 0, false
	}
}

// IsColor reports whether a is one of the four 8-bit colour channels.
func IsColor(a Attribute) bool {
	switch a {
	case RED, GREEN, BLUE, ALPHA:
		return true
	default:
		return false
	}
}

// EncodeAttributeStream extracts attribute a's per-sample values from
// spline and returns the delta-coded, fixed-point-scaled integer
// stream the wire format carries for it, per spec §4.5. ok is false
// when a is absent from the layout or has no governing precision
// field (colours).
func EncodeAttributeStream(spline Spline, a Attribute, scheme precision.Scheme) (deltas []int64, ok bool) {
	if !spline.LayoutMask.Has(a) {
		return nil, false
	}
	field, hasField := FieldFor(a)
	if !hasField {
		return nil, false
	}
	n, err := spline.SampleCount()
	if err != nil {
		return nil, false
	}
	vals := make([]float64, n)
	for i := 0; i < n; i++ {
		v, _ := spline.At(i, a, FillWithZeros)
		vals[i] = v
	}
	ints := deltacode.ScaleToInt(vals, scheme.Scale(field))
	return deltacode.Encode(ints), true
}

// DecodeAttributeStream reverses EncodeAttributeStream.
func DecodeAttributeStream(deltas []int64, a Attribute, scheme precision.Scheme) []float64 {
	field, ok := FieldFor(a)
	if !ok {
		return deltacode.ScaleToFloat(deltacode.Decode(deltas), 1)
	}
	ints := deltacode.Decode(deltas)
	return deltacode.ScaleToFloat(ints, scheme.Scale(field))
}
