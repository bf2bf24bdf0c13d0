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

import "math/bits"

// Attribute is one of the 17 per-sample spline attributes a stroke
// may carry, per spec §3.4.
type Attribute uint

const (
	X Attribute = iota
	Y
	Z
	SIZE
	ROTATION
	RED
	GREEN
	BLUE
	ALPHA
	SCALE_X
	SCALE_Y
	SCALE_Z
	OFFSET_X
	OFFSET_Y
	OFFSET_Z
	TANGENT_X
	TANGENT_Y

	numAttributes
)

var attributeNames = [numAttributes]string{
	X: "X", Y: "Y", Z: "Z", SIZE: "SIZE", ROTATION: "ROTATION",
	RED: "RED", GREEN: "GREEN", BLUE: "BLUE", ALPHA: "ALPHA",
	SCALE_X: "SCALE_X", SCALE_Y: "SCALE_Y", SCALE_Z: "SCALE_Z",
	OFFSET_X: "OFFSET_X", OFFSET_Y: "OFFSET_Y", OFFSET_Z: "OFFSET_Z",
	TANGENT_X: "TANGENT_X", TANGENT_Y: "TANGENT_Y",
}

// String renders a's canonical name, used as a strided-export column
// header.
func (a Attribute) String() string {
	if a >= numAttributes {
		return "UNKNOWN"
	}
	return attributeNames[a]
}

// LayoutMask is the 17-bit set selecting which attributes a Spline
// stores per sample.
type LayoutMask uint32

// Has reports whether a is present in the layout.
func (m LayoutMask) Has(a Attribute) bool {
	return m&(1<<uint(a)) != 0
}

// With returns a mask with a added.
func (m LayoutMask) With(a Attribute) LayoutMask {
	return m | (1 << uint(a))
}

// Stride returns popcount(mask): the number of values one sample
// occupies in the packed value array.
func (m LayoutMask) Stride() int {
	return bits.OnesCount32(uint32(m))
}

// OffsetOf returns a's position within one sample's stride, i.e. the
// popcount of every mask bit below a. It returns -1 if a is absent
// from the layout.
func (m LayoutMask) OffsetOf(a Attribute) int {
	if !m.Has(a) {
		return -1
	}
	below := m & ((1 << uint(a)) - 1)
	return bits.OnesCount32(uint32(below))
}

// NewLayoutMask builds a mask from a list of attributes, in the
// caller's preferred iteration order for requested-layout exports.
func NewLayoutMask(attrs ...Attribute) LayoutMask {
	var m LayoutMask
	for _, a := range attrs {
		m = m.With(a)
	}
	return m
}

// Attributes returns every attribute present in m in bit order.
func (m LayoutMask) Attributes() []Attribute {
	var out []Attribute
	for a := Attribute(0); a < numAttributes; a++ {
		if m.Has(a) {
			out = append(out, a)
		}
	}
	return out
}
