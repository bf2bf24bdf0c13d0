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

import "github.com/Wacom-Developer/universal-ink-library/uimerr"

// Spline is a Catmull-Rom control-point sequence with per-point
// attributes selected by LayoutMask (spec §3.4/§4.5). PackedValues is
// strided by popcount(LayoutMask): sample i's value for attribute a
// lives at PackedValues[i*stride + LayoutMask.OffsetOf(a)].
type Spline struct {
	LayoutMask   LayoutMask
	PackedValues []float64
	TStart       float64
	TEnd         float64
}

// SampleCount returns the number of samples this spline holds, or an
// error if PackedValues is not an exact multiple of the stride
// (spec §8 layout-mask-stride property).
func (s Spline) SampleCount() (int, error) {
	stride := s.LayoutMask.Stride()
	if stride == 0 {
		if len(s.PackedValues) != 0 {
			return 0, uimerr.New(uimerr.KindConsistency, "ink: spline has values but an empty layout mask")
		}
		return 0, nil
	}
	if len(s.PackedValues)%stride != 0 {
		return 0, uimerr.New(uimerr.KindConsistency, "ink: spline packed value count is not a multiple of its stride")
	}
	return len(s.PackedValues) / stride, nil
}

// MissingPolicy governs what a Spline accessor returns for an
// attribute absent from the layout mask, per spec §4.5.
type MissingPolicy int

const (
	FillWithZeros MissingPolicy = iota
	FillWithNaN
	SkipStroke
	Throw
)

// At returns sample i's value for attribute a, or the MissingPolicy
// default/error when a is not present in the layout.
func (s Spline) At(i int, a Attribute, policy MissingPolicy) (float64, error) {
	stride := s.LayoutMask.Stride()
	off := s.LayoutMask.OffsetOf(a)
	if off < 0 {
		switch policy {
		case FillWithZeros:
			return 0, nil
		case FillWithNaN:
			return nan(), nil
		case Throw:
			return 0, uimerr.New(uimerr.KindInvalidArgument, "ink: attribute not present in spline layout")
		case SkipStroke:
			return 0, skipSentinel
		}
		return 0, nil
	}
	idx := i*stride + off
	if idx < 0 || idx >= len(s.PackedValues) {
		return 0, uimerr.New(uimerr.KindOutOfRange, "ink: sample index out of range")
	}
	return s.PackedValues[idx], nil
}

// skipSentinel is returned as the error for SkipStroke so callers can
// distinguish "caller must drop this stroke" from a real failure.
var skipSentinel = uimerr.New(uimerr.KindInvalidArgument, "ink: attribute missing, stroke skipped by policy")

// SkipSentinel exposes skipSentinel for callers comparing against it.
func SkipSentinel() error { return skipSentinel }

func nan() float64 {
	var zero float64
	return zero / zero
}

// BoundsXY returns the min/max of the X and Y channels, used by
// stroke bounding-box recomputation (spec §4.8). It returns ok=false
// if the spline carries no X/Y data.
func (s Spline) BoundsXY() (minX, minY, maxX, maxY float64, ok bool) {
	n, err := s.SampleCount()
	if err != nil || n == 0 || !s.LayoutMask.Has(X) || !s.LayoutMask.Has(Y) {
		return 0, 0, 0, 0, false
	}
	for i := 0; i < n; i++ {
		x, _ := s.At(i, X, FillWithZeros)
		y, _ := s.At(i, Y, FillWithZeros)
		if i == 0 || x < minX {
			minX = x
		}
		if i == 0 || y < minY {
			minY = y
		}
		if i == 0 || x > maxX {
			maxX = x
		}
		if i == 0 || y > maxY {
			maxY = y
		}
	}
	return minX, minY, maxX, maxY, true
}

// BuildSpline packs per-sample attribute rows into a Spline. Each row
// must supply exactly the attributes in mask, in mask bit order; this
// is a convenience constructor mirroring how test fixtures and the
// decoder assemble samples.
func BuildSpline(mask LayoutMask, rows [][]float64, tStart, tEnd float64) (Spline, error) {
	stride := mask.Stride()
	values := make([]float64, 0, len(rows)*stride)
	for _, row := range rows {
		if len(row) != stride {
			return Spline{}, uimerr.New(uimerr.KindInvalidArgument, "ink: row length does not match layout mask stride")
		}
		values = append(values, row...)
	}
	return Spline{LayoutMask: mask, PackedValues: values, TStart: tStart, TEnd: tEnd}, nil
}
