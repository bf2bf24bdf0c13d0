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

// Package deltacode implements the first-difference integer coding
// shared by the sensor-data channels (spec §3.3/§4.4) and the
// fixed-point spline attribute streams (spec §4.5): every value after
// the first is stored as a signed delta from its predecessor.
package deltacode

import "math"

// Encode turns an absolute integer sequence into the wire form: the
// first element verbatim, every following element the signed
// difference from its predecessor.
func Encode(values []int64) []int64 {
	if len(values) == 0 {
		return nil
	}
	out := make([]int64, len(values))
	out[0] = values[0]
	for i := 1; i < len(values); i++ {
		out[i] = values[i] - values[i-1]
	}
	return out
}

// Decode reverses Encode: the first element is absolute, every
// following element is added onto a running total.
func Decode(deltas []int64) []int64 {
	if len(deltas) == 0 {
		return nil
	}
	out := make([]int64, len(deltas))
	out[0] = deltas[0]
	for i := 1; i < len(deltas); i++ {
		out[i] = out[i-1] + deltas[i]
	}
	return out
}

// ScaleToInt rounds each float by the given scale factor (typically
// 10^precision) into an integer, the step applied before delta
// coding a fixed-point attribute stream.
func ScaleToInt(values []float64, scale float64) []int64 {
	out := make([]int64, len(values))
	for i, v := range values {
		out[i] = int64(math.Round(v * scale))
	}
	return out
}

// ScaleToFloat is the inverse of ScaleToInt.
func ScaleToFloat(values []int64, scale float64) []float64 {
	out := make([]float64, len(values))
	for i, v := range values {
		out[i] = float64(v) / scale
	}
	return out
}
