/*
Copyright 2022 The Universal Ink Library Authors.

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

// Package matrix implements the 4x4 affine transform carried by an
// InkModel (spec §3.7), adapted from a 3x3 2-D transform into the
// full 4x4 form the wire format stores.
package matrix

import "fmt"

// Matrix is a row-major 4x4 affine transform.
type Matrix [4][4]float64

// Ident is the identity transform, the InkModel default per spec §3.7.
var Ident = Matrix{
	{1, 0, 0, 0},
	{0, 1, 0, 0},
	{0, 0, 1, 0},
	{0, 0, 0, 1},
}

// Multiply returns m * n.
func (m Matrix) Multiply(n Matrix) Matrix {
	var p Matrix
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			var sum float64
			for k := 0; k < 4; k++ {
				sum += m[i][k] * n[k][j]
			}
			p[i][j] = sum
		}
	}
	return p
}

// Point3 is a 3-D point transformed by a 4x4 affine matrix.
type Point3 struct {
	X, Y, Z float64
}

// Transform applies m to p, treating p as a homogeneous (x, y, z, 1)
// column vector.
func (m Matrix) Transform(p Point3) Point3 {
	x := m[0][0]*p.X + m[0][1]*p.Y + m[0][2]*p.Z + m[0][3]
	y := m[1][0]*p.X + m[1][1]*p.Y + m[1][2]*p.Z + m[1][3]
	z := m[2][0]*p.X + m[2][1]*p.Y + m[2][2]*p.Z + m[2][3]
	return Point3{X: x, Y: y, Z: z}
}

// IsIdentity reports whether m is the identity transform.
func (m Matrix) IsIdentity() bool { return m == Ident }

// Flat returns m's 16 entries in row-major order, the layout the
// codec writes them in.
func (m Matrix) Flat() [16]float64 {
	var out [16]float64
	idx := 0
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			out[idx] = m[i][j]
			idx++
		}
	}
	return out
}

// FromFlat rebuilds a Matrix from 16 row-major entries, as decoded
// off the wire.
func FromFlat(v [16]float64) Matrix {
	var m Matrix
	idx := 0
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			m[i][j] = v[idx]
			idx++
		}
	}
	return m
}

func (m Matrix) String() string {
	return fmt.Sprintf(
		"%6.3f %6.3f %6.3f %6.3f\n%6.3f %6.3f %6.3f %6.3f\n%6.3f %6.3f %6.3f %6.3f\n%6.3f %6.3f %6.3f %6.3f\n",
		m[0][0], m[0][1], m[0][2], m[0][3],
		m[1][0], m[1][1], m[1][2], m[1][3],
		m[2][0], m[2][1], m[2][2], m[2][3],
		m[3][0], m[3][1], m[3][2], m[3][3],
	)
}
