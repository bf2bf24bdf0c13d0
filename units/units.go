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

// Package units implements the unit conversion table required by
// spec §6: length, time, angle, force and percentage/logical units,
// every supported pair covered by an exact factor into a per-family
// base unit.
package units

import "github.com/Wacom-Developer/universal-ink-library/uimerr"

// Unit enumerates every unit spec §6 requires conversions for.
type Unit int

const (
	M Unit = iota
	CM
	MM
	IN
	PT
	PC
	DIP
	S
	MS
	NS
	RAD
	DEG
	N
	PERCENTAGE
	LOGICAL
)

// family groups units that can be converted among each other.
type family int

const (
	famLength family = iota
	famTime
	famAngle
	famForce
	famPercentage
	famLogical
)

var familyOf = map[Unit]family{
	M: famLength, CM: famLength, MM: famLength, IN: famLength, PT: famLength, PC: famLength, DIP: famLength,
	S: famTime, MS: famTime, NS: famTime,
	RAD: famAngle, DEG: famAngle,
	N:          famForce,
	PERCENTAGE: famPercentage,
	LOGICAL:    famLogical,
}

// toBase is the factor that converts one unit of Unit into the
// family's base unit (metres, seconds, radians, newtons, and an
// identity base for percentage/logical).
//
// DIP (Device-Independent Pixel) is defined as 1/96 inch, per spec §6.
var toBase = map[Unit]float64{
	M:  1.0,
	CM: 0.01,
	MM: 0.001,
	IN: 0.0254,
	PT: 0.0254 / 72.0,
	PC: 0.0254 / 6.0,
	DIP: 0.0254 / 96.0,

	S:  1.0,
	MS: 0.001,
	NS: 1e-9,

	RAD: 1.0,
	DEG: 0.017453292519943295, // math.Pi / 180

	N: 1.0,

	PERCENTAGE: 1.0,
	LOGICAL:    1.0,
}

func name(u Unit) string {
	switch u {
	case M:
		return "M"
	case CM:
		return "CM"
	case MM:
		return "MM"
	case IN:
		return "IN"
	case PT:
		return "PT"
	case PC:
		return "PC"
	case DIP:
		return "DIP"
	case S:
		return "S"
	case MS:
		return "MS"
	case NS:
		return "NS"
	case RAD:
		return "RAD"
	case DEG:
		return "DEG"
	case N:
		return "N"
	case PERCENTAGE:
		return "PERCENTAGE"
	case LOGICAL:
		return "LOGICAL"
	default:
		return "UNKNOWN"
	}
}

func (u Unit) String() string { return name(u) }

// Convert converts v from the "from" unit to the "to" unit. It fails
// with an InvalidArgument error when the two units do not belong to
// the same dimension family (e.g. converting seconds to metres).
func Convert(from, to Unit, v float64) (float64, error) {
	ff, ok := familyOf[from]
	if !ok {
		return 0, uimerr.New(uimerr.KindInvalidArgument, "units: unknown unit "+name(from))
	}
	tf, ok := familyOf[to]
	if !ok {
		return 0, uimerr.New(uimerr.KindInvalidArgument, "units: unknown unit "+name(to))
	}
	if ff != tf {
		return 0, uimerr.New(uimerr.KindInvalidArgument, "units: cannot convert "+name(from)+" to "+name(to))
	}
	base := v * toBase[from]
	return base / toBase[to], nil
}

// MustConvert is Convert but panics on a dimension mismatch; useful
// for call sites that have already validated the unit pairing.
func MustConvert(from, to Unit, v float64) float64 {
	r, err := Convert(from, to, v)
	if err != nil {
		panic(err)
	}
	return r
}

// DIPFromLocal converts a local-coordinate value into Device
// Independent Pixels given the model's unit_scale_factor (spec §3.7),
// which is a plain multiplicative scale, not a dimensioned unit.
func DIPFromLocal(localValue, unitScaleFactor float64) float64 {
	return localValue * unitScaleFactor
}

// LocalFromDIP is the inverse of DIPFromLocal.
func LocalFromDIP(dipValue, unitScaleFactor float64) float64 {
	if unitScaleFactor == 0 {
		return 0
	}
	return dipValue / unitScaleFactor
}
