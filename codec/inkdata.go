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

package codec

import (
	"google.golang.org/protobuf/encoding/protowire"

	"github.com/Wacom-Developer/universal-ink-library/identity"
	"github.com/Wacom-Developer/universal-ink-library/ink"
	"github.com/Wacom-Developer/universal-ink-library/model"
	"github.com/Wacom-Developer/universal-ink-library/precision"
)

// Field numbers for the INKD section (codec.InkData message).
const (
	fInkStrokes protowire.Number = 1

	fStrokeID              protowire.Number = 1
	fStrokeLayoutMask      protowire.Number = 2
	fStrokeAttrStream      protowire.Number = 3
	fStrokeTStart          protowire.Number = 4
	fStrokeTEnd            protowire.Number = 5
	fStrokeStyle           protowire.Number = 6
	fStrokeSensorDataID    protowire.Number = 7
	fStrokeSensorOffset    protowire.Number = 8
	fStrokeSensorMapping   protowire.Number = 9
	fStrokeRandomSeed      protowire.Number = 10
	fStrokePrecisionScheme protowire.Number = 11

	fAttrKind   protowire.Number = 1
	fAttrDeltas protowire.Number = 2
	fAttrBytes  protowire.Number = 3 // 8-bit colour channel, stored raw

	fStyleProperties    protowire.Number = 1
	fStyleBrushURI      protowire.Number = 2
	fStyleParticleSeed  protowire.Number = 3
	fStyleRenderModeURI protowire.Number = 4

	fPPSize      protowire.Number = 1
	fPPRed       protowire.Number = 2
	fPPGreen     protowire.Number = 3
	fPPBlue      protowire.Number = 4
	fPPAlpha     protowire.Number = 5
	fPPRotation  protowire.Number = 6
	fPPScaleX    protowire.Number = 7
	fPPScaleY    protowire.Number = 8
	fPPScaleZ    protowire.Number = 9
	fPPOffsetX   protowire.Number = 10
	fPPOffsetY   protowire.Number = 11
	fPPOffsetZ   protowire.Number = 12
)

func encodeInkData(strokes *model.StrokeRepository) []byte {
	var b []byte
	for _, s := range strokes.All() {
		b = appendMessage(b, fInkStrokes, encodeStroke(s))
	}
	return b
}

func encodeStroke(s *ink.Stroke) []byte {
	var b []byte
	b = appendBytes(b, fStrokeID, s.ID().Bytes())
	b = appendVarint(b, fStrokeLayoutMask, uint64(s.Spline.LayoutMask))

	scheme := precision.Zero
	if s.PrecisionScheme != nil {
		scheme = *s.PrecisionScheme
	}
	for _, a := range s.Spline.LayoutMask.Attributes() {
		b = appendMessage(b, fStrokeAttrStream, encodeAttrStream(s.Spline, a, scheme))
	}

	b = appendDoubleAlways(b, fStrokeTStart, s.Spline.TStart)
	b = appendDoubleAlways(b, fStrokeTEnd, s.Spline.TEnd)
	b = appendMessage(b, fStrokeStyle, encodeStyle(s.Style))

	if s.SensorDataID != nil {
		b = appendBytes(b, fStrokeSensorDataID, s.SensorDataID.Bytes())
	}
	if s.SensorDataOffset != nil {
		offset := int64(*s.SensorDataOffset)
		b = appendOptionalInt64(b, fStrokeSensorOffset, &offset)
	}
	if len(s.SensorDataMapping) > 0 {
		mapping := make([]int64, len(s.SensorDataMapping))
		for i, v := range s.SensorDataMapping {
			mapping[i] = int64(v)
		}
		b = appendPackedSInt64s(b, fStrokeSensorMapping, mapping)
	}
	b = appendVarintAlways(b, fStrokeRandomSeed, uint64(s.RandomSeed))
	if s.PrecisionScheme != nil && !s.PrecisionScheme.IsZero() {
		b = appendVarint(b, fStrokePrecisionScheme, uint64(*s.PrecisionScheme))
	}
	return b
}

// encodeAttrStream encodes one present layout attribute as either a
// delta/fixed-point varint stream (position/size/rotation/scale/
// offset families) or raw 8-bit bytes (colour channels), per spec
// §4.5/§4.6.
func encodeAttrStream(spline ink.Spline, a ink.Attribute, scheme precision.Scheme) []byte {
	var b []byte
	b = appendVarintAlways(b, fAttrKind, uint64(a))
	if ink.IsColor(a) {
		n, _ := spline.SampleCount()
		raw := make([]byte, n)
		for i := 0; i < n; i++ {
			v, _ := spline.At(i, a, ink.FillWithZeros)
			raw[i] = ink.ColorByteFromFloat(v)
		}
		b = appendBytes(b, fAttrBytes, raw)
		return b
	}
	deltas, ok := ink.EncodeAttributeStream(spline, a, scheme)
	if ok {
		b = appendPackedSInt64s(b, fAttrDeltas, deltas)
	}
	return b
}

func encodeStyle(s ink.Style) []byte {
	var b []byte
	b = appendMessage(b, fStyleProperties, encodePathPointProperties(s.Properties))
	b = appendString(b, fStyleBrushURI, s.BrushURI)
	b = appendVarint(b, fStyleParticleSeed, uint64(s.ParticlesRandomSeed))
	b = appendString(b, fStyleRenderModeURI, s.RenderModeURI)
	return b
}

func encodePathPointProperties(p ink.PathPointProperties) []byte {
	var b []byte
	b = appendDouble(b, fPPSize, p.Size)
	b = appendDouble(b, fPPRed, p.Red)
	b = appendDouble(b, fPPGreen, p.Green)
	b = appendDouble(b, fPPBlue, p.Blue)
	b = appendDouble(b, fPPAlpha, p.Alpha)
	b = appendDouble(b, fPPRotation, p.Rotation)
	b = appendDouble(b, fPPScaleX, p.ScaleX)
	b = appendDouble(b, fPPScaleY, p.ScaleY)
	b = appendDouble(b, fPPScaleZ, p.ScaleZ)
	b = appendDouble(b, fPPOffsetX, p.OffsetX)
	b = appendDouble(b, fPPOffsetY, p.OffsetY)
	b = appendDouble(b, fPPOffsetZ, p.OffsetZ)
	return b
}

func decodeInkData(data []byte, strokes *model.StrokeRepository) error {
	return fieldReader(data, func(num protowire.Number, typ protowire.Type, v []byte, consumed int) (int, error) {
		if num != fInkStrokes {
			return consumed, nil
		}
		s, err := decodeStroke(v)
		if err != nil {
			return 0, err
		}
		strokes.Add(s)
		return consumed, nil
	})
}

func decodeStroke(data []byte) (*ink.Stroke, error) {
	var id identity.ID
	var mask ink.LayoutMask
	var tStart, tEnd float64
	var style ink.Style
	var sensorDataID *identity.ID
	var sensorOffset *int
	var sensorMapping []int
	var randomSeed uint32
	var scheme *precision.Scheme

	type rawStream struct {
		attr   ink.Attribute
		deltas []int64
		bytes  []byte
		isByte bool
	}
	var streams []rawStream

	err := fieldReader(data, func(num protowire.Number, typ protowire.Type, v []byte, consumed int) (int, error) {
		switch num {
		case fStrokeID:
			parsed, err := identity.FromBytes(readBytes(v))
			if err != nil {
				return 0, err
			}
			id = parsed
		case fStrokeLayoutMask:
			mask = ink.LayoutMask(readVarint(v))
		case fStrokeAttrStream:
			st, err := decodeAttrStream(v)
			if err != nil {
				return 0, err
			}
			streams = append(streams, st)
		case fStrokeTStart:
			tStart = readDouble(v)
		case fStrokeTEnd:
			tEnd = readDouble(v)
		case fStrokeStyle:
			decoded, err := decodeStyle(v)
			if err != nil {
				return 0, err
			}
			style = decoded
		case fStrokeSensorDataID:
			parsed, err := identity.FromBytes(readBytes(v))
			if err != nil {
				return 0, err
			}
			sensorDataID = &parsed
		case fStrokeSensorOffset:
			off := int(unzigzag(readVarint(v)))
			sensorOffset = &off
		case fStrokeSensorMapping:
			deltas := decodePackedSInt64s(readBytes(v))
			sensorMapping = make([]int, len(deltas))
			for i, d := range deltas {
				sensorMapping[i] = int(d)
			}
		case fStrokeRandomSeed:
			randomSeed = uint32(readVarint(v))
		case fStrokePrecisionScheme:
			s := precision.Scheme(readVarint(v))
			scheme = &s
		}
		return consumed, nil
	})
	if err != nil {
		return nil, err
	}

	effectiveScheme := precision.Zero
	if scheme != nil {
		effectiveScheme = *scheme
	}

	var rows [][]float64
	n := 0
	decodedByAttr := map[ink.Attribute][]float64{}
	for _, st := range streams {
		var values []float64
		if st.isByte {
			values = make([]float64, len(st.bytes))
			for i, raw := range st.bytes {
				values[i] = ink.ColorFloatFromByte(raw)
			}
		} else {
			values = ink.DecodeAttributeStream(st.deltas, st.attr, effectiveScheme)
		}
		decodedByAttr[st.attr] = values
		if len(values) > n {
			n = len(values)
		}
	}
	ordered := mask.Attributes()
	rows = make([][]float64, n)
	for i := 0; i < n; i++ {
		row := make([]float64, 0, len(ordered))
		for _, a := range ordered {
			vals := decodedByAttr[a]
			if i < len(vals) {
				row = append(row, vals[i])
			} else {
				row = append(row, 0)
			}
		}
		rows[i] = row
	}
	spline, err := ink.BuildSpline(mask, rows, tStart, tEnd)
	if err != nil {
		return nil, err
	}

	stroke := ink.FromWire(id, spline, style)
	stroke.SensorDataID = sensorDataID
	stroke.SensorDataOffset = sensorOffset
	stroke.SensorDataMapping = sensorMapping
	stroke.RandomSeed = randomSeed
	stroke.PrecisionScheme = scheme
	return stroke, nil
}

func decodeAttrStream(data []byte) (st struct {
	attr   ink.Attribute
	deltas []int64
	bytes  []byte
	isByte bool
}, err error) {
	err = fieldReader(data, func(num protowire.Number, typ protowire.Type, v []byte, consumed int) (int, error) {
		switch num {
		case fAttrKind:
			st.attr = ink.Attribute(readVarint(v))
		case fAttrDeltas:
			st.deltas = decodePackedSInt64s(readBytes(v))
		case fAttrBytes:
			st.bytes = readBytes(v)
			st.isByte = true
		}
		return consumed, nil
	})
	return st, err
}

func decodeStyle(data []byte) (ink.Style, error) {
	var s ink.Style
	err := fieldReader(data, func(num protowire.Number, typ protowire.Type, v []byte, consumed int) (int, error) {
		switch num {
		case fStyleProperties:
			p, err := decodePathPointProperties(v)
			if err != nil {
				return 0, err
			}
			s.Properties = p
		case fStyleBrushURI:
			s.BrushURI = readString(v)
		case fStyleParticleSeed:
			s.ParticlesRandomSeed = uint32(readVarint(v))
		case fStyleRenderModeURI:
			s.RenderModeURI = readString(v)
		}
		return consumed, nil
	})
	return s, err
}

func decodePathPointProperties(data []byte) (ink.PathPointProperties, error) {
	var p ink.PathPointProperties
	err := fieldReader(data, func(num protowire.Number, typ protowire.Type, v []byte, consumed int) (int, error) {
		switch num {
		case fPPSize:
			p.Size = readDouble(v)
		case fPPRed:
			p.Red = readDouble(v)
		case fPPGreen:
			p.Green = readDouble(v)
		case fPPBlue:
			p.Blue = readDouble(v)
		case fPPAlpha:
			p.Alpha = readDouble(v)
		case fPPRotation:
			p.Rotation = readDouble(v)
		case fPPScaleX:
			p.ScaleX = readDouble(v)
		case fPPScaleY:
			p.ScaleY = readDouble(v)
		case fPPScaleZ:
			p.ScaleZ = readDouble(v)
		case fPPOffsetX:
			p.OffsetX = readDouble(v)
		case fPPOffsetY:
			p.OffsetY = readDouble(v)
		case fPPOffsetZ:
			p.OffsetZ = readDouble(v)
		}
		return consumed, nil
	})
	return p, err
}
