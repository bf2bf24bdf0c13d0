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

package model

import (
	"github.com/Wacom-Developer/universal-ink-library/ink"
	"github.com/Wacom-Developer/universal-ink-library/sensor"
	"github.com/Wacom-Developer/universal-ink-library/uimerr"
)

// Plane distinguishes which of the two per-sample data sources an
// Attr draws from: the rendered spline or the raw sensor frame a
// stroke was captured from (spec §4.5's strided-array export spans
// both).
type Plane int

const (
	SplinePlane Plane = iota
	SensorPlane
)

// Attr names one column of a strided export: either a spline-plane
// attribute (X, SIZE, RED, ...) or a sensor-plane channel type
// (Pressure, Altitude, ...), so callers can request a layout mixing
// both planes in one call.
type Attr struct {
	Plane   Plane
	Spline  ink.Attribute
	Channel sensor.ChannelType
}

// SplineAttr builds a spline-plane column selector.
func SplineAttr(a ink.Attribute) Attr { return Attr{Plane: SplinePlane, Spline: a} }

// SensorAttr builds a sensor-plane column selector.
func SensorAttr(c sensor.ChannelType) Attr { return Attr{Plane: SensorPlane, Channel: c} }

// StridedArray produces a row-major [sampleCount][len(layout)]float64
// export for one stroke, honoring policy for any column that cannot
// be resolved: a spline attribute absent from the stroke's layout
// mask, or a sensor channel with no frame, no matching channel, or no
// sample at that index (spec §4.5/§6).
//
// Row i, column j holds layout[j]'s value at spline sample i. For
// SkipStroke, the first unresolved cell aborts the whole export and
// returns ink.SkipSentinel().
func (m *InkModel) StridedArray(s *ink.Stroke, layout []Attr, policy ink.MissingPolicy) ([][]float64, error) {
	n, err := s.Spline.SampleCount()
	if err != nil {
		return nil, err
	}

	var frame sensor.SensorData
	haveFrame := false
	if s.SensorDataID != nil {
		f, err := m.SensorData.Get(*s.SensorDataID)
		if err != nil {
			return nil, uimerr.At(uimerr.KindConsistency, s.SensorDataID.H(), "model: stroke sensor_data_id does not resolve")
		}
		frame = f
		haveFrame = true
	}

	rows := make([][]float64, n)
	for i := 0; i < n; i++ {
		row := make([]float64, len(layout))
		for j, a := range layout {
			v, err := m.attrValue(s, frame, haveFrame, i, a, policy)
			if err != nil {
				return nil, err
			}
			row[j] = v
		}
		rows[i] = row
	}
	return rows, nil
}

func (m *InkModel) attrValue(s *ink.Stroke, frame sensor.SensorData, haveFrame bool, sampleIdx int, a Attr, policy ink.MissingPolicy) (float64, error) {
	if a.Plane == SplinePlane {
		return s.Spline.At(sampleIdx, a.Spline, policy)
	}

	if haveFrame {
		data, ok, err := m.channelValuesByType(frame, a.Channel)
		if err == nil && ok {
			si := s.SensorIndex(sampleIdx)
			if si >= 0 && si < len(data.Values) {
				return data.Values[si], nil
			}
		}
	}

	switch policy {
	case ink.FillWithZeros:
		return 0, nil
	case ink.FillWithNaN:
		var zero float64
		return zero / zero, nil
	case ink.Throw:
		return 0, uimerr.New(uimerr.KindInvalidArgument, "model: sensor attribute not available for sample")
	case ink.SkipStroke:
		return 0, ink.SkipSentinel()
	}
	return 0, nil
}

// channelValuesByType resolves one channel's data within frame by
// walking frame's InputContext to its SensorContext and matching the
// channel's TypeURI against wanted, per spec §4.3/§4.5.
func (m *InkModel) channelValuesByType(frame sensor.SensorData, wanted sensor.ChannelType) (sensor.ChannelData, bool, error) {
	ic, err := m.InputConfig.InputContext(frame.InputContextID)
	if err != nil {
		return sensor.ChannelData{}, false, err
	}
	sc, err := m.InputConfig.SensorContext(ic.SensorContextID)
	if err != nil {
		return sensor.ChannelData{}, false, err
	}
	for _, cc := range sc.ChannelsContexts {
		for _, ch := range cc.Channels {
			if ch.TypeURI != string(wanted) {
				continue
			}
			data, ok := frame.Channel(ch.ID())
			return data, ok, nil
		}
	}
	return sensor.ChannelData{}, false, nil
}
