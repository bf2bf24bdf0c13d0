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

// Package sensor implements the raw per-sample capture model of spec
// §3.3: sensor-data frames grouped by channel, keyed by Random-Id and
// held immutable once inserted into their repository.
package sensor

import "github.com/Wacom-Developer/universal-ink-library/identity"

// State is the pointer/stylus state recorded for a frame.
type State int

const (
	PLANE State = iota
	HOVERING
	IN_VOLUME
	VOLUME_HOVERING
	START_TRACKING
	STOP_TRACKING
)

// ChannelType names the well-known sensor channel type URIs used by
// strided-array export (spec §4.5) to tell a sensor-plane attribute
// apart from a spline-plane one.
type ChannelType string

const (
	ChannelX         ChannelType = "will://input/3.0/channel/X"
	ChannelY         ChannelType = "will://input/3.0/channel/Y"
	ChannelZ         ChannelType = "will://input/3.0/channel/Z"
	ChannelTimestamp ChannelType = "will://input/3.0/channel/Timestamp"
	ChannelPressure  ChannelType = "will://input/3.0/channel/Pressure"
	ChannelAltitude  ChannelType = "will://input/3.0/channel/Altitude"
	ChannelAzimuth   ChannelType = "will://input/3.0/channel/Azimuth"
	ChannelRadiusX   ChannelType = "will://input/3.0/channel/RadiusX"
	ChannelRadiusY   ChannelType = "will://input/3.0/channel/RadiusY"
	ChannelRotation  ChannelType = "will://input/3.0/channel/Rotation"
)

// ChannelData is one channel's full sample sequence for a frame, kept
// in absolute (non-delta) form in memory; the delta/varint wire form
// is applied only by the codec.
type ChannelData struct {
	SensorChannelID identity.ID
	Values          []float64
}

// SensorData is one raw capture frame: an immutable, Random-Id keyed
// group of channel sample sequences.
type SensorData struct {
	id                     identity.ID
	InputContextID         identity.ID
	State                  State
	TimestampMsFirstSample int64
	DataChannels           []ChannelData
}

// NewSensorData builds a new frame with a fresh Random-Id.
func NewSensorData(inputContextID identity.ID, state State, timestampMsFirstSample int64, channels []ChannelData) SensorData {
	return SensorData{
		id:                     identity.NewRandom(),
		InputContextID:         inputContextID,
		State:                  state,
		TimestampMsFirstSample: timestampMsFirstSample,
		DataChannels:           channels,
	}
}

// FromWire rebuilds a frame with an id read off the wire, used by the
// decoder to preserve the original identity instead of minting a new
// random one.
func FromWire(id identity.ID, inputContextID identity.ID, state State, timestampMsFirstSample int64, channels []ChannelData) SensorData {
	return SensorData{id: id, InputContextID: inputContextID, State: state, TimestampMsFirstSample: timestampMsFirstSample, DataChannels: channels}
}

// ID returns this frame's Random-Id.
func (s SensorData) ID() identity.ID { return s.id }

// Channel returns the channel data for the given sensor-channel id,
// if present in this frame.
func (s SensorData) Channel(channelID identity.ID) (ChannelData, bool) {
	for _, c := range s.DataChannels {
		if c.SensorChannelID == channelID {
			return c, true
		}
	}
	return ChannelData{}, false
}

// SampleCount returns the number of samples carried by the longest
// channel in the frame (channels should all agree in length; callers
// validating a file enforce that at a higher layer).
func (s SensorData) SampleCount() int {
	max := 0
	for _, c := range s.DataChannels {
		if len(c.Values) > max {
			max = len(c.Values)
		}
	}
	return max
}
