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

// Package inputconfig implements the input-configuration model of
// spec §3.2: environments, input providers, input devices, sensor
// channels and the three context tiers that tie them together. Every
// type here is Hash-Id addressed: equal content anywhere in the model
// shares one identifier.
package inputconfig

import "github.com/Wacom-Developer/universal-ink-library/identity"

// KV is an ordered (key, value) string pair. Environment, device and
// provider properties are kept as slices of KV rather than maps
// because their iteration order feeds the Hash-Id computation.
type KV struct {
	Key   string
	Value string
}

// ProviderType enumerates the origin of an InkInputProvider.
type ProviderType int

const (
	PEN ProviderType = iota
	TOUCH
	MOUSE
	CONTROLLER
)

// Environment is an ordered bag of string properties describing the
// capture environment (OS, app, device model, ...).
type Environment struct {
	Properties []KV
}

// Regenerate recomputes and returns this value's Hash-Id.
func (e Environment) Regenerate() identity.ID {
	b := identity.NewHash("Environment")
	for _, kv := range e.Properties {
		b.AddString(kv.Key).AddString(kv.Value)
	}
	return b.Sum()
}

// ID returns the content-addressed identifier of e.
func (e Environment) ID() identity.ID { return e.Regenerate() }

// InkInputProvider describes one origin of raw input (pen digitizer,
// touch surface, mouse, game controller).
type InkInputProvider struct {
	Type       ProviderType
	Properties []KV
}

func (p InkInputProvider) Regenerate() identity.ID {
	b := identity.NewHash("InkInputProvider").AddInt(int64(p.Type))
	for _, kv := range p.Properties {
		b.AddString(kv.Key).AddString(kv.Value)
	}
	return b.Sum()
}

func (p InkInputProvider) ID() identity.ID { return p.Regenerate() }

// InputDevice describes the physical device producing samples.
type InputDevice struct {
	Properties []KV
}

func (d InputDevice) Regenerate() identity.ID {
	b := identity.NewHash("InputDevice")
	for _, kv := range d.Properties {
		b.AddString(kv.Key).AddString(kv.Value)
	}
	return b.Sum()
}

func (d InputDevice) ID() identity.ID { return d.Regenerate() }

// Metric is the physical quantity a SensorChannel carries.
type Metric int

const (
	LENGTH Metric = iota
	TIME
	FORCE
	ANGLE
	NORMALIZED
)

// SensorChannel describes one raw data stream (X, Y, pressure,
// timestamp, ...) a device exposes.
type SensorChannel struct {
	TypeURI    string
	Metric     Metric
	Resolution float64 // power-of-10 scale applied to raw samples
	Min, Max   float64
	Precision  uint8 // decimal digits of precision
	Index      int
	Name       string
	DataType   string
	ProviderID *identity.ID
	DeviceID   *identity.ID
}

func (c SensorChannel) Regenerate() identity.ID {
	b := identity.NewHash("SensorChannel").
		AddString(c.TypeURI).
		AddInt(int64(c.Metric)).
		AddFloat(c.Resolution).
		AddFloat(c.Min).
		AddFloat(c.Max).
		AddInt(int64(c.Precision)).
		AddInt(int64(c.Index)).
		AddString(c.Name).
		AddString(c.DataType).
		AddOptionalID(c.ProviderID).
		AddOptionalID(c.DeviceID)
	return b.Sum()
}

func (c SensorChannel) ID() identity.ID { return c.Regenerate() }

// SensorChannelsContext groups the channels sampled together by one
// provider/device pairing.
type SensorChannelsContext struct {
	Channels         []SensorChannel
	SamplingRateHint *float64
	LatencyMs        *float64
	ProviderID       *identity.ID
	DeviceID         *identity.ID
}

func (c SensorChannelsContext) Regenerate() identity.ID {
	b := identity.NewHash("SensorChannelsContext")
	for _, ch := range c.Channels {
		b.AddID(ch.ID())
	}
	b.AddOptionalFloat(c.SamplingRateHint).
		AddOptionalFloat(c.LatencyMs).
		AddOptionalID(c.ProviderID).
		AddOptionalID(c.DeviceID)
	return b.Sum()
}

func (c SensorChannelsContext) ID() identity.ID { return c.Regenerate() }

// Channel looks up a channel within this context by its own Hash-Id.
func (c SensorChannelsContext) Channel(id identity.ID) (SensorChannel, bool) {
	for _, ch := range c.Channels {
		if ch.ID() == id {
			return ch, true
		}
	}
	return SensorChannel{}, false
}

// SensorContext groups the channel contexts active for one recording
// session.
type SensorContext struct {
	ChannelsContexts []SensorChannelsContext
}

func (c SensorContext) Regenerate() identity.ID {
	b := identity.NewHash("SensorContext")
	for _, cc := range c.ChannelsContexts {
		b.AddID(cc.ID())
	}
	return b.Sum()
}

func (c SensorContext) ID() identity.ID { return c.Regenerate() }

// InputContext ties an Environment to a SensorContext; strokes and
// sensor-data frames reference an InputContext by id.
type InputContext struct {
	EnvironmentID   identity.ID
	SensorContextID identity.ID
}

func (c InputContext) Regenerate() identity.ID {
	return identity.NewHash("InputContext").
		AddID(c.EnvironmentID).
		AddID(c.SensorContextID).
		Sum()
}

func (c InputContext) ID() identity.ID { return c.Regenerate() }
