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

	"github.com/Wacom-Developer/universal-ink-library/deltacode"
	"github.com/Wacom-Developer/universal-ink-library/identity"
	"github.com/Wacom-Developer/universal-ink-library/inputconfig"
	"github.com/Wacom-Developer/universal-ink-library/sensor"
)

// Field numbers for the INPT section (codec.InputData message).
const (
	fInputEnvironments   protowire.Number = 1
	fInputProviders      protowire.Number = 2
	fInputDevices        protowire.Number = 3
	fInputSensorContexts protowire.Number = 4
	fInputContexts       protowire.Number = 5
	fInputSensorData     protowire.Number = 6

	// fKVKey/fKVValue are declared once in properties.go and reused
	// here: inputconfig.KV and model.Property serialize to the same
	// key=1/value=2 shape, so a second pair of constants would just
	// duplicate the wire format under a different name.

	fEnvProperties protowire.Number = 1

	fProviderType       protowire.Number = 1
	fProviderProperties protowire.Number = 2

	fDeviceProperties protowire.Number = 1

	fChannelTypeURI   protowire.Number = 1
	fChannelMetric    protowire.Number = 2
	fChannelResol     protowire.Number = 3
	fChannelMin       protowire.Number = 4
	fChannelMax       protowire.Number = 5
	fChannelPrecision protowire.Number = 6
	fChannelIndex     protowire.Number = 7
	fChannelName      protowire.Number = 8
	fChannelDataType  protowire.Number = 9
	fChannelProvider  protowire.Number = 10
	fChannelDevice    protowire.Number = 11

	fChCtxChannels     protowire.Number = 1
	fChCtxSamplingHint protowire.Number = 2
	fChCtxLatencyMs    protowire.Number = 3
	fChCtxProvider     protowire.Number = 4
	fChCtxDevice       protowire.Number = 5

	fSensorCtxChannelsContexts protowire.Number = 1

	fInputCtxEnvironment   protowire.Number = 1
	fInputCtxSensorContext protowire.Number = 2

	fFrameID             protowire.Number = 1
	fFrameInputContext   protowire.Number = 2
	fFrameState          protowire.Number = 3
	fFrameTimestampFirst protowire.Number = 4
	fFrameChannels       protowire.Number = 5

	fChannelDataChannelID protowire.Number = 1
	fChannelDataDeltas    protowire.Number = 2
)

func encodeKV(key, value string) []byte {
	var b []byte
	b = appendString(b, fKVKey, key)
	b = appendString(b, fKVValue, value)
	return b
}

func decodeKV(data []byte) (string, string, error) {
	var key, value string
	err := fieldReader(data, func(num protowire.Number, typ protowire.Type, v []byte, consumed int) (int, error) {
		switch num {
		case fKVKey:
			key = readString(v)
		case fKVValue:
			value = readString(v)
		}
		return consumed, nil
	})
	return key, value, err
}

// channelResolution looks up a sensor channel's Resolution (the
// power-of-10 scale factor its raw samples are stored at, spec
// §3.3/§4.4), defaulting to 1 (no scaling) for a channel the input
// configuration doesn't describe -- timestamps and any other channel
// an encoder chooses not to register stay exact integers either way.
func channelResolution(cfg *inputconfig.Repository, channelID identity.ID) float64 {
	ch, _, err := cfg.ResolveChannel(channelID)
	if err != nil || ch.Resolution == 0 {
		return 1
	}
	return ch.Resolution
}

func encodeInputData(m *inputDataSource) []byte {
	var b []byte
	for _, e := range m.cfg.Environments() {
		var eb []byte
		for _, kv := range e.Properties {
			eb = appendMessage(eb, fEnvProperties, encodeKV(kv.Key, kv.Value))
		}
		b = appendMessage(b, fInputEnvironments, eb)
	}
	for _, p := range m.cfg.Providers() {
		var pb []byte
		pb = appendVarint(pb, fProviderType, uint64(p.Type))
		for _, kv := range p.Properties {
			pb = appendMessage(pb, fProviderProperties, encodeKV(kv.Key, kv.Value))
		}
		b = appendMessage(b, fInputProviders, pb)
	}
	for _, d := range m.cfg.Devices() {
		var db []byte
		for _, kv := range d.Properties {
			db = appendMessage(db, fDeviceProperties, encodeKV(kv.Key, kv.Value))
		}
		b = appendMessage(b, fInputDevices, db)
	}
	for _, sc := range m.cfg.SensorContexts() {
		b = appendMessage(b, fInputSensorContexts, encodeSensorContext(sc))
	}
	for _, ic := range m.cfg.InputContexts() {
		var icb []byte
		icb = appendBytes(icb, fInputCtxEnvironment, ic.EnvironmentID.Bytes())
		icb = appendBytes(icb, fInputCtxSensorContext, ic.SensorContextID.Bytes())
		b = appendMessage(b, fInputContexts, icb)
	}
	for _, frame := range m.sensorData.All() {
		b = appendMessage(b, fInputSensorData, encodeSensorData(frame, m.cfg))
	}
	return b
}

func encodeSensorChannel(c inputconfig.SensorChannel) []byte {
	var b []byte
	b = appendString(b, fChannelTypeURI, c.TypeURI)
	b = appendVarint(b, fChannelMetric, uint64(c.Metric))
	b = appendDouble(b, fChannelResol, c.Resolution)
	b = appendDouble(b, fChannelMin, c.Min)
	b = appendDouble(b, fChannelMax, c.Max)
	b = appendVarint(b, fChannelPrecision, uint64(c.Precision))
	b = appendVarint(b, fChannelIndex, uint64(c.Index))
	b = appendString(b, fChannelName, c.Name)
	b = appendString(b, fChannelDataType, c.DataType)
	if c.ProviderID != nil {
		b = appendBytes(b, fChannelProvider, c.ProviderID.Bytes())
	}
	if c.DeviceID != nil {
		b = appendBytes(b, fChannelDevice, c.DeviceID.Bytes())
	}
	return b
}

func decodeSensorChannel(data []byte) (inputconfig.SensorChannel, error) {
	var c inputconfig.SensorChannel
	err := fieldReader(data, func(num protowire.Number, typ protowire.Type, v []byte, consumed int) (int, error) {
		switch num {
		case fChannelTypeURI:
			c.TypeURI = readString(v)
		case fChannelMetric:
			c.Metric = inputconfig.Metric(readVarint(v))
		case fChannelResol:
			c.Resolution = readDouble(v)
		case fChannelMin:
			c.Min = readDouble(v)
		case fChannelMax:
			c.Max = readDouble(v)
		case fChannelPrecision:
			c.Precision = uint8(readVarint(v))
		case fChannelIndex:
			c.Index = int(readVarint(v))
		case fChannelName:
			c.Name = readString(v)
		case fChannelDataType:
			c.DataType = readString(v)
		case fChannelProvider:
			id, err := identity.FromBytes(readBytes(v))
			if err != nil {
				return 0, err
			}
			c.ProviderID = &id
		case fChannelDevice:
			id, err := identity.FromBytes(readBytes(v))
			if err != nil {
				return 0, err
			}
			c.DeviceID = &id
		}
		return consumed, nil
	})
	return c, err
}

func encodeChannelsContext(cc inputconfig.SensorChannelsContext) []byte {
	var b []byte
	for _, ch := range cc.Channels {
		b = appendMessage(b, fChCtxChannels, encodeSensorChannel(ch))
	}
	b = appendOptionalDouble(b, fChCtxSamplingHint, cc.SamplingRateHint)
	b = appendOptionalDouble(b, fChCtxLatencyMs, cc.LatencyMs)
	if cc.ProviderID != nil {
		b = appendBytes(b, fChCtxProvider, cc.ProviderID.Bytes())
	}
	if cc.DeviceID != nil {
		b = appendBytes(b, fChCtxDevice, cc.DeviceID.Bytes())
	}
	return b
}

func decodeChannelsContext(data []byte) (inputconfig.SensorChannelsContext, error) {
	var cc inputconfig.SensorChannelsContext
	err := fieldReader(data, func(num protowire.Number, typ protowire.Type, v []byte, consumed int) (int, error) {
		switch num {
		case fChCtxChannels:
			ch, err := decodeSensorChannel(v)
			if err != nil {
				return 0, err
			}
			cc.Channels = append(cc.Channels, ch)
		case fChCtxSamplingHint:
			cc.SamplingRateHint = decodeOptionalDouble(v)
		case fChCtxLatencyMs:
			cc.LatencyMs = decodeOptionalDouble(v)
		case fChCtxProvider:
			id, err := identity.FromBytes(readBytes(v))
			if err != nil {
				return 0, err
			}
			cc.ProviderID = &id
		case fChCtxDevice:
			id, err := identity.FromBytes(readBytes(v))
			if err != nil {
				return 0, err
			}
			cc.DeviceID = &id
		}
		return consumed, nil
	})
	return cc, err
}

func encodeSensorContext(sc inputconfig.SensorContext) []byte {
	var b []byte
	for _, cc := range sc.ChannelsContexts {
		b = appendMessage(b, fSensorCtxChannelsContexts, encodeChannelsContext(cc))
	}
	return b
}

func decodeSensorContext(data []byte) (inputconfig.SensorContext, error) {
	var sc inputconfig.SensorContext
	err := fieldReader(data, func(num protowire.Number, typ protowire.Type, v []byte, consumed int) (int, error) {
		if num == fSensorCtxChannelsContexts {
			cc, err := decodeChannelsContext(v)
			if err != nil {
				return 0, err
			}
			sc.ChannelsContexts = append(sc.ChannelsContexts, cc)
		}
		return consumed, nil
	})
	return sc, err
}

func encodeSensorData(frame sensor.SensorData, cfg *inputconfig.Repository) []byte {
	var b []byte
	b = appendBytes(b, fFrameID, frame.ID().Bytes())
	b = appendBytes(b, fFrameInputContext, frame.InputContextID.Bytes())
	b = appendVarint(b, fFrameState, uint64(frame.State))
	b = appendVarintAlways(b, fFrameTimestampFirst, zigzag(frame.TimestampMsFirstSample))
	for _, ch := range frame.DataChannels {
		var cb []byte
		cb = appendBytes(cb, fChannelDataChannelID, ch.SensorChannelID.Bytes())
		resolution := channelResolution(cfg, ch.SensorChannelID)
		deltas := deltaEncodeRaw(ch.Values, resolution)
		cb = appendPackedSInt64s(cb, fChannelDataDeltas, deltas)
		b = appendMessage(b, fFrameChannels, cb)
	}
	return b
}

func decodeSensorData(data []byte, cfg *inputconfig.Repository) (sensor.SensorData, error) {
	var id, icID identity.ID
	var state sensor.State
	var ts int64
	var channels []sensor.ChannelData
	err := fieldReader(data, func(num protowire.Number, typ protowire.Type, v []byte, consumed int) (int, error) {
		switch num {
		case fFrameID:
			parsed, err := identity.FromBytes(readBytes(v))
			if err != nil {
				return 0, err
			}
			id = parsed
		case fFrameInputContext:
			parsed, err := identity.FromBytes(readBytes(v))
			if err != nil {
				return 0, err
			}
			icID = parsed
		case fFrameState:
			state = sensor.State(readVarint(v))
		case fFrameTimestampFirst:
			ts = unzigzag(readVarint(v))
		case fFrameChannels:
			ch, err := decodeChannelData(v, cfg)
			if err != nil {
				return 0, err
			}
			channels = append(channels, ch)
		}
		return consumed, nil
	})
	if err != nil {
		return sensor.SensorData{}, err
	}
	return sensor.FromWire(id, icID, state, ts, channels), nil
}

// decodeChannelData expects fChannelDataChannelID to appear before
// fChannelDataDeltas on the wire (as encodeSensorData always writes
// it), since the deltas need the channel's resolution to unscale.
func decodeChannelData(data []byte, cfg *inputconfig.Repository) (sensor.ChannelData, error) {
	var cd sensor.ChannelData
	err := fieldReader(data, func(num protowire.Number, typ protowire.Type, v []byte, consumed int) (int, error) {
		switch num {
		case fChannelDataChannelID:
			id, err := identity.FromBytes(readBytes(v))
			if err != nil {
				return 0, err
			}
			cd.SensorChannelID = id
		case fChannelDataDeltas:
			deltas := decodePackedSInt64s(readBytes(v))
			cd.Values = deltaDecodeRaw(deltas, channelResolution(cfg, cd.SensorChannelID))
		}
		return consumed, nil
	})
	return cd, err
}

// deltaEncodeRaw/deltaDecodeRaw scale a channel's physical float64
// samples (pressure, tilt, radius, coordinates, ...) by its
// resolution before/after first-difference coding, the same
// ScaleToInt/ScaleToFloat step EncodeAttributeStream applies to
// spline attribute streams via a precision::Scheme field (spec
// §3.3/§4.4). A channel the repository doesn't describe (or with a
// zero resolution) is left unscaled.
func deltaEncodeRaw(values []float64, resolution float64) []int64 {
	return deltacode.Encode(deltacode.ScaleToInt(values, resolution))
}

func deltaDecodeRaw(deltas []int64, resolution float64) []float64 {
	return deltacode.ScaleToFloat(deltacode.Decode(deltas), resolution)
}

func decodeInputData(data []byte, cfg *inputconfig.Repository, sensorData *sensor.Repository) error {
	return fieldReader(data, func(num protowire.Number, typ protowire.Type, v []byte, consumed int) (int, error) {
		switch num {
		case fInputEnvironments:
			var env inputconfig.Environment
			err := fieldReader(v, func(n2 protowire.Number, t2 protowire.Type, v2 []byte, c2 int) (int, error) {
				if n2 == fEnvProperties {
					k, val, err := decodeKV(v2)
					if err != nil {
						return 0, err
					}
					env.Properties = append(env.Properties, inputconfig.KV{Key: k, Value: val})
				}
				return c2, nil
			})
			if err != nil {
				return 0, err
			}
			cfg.AddEnvironment(env)
		case fInputProviders:
			var p inputconfig.InkInputProvider
			err := fieldReader(v, func(n2 protowire.Number, t2 protowire.Type, v2 []byte, c2 int) (int, error) {
				switch n2 {
				case fProviderType:
					p.Type = inputconfig.ProviderType(readVarint(v2))
				case fProviderProperties:
					k, val, err := decodeKV(v2)
					if err != nil {
						return 0, err
					}
					p.Properties = append(p.Properties, inputconfig.KV{Key: k, Value: val})
				}
				return c2, nil
			})
			if err != nil {
				return 0, err
			}
			cfg.AddProvider(p)
		case fInputDevices:
			var d inputconfig.InputDevice
			err := fieldReader(v, func(n2 protowire.Number, t2 protowire.Type, v2 []byte, c2 int) (int, error) {
				if n2 == fDeviceProperties {
					k, val, err := decodeKV(v2)
					if err != nil {
						return 0, err
					}
					d.Properties = append(d.Properties, inputconfig.KV{Key: k, Value: val})
				}
				return c2, nil
			})
			if err != nil {
				return 0, err
			}
			cfg.AddDevice(d)
		case fInputSensorContexts:
			sc, err := decodeSensorContext(v)
			if err != nil {
				return 0, err
			}
			cfg.AddSensorContext(sc)
		case fInputContexts:
			var envID, scID identity.ID
			err := fieldReader(v, func(n2 protowire.Number, t2 protowire.Type, v2 []byte, c2 int) (int, error) {
				switch n2 {
				case fInputCtxEnvironment:
					id, err := identity.FromBytes(readBytes(v2))
					if err != nil {
						return 0, err
					}
					envID = id
				case fInputCtxSensorContext:
					id, err := identity.FromBytes(readBytes(v2))
					if err != nil {
						return 0, err
					}
					scID = id
				}
				return c2, nil
			})
			if err != nil {
				return 0, err
			}
			if _, err := cfg.AddInputContext(inputconfig.InputContext{EnvironmentID: envID, SensorContextID: scID}); err != nil {
				return 0, err
			}
		case fInputSensorData:
			frame, err := decodeSensorData(v, cfg)
			if err != nil {
				return 0, err
			}
			sensorData.Add(frame)
		}
		return consumed, nil
	})
}

// inputDataSource bundles the two repositories the INPT section
// draws from, avoiding a dependency from codec on the model package's
// full InkModel type for just this one section encoder.
type inputDataSource struct {
	cfg        *inputconfig.Repository
	sensorData *sensor.Repository
}
