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

// Package codec implements the RIFF-chunked, Protocol-Buffers-encoded
// binary format of spec §4.9: container framing, the per-section wire
// messages (hand-rolled against google.golang.org/protobuf's low-level
// protowire primitives rather than generated .pb.go stubs, since this
// library ships no .proto build step), and the encoder/decoder that
// ties them to an InkModel.
//
// Field numbers below are this implementation's own choice — the
// spec only fixes the conceptual message shapes (Table 1), not a
// published field-number table — but are kept stable across encode
// and decode so round-tripping a model this library wrote is always
// lossless.
package codec

import (
	"google.golang.org/protobuf/encoding/protowire"

	"github.com/Wacom-Developer/universal-ink-library/uimerr"
)

// appendString appends a length-delimited string field.
func appendString(b []byte, num protowire.Number, s string) []byte {
	if s == "" {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendString(b, s)
}

// appendBytes appends a length-delimited bytes field.
func appendBytes(b []byte, num protowire.Number, v []byte) []byte {
	if len(v) == 0 {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendBytes(b, v)
}

// appendVarint appends a varint field, skipping the default zero
// value as proto3 does.
func appendVarint(b []byte, num protowire.Number, v uint64) []byte {
	if v == 0 {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.VarintType)
	return protowire.AppendVarint(b, v)
}

// appendVarintAlways appends a varint field even when zero, for
// fields whose zero value is meaningful (e.g. an enum's first
// variant).
func appendVarintAlways(b []byte, num protowire.Number, v uint64) []byte {
	b = protowire.AppendTag(b, num, protowire.VarintType)
	return protowire.AppendVarint(b, v)
}

// appendDouble appends a fixed64 double field.
func appendDouble(b []byte, num protowire.Number, v float64) []byte {
	if v == 0 {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.Fixed64Type)
	return protowire.AppendFixed64(b, doubleBits(v))
}

// appendDoubleAlways appends a fixed64 double field even when zero,
// used for optional float fields where nil/absent and 0.0 must stay
// distinguishable on the wire.
func appendDoubleAlways(b []byte, num protowire.Number, v float64) []byte {
	b = protowire.AppendTag(b, num, protowire.Fixed64Type)
	return protowire.AppendFixed64(b, doubleBits(v))
}

// appendBool appends a varint bool field.
func appendBool(b []byte, num protowire.Number, v bool) []byte {
	if !v {
		return b
	}
	return appendVarintAlways(b, num, 1)
}

func zigzag(v int64) uint64  { return uint64((v << 1) ^ (v >> 63)) }
func unzigzag(v uint64) int64 { return int64(v>>1) ^ -int64(v&1) }

// appendPackedSInt64s appends a packed repeated sint64 field: one
// length-delimited bytes field holding every zigzag-encoded varint
// back to back, used for delta-coded channel and attribute streams.
func appendPackedSInt64s(b []byte, num protowire.Number, values []int64) []byte {
	if len(values) == 0 {
		return b
	}
	var payload []byte
	for _, v := range values {
		payload = protowire.AppendVarint(payload, zigzag(v))
	}
	return appendBytes(b, num, payload)
}

func decodePackedSInt64s(payload []byte) []int64 {
	var out []int64
	for len(payload) > 0 {
		v, n := protowire.ConsumeVarint(payload)
		if n < 0 {
			return out
		}
		out = append(out, unzigzag(v))
		payload = payload[n:]
	}
	return out
}

// appendOptionalDouble wraps an optional float64 in a one-field
// submessage so presence survives the wire even when the value is
// exactly zero, which a bare proto3 double field cannot do.
func appendOptionalDouble(b []byte, num protowire.Number, v *float64) []byte {
	if v == nil {
		return b
	}
	inner := appendDoubleAlways(nil, 1, *v)
	return appendMessage(b, num, inner)
}

func decodeOptionalDouble(v []byte) *float64 {
	var out float64
	_ = fieldReader(v, func(n protowire.Number, t protowire.Type, fv []byte, consumed int) (int, error) {
		if n == 1 {
			out = readDouble(fv)
		}
		return consumed, nil
	})
	return &out
}

// appendOptionalInt64 mirrors appendOptionalDouble for *int64 fields.
func appendOptionalInt64(b []byte, num protowire.Number, v *int64) []byte {
	if v == nil {
		return b
	}
	inner := protowire.AppendTag(nil, 1, protowire.VarintType)
	inner = protowire.AppendVarint(inner, zigzag(*v))
	return appendMessage(b, num, inner)
}

func decodeOptionalInt64(v []byte) *int64 {
	var out int64
	_ = fieldReader(v, func(n protowire.Number, t protowire.Type, fv []byte, consumed int) (int, error) {
		if n == 1 {
			out = unzigzag(readVarint(fv))
		}
		return consumed, nil
	})
	return &out
}

// appendMessage appends a nested length-delimited submessage.
func appendMessage(b []byte, num protowire.Number, payload []byte) []byte {
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendBytes(b, payload)
}

// fieldReader walks a flat sequence of (tag, value) wire entries,
// dispatching to a caller-supplied visitor per field number. It is
// the shared decode loop every section's decoder reduces to.
func fieldReader(data []byte, visit func(num protowire.Number, typ protowire.Type, v []byte, consumed int) (int, error)) error {
	for len(data) > 0 {
		num, typ, n := protowire.ConsumeTag(data)
		if n < 0 {
			return uimerr.New(uimerr.KindFormat, "codec: malformed protobuf tag")
		}
		rest := data[n:]
		var valLen int
		switch typ {
		case protowire.VarintType:
			_, vn := protowire.ConsumeVarint(rest)
			if vn < 0 {
				return uimerr.New(uimerr.KindFormat, "codec: malformed varint field")
			}
			valLen = vn
		case protowire.Fixed64Type:
			_, vn := protowire.ConsumeFixed64(rest)
			if vn < 0 {
				return uimerr.New(uimerr.KindFormat, "codec: malformed fixed64 field")
			}
			valLen = vn
		case protowire.Fixed32Type:
			_, vn := protowire.ConsumeFixed32(rest)
			if vn < 0 {
				return uimerr.New(uimerr.KindFormat, "codec: malformed fixed32 field")
			}
			valLen = vn
		case protowire.BytesType:
			_, vn := protowire.ConsumeBytes(rest)
			if vn < 0 {
				return uimerr.New(uimerr.KindFormat, "codec: malformed length-delimited field")
			}
			valLen = vn
		default:
			return uimerr.New(uimerr.KindFormat, "codec: unsupported wire type")
		}
		consumed, err := visit(num, typ, rest[:valLen], n+valLen)
		if err != nil {
			return err
		}
		data = data[consumed:]
	}
	return nil
}

func readVarint(v []byte) uint64 {
	n, _ := protowire.ConsumeVarint(v)
	return n
}

func readString(v []byte) string {
	s, _ := protowire.ConsumeString(v)
	return s
}

func readBytes(v []byte) []byte {
	b, _ := protowire.ConsumeBytes(v)
	out := make([]byte, len(b))
	copy(out, b)
	return out
}

func readDouble(v []byte) float64 {
	bits, _ := protowire.ConsumeFixed64(v)
	return doubleFromBits(bits)
}

func readBool(v []byte) bool {
	return readVarint(v) != 0
}
