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

// Package identity implements the two identifier kinds every value in
// a Universal Ink Model document is addressed by: Random-Id, a 128-bit
// value drawn uniformly at construction for mutable leaves, and
// Hash-Id, a 128-bit value deterministically derived from a tagged
// MD5 over a value object's ordered components.
//
// Neither kind relies on object identity: an ID is always a plain
// 16-byte value and is safe to use as a map key.
package identity

import (
	"crypto/md5"
	"encoding/hex"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/Wacom-Developer/universal-ink-library/uimerr"
)

// ID is a 128-bit identifier, either random or content-hashed.
type ID [16]byte

// Nil is the zero identifier, used as a "no reference" sentinel.
var Nil ID

// IsNil reports whether id is the zero value.
func (id ID) IsNil() bool { return id == Nil }

// S returns the S-form representation: 32 lowercase hex characters.
func (id ID) S() string {
	return hex.EncodeToString(id[:])
}

// H returns the H-form representation: 8-4-4-4-12 lowercase hex,
// identical in shape to a textbook UUID string.
func (id ID) H() string {
	s := id.S()
	return strings.Join([]string{s[0:8], s[8:12], s[12:16], s[16:20], s[20:32]}, "-")
}

// String renders an ID in H-form.
func (id ID) String() string { return id.H() }

// Parse accepts either the S-form or the H-form and returns the
// decoded ID.
func Parse(s string) (ID, error) {
	clean := strings.ReplaceAll(s, "-", "")
	if len(clean) != 32 {
		return Nil, uimerr.New(uimerr.KindInvalidArgument, "identity: malformed id "+s)
	}
	b, err := hex.DecodeString(clean)
	if err != nil {
		return Nil, uimerr.Wrap(err, uimerr.KindInvalidArgument, "", "identity: malformed id "+s)
	}
	var id ID
	copy(id[:], b)
	return id, nil
}

// NewRandom draws a fresh Random-Id using a UUIDv4 generator; the
// UUID's own version/variant bits are irrelevant here, only its
// 128 bits of randomness are used.
func NewRandom() ID {
	u := uuid.New()
	var id ID
	copy(id[:], u[:])
	return id
}

// FromBytes wraps an existing 16-byte value as an ID, e.g. when
// decoding one off the wire.
func FromBytes(b []byte) (ID, error) {
	if len(b) != 16 {
		return Nil, uimerr.New(uimerr.KindInvalidArgument, "identity: id must be 16 bytes")
	}
	var id ID
	copy(id[:], b)
	return id, nil
}

// Bytes returns the raw 16 bytes of id.
func (id ID) Bytes() []byte {
	b := make([]byte, 16)
	copy(b, id[:])
	return b
}

// HashBuilder accumulates the ordered components of a value object
// and derives its Hash-Id. Components are fed in as canonical textual
// tokens separated by NUL bytes, with the class tag as the first
// token, exactly as spec §3.1/§4.1 prescribes.
type HashBuilder struct {
	tokens []string
}

// NewHash starts a new Hash-Id computation for the given class tag
// (e.g. "Environment", "InputDevice", "SensorChannel").
func NewHash(tag string) *HashBuilder {
	return &HashBuilder{tokens: []string{tag}}
}

// AddString appends a UTF-8 string component.
func (b *HashBuilder) AddString(s string) *HashBuilder {
	b.tokens = append(b.tokens, s)
	return b
}

// AddOptionalString appends a string component that may be absent;
// an absent component contributes an empty token while still
// advancing the separator, per spec §4.1.
func (b *HashBuilder) AddOptionalString(s *string) *HashBuilder {
	if s == nil {
		return b.AddString("")
	}
	return b.AddString(*s)
}

// AddInt appends an integer component using its decimal text form.
func (b *HashBuilder) AddInt(v int64) *HashBuilder {
	return b.AddString(strconv.FormatInt(v, 10))
}

// AddOptionalInt appends an optional integer component.
func (b *HashBuilder) AddOptionalInt(v *int64) *HashBuilder {
	if v == nil {
		return b.AddString("")
	}
	return b.AddInt(*v)
}

// AddFloat appends a floating-point component canonicalized to six
// decimal digits after the point with trailing zeros trimmed, per
// spec §4.1.
func (b *HashBuilder) AddFloat(v float64) *HashBuilder {
	return b.AddString(CanonicalFloat(v))
}

// AddOptionalFloat appends an optional floating-point component.
func (b *HashBuilder) AddOptionalFloat(v *float64) *HashBuilder {
	if v == nil {
		return b.AddString("")
	}
	return b.AddFloat(*v)
}

// AddID appends another value's S-form as a component, used when one
// Hash-Id value object references another by id (e.g. a
// SensorChannelsContext referencing SensorChannel ids).
func (b *HashBuilder) AddID(id ID) *HashBuilder {
	return b.AddString(id.S())
}

// AddOptionalID appends an optional id reference.
func (b *HashBuilder) AddOptionalID(id *ID) *HashBuilder {
	if id == nil {
		return b.AddString("")
	}
	return b.AddID(*id)
}

// Sum finalizes the hash and returns the resulting Hash-Id. Calling
// Sum does not consume the builder; it may be called again after
// further Add* calls to re-derive the id (used by the regenerate
// step described in spec §4.1).
func (b *HashBuilder) Sum() ID {
	h := md5.New()
	h.Write([]byte(strings.Join(b.tokens, "\x00")))
	var id ID
	copy(id[:], h.Sum(nil))
	return id
}

// CanonicalFloat renders v the way Hash-Id computation requires:
// fixed at six digits after the decimal point, then with trailing
// zeros (and a trailing bare point) trimmed.
func CanonicalFloat(v float64) string {
	s := strconv.FormatFloat(v, 'f', 6, 64)
	if strings.Contains(s, ".") {
		s = strings.TrimRight(s, "0")
		s = strings.TrimRight(s, ".")
	}
	if s == "" || s == "-" {
		s = "0"
	}
	return s
}

// Hashable is implemented by every Hash-Id value object so the
// serializer can defensively regenerate ids before writing, per the
// encoder contract in spec §4.9.
type Hashable interface {
	Regenerate() ID
}

// ErrMismatch is a convenience wrapper for an explicit Hash-Id
// consistency check against invariant I4.
func ErrMismatch(tag string, want, got ID) error {
	return errors.Errorf("identity: %s hash mismatch: stored %s computed %s", tag, want.S(), got.S())
}
