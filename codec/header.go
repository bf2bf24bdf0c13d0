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
	"fmt"

	"github.com/Wacom-Developer/universal-ink-library/uimerr"
)

// ContentType tags the encoding of every non-header chunk's payload.
type ContentType byte

const (
	ContentProtobuf ContentType = 0
	ContentJSON     ContentType = 1
	ContentText     ContentType = 2
	ContentBinary   ContentType = 3
)

// Compression tags the transform applied to a chunk payload before
// it is written, on top of its ContentType encoding.
type Compression byte

const (
	CompressionNone Compression = 0
	CompressionZIP  Compression = 1
	CompressionLZMA Compression = 2
)

// Header is the decoded form of the 8-byte HEAD chunk payload.
type Header struct {
	Major, Minor, Patch byte
	ContentType         ContentType
	Compression         Compression
}

// Version renders the header's version triple as "major.minor.patch".
func (h Header) Version() string {
	return fmt.Sprintf("%d.%d.%d", h.Major, h.Minor, h.Patch)
}

func encodeHeader(h Header) []byte {
	return []byte{h.Major, h.Minor, h.Patch, 0, byte(h.ContentType), byte(h.Compression), 0, 0}
}

func decodeHeader(payload []byte) (Header, error) {
	if len(payload) != 8 {
		return Header{}, uimerr.New(uimerr.KindFormat, "codec: HEAD chunk must be 8 bytes")
	}
	return Header{
		Major:       payload[0],
		Minor:       payload[1],
		Patch:       payload[2],
		ContentType: ContentType(payload[4]),
		Compression: Compression(payload[5]),
	}, nil
}
