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
	"encoding/binary"

	"github.com/Wacom-Developer/universal-ink-library/uimerr"
)

const (
	riffMagic = "RIFF"
	formMagic = "UINK"
)

// chunk is one RIFF chunk: a 4-byte ascii id, its payload, and the
// odd-length pad byte the writer appends (never counted in Size).
type chunk struct {
	ID      string
	Payload []byte
}

// writeRIFF assembles the full container: "RIFF" + total size +
// "UINK" + every chunk in order, each padded to an even length per
// spec §4.9.
func writeRIFF(chunks []chunk) []byte {
	var body []byte
	body = append(body, formMagic...)
	for _, c := range chunks {
		body = appendChunk(body, c)
	}
	out := make([]byte, 0, 8+len(body))
	out = append(out, riffMagic...)
	var size [4]byte
	binary.LittleEndian.PutUint32(size[:], uint32(len(body)))
	out = append(out, size[:]...)
	out = append(out, body...)
	return out
}

func appendChunk(b []byte, c chunk) []byte {
	b = append(b, c.ID...)
	var size [4]byte
	binary.LittleEndian.PutUint32(size[:], uint32(len(c.Payload)))
	b = append(b, size[:]...)
	b = append(b, c.Payload...)
	if len(c.Payload)%2 != 0 {
		b = append(b, 0)
	}
	return b
}

// readRIFF validates the envelope and splits the body into its
// constituent chunks, in file order.
func readRIFF(data []byte) ([]chunk, error) {
	if len(data) < 12 {
		return nil, uimerr.New(uimerr.KindFormat, "codec: file too short for a RIFF header")
	}
	if string(data[0:4]) != riffMagic {
		return nil, uimerr.New(uimerr.KindFormat, "codec: bad RIFF magic")
	}
	total := binary.LittleEndian.Uint32(data[4:8])
	if int(total) > len(data)-8 {
		return nil, uimerr.New(uimerr.KindFormat, "codec: RIFF payload size exceeds file length")
	}
	if string(data[8:12]) != formMagic {
		return nil, uimerr.New(uimerr.KindFormat, "codec: bad RIFF form type")
	}
	body := data[12 : 8+total]

	var chunks []chunk
	for len(body) > 0 {
		if len(body) < 8 {
			return nil, uimerr.New(uimerr.KindFormat, "codec: truncated chunk header")
		}
		id := string(body[0:4])
		size := binary.LittleEndian.Uint32(body[4:8])
		body = body[8:]
		if int(size) > len(body) {
			return nil, uimerr.New(uimerr.KindFormat, "codec: chunk size exceeds remaining bytes")
		}
		payload := body[:size]
		body = body[size:]
		if size%2 != 0 {
			if len(body) == 0 {
				return nil, uimerr.New(uimerr.KindFormat, "codec: missing chunk padding byte")
			}
			body = body[1:]
		}
		chunks = append(chunks, chunk{ID: id, Payload: payload})
	}
	return chunks, nil
}
