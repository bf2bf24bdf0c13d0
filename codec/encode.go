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
	"strconv"
	"strings"

	"github.com/Wacom-Developer/universal-ink-library/model"
	"github.com/Wacom-Developer/universal-ink-library/tree"
	"github.com/Wacom-Developer/universal-ink-library/uimerr"
)

// Chunk ids of the RIFF container, in the fixed order the encoder
// always writes them, per spec §4.9 Table 1.
const (
	idHead = "HEAD"
	idData = "DATA"
	idInpt = "INPT"
	idBrsh = "BRSH"
	idInkd = "INKD"
	idInks = "INKS"
	idKnwg = "KNWG"
	idPrps = "PRPS"
)

// EncodeOptions controls how Encode writes a file.
type EncodeOptions struct {
	Compression Compression
}

// Encode serializes m into the RIFF-chunked binary format at its
// CurrentVersion, defensively re-validating I1-I5 first (spec §4.9
// encoder contract).
func Encode(m *model.InkModel, opts EncodeOptions) ([]byte, error) {
	if err := m.ValidateInvariants(); err != nil {
		return nil, err
	}

	major, minor, patch, err := parseVersion(model.CurrentVersion)
	if err != nil {
		return nil, err
	}
	header := Header{Major: major, Minor: minor, Patch: patch, ContentType: ContentProtobuf, Compression: opts.Compression}

	sections := []struct {
		id      string
		payload []byte
	}{
		{idData, encodeMetadata(m.UnitScaleFactor, m.Transform)},
		{idInpt, encodeInputData(&inputDataSource{cfg: m.InputConfig, sensorData: m.SensorData})},
		{idBrsh, encodeBrushes(m.Brushes)},
		{idInkd, encodeInkData(m.Strokes)},
		{idInks, encodeInkStructure(mainTreeOrNil(m), m.Views())},
		{idKnwg, encodeTriples(m.Triples.All())},
		{idPrps, encodeProperties(m.Properties)},
	}

	chunks := []chunk{{ID: idHead, Payload: encodeHeader(header)}}
	for _, s := range sections {
		compressed, err := compressPayload(s.payload, opts.Compression)
		if err != nil {
			return nil, err
		}
		chunks = append(chunks, chunk{ID: s.id, Payload: compressed})
	}
	return writeRIFF(chunks), nil
}

func mainTreeOrNil(m *model.InkModel) *tree.Tree {
	if !m.HasMainTree() {
		return nil
	}
	return m.MainTree()
}

func parseVersion(v string) (major, minor, patch byte, err error) {
	parts := strings.Split(v, ".")
	if len(parts) != 3 {
		return 0, 0, 0, uimerr.New(uimerr.KindFormat, "codec: malformed version string "+v)
	}
	vals := make([]byte, 3)
	for i, p := range parts {
		n, convErr := strconv.Atoi(p)
		if convErr != nil || n < 0 || n > 255 {
			return 0, 0, 0, uimerr.New(uimerr.KindFormat, "codec: malformed version string "+v)
		}
		vals[i] = byte(n)
	}
	return vals[0], vals[1], vals[2], nil
}
