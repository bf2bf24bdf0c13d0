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
	"github.com/Wacom-Developer/universal-ink-library/log"
	"github.com/Wacom-Developer/universal-ink-library/matrix"
	"github.com/Wacom-Developer/universal-ink-library/model"
	"github.com/Wacom-Developer/universal-ink-library/uimerr"
	"github.com/Wacom-Developer/universal-ink-library/uri"
)

// DecodeOptions controls how Decode handles a post-parse invariant
// failure: strict (the default) rejects the file; Lenient logs the
// failure on the Info sink and returns the decoded model as it is.
// Lenient does not remove the offending reference from the model.
type DecodeOptions struct {
	Lenient bool
}

// Decode parses the RIFF-chunked binary format, dispatching on the
// HEAD chunk's version. Both 3.0.0 (legacy) and 3.1.0 (current) are
// accepted; any other major version fails UnsupportedVersion.
func Decode(data []byte, opts DecodeOptions) (*model.InkModel, error) {
	chunks, err := readRIFF(data)
	if err != nil {
		return nil, err
	}
	if len(chunks) == 0 || chunks[0].ID != idHead {
		return nil, uimerr.New(uimerr.KindFormat, "codec: file is missing its HEAD chunk")
	}
	header, err := decodeHeader(chunks[0].Payload)
	if err != nil {
		return nil, err
	}
	legacy, err := classifyVersion(header)
	if err != nil {
		return nil, err
	}

	byID := map[string][]byte{}
	for _, c := range chunks[1:] {
		plain, err := decompressPayload(c.Payload, header.Compression)
		if err != nil {
			return nil, err
		}
		byID[c.ID] = plain
	}

	// A 3.1.0 file splits its sections into their own chunks; a 3.0.0
	// file packs the same section payloads as nested fields of one
	// large message inside DATA (spec §4.9). Either way, by the end
	// of this branch the rest of Decode sees the same six section
	// byte slices and doesn't need to know which version produced
	// them.
	var unitScaleFactor float64
	var transform matrix.Matrix
	var inpt, brsh, inkd, inks, knwg, prps []byte
	if legacy {
		lp, err := decodeLegacyDATA(byID[idData])
		if err != nil {
			return nil, err
		}
		unitScaleFactor, transform = lp.unitScaleFactor, lp.transform
		inpt, brsh, inkd, inks, knwg, prps = lp.inputData, lp.brushes, lp.inkData, lp.inkStructure, lp.triples, lp.properties
	} else {
		unitScaleFactor, transform, err = decodeMetadata(byID[idData])
		if err != nil {
			return nil, err
		}
		inpt, brsh, inkd, inks, knwg, prps = byID[idInpt], byID[idBrsh], byID[idInkd], byID[idInks], byID[idKnwg], byID[idPrps]
	}

	m := model.New(unitScaleFactor)
	if legacy {
		// The decoder normalizes a legacy file into the same
		// in-memory shape a 3.1.0 file would produce (spec §4.9):
		// node URIs are already rewritten below, and since this
		// library never writes 3.0.0 back out, the model itself
		// reports the current version rather than the one it was
		// read from.
		m.Version = model.CurrentVersion
	} else {
		m.Version = header.Version()
	}
	m.Transform = transform

	if len(inpt) > 0 {
		if err := decodeInputData(inpt, m.InputConfig, m.SensorData); err != nil {
			return nil, err
		}
	}
	if len(brsh) > 0 {
		if err := decodeBrushes(brsh, m.Brushes); err != nil {
			return nil, err
		}
	}
	if len(inkd) > 0 {
		if err := decodeInkData(inkd, m.Strokes); err != nil {
			return nil, err
		}
	}
	if len(inks) > 0 {
		main, views, err := decodeInkStructure(inks)
		if err != nil {
			return nil, err
		}
		if main != nil {
			m.SetMainTree(main)
		}
		for _, v := range views {
			if err := m.AddDecodedView(v); err != nil {
				return nil, err
			}
		}
	}
	if len(knwg) > 0 {
		triples, err := decodeTriples(knwg)
		if err != nil {
			return nil, err
		}
		for _, t := range triples {
			if legacy {
				t.Subject = uri.UpgradeLegacyViewNode(t.Subject)
			}
			m.Triples.Add(t)
		}
	}
	if len(prps) > 0 {
		props, err := decodeProperties(prps)
		if err != nil {
			return nil, err
		}
		m.Properties = props
	}

	if err := m.ValidateInvariants(); err != nil {
		if !opts.Lenient {
			return nil, err
		}
		log.Info.Printf("codec: ignoring invariant violation in lenient mode: %v", err)
	}
	return m, nil
}

// classifyVersion validates the HEAD chunk's version triple and
// reports whether it names the 3.0.0 legacy wire form.
func classifyVersion(h Header) (legacy bool, err error) {
	if h.Major != 3 {
		return false, uimerr.New(uimerr.KindUnsupportedVersion, "codec: unsupported major version "+h.Version())
	}
	switch h.Minor {
	case 0:
		return true, nil
	case 1:
		return false, nil
	default:
		return false, uimerr.New(uimerr.KindUnsupportedVersion, "codec: unsupported minor version "+h.Version())
	}
}
