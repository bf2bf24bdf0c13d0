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

	"github.com/Wacom-Developer/universal-ink-library/matrix"
)

// Field numbers for the legacy (3.0.0) DATA message (spec §4.9): the
// current format splits a file's sections into their own INPT/BRSH/
// INKD/INKS/KNWG/PRPS chunks, but 3.0.0 packs the same section
// payloads as nested submessages of one large message inside DATA.
// The nested payloads are byte-for-byte the same shape this package's
// own encodeInputData/encodeBrushes/encodeInkData/encodeInkStructure/
// encodeTriples/encodeProperties already produce, so decodeLegacyDATA
// just unpacks them and hands the section decoders their bytes.
const (
	fLegacyUnitScaleFactor protowire.Number = 1
	fLegacyTransformEntry  protowire.Number = 2
	fLegacyInputData       protowire.Number = 3
	fLegacyBrushes         protowire.Number = 4
	fLegacyInkData         protowire.Number = 5
	fLegacyInkStructure    protowire.Number = 6
	fLegacyTriples         protowire.Number = 7
	fLegacyProperties      protowire.Number = 8
)

// legacyPayload holds the section bytes recovered from a 3.0.0 DATA
// message, shaped so Decode can feed them to the same section
// decoders it uses for a 3.1.0 file's per-chunk payloads.
type legacyPayload struct {
	unitScaleFactor float64
	transform       matrix.Matrix
	inputData       []byte
	brushes         []byte
	inkData         []byte
	inkStructure    []byte
	triples         []byte
	properties      []byte
}

// decodeLegacyDATA unpacks a 3.0.0 file's single DATA message into
// its constituent section payloads (spec §4.9: "Version 3.0.0 uses
// the same RIFF skeleton but a single large protobuf message inside
// DATA").
func decodeLegacyDATA(data []byte) (legacyPayload, error) {
	var lp legacyPayload
	var flat [16]float64
	n := 0
	lp.transform = matrix.Ident
	err := fieldReader(data, func(num protowire.Number, typ protowire.Type, v []byte, consumed int) (int, error) {
		switch num {
		case fLegacyUnitScaleFactor:
			lp.unitScaleFactor = readDouble(v)
		case fLegacyTransformEntry:
			if n < len(flat) {
				flat[n] = readDouble(v)
				n++
			}
		case fLegacyInputData:
			lp.inputData = readBytes(v)
		case fLegacyBrushes:
			lp.brushes = readBytes(v)
		case fLegacyInkData:
			lp.inkData = readBytes(v)
		case fLegacyInkStructure:
			lp.inkStructure = readBytes(v)
		case fLegacyTriples:
			lp.triples = readBytes(v)
		case fLegacyProperties:
			lp.properties = readBytes(v)
		}
		return consumed, nil
	})
	if err != nil {
		return legacyPayload{}, err
	}
	if n == len(flat) {
		lp.transform = matrix.FromFlat(flat)
	}
	return lp, nil
}

// encodeLegacyDATA packs section payloads into the single-message
// 3.0.0 DATA shape decodeLegacyDATA reads back. The library ships no
// 3.0.0 writer (spec §1: "No writer for the older 3.0.0 binary") —
// this exists only so codec_test.go can build a legacy fixture byte
// for byte the way a 3.0.0-era tool would have, to exercise
// decodeLegacyDATA against its own inverse.
func encodeLegacyDATA(lp legacyPayload) []byte {
	var b []byte
	b = appendDoubleAlways(b, fLegacyUnitScaleFactor, lp.unitScaleFactor)
	for _, v := range lp.transform.Flat() {
		b = appendDoubleAlways(b, fLegacyTransformEntry, v)
	}
	b = appendBytes(b, fLegacyInputData, lp.inputData)
	b = appendBytes(b, fLegacyBrushes, lp.brushes)
	b = appendBytes(b, fLegacyInkData, lp.inkData)
	b = appendBytes(b, fLegacyInkStructure, lp.inkStructure)
	b = appendBytes(b, fLegacyTriples, lp.triples)
	b = appendBytes(b, fLegacyProperties, lp.properties)
	return b
}
