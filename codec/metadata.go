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

// Field numbers for the DATA section (codec.Metadata message): the
// root-level scalars of an InkModel that aren't large enough to merit
// their own chunk (spec §3.7).
const (
	fMetaUnitScaleFactor protowire.Number = 1
	fMetaTransformEntry  protowire.Number = 2
)

func encodeMetadata(unitScaleFactor float64, t matrix.Matrix) []byte {
	var b []byte
	b = appendDoubleAlways(b, fMetaUnitScaleFactor, unitScaleFactor)
	for _, v := range t.Flat() {
		b = appendDoubleAlways(b, fMetaTransformEntry, v)
	}
	return b
}

func decodeMetadata(data []byte) (unitScaleFactor float64, t matrix.Matrix, err error) {
	var flat [16]float64
	n := 0
	t = matrix.Ident
	err = fieldReader(data, func(num protowire.Number, typ protowire.Type, v []byte, consumed int) (int, error) {
		switch num {
		case fMetaUnitScaleFactor:
			unitScaleFactor = readDouble(v)
		case fMetaTransformEntry:
			if n < len(flat) {
				flat[n] = readDouble(v)
				n++
			}
		}
		return consumed, nil
	})
	if err != nil {
		return 0, matrix.Ident, err
	}
	if n == len(flat) {
		t = matrix.FromFlat(flat)
	}
	return unitScaleFactor, t, nil
}
