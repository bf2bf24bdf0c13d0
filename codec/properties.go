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

	"github.com/Wacom-Developer/universal-ink-library/model"
)

const (
	fPropertiesEntry protowire.Number = 1
	fKVKey           protowire.Number = 1
	fKVValue         protowire.Number = 2
)

func encodeProperties(props []model.Property) []byte {
	var b []byte
	for _, p := range props {
		var kv []byte
		kv = appendString(kv, fKVKey, p.Key)
		kv = appendString(kv, fKVValue, p.Value)
		b = appendMessage(b, fPropertiesEntry, kv)
	}
	return b
}

func decodeProperties(data []byte) ([]model.Property, error) {
	var out []model.Property
	err := fieldReader(data, func(num protowire.Number, typ protowire.Type, v []byte, consumed int) (int, error) {
		if num != fPropertiesEntry {
			return consumed, nil
		}
		var p model.Property
		err := fieldReader(v, func(n2 protowire.Number, t2 protowire.Type, v2 []byte, c2 int) (int, error) {
			switch n2 {
			case fKVKey:
				p.Key = readString(v2)
			case fKVValue:
				p.Value = readString(v2)
			}
			return c2, nil
		})
		if err != nil {
			return 0, err
		}
		out = append(out, p)
		return consumed, nil
	})
	return out, err
}
