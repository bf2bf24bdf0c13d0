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

	"github.com/Wacom-Developer/universal-ink-library/semantic"
)

const (
	fTripleEntry     protowire.Number = 1
	fTripleSubject   protowire.Number = 1
	fTriplePredicate protowire.Number = 2
	fTripleObject    protowire.Number = 3

	fObjectValue protowire.Number = 1
	fObjectIsURI protowire.Number = 2
)

func encodeTriples(triples []semantic.Triple) []byte {
	var b []byte
	for _, t := range triples {
		var tb []byte
		tb = appendString(tb, fTripleSubject, t.Subject)
		tb = appendString(tb, fTriplePredicate, t.Predicate)
		var ob []byte
		ob = appendString(ob, fObjectValue, t.Object.Value)
		ob = appendBool(ob, fObjectIsURI, t.Object.IsURI)
		tb = appendMessage(tb, fTripleObject, ob)
		b = appendMessage(b, fTripleEntry, tb)
	}
	return b
}

func decodeTriples(data []byte) ([]semantic.Triple, error) {
	var out []semantic.Triple
	err := fieldReader(data, func(num protowire.Number, typ protowire.Type, v []byte, consumed int) (int, error) {
		if num != fTripleEntry {
			return consumed, nil
		}
		var t semantic.Triple
		err := fieldReader(v, func(n2 protowire.Number, t2 protowire.Type, v2 []byte, c2 int) (int, error) {
			switch n2 {
			case fTripleSubject:
				t.Subject = readString(v2)
			case fTriplePredicate:
				t.Predicate = readString(v2)
			case fTripleObject:
				obj, err := decodeObject(v2)
				if err != nil {
					return 0, err
				}
				t.Object = obj
			}
			return c2, nil
		})
		if err != nil {
			return 0, err
		}
		out = append(out, t)
		return consumed, nil
	})
	return out, err
}

func decodeObject(data []byte) (semantic.Object, error) {
	var o semantic.Object
	err := fieldReader(data, func(num protowire.Number, typ protowire.Type, v []byte, consumed int) (int, error) {
		switch num {
		case fObjectValue:
			o.Value = readString(v)
		case fObjectIsURI:
			o.IsURI = readBool(v)
		}
		return consumed, nil
	})
	return o, err
}
