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

package export

import (
	"encoding/json"
	"io"

	"github.com/Wacom-Developer/universal-ink-library/ink"
	"github.com/Wacom-Developer/universal-ink-library/model"
)

// jsonDocument mirrors codec.ParseJSON's expected shape (spec §6):
// the two sit on opposite sides of the same protobuf-JSON capture
// format, one writing it, the other reading it back.
type jsonDocument struct {
	Version         string       `json:"version"`
	UnitScaleFactor float64      `json:"unitScaleFactor"`
	Transform       []float64    `json:"transform"`
	Properties      []jsonKV     `json:"properties"`
	Strokes         []jsonStroke `json:"strokes"`
}

type jsonKV struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

type jsonStroke struct {
	ID         string    `json:"id"`
	LayoutMask uint32    `json:"layoutMask"`
	Values     []float64 `json:"values"`
	TStart     float64   `json:"tStart"`
	TEnd       float64   `json:"tEnd"`
	BrushURI   string    `json:"brushUri"`
}

// DumpJSON writes m as a protobuf-JSON capture, the write-side
// counterpart of codec.ParseJSON. It is deliberately narrower than
// the binary codec: only the fields a capture tool would emit for
// replaying strokes are included, not sensor frames, trees or
// triples (spec §6 keeps JSON export out of scope beyond this).
func DumpJSON(w io.Writer, m *model.InkModel) error {
	doc := jsonDocument{
		Version:         m.Version,
		UnitScaleFactor: m.UnitScaleFactor,
		Transform:       m.Transform.Flat(),
	}
	for _, p := range m.Properties {
		doc.Properties = append(doc.Properties, jsonKV{Key: p.Key, Value: p.Value})
	}
	for _, s := range m.Strokes.All() {
		mask := s.Spline.LayoutMask
		attrs := mask.Attributes()
		n, err := s.Spline.SampleCount()
		if err != nil {
			return err
		}
		var values []float64
		for i := 0; i < n; i++ {
			for _, a := range attrs {
				v, err := s.Spline.At(i, a, ink.FillWithZeros)
				if err != nil {
					return err
				}
				values = append(values, v)
			}
		}
		doc.Strokes = append(doc.Strokes, jsonStroke{
			ID:         s.ID().String(),
			LayoutMask: uint32(mask),
			Values:     values,
			TStart:     s.Spline.TStart,
			TEnd:       s.Spline.TEnd,
			BrushURI:   s.Style.BrushURI,
		})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}
