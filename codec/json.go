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
	"encoding/json"
	"os"

	"github.com/Wacom-Developer/universal-ink-library/ink"
	"github.com/Wacom-Developer/universal-ink-library/matrix"
	"github.com/Wacom-Developer/universal-ink-library/model"
	"github.com/Wacom-Developer/universal-ink-library/uimerr"
)

// jsonModel mirrors the protobuf-JSON rendering of a 3.1.0 InkModel:
// the same message shapes the binary codec's section files encode,
// spelled out as plain JSON instead of wire bytes. Only the fields
// spec §3.7/§3.4 actually round-trips through JSON capture tooling
// are represented; the full stroke/sensor message set a real
// protobuf-JSON file carries is out of this helper's scope (spec §6
// scopes JSON *writing* out entirely -- this is read-only).
type jsonModel struct {
	Version         string        `json:"version"`
	UnitScaleFactor float64       `json:"unitScaleFactor"`
	Transform       []float64     `json:"transform"`
	Properties      []jsonKV      `json:"properties"`
	Strokes         []jsonStroke  `json:"strokes"`
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

// ParseJSON implements the public parse_json(path) -> InkModel
// surface of spec §6: it reads a 3.1.0 protobuf-JSON capture and
// builds an InkModel from it. Unlike Decode, it never sees a HEAD
// chunk: the model carries the document's "version" field when it is
// present and CurrentVersion otherwise.
func ParseJSON(path string) (*model.InkModel, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, uimerr.Wrap(err, uimerr.KindFormat, path, "codec: failed to read json file")
	}
	var jm jsonModel
	if err := json.Unmarshal(raw, &jm); err != nil {
		return nil, uimerr.Wrap(err, uimerr.KindFormat, path, "codec: malformed protobuf-json document")
	}

	m := model.New(jm.UnitScaleFactor)
	if jm.Version != "" {
		m.Version = jm.Version
	}
	if len(jm.Transform) == 16 {
		var flat [16]float64
		copy(flat[:], jm.Transform)
		m.Transform = matrix.FromFlat(flat)
	}
	for _, p := range jm.Properties {
		m.AddProperty(p.Key, p.Value)
	}
	for _, js := range jm.Strokes {
		mask := ink.LayoutMask(js.LayoutMask)
		stride := mask.Stride()
		var rows [][]float64
		if stride > 0 {
			for i := 0; i+stride <= len(js.Values); i += stride {
				rows = append(rows, js.Values[i:i+stride])
			}
		}
		spline, err := ink.BuildSpline(mask, rows, js.TStart, js.TEnd)
		if err != nil {
			return nil, err
		}
		style := ink.NewStyle(ink.PathPointProperties{}, js.BrushURI, 0)
		m.AddStroke(ink.NewStroke(spline, style))
	}
	return m, nil
}
