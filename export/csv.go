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

// Package export holds the in-scope, read-only collaborators spec §6
// names beside the out-of-scope resampler, statistics analyzer and
// text/semantics extractor: a strided-array CSV writer and a
// protobuf-JSON dumper. Both only read an already-decoded InkModel;
// writing the binary format stays the codec package's job.
package export

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/Wacom-Developer/universal-ink-library/ink"
	"github.com/Wacom-Developer/universal-ink-library/model"
)

// WriteStrokeCSV writes one stroke's strided array to w, one row per
// sample, with a header naming each requested column by its spline
// attribute or sensor channel type (spec §4.5/§6).
func WriteStrokeCSV(w io.Writer, m *model.InkModel, s *ink.Stroke, layout []model.Attr, policy ink.MissingPolicy) error {
	rows, err := m.StridedArray(s, layout, policy)
	if err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	header := make([]string, len(layout))
	for i, a := range layout {
		if a.Plane == model.SensorPlane {
			header[i] = string(a.Channel)
		} else {
			header[i] = a.Spline.String()
		}
	}
	if err := cw.Write(header); err != nil {
		return err
	}
	record := make([]string, len(layout))
	for _, row := range rows {
		for i, v := range row {
			record[i] = fmt.Sprintf("%g", v)
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
