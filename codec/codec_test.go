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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Wacom-Developer/universal-ink-library/ink"
	"github.com/Wacom-Developer/universal-ink-library/inputconfig"
	"github.com/Wacom-Developer/universal-ink-library/matrix"
	"github.com/Wacom-Developer/universal-ink-library/model"
	"github.com/Wacom-Developer/universal-ink-library/precision"
	"github.com/Wacom-Developer/universal-ink-library/semantic"
	"github.com/Wacom-Developer/universal-ink-library/sensor"
	"github.com/Wacom-Developer/universal-ink-library/tree"
	"github.com/Wacom-Developer/universal-ink-library/uri"
)

func TestEncodeDecodeRoundTripEmptyModel(t *testing.T) {
	m := model.New(1.0)

	data, err := Encode(m, EncodeOptions{Compression: CompressionNone})
	require.NoError(t, err)
	require.NotEmpty(t, data)
	assert.Equal(t, riffMagic, string(data[0:4]))
	assert.Equal(t, formMagic, string(data[8:12]))

	got, err := Decode(data, DecodeOptions{})
	require.NoError(t, err)
	assert.Equal(t, model.CurrentVersion, got.Version)
	assert.Equal(t, 1.0, got.UnitScaleFactor)
	assert.False(t, got.HasMainTree())
	assert.Empty(t, got.Properties)
	assert.Equal(t, 0, got.Strokes.Len())
	assert.Equal(t, 0, got.Triples.Len())
}

func TestEncodeDecodeRoundTripSingleStrokeMainTree(t *testing.T) {
	m := model.New(1.0)
	m.AddProperty("author", "jane")

	mask := ink.LayoutMask(0).With(ink.X).With(ink.Y)
	spline, err := ink.BuildSpline(mask, [][]float64{
		{0, 0},
		{1, 1},
		{2, 4},
	}, 100, 115)
	require.NoError(t, err)

	style := ink.NewStyle(ink.PathPointProperties{}, "brush://test/pen", 0)
	stroke := ink.NewStroke(spline, style)
	strokeID := m.AddStroke(stroke)

	groupIdx := m.MainTree().NewGroup()
	require.NoError(t, m.MainTree().SetRoot(groupIdx))
	refIdx, err := m.AttachStrokeRef("", groupIdx, strokeID, nil)
	require.NoError(t, err)

	refURI := m.MainTree().Node(refIdx).URI
	require.NoError(t, m.AddTriple(semantic.Triple{
		Subject:   refURI,
		Predicate: semantic.PredicateIs,
		Object:    semantic.Literal("word"),
	}))

	data, err := Encode(m, EncodeOptions{Compression: CompressionNone})
	require.NoError(t, err)

	got, err := Decode(data, DecodeOptions{})
	require.NoError(t, err)

	require.Equal(t, 1, got.Strokes.Len())
	require.True(t, got.HasMainTree())

	decodedStroke, err := got.StrokeByID(strokeID)
	require.NoError(t, err)
	gotN, err := decodedStroke.Spline.SampleCount()
	require.NoError(t, err)
	assert.Equal(t, 3, gotN)
	for i, want := range [][2]float64{{0, 0}, {1, 1}, {2, 4}} {
		x, err := decodedStroke.Spline.At(i, ink.X, ink.FillWithZeros)
		require.NoError(t, err)
		y, err := decodedStroke.Spline.At(i, ink.Y, ink.FillWithZeros)
		require.NoError(t, err)
		assert.InDelta(t, want[0], x, 1e-9)
		assert.InDelta(t, want[1], y, 1e-9)
	}
	assert.Equal(t, 100.0, decodedStroke.Spline.TStart)
	assert.Equal(t, 115.0, decodedStroke.Spline.TEnd)
	assert.Equal(t, "brush://test/pen", decodedStroke.Style.BrushURI)

	require.Equal(t, 1, got.Triples.Len())
	triple := got.Triples.All()[0]
	assert.Equal(t, semantic.PredicateIs, triple.Predicate)
	assert.Equal(t, "word", triple.Object.Value)
	// The decoded node must carry the *same* subject URI the triple
	// pointed at before encoding: node identity survives the round
	// trip even though decodeTree rebuilds the tree from scratch.
	assert.Equal(t, refURI, triple.Subject)

	require.Len(t, got.Properties, 1)
	assert.Equal(t, "author", got.Properties[0].Key)
	assert.Equal(t, "jane", got.Properties[0].Value)
}

func TestEncodeDecodeRoundTripPrecisionUnderLZMA(t *testing.T) {
	const n = 1000
	mask := ink.LayoutMask(0).With(ink.X).With(ink.Y)
	rows := make([][]float64, n)
	for i := 0; i < n; i++ {
		rows[i] = []float64{float64(i) * 0.0175, 0}
	}
	spline, err := ink.BuildSpline(mask, rows, 0, 1)
	require.NoError(t, err)

	scheme := precision.New(2, 1, 0, 0, 0)
	stroke := ink.NewStroke(spline, ink.NewStyle(ink.PathPointProperties{}, "brush://test/pen", 0))
	stroke.PrecisionScheme = &scheme

	m := model.New(1.0)
	m.AddStroke(stroke)

	data, err := Encode(m, EncodeOptions{Compression: CompressionLZMA})
	require.NoError(t, err)

	uncompressed, err := Encode(m, EncodeOptions{Compression: CompressionNone})
	require.NoError(t, err)
	assert.Less(t, len(data), len(uncompressed))

	got, err := Decode(data, DecodeOptions{})
	require.NoError(t, err)
	require.Equal(t, 1, got.Strokes.Len())

	decoded := got.Strokes.All()[0]
	gotN, err := decoded.Spline.SampleCount()
	require.NoError(t, err)
	require.Equal(t, n, gotN)
	for i := 0; i < n; i++ {
		x, err := decoded.Spline.At(i, ink.X, ink.FillWithZeros)
		require.NoError(t, err)
		assert.InDelta(t, float64(i)*0.0175, x, 0.005)
	}
}

func TestEncodeDecodeRoundTripFractionalSensorChannel(t *testing.T) {
	m := model.New(1.0)

	envID := m.InputConfig.AddEnvironment(inputconfig.Environment{
		Properties: []inputconfig.KV{{Key: "os", Value: "test"}},
	})
	pressure := inputconfig.SensorChannel{
		TypeURI:    string(sensor.ChannelPressure),
		Metric:     inputconfig.FORCE,
		Resolution: 1000, // 3 decimal digits of precision
		Min:        0,
		Max:        1,
	}
	sensorCtxID := m.InputConfig.AddSensorContext(inputconfig.SensorContext{
		ChannelsContexts: []inputconfig.SensorChannelsContext{
			{Channels: []inputconfig.SensorChannel{pressure}},
		},
	})
	icID, err := m.InputConfig.AddInputContext(inputconfig.InputContext{
		EnvironmentID:   envID,
		SensorContextID: sensorCtxID,
	})
	require.NoError(t, err)

	want := []float64{0.1, 0.2, 0.3}
	frame := sensor.NewSensorData(icID, sensor.PLANE, 0, []sensor.ChannelData{
		{SensorChannelID: pressure.ID(), Values: want},
	})
	m.SensorData.Add(frame)

	data, err := Encode(m, EncodeOptions{Compression: CompressionNone})
	require.NoError(t, err)

	got, err := Decode(data, DecodeOptions{})
	require.NoError(t, err)

	require.Equal(t, 1, got.SensorData.Len())
	decodedFrame := got.SensorData.All()[0]
	require.Len(t, decodedFrame.DataChannels, 1)
	gotValues := decodedFrame.DataChannels[0].Values
	require.Len(t, gotValues, len(want))
	for i, v := range want {
		assert.InDelta(t, v, gotValues[i], 1e-9)
	}
}

// TestDecodeLegacy300SingleMessageDATA grounds spec §8 scenario 5: a
// 3.0.0 file carries its sections as nested fields of one DATA
// message rather than separate chunks, and any view-node subject
// written in the legacy "uim:<uuid>/<tree>" form upgrades to the
// 3.1.0 "uim:<tree>/<uuid>" form on first parse.
func TestDecodeLegacy300SingleMessageDATA(t *testing.T) {
	view := tree.New("hwr")
	groupIdx := view.NewGroup()
	require.NoError(t, view.SetRoot(groupIdx))
	nodeID := view.Node(groupIdx).ID()

	legacySubject := uri.LegacyViewNode(nodeID.H(), "hwr")
	upgradedSubject := uri.ViewNode("hwr", nodeID.H())

	lp := legacyPayload{
		unitScaleFactor: 1.0,
		transform:       matrix.Ident,
		inkStructure:    encodeInkStructure(nil, []*tree.Tree{view}),
		triples: encodeTriples([]semantic.Triple{{
			Subject:   legacySubject,
			Predicate: semantic.PredicateIs,
			Object:    semantic.Literal("word"),
		}}),
	}

	header := Header{Major: 3, Minor: 0, Patch: 0, ContentType: ContentProtobuf, Compression: CompressionNone}
	raw := writeRIFF([]chunk{
		{ID: idHead, Payload: encodeHeader(header)},
		{ID: idData, Payload: encodeLegacyDATA(lp)},
	})

	got, err := Decode(raw, DecodeOptions{})
	require.NoError(t, err)
	assert.Equal(t, model.CurrentVersion, got.Version)
	require.Len(t, got.Views(), 1)
	assert.Equal(t, upgradedSubject, got.Views()[0].Node(got.Views()[0].Root()).URI)

	require.Equal(t, 1, got.Triples.Len())
	triple := got.Triples.All()[0]
	assert.Equal(t, upgradedSubject, triple.Subject)

	// Re-encoding the upgraded model always yields a 3.1.0 file
	// (spec §1: no 3.0.0 writer), and re-parsing it must equal the
	// model that came out of the legacy parse.
	data2, err := Encode(got, EncodeOptions{Compression: CompressionNone})
	require.NoError(t, err)
	got2, err := Decode(data2, DecodeOptions{})
	require.NoError(t, err)
	assert.Equal(t, model.CurrentVersion, got2.Version)
	require.Equal(t, 1, got2.Triples.Len())
	assert.Equal(t, upgradedSubject, got2.Triples.All()[0].Subject)
}

func TestRIFFChunkPadding(t *testing.T) {
	chunks := []chunk{
		{ID: "HEAD", Payload: []byte{1, 2, 3}},
		{ID: "DATA", Payload: []byte{1, 2}},
	}
	raw := writeRIFF(chunks)

	got, err := readRIFF(raw)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, []byte{1, 2, 3}, got[0].Payload)
	assert.Equal(t, []byte{1, 2}, got[1].Payload)
}
