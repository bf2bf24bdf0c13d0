package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Wacom-Developer/universal-ink-library/identity"
	"github.com/Wacom-Developer/universal-ink-library/ink"
	"github.com/Wacom-Developer/universal-ink-library/inputconfig"
	"github.com/Wacom-Developer/universal-ink-library/semantic"
	"github.com/Wacom-Developer/universal-ink-library/sensor"
	"github.com/Wacom-Developer/universal-ink-library/tree"
)

func TestEmptyModelHasNoMainTree(t *testing.T) {
	m := New(1.0)
	assert.False(t, m.HasMainTree())
	assert.Equal(t, CurrentVersion, m.Version)
	assert.Equal(t, 0, m.Strokes.Len())
}

func buildStroke(t *testing.T) *ink.Stroke {
	mask := ink.NewLayoutMask(ink.X, ink.Y)
	spline, err := ink.BuildSpline(mask, [][]float64{{0, 0}, {1, 1}, {2, 4}}, 0, 1)
	require.NoError(t, err)
	style := ink.NewStyle(ink.PathPointProperties{Size: 1, Alpha: 1}, "brush://default", 0)
	return ink.NewStroke(spline, style)
}

func TestAttachStrokeRefRequiresMainTreeFirst(t *testing.T) {
	m := New(1.0)
	s := buildStroke(t)
	m.AddStroke(s)

	_, err := m.AddView("hwr")
	require.NoError(t, err)
	viewRoot := (func() int {
		vt, _ := m.View("hwr")
		return vt.NewGroup()
	})()
	vt, _ := m.View("hwr")
	require.NoError(t, vt.SetRoot(viewRoot))

	_, err = m.AttachStrokeRef("hwr", viewRoot, s.ID(), nil)
	assert.Error(t, err, "attaching into a view before the main tree should fail MissingStrokeInMainTree")

	root := m.MainTree().NewGroup()
	require.NoError(t, m.MainTree().SetRoot(root))
	_, err = m.AttachStrokeRef(tree.MainTreeName, root, s.ID(), nil)
	require.NoError(t, err)

	_, err = m.AttachStrokeRef("hwr", viewRoot, s.ID(), nil)
	assert.NoError(t, err)
	require.NoError(t, m.ValidateInvariants())
}

func TestAddTripleRejectsUnregisteredNodeSubject(t *testing.T) {
	m := New(1.0)
	root := m.MainTree().NewGroup()
	require.NoError(t, m.MainTree().SetRoot(root))
	uri := m.MainTree().Node(root).URI

	err := m.AddTriple(semantic.Triple{Subject: uri, Predicate: semantic.PredicateIs, Object: semantic.Literal("stroke-group")})
	assert.NoError(t, err)

	err = m.AddTriple(semantic.Triple{Subject: "uim:does-not-exist", Predicate: semantic.PredicateIs, Object: semantic.Literal("x")})
	assert.Error(t, err)
}

func TestDetachCascadesTripleRemoval(t *testing.T) {
	m := New(1.0)
	root := m.MainTree().NewGroup()
	require.NoError(t, m.MainTree().SetRoot(root))
	child := m.MainTree().NewGroup()
	require.NoError(t, m.MainTree().AddChild(root, child))
	childURI := m.MainTree().Node(child).URI

	require.NoError(t, m.AddTriple(semantic.Triple{Subject: childURI, Predicate: semantic.PredicateIs, Object: semantic.Literal("x")}))
	assert.Equal(t, 1, m.Triples.Len())

	require.NoError(t, m.Detach(tree.MainTreeName, child))
	assert.Equal(t, 0, m.Triples.Len())
}

func TestCloneGroupDuplicatesTriples(t *testing.T) {
	m := New(1.0)
	root := m.MainTree().NewGroup()
	require.NoError(t, m.MainTree().SetRoot(root))
	child := m.MainTree().NewGroup()
	require.NoError(t, m.MainTree().AddChild(root, child))
	childURI := m.MainTree().Node(child).URI
	require.NoError(t, m.AddTriple(semantic.Triple{Subject: childURI, Predicate: semantic.PredicateIs, Object: semantic.Literal("x")}))

	newIdx, err := m.CloneGroup(tree.MainTreeName, child, true, true)
	require.NoError(t, err)
	require.NoError(t, m.AttachExisting(tree.MainTreeName, root, newIdx))

	assert.Equal(t, 2, m.Triples.Len())
}

func TestStridedArrayMixesSplineAndSensorPlanes(t *testing.T) {
	m := New(1.0)

	env := m.InputConfig.AddEnvironment(inputconfig.Environment{})
	channel := inputconfig.SensorChannel{TypeURI: string(sensor.ChannelPressure), Name: "pressure"}
	chCtx := inputconfig.SensorChannelsContext{Channels: []inputconfig.SensorChannel{channel}}
	sensorCtx := inputconfig.SensorContext{ChannelsContexts: []inputconfig.SensorChannelsContext{chCtx}}
	m.InputConfig.AddSensorContext(sensorCtx)
	ic := inputconfig.InputContext{EnvironmentID: env, SensorContextID: sensorCtx.ID()}
	icID, err := m.InputConfig.AddInputContext(ic)
	require.NoError(t, err)

	frame := sensor.NewSensorData(icID, sensor.PLANE, 0, []sensor.ChannelData{
		{SensorChannelID: channel.ID(), Values: []float64{0.1, 0.2, 0.3}},
	})
	m.SensorData.Add(frame)

	s := buildStroke(t)
	frameID := frame.ID()
	s.SensorDataID = &frameID
	m.AddStroke(s)

	layout := []Attr{SplineAttr(ink.X), SensorAttr(sensor.ChannelPressure)}
	rows, err := m.StridedArray(s, layout, ink.FillWithZeros)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, 0.0, rows[0][0])
	assert.InDelta(t, 0.1, rows[0][1], 1e-9)
	assert.InDelta(t, 0.3, rows[2][1], 1e-9)
}

func TestValidateInvariantsCatchesDanglingSensorDataID(t *testing.T) {
	m := New(1.0)
	s := buildStroke(t)
	missing := identity.NewRandom()
	s.SensorDataID = &missing
	m.AddStroke(s)

	err := m.ValidateInvariants()
	assert.Error(t, err)
}

func TestValidateInvariantsCatchesChannelValueOutOfRange(t *testing.T) {
	m := New(1.0)

	env := m.InputConfig.AddEnvironment(inputconfig.Environment{})
	channel := inputconfig.SensorChannel{TypeURI: string(sensor.ChannelPressure), Name: "pressure", Min: 0, Max: 1}
	chCtx := inputconfig.SensorChannelsContext{Channels: []inputconfig.SensorChannel{channel}}
	sensorCtx := inputconfig.SensorContext{ChannelsContexts: []inputconfig.SensorChannelsContext{chCtx}}
	m.InputConfig.AddSensorContext(sensorCtx)
	icID, err := m.InputConfig.AddInputContext(inputconfig.InputContext{EnvironmentID: env, SensorContextID: sensorCtx.ID()})
	require.NoError(t, err)

	frame := sensor.NewSensorData(icID, sensor.PLANE, 0, []sensor.ChannelData{
		{SensorChannelID: channel.ID(), Values: []float64{0.1, 0.2, 1.5}},
	})
	m.SensorData.Add(frame)

	assert.Error(t, m.ValidateInvariants())
}
