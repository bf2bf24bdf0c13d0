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

package ink

import "github.com/Wacom-Developer/universal-ink-library/uimerr"

// Point2 is a 2-D point used by vector brush prototype polygons.
type Point2 struct {
	X, Y float64
}

// BrushPrototype is either an inline polygon or a reference to a
// named prototype shape, per spec §4.6. Exactly one of Polygon or URI
// is meaningful, selected by Kind.
type BrushPrototype struct {
	Kind     PrototypeKind
	MinScale float64

	// Inline polygon form.
	Points  []Point2
	Indices []int32 // optional triangulation indices

	// URI form.
	URI string
}

// PrototypeKind distinguishes the two BrushPrototype shapes.
type PrototypeKind int

const (
	PrototypeInline PrototypeKind = iota
	PrototypeURI
)

// VectorBrush is a named brush built from inline or URI prototypes;
// the two prototype kinds may coexist within one brush.
type VectorBrush struct {
	Name       string // brush URI, used as the lookup key
	Prototypes []BrushPrototype
	Spacing    float64
}

// RotationMode governs how a RasterBrush's shape texture is rotated
// per particle.
type RotationMode int

const (
	RotationNone RotationMode = iota
	RotationRandom
	RotationTrajectory
)

// BlendMode enumerates the compositing modes a RasterBrush may use.
type BlendMode int

const (
	SourceOver BlendMode = iota
	DestinationOver
	DestinationOut
	Lighter
	Copy
	Min
	Max
)

// TextureRef is either inline bytes or a URI, never both, selected by
// Kind. Used for a RasterBrush's shape textures and fill texture.
type TextureRef struct {
	Kind  TextureKind
	Bytes []byte
	URI   string
}

// TextureKind distinguishes an inline texture from a URI reference.
type TextureKind int

const (
	TextureNone TextureKind = iota
	TextureInline
	TextureURI
)

func (t TextureRef) validate() error {
	switch t.Kind {
	case TextureNone:
		if len(t.Bytes) != 0 || t.URI != "" {
			return uimerr.New(uimerr.KindInvalidArgument, "ink: texture kind None must carry neither bytes nor uri")
		}
	case TextureInline:
		if len(t.Bytes) == 0 || t.URI != "" {
			return uimerr.New(uimerr.KindInvalidArgument, "ink: inline texture must carry bytes and no uri")
		}
	case TextureURI:
		if t.URI == "" || len(t.Bytes) != 0 {
			return uimerr.New(uimerr.KindInvalidArgument, "ink: uri texture must carry a uri and no bytes")
		}
	default:
		return uimerr.New(uimerr.KindInvalidArgument, "ink: unknown texture kind")
	}
	return nil
}

// RasterBrush is a named brush rendering with shape/fill textures.
// Per spec §4.6 a brush's shape textures are either all inline bytes
// or all URIs, never mixed, and likewise for the fill texture.
type RasterBrush struct {
	Name           string
	Spacing        float64
	Scattering     float64
	RotationMode   RotationMode
	ShapeTextures  []TextureRef
	FillTexture    TextureRef
	FillWidth      float64
	FillHeight     float64
	RandomizeFill  bool
	BlendMode      BlendMode
}

// Validate enforces the inline-xor-uri invariant across a brush's
// shape textures and its fill texture (spec §4.6, Open Question
// none — this is a hard invariant, not a documented no-op).
func (b RasterBrush) Validate() error {
	var sawInline, sawURI bool
	for _, t := range b.ShapeTextures {
		if err := t.validate(); err != nil {
			return err
		}
		switch t.Kind {
		case TextureInline:
			sawInline = true
		case TextureURI:
			sawURI = true
		}
	}
	if sawInline && sawURI {
		return uimerr.New(uimerr.KindInvalidArgument, "ink: raster brush mixes inline and uri shape textures")
	}
	if err := b.FillTexture.validate(); err != nil {
		return err
	}
	return nil
}
