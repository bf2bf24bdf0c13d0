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

	"github.com/Wacom-Developer/universal-ink-library/ink"
)

// Field numbers for the BRSH section (codec.Brushes message).
const (
	fBrushesVector protowire.Number = 1
	fBrushesRaster protowire.Number = 2

	fVectorBrushName       protowire.Number = 1
	fVectorBrushPrototypes protowire.Number = 2
	fVectorBrushSpacing    protowire.Number = 3

	fPrototypeKind     protowire.Number = 1
	fPrototypeMinScale protowire.Number = 2
	fPrototypePoints   protowire.Number = 3
	fPrototypeIndices  protowire.Number = 4
	fPrototypeURI      protowire.Number = 5

	fPointX protowire.Number = 1
	fPointY protowire.Number = 2

	fRasterName          protowire.Number = 1
	fRasterSpacing       protowire.Number = 2
	fRasterScattering    protowire.Number = 3
	fRasterRotationMode  protowire.Number = 4
	fRasterShapeTextures protowire.Number = 5
	fRasterFillTexture   protowire.Number = 6
	fRasterFillWidth     protowire.Number = 7
	fRasterFillHeight    protowire.Number = 8
	fRasterRandomizeFill protowire.Number = 9
	fRasterBlendMode     protowire.Number = 10

	fTextureKind  protowire.Number = 1
	fTextureBytes protowire.Number = 2
	fTextureURI   protowire.Number = 3
)

func encodeBrushes(repo *ink.BrushRepository) []byte {
	var b []byte
	for _, vb := range repo.VectorBrushes() {
		b = appendMessage(b, fBrushesVector, encodeVectorBrush(vb))
	}
	for _, rb := range repo.RasterBrushes() {
		b = appendMessage(b, fBrushesRaster, encodeRasterBrush(rb))
	}
	return b
}

func encodeVectorBrush(vb ink.VectorBrush) []byte {
	var b []byte
	b = appendString(b, fVectorBrushName, vb.Name)
	for _, p := range vb.Prototypes {
		b = appendMessage(b, fVectorBrushPrototypes, encodePrototype(p))
	}
	b = appendDouble(b, fVectorBrushSpacing, vb.Spacing)
	return b
}

func encodePrototype(p ink.BrushPrototype) []byte {
	var b []byte
	b = appendVarint(b, fPrototypeKind, uint64(p.Kind))
	b = appendDouble(b, fPrototypeMinScale, p.MinScale)
	for _, pt := range p.Points {
		b = appendMessage(b, fPrototypePoints, encodePoint2(pt))
	}
	for _, idx := range p.Indices {
		b = appendVarintAlways(b, fPrototypeIndices, uint64(uint32(idx)))
	}
	b = appendString(b, fPrototypeURI, p.URI)
	return b
}

func encodePoint2(p ink.Point2) []byte {
	var b []byte
	b = appendDouble(b, fPointX, p.X)
	b = appendDouble(b, fPointY, p.Y)
	return b
}

func encodeRasterBrush(rb ink.RasterBrush) []byte {
	var b []byte
	b = appendString(b, fRasterName, rb.Name)
	b = appendDouble(b, fRasterSpacing, rb.Spacing)
	b = appendDouble(b, fRasterScattering, rb.Scattering)
	b = appendVarint(b, fRasterRotationMode, uint64(rb.RotationMode))
	for _, t := range rb.ShapeTextures {
		b = appendMessage(b, fRasterShapeTextures, encodeTextureRef(t))
	}
	b = appendMessage(b, fRasterFillTexture, encodeTextureRef(rb.FillTexture))
	b = appendDouble(b, fRasterFillWidth, rb.FillWidth)
	b = appendDouble(b, fRasterFillHeight, rb.FillHeight)
	b = appendBool(b, fRasterRandomizeFill, rb.RandomizeFill)
	b = appendVarint(b, fRasterBlendMode, uint64(rb.BlendMode))
	return b
}

func encodeTextureRef(t ink.TextureRef) []byte {
	var b []byte
	b = appendVarint(b, fTextureKind, uint64(t.Kind))
	b = appendBytes(b, fTextureBytes, t.Bytes)
	b = appendString(b, fTextureURI, t.URI)
	return b
}

func decodeBrushes(data []byte, repo *ink.BrushRepository) error {
	return fieldReader(data, func(num protowire.Number, typ protowire.Type, v []byte, consumed int) (int, error) {
		switch num {
		case fBrushesVector:
			vb, err := decodeVectorBrush(v)
			if err != nil {
				return 0, err
			}
			if err := repo.AddVectorBrush(vb); err != nil {
				return 0, err
			}
		case fBrushesRaster:
			rb, err := decodeRasterBrush(v)
			if err != nil {
				return 0, err
			}
			if err := repo.AddRasterBrush(rb); err != nil {
				return 0, err
			}
		}
		return consumed, nil
	})
}

func decodeVectorBrush(data []byte) (ink.VectorBrush, error) {
	var vb ink.VectorBrush
	err := fieldReader(data, func(num protowire.Number, typ protowire.Type, v []byte, consumed int) (int, error) {
		switch num {
		case fVectorBrushName:
			vb.Name = readString(v)
		case fVectorBrushPrototypes:
			p, err := decodePrototype(v)
			if err != nil {
				return 0, err
			}
			vb.Prototypes = append(vb.Prototypes, p)
		case fVectorBrushSpacing:
			vb.Spacing = readDouble(v)
		}
		return consumed, nil
	})
	return vb, err
}

func decodePrototype(data []byte) (ink.BrushPrototype, error) {
	var p ink.BrushPrototype
	err := fieldReader(data, func(num protowire.Number, typ protowire.Type, v []byte, consumed int) (int, error) {
		switch num {
		case fPrototypeKind:
			p.Kind = ink.PrototypeKind(readVarint(v))
		case fPrototypeMinScale:
			p.MinScale = readDouble(v)
		case fPrototypePoints:
			pt, err := decodePoint2(v)
			if err != nil {
				return 0, err
			}
			p.Points = append(p.Points, pt)
		case fPrototypeIndices:
			p.Indices = append(p.Indices, int32(readVarint(v)))
		case fPrototypeURI:
			p.URI = readString(v)
		}
		return consumed, nil
	})
	return p, err
}

func decodePoint2(data []byte) (ink.Point2, error) {
	var p ink.Point2
	err := fieldReader(data, func(num protowire.Number, typ protowire.Type, v []byte, consumed int) (int, error) {
		switch num {
		case fPointX:
			p.X = readDouble(v)
		case fPointY:
			p.Y = readDouble(v)
		}
		return consumed, nil
	})
	return p, err
}

func decodeRasterBrush(data []byte) (ink.RasterBrush, error) {
	var rb ink.RasterBrush
	err := fieldReader(data, func(num protowire.Number, typ protowire.Type, v []byte, consumed int) (int, error) {
		switch num {
		case fRasterName:
			rb.Name = readString(v)
		case fRasterSpacing:
			rb.Spacing = readDouble(v)
		case fRasterScattering:
			rb.Scattering = readDouble(v)
		case fRasterRotationMode:
			rb.RotationMode = ink.RotationMode(readVarint(v))
		case fRasterShapeTextures:
			t, err := decodeTextureRef(v)
			if err != nil {
				return 0, err
			}
			rb.ShapeTextures = append(rb.ShapeTextures, t)
		case fRasterFillTexture:
			t, err := decodeTextureRef(v)
			if err != nil {
				return 0, err
			}
			rb.FillTexture = t
		case fRasterFillWidth:
			rb.FillWidth = readDouble(v)
		case fRasterFillHeight:
			rb.FillHeight = readDouble(v)
		case fRasterRandomizeFill:
			rb.RandomizeFill = readBool(v)
		case fRasterBlendMode:
			rb.BlendMode = ink.BlendMode(readVarint(v))
		}
		return consumed, nil
	})
	return rb, err
}

func decodeTextureRef(data []byte) (ink.TextureRef, error) {
	var t ink.TextureRef
	err := fieldReader(data, func(num protowire.Number, typ protowire.Type, v []byte, consumed int) (int, error) {
		switch num {
		case fTextureKind:
			t.Kind = ink.TextureKind(readVarint(v))
		case fTextureBytes:
			t.Bytes = readBytes(v)
		case fTextureURI:
			t.URI = readString(v)
		}
		return consumed, nil
	})
	return t, err
}
