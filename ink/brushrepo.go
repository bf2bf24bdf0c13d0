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

// BrushRepository holds vector and raster brushes, insertion order
// preserved, looked up globally by name (spec §4.6). Names must be
// unique across both kinds.
type BrushRepository struct {
	vector     []VectorBrush
	raster     []RasterBrush
	vectorIdx  map[string]int
	rasterIdx  map[string]int
}

// NewBrushRepository returns an empty, ready-to-use BrushRepository.
func NewBrushRepository() *BrushRepository {
	return &BrushRepository{vectorIdx: map[string]int{}, rasterIdx: map[string]int{}}
}

// AddVectorBrush inserts b, failing if its name collides with an
// existing vector or raster brush.
func (r *BrushRepository) AddVectorBrush(b VectorBrush) error {
	if err := r.checkNameFree(b.Name); err != nil {
		return err
	}
	r.vectorIdx[b.Name] = len(r.vector)
	r.vector = append(r.vector, b)
	return nil
}

// AddRasterBrush inserts b, failing if its name collides with an
// existing vector or raster brush, or if b's own texture invariant is
// violated.
func (r *BrushRepository) AddRasterBrush(b RasterBrush) error {
	if err := b.Validate(); err != nil {
		return err
	}
	if err := r.checkNameFree(b.Name); err != nil {
		return err
	}
	r.rasterIdx[b.Name] = len(r.raster)
	r.raster = append(r.raster, b)
	return nil
}

func (r *BrushRepository) checkNameFree(name string) error {
	if _, ok := r.vectorIdx[name]; ok {
		return uimerr.At(uimerr.KindDuplicateURI, name, "ink: brush name already in use")
	}
	if _, ok := r.rasterIdx[name]; ok {
		return uimerr.At(uimerr.KindDuplicateURI, name, "ink: brush name already in use")
	}
	return nil
}

// Brush looks up a brush by name across both kinds. Exactly one of
// vector or raster is non-nil on success, which tells which kind the
// name belongs to.
func (r *BrushRepository) Brush(name string) (vector *VectorBrush, raster *RasterBrush, err error) {
	if i, ok := r.vectorIdx[name]; ok {
		return &r.vector[i], nil, nil
	}
	if i, ok := r.rasterIdx[name]; ok {
		return nil, &r.raster[i], nil
	}
	return nil, nil, uimerr.At(uimerr.KindNotFound, name, "ink: no such brush")
}

// RemoveVectorBrush removes a vector brush by name. Per design note
// (b) this is documented as a no-op when the name is unknown, unlike
// most other lookups in this library, which raise NotFound.
func (r *BrushRepository) RemoveVectorBrush(name string) {
	i, ok := r.vectorIdx[name]
	if !ok {
		return
	}
	r.vector = append(r.vector[:i], r.vector[i+1:]...)
	delete(r.vectorIdx, name)
	for n, idx := range r.vectorIdx {
		if idx > i {
			r.vectorIdx[n] = idx - 1
		}
	}
}

// RemoveRasterBrush removes a raster brush by name; a no-op when the
// name is unknown, mirroring RemoveVectorBrush.
func (r *BrushRepository) RemoveRasterBrush(name string) {
	i, ok := r.rasterIdx[name]
	if !ok {
		return
	}
	r.raster = append(r.raster[:i], r.raster[i+1:]...)
	delete(r.rasterIdx, name)
	for n, idx := range r.rasterIdx {
		if idx > i {
			r.rasterIdx[n] = idx - 1
		}
	}
}

// VectorBrushes returns every vector brush in insertion order.
func (r *BrushRepository) VectorBrushes() []VectorBrush { return r.vector }

// RasterBrushes returns every raster brush in insertion order.
func (r *BrushRepository) RasterBrushes() []RasterBrush { return r.raster }
