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

// Package tree implements the logical tree model of spec §3.6/§4.8:
// the main ink tree and any number of named view trees, each a
// contiguous node array addressed by index rather than by owning
// pointer (design note 9), so that nodes carry the tree's identity
// plus their own index instead of a parent pointer cycle.
package tree

import (
	"github.com/Wacom-Developer/universal-ink-library/identity"
	"github.com/Wacom-Developer/universal-ink-library/uimerr"
)

// Kind distinguishes the two InkNode variants of spec §3.6.
type Kind int

const (
	KindStrokeGroup Kind = iota
	KindStrokeRef
)

// Fragment denotes a sub-range of a stroke: {from_point_index,
// to_point_index, from_t, to_t}, per spec §3.6.
type Fragment struct {
	FromPointIndex int
	ToPointIndex   int
	FromT          float64
	ToT            float64
}

// Validate checks the fragment invariant: 0 <= from <= to and both
// t-values in [0, 1].
func (f Fragment) Validate() error {
	if f.FromPointIndex < 0 || f.FromPointIndex > f.ToPointIndex {
		return uimerr.New(uimerr.KindOutOfRange, "tree: fragment point indices must satisfy 0 <= from <= to")
	}
	if f.FromT < 0 || f.FromT > 1 || f.ToT < 0 || f.ToT > 1 {
		return uimerr.New(uimerr.KindOutOfRange, "tree: fragment t-values must lie in [0, 1]")
	}
	return nil
}

// BBox is an axis-aligned bounding box, lazily recomputed as the
// union of a group's descendants (spec §4.8).
type BBox struct {
	MinX, MinY, MaxX, MaxY float64
	Valid                  bool
}

func unionBBox(a, b BBox) BBox {
	if !a.Valid {
		return b
	}
	if !b.Valid {
		return a
	}
	return BBox{
		MinX:  minf(a.MinX, b.MinX),
		MinY:  minf(a.MinY, b.MinY),
		MaxX:  maxf(a.MaxX, b.MaxX),
		MaxY:  maxf(a.MaxY, b.MaxY),
		Valid: true,
	}
}

func minf(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func maxf(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

// Node is one entry in a Tree's contiguous node array. Rather than
// holding an owning pointer to its parent, it carries the parent's
// index within the same Tree (-1 when detached or root), per design
// note 9.
type Node struct {
	id     identity.ID
	Kind   Kind
	URI    string
	parent int
	children []int
	BBox   BBox

	StrokeID identity.ID
	Fragment *Fragment
}

// ID returns this node's own Random-Id (distinct from the stroke id
// a StrokeRef node points at).
func (n *Node) ID() identity.ID { return n.id }

// Parent returns the parent's index, or -1 if detached/root.
func (n *Node) Parent() int { return n.parent }

// Children returns the child indices of a StrokeGroup node.
func (n *Node) Children() []int { return n.children }

// IsAttached reports whether n currently has a parent.
func (n *Node) IsAttached() bool { return n.parent >= 0 }
