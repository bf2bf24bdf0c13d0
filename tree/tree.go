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

package tree

import (
	"github.com/Wacom-Developer/universal-ink-library/identity"
	"github.com/Wacom-Developer/universal-ink-library/uimerr"
	"github.com/Wacom-Developer/universal-ink-library/uri"
)

// MainTreeName is the empty-string name reserved for a model's main
// ink tree, per spec §3.6.
const MainTreeName = ""

// Tree is either the main ink tree or a named view tree. It owns a
// contiguous Node array; detached nodes are created through New* and
// only gain a URI once attached into the tree via AddChild/SetRoot.
type Tree struct {
	Name string

	nodes    []Node
	uriIndex map[string]int
	rootIdx  int
}

// New returns an empty tree with no root.
func New(name string) *Tree {
	return &Tree{Name: name, uriIndex: map[string]int{}, rootIdx: -1}
}

// IsMain reports whether this is the unnamed main tree.
func (t *Tree) IsMain() bool { return t.Name == MainTreeName }

// NewGroup allocates a detached StrokeGroup node and returns its
// index. The node is not part of the tree's addressable structure
// until SetRoot or AddChild attaches it.
func (t *Tree) NewGroup() int {
	return t.NewGroupWithID(identity.NewRandom())
}

// NewGroupWithID is NewGroup with an explicit node id, used by the
// codec to restore a node's original identity on decode instead of
// minting a fresh Random-Id.
func (t *Tree) NewGroupWithID(id identity.ID) int {
	t.nodes = append(t.nodes, Node{id: id, Kind: KindStrokeGroup, parent: -1})
	return len(t.nodes) - 1
}

// NewStrokeRef allocates a detached Stroke-ref node pointing at
// strokeID, optionally restricted to fragment.
func (t *Tree) NewStrokeRef(strokeID identity.ID, fragment *Fragment) (int, error) {
	return t.NewStrokeRefWithID(identity.NewRandom(), strokeID, fragment)
}

// NewStrokeRefWithID is NewStrokeRef with an explicit node id, used
// by the codec on decode.
func (t *Tree) NewStrokeRefWithID(id, strokeID identity.ID, fragment *Fragment) (int, error) {
	if fragment != nil {
		if err := fragment.Validate(); err != nil {
			return -1, err
		}
	}
	t.nodes = append(t.nodes, Node{id: id, Kind: KindStrokeRef, parent: -1, StrokeID: strokeID, Fragment: fragment})
	return len(t.nodes) - 1, nil
}

// Node returns a pointer to the node at idx.
func (t *Tree) Node(idx int) *Node {
	if idx < 0 || idx >= len(t.nodes) {
		return nil
	}
	return &t.nodes[idx]
}

// NodeByURI looks up a node by its registered URI.
func (t *Tree) NodeByURI(nodeURI string) (*Node, int, error) {
	if i, ok := t.uriIndex[nodeURI]; ok {
		return &t.nodes[i], i, nil
	}
	return nil, -1, uimerr.At(uimerr.KindNotFound, nodeURI, "tree: no such node")
}

// Root returns the root node's index, or -1 if the tree is empty.
func (t *Tree) Root() int { return t.rootIdx }

// SetRoot registers rootIdx's subtree (root must currently be
// detached) as the tree's root. It fails AlreadyAttached if the tree
// already has a root or if rootIdx is already attached elsewhere.
func (t *Tree) SetRoot(rootIdx int) error {
	if t.rootIdx != -1 {
		return uimerr.New(uimerr.KindAlreadyAttached, "tree: tree already has a root")
	}
	n := t.Node(rootIdx)
	if n == nil {
		return uimerr.New(uimerr.KindNotFound, "tree: no such node index")
	}
	if n.IsAttached() {
		return uimerr.New(uimerr.KindAlreadyAttached, "tree: node already attached")
	}
	if err := t.registerSubtree(rootIdx); err != nil {
		return err
	}
	t.rootIdx = rootIdx
	return nil
}

// AddChild attaches childIdx under the StrokeGroup node at
// parentIdx, registering the child's (and its descendants') URIs.
// It fails AlreadyAttached if child is already attached to a parent.
func (t *Tree) AddChild(parentIdx, childIdx int) error {
	parent := t.Node(parentIdx)
	if parent == nil {
		return uimerr.New(uimerr.KindNotFound, "tree: no such parent node index")
	}
	if parent.Kind != KindStrokeGroup {
		return uimerr.New(uimerr.KindInvalidArgument, "tree: only a StrokeGroup node may have children")
	}
	child := t.Node(childIdx)
	if child == nil {
		return uimerr.New(uimerr.KindNotFound, "tree: no such child node index")
	}
	if child.IsAttached() {
		return uimerr.New(uimerr.KindAlreadyAttached, "tree: node already attached")
	}
	if err := t.registerSubtree(childIdx); err != nil {
		return err
	}
	child.parent = parentIdx
	parent.children = append(parent.children, childIdx)
	return nil
}

// registerSubtree assigns canonical URIs to idx and every descendant
// (pre-order), checking uniqueness within the tree as it goes.
func (t *Tree) registerSubtree(idx int) error {
	n := t.Node(idx)
	canonical := t.canonicalURI(n)
	if _, exists := t.uriIndex[canonical]; exists {
		return uimerr.At(uimerr.KindDuplicateURI, canonical, "tree: node uri already registered")
	}
	n.URI = canonical
	t.uriIndex[canonical] = idx
	for _, c := range n.children {
		if err := t.registerSubtree(c); err != nil {
			return err
		}
	}
	return nil
}

func (t *Tree) canonicalURI(n *Node) string {
	if t.IsMain() {
		return uri.MainNode(n.id.H())
	}
	return uri.ViewNode(t.Name, n.id.H())
}

// Unregister removes idx and its whole subtree from the tree's URI
// index and detaches it from its parent, returning the list of URIs
// that were unregistered (pre-order), used by callers that must also
// cascade-remove semantic triples (spec §3.6/§4.7).
func (t *Tree) Unregister(idx int) []string {
	n := t.Node(idx)
	if n == nil {
		return nil
	}
	if n.parent >= 0 {
		p := t.Node(n.parent)
		p.children = removeInt(p.children, idx)
	}
	if t.rootIdx == idx {
		t.rootIdx = -1
	}
	var removed []string
	t.collectAndDetach(idx, &removed)
	return removed
}

func (t *Tree) collectAndDetach(idx int, removed *[]string) {
	n := t.Node(idx)
	if n.URI != "" {
		delete(t.uriIndex, n.URI)
		*removed = append(*removed, n.URI)
		n.URI = ""
	}
	n.parent = -1
	for _, c := range n.children {
		t.collectAndDetach(c, removed)
	}
}

func removeInt(s []int, v int) []int {
	out := s[:0:0]
	for _, x := range s {
		if x != v {
			out = append(out, x)
		}
	}
	return out
}

// StrokeIDs returns the set of stroke ids referenced by attached
// Stroke-ref nodes anywhere in this tree, used by the model layer to
// validate I1/MissingStrokeInMainTree.
func (t *Tree) StrokeIDs() map[identity.ID]bool {
	out := map[identity.ID]bool{}
	for i := range t.nodes {
		if t.nodes[i].Kind == KindStrokeRef && t.nodes[i].IsAttached() {
			out[t.nodes[i].StrokeID] = true
		}
	}
	return out
}

// AllAttached returns the index of every node currently reachable
// from the root, in pre-order.
func (t *Tree) AllAttached() []int {
	if t.rootIdx == -1 {
		return nil
	}
	var out []int
	var walk func(int)
	walk = func(idx int) {
		out = append(out, idx)
		for _, c := range t.Node(idx).children {
			walk(c)
		}
	}
	walk(t.rootIdx)
	return out
}

// RecomputeBBox recursively recomputes idx's bounding box as the
// union of its descendants' boxes, per spec §4.8. strokeBBox supplies
// a stroke's own box by id (derived from its spline's X/Y channels).
func (t *Tree) RecomputeBBox(idx int, strokeBBox func(identity.ID) (BBox, bool)) BBox {
	n := t.Node(idx)
	if n == nil {
		return BBox{}
	}
	switch n.Kind {
	case KindStrokeRef:
		if box, ok := strokeBBox(n.StrokeID); ok {
			n.BBox = box
		}
		return n.BBox
	case KindStrokeGroup:
		var box BBox
		for _, c := range n.children {
			box = unionBBox(box, t.RecomputeBBox(c, strokeBBox))
		}
		n.BBox = box
		return box
	}
	return BBox{}
}
