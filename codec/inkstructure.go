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

	"github.com/Wacom-Developer/universal-ink-library/identity"
	"github.com/Wacom-Developer/universal-ink-library/tree"
)

// Field numbers for the INKS section (codec.InkStructure message). A
// tree is serialized pre-order; the decoder rebuilds parent/child
// links with an explicit stack keyed by depth rather than recursion,
// mirroring the array-of-nodes, index-addressed design of the tree
// package itself.
const (
	fStructureMain protowire.Number = 1
	fStructureView protowire.Number = 2

	fTreeName  protowire.Number = 1
	fTreeNodes protowire.Number = 2

	fNodeKind     protowire.Number = 1
	fNodeID       protowire.Number = 2
	fNodeDepth    protowire.Number = 3
	fNodeBBox     protowire.Number = 4
	fNodeStrokeID protowire.Number = 5
	fNodeFragment protowire.Number = 6

	fBBoxMinX protowire.Number = 1
	fBBoxMinY protowire.Number = 2
	fBBoxMaxX protowire.Number = 3
	fBBoxMaxY protowire.Number = 4

	fFragmentFromPoint protowire.Number = 1
	fFragmentToPoint   protowire.Number = 2
	fFragmentFromT     protowire.Number = 3
	fFragmentToT       protowire.Number = 4
)

func encodeInkStructure(main *tree.Tree, views []*tree.Tree) []byte {
	var b []byte
	if main != nil {
		b = appendMessage(b, fStructureMain, encodeTree(main))
	}
	for _, v := range views {
		b = appendMessage(b, fStructureView, encodeTree(v))
	}
	return b
}

// encodeTree walks t's attached nodes pre-order using an explicit
// stack (no recursion), pairing each node with its depth so the
// decoder can rebuild parent/child links without storing them
// directly on the wire.
func encodeTree(t *tree.Tree) []byte {
	var b []byte
	b = appendString(b, fTreeName, t.Name)
	if t.Root() == -1 {
		return b
	}

	type frame struct {
		idx   int
		depth int
	}
	stack := []frame{{idx: t.Root(), depth: 0}}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		b = appendMessage(b, fTreeNodes, encodeTreeNode(t, top.idx, top.depth))

		children := t.Node(top.idx).Children()
		for i := len(children) - 1; i >= 0; i-- {
			stack = append(stack, frame{idx: children[i], depth: top.depth + 1})
		}
	}
	return b
}

func encodeTreeNode(t *tree.Tree, idx, depth int) []byte {
	n := t.Node(idx)
	var b []byte
	b = appendVarintAlways(b, fNodeKind, uint64(n.Kind))
	b = appendBytes(b, fNodeID, n.ID().Bytes())
	b = appendVarintAlways(b, fNodeDepth, uint64(depth))
	if n.Kind == tree.KindStrokeGroup && n.BBox.Valid {
		b = appendMessage(b, fNodeBBox, encodeBBox(n.BBox))
	}
	if n.Kind == tree.KindStrokeRef {
		b = appendBytes(b, fNodeStrokeID, n.StrokeID.Bytes())
		if n.Fragment != nil {
			b = appendMessage(b, fNodeFragment, encodeFragment(*n.Fragment))
		}
	}
	return b
}

func encodeBBox(box tree.BBox) []byte {
	var b []byte
	b = appendDoubleAlways(b, fBBoxMinX, box.MinX)
	b = appendDoubleAlways(b, fBBoxMinY, box.MinY)
	b = appendDoubleAlways(b, fBBoxMaxX, box.MaxX)
	b = appendDoubleAlways(b, fBBoxMaxY, box.MaxY)
	return b
}

func decodeBBox(data []byte) (tree.BBox, error) {
	var box tree.BBox
	err := fieldReader(data, func(num protowire.Number, typ protowire.Type, v []byte, consumed int) (int, error) {
		switch num {
		case fBBoxMinX:
			box.MinX = readDouble(v)
		case fBBoxMinY:
			box.MinY = readDouble(v)
		case fBBoxMaxX:
			box.MaxX = readDouble(v)
		case fBBoxMaxY:
			box.MaxY = readDouble(v)
		}
		return consumed, nil
	})
	box.Valid = true
	return box, err
}

func encodeFragment(f tree.Fragment) []byte {
	var b []byte
	b = appendVarintAlways(b, fFragmentFromPoint, uint64(f.FromPointIndex))
	b = appendVarintAlways(b, fFragmentToPoint, uint64(f.ToPointIndex))
	b = appendDoubleAlways(b, fFragmentFromT, f.FromT)
	b = appendDoubleAlways(b, fFragmentToT, f.ToT)
	return b
}

func decodeFragment(data []byte) (tree.Fragment, error) {
	var f tree.Fragment
	err := fieldReader(data, func(num protowire.Number, typ protowire.Type, v []byte, consumed int) (int, error) {
		switch num {
		case fFragmentFromPoint:
			f.FromPointIndex = int(readVarint(v))
		case fFragmentToPoint:
			f.ToPointIndex = int(readVarint(v))
		case fFragmentFromT:
			f.FromT = readDouble(v)
		case fFragmentToT:
			f.ToT = readDouble(v)
		}
		return consumed, nil
	})
	return f, err
}

type decodedTreeNode struct {
	kind     tree.Kind
	id       identity.ID
	depth    int
	bbox     *tree.BBox
	strokeID *identity.ID
	fragment *tree.Fragment
}

func decodeInkStructure(data []byte) (main *tree.Tree, views []*tree.Tree, err error) {
	err = fieldReader(data, func(num protowire.Number, typ protowire.Type, v []byte, consumed int) (int, error) {
		switch num {
		case fStructureMain:
			t, decodeErr := decodeTree(v)
			if decodeErr != nil {
				return 0, decodeErr
			}
			main = t
		case fStructureView:
			t, decodeErr := decodeTree(v)
			if decodeErr != nil {
				return 0, decodeErr
			}
			views = append(views, t)
		}
		return consumed, nil
	})
	return main, views, err
}

func decodeTree(data []byte) (*tree.Tree, error) {
	var name string
	var nodes []decodedTreeNode
	err := fieldReader(data, func(num protowire.Number, typ protowire.Type, v []byte, consumed int) (int, error) {
		switch num {
		case fTreeName:
			name = readString(v)
		case fTreeNodes:
			n, decodeErr := decodeTreeNodeEntry(v)
			if decodeErr != nil {
				return 0, decodeErr
			}
			nodes = append(nodes, n)
		}
		return consumed, nil
	})
	if err != nil {
		return nil, err
	}

	t := tree.New(name)
	if len(nodes) == 0 {
		return t, nil
	}

	ancestors := make([]int, 0, 16)
	for _, n := range nodes {
		var idx int
		if n.kind == tree.KindStrokeGroup {
			idx = t.NewGroupWithID(n.id)
		} else {
			strokeID := identity.Nil
			if n.strokeID != nil {
				strokeID = *n.strokeID
			}
			createdIdx, newErr := t.NewStrokeRefWithID(n.id, strokeID, n.fragment)
			if newErr != nil {
				return nil, newErr
			}
			idx = createdIdx
		}

		if n.depth == 0 {
			if err := t.SetRoot(idx); err != nil {
				return nil, err
			}
		} else {
			parentIdx := ancestors[n.depth-1]
			if err := t.AddChild(parentIdx, idx); err != nil {
				return nil, err
			}
		}

		if len(ancestors) > n.depth {
			ancestors = ancestors[:n.depth]
		}
		ancestors = append(ancestors, idx)

		if n.bbox != nil {
			t.Node(idx).BBox = *n.bbox
		}
	}
	return t, nil
}

func decodeTreeNodeEntry(data []byte) (decodedTreeNode, error) {
	var n decodedTreeNode
	err := fieldReader(data, func(num protowire.Number, typ protowire.Type, v []byte, consumed int) (int, error) {
		switch num {
		case fNodeKind:
			n.kind = tree.Kind(readVarint(v))
		case fNodeID:
			id, idErr := identity.FromBytes(readBytes(v))
			if idErr != nil {
				return 0, idErr
			}
			n.id = id
		case fNodeDepth:
			n.depth = int(readVarint(v))
		case fNodeBBox:
			box, boxErr := decodeBBox(v)
			if boxErr != nil {
				return 0, boxErr
			}
			n.bbox = &box
		case fNodeStrokeID:
			id, idErr := identity.FromBytes(readBytes(v))
			if idErr != nil {
				return 0, idErr
			}
			n.strokeID = &id
		case fNodeFragment:
			frag, fragErr := decodeFragment(v)
			if fragErr != nil {
				return 0, fragErr
			}
			n.fragment = &frag
		}
		return consumed, nil
	})
	return n, err
}
