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

import "github.com/Wacom-Developer/universal-ink-library/uimerr"

// PreviewURI returns the URI a node would be assigned if registered
// right now, without requiring it to actually be attached. Node
// identity (and therefore its URI) is fixed at creation time, so this
// is safe to call on a still-detached node, e.g. one just produced by
// Clone.
func (t *Tree) PreviewURI(idx int) string {
	n := t.Node(idx)
	if n == nil {
		return ""
	}
	return t.canonicalURI(n)
}

// Clone copies the node at idx into a fresh, detached node with a new
// Random-Id, per spec §4.8's group-cloning semantics:
//   - a StrokeGroup is cloned as an empty group unless
//     includeChildGroups is set, in which case child groups are
//     cloned recursively.
//   - a StrokeRef child is copied verbatim (same underlying stroke
//     and fragment) when includeStrokeRefs is set; otherwise it is
//     dropped from the clone.
//
// Clone returns the new subtree's root index and a map from every
// cloned node's original URI to its new URI, which the caller (the
// model layer) uses to re-subject semantic triples via
// semantic.Store.CloneSubject.
func (t *Tree) Clone(idx int, includeStrokeRefs, includeChildGroups bool) (newIdx int, uriMap map[string]string, err error) {
	uriMap = map[string]string{}
	newIdx, err = t.cloneNode(idx, includeStrokeRefs, includeChildGroups, uriMap)
	return newIdx, uriMap, err
}

func (t *Tree) cloneNode(idx int, includeStrokeRefs, includeChildGroups bool, uriMap map[string]string) (int, error) {
	src := t.Node(idx)
	if src == nil {
		return -1, uimerr.New(uimerr.KindNotFound, "tree: no such node to clone")
	}

	var newIdxLocal int
	switch src.Kind {
	case KindStrokeGroup:
		newIdxLocal = t.NewGroup()
	case KindStrokeRef:
		fragCopy := src.Fragment
		i, err := t.NewStrokeRef(src.StrokeID, fragCopy)
		if err != nil {
			return -1, err
		}
		newIdxLocal = i
	}

	if src.URI != "" {
		uriMap[src.URI] = t.PreviewURI(newIdxLocal)
	}

	if src.Kind != KindStrokeGroup {
		return newIdxLocal, nil
	}

	for _, childIdx := range src.children {
		child := t.Node(childIdx)
		if child.Kind == KindStrokeRef && !includeStrokeRefs {
			continue
		}
		if child.Kind == KindStrokeGroup && !includeChildGroups {
			continue
		}
		newChildIdx, err := t.cloneNode(childIdx, includeStrokeRefs, includeChildGroups, uriMap)
		if err != nil {
			return -1, err
		}
		if err := t.AddChild(newIdxLocal, newChildIdx); err != nil {
			return -1, err
		}
	}
	return newIdxLocal, nil
}
