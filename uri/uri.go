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

// Package uri builds and rewrites the node/stroke/entity/tree URIs
// used across the tree and semantic-graph packages (spec §4.7).
package uri

import "strings"

const scheme = "uim:"

// MainNode returns the URI of a node registered in the main tree:
// "uim:<uuid>".
func MainNode(nodeUUID string) string {
	return scheme + nodeUUID
}

// ViewNode returns the URI of a node registered in a named view tree:
// "uim:<tree>/<uuid>".
func ViewNode(treeName, nodeUUID string) string {
	return scheme + treeName + "/" + nodeUUID
}

// Stroke returns the URI used to reference a stroke from the
// semantic graph: "uim:stroke/<uuid>".
func Stroke(strokeUUID string) string {
	return scheme + "stroke/" + strokeUUID
}

// NamedEntity returns the URI of a named entity: "uim:ne/<uuid>".
func NamedEntity(entityUUID string) string {
	return scheme + "ne/" + entityUUID
}

// ViewRoot returns the URI of a view tree's root: "uim:view/<tree>".
func ViewRoot(treeName string) string {
	return scheme + "view/" + treeName
}

// LegacyViewNode returns the 3.0.0-era URI of a view-tree node:
// "uim:<uuid>/<tree>". Only ever produced when reading/upgrading a
// legacy file; the encoder never writes this form.
func LegacyViewNode(nodeUUID, treeName string) string {
	return scheme + nodeUUID + "/" + treeName
}

// IsLegacyViewNode reports whether a subject URI is in the 3.0.0
// "uim:<uuid>/<tree>" form rather than the 3.1.0 "uim:<tree>/<uuid>"
// form. It distinguishes the two by checking whether the first path
// segment parses as a UUID-shaped token (36 chars, four dashes).
func IsLegacyViewNode(subjectURI string) bool {
	if !strings.HasPrefix(subjectURI, scheme) {
		return false
	}
	rest := strings.TrimPrefix(subjectURI, scheme)
	parts := strings.SplitN(rest, "/", 2)
	if len(parts) != 2 {
		return false
	}
	return looksLikeUUID(parts[0])
}

// UpgradeLegacyViewNode rewrites a 3.0.0 "uim:<uuid>/<tree>" subject
// into its 3.1.0 "uim:<tree>/<uuid>" form, per spec §4.7/§4.8's
// legacy-upgrade requirement. Subjects not in the legacy form are
// returned unchanged.
func UpgradeLegacyViewNode(subjectURI string) string {
	if !IsLegacyViewNode(subjectURI) {
		return subjectURI
	}
	rest := strings.TrimPrefix(subjectURI, scheme)
	parts := strings.SplitN(rest, "/", 2)
	return ViewNode(parts[1], parts[0])
}

func looksLikeUUID(s string) bool {
	if len(s) != 36 {
		return false
	}
	for i, c := range s {
		switch i {
		case 8, 13, 18, 23:
			if c != '-' {
				return false
			}
		default:
			if !isHex(byte(c)) {
				return false
			}
		}
	}
	return true
}

func isHex(b byte) bool {
	return (b >= '0' && b <= '9') || (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F')
}
