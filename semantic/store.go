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

package semantic

// Store is an ordered, append-only collection of triples.
type Store struct {
	triples []Triple
}

// NewStore returns an empty, ready-to-use Store.
func NewStore() *Store { return &Store{} }

// Add appends t, preserving insertion order.
func (s *Store) Add(t Triple) {
	s.triples = append(s.triples, t)
}

// All returns every triple in insertion order.
func (s *Store) All() []Triple { return s.triples }

// Len returns the number of triples held.
func (s *Store) Len() int { return len(s.triples) }

// Filter returns the sub-list of triples matching every non-nil
// constraint, in original insertion order, per spec §4.7.
func (s *Store) Filter(subject, predicate *string, object *Object) []Triple {
	var out []Triple
	for _, t := range s.triples {
		if subject != nil && t.Subject != *subject {
			continue
		}
		if predicate != nil && t.Predicate != *predicate {
			continue
		}
		if object != nil && t.Object != *object {
			continue
		}
		out = append(out, t)
	}
	return out
}

// BySubject is a convenience wrapper over Filter constraining only
// the subject position.
func (s *Store) BySubject(subject string) []Triple {
	return s.Filter(&subject, nil, nil)
}

// NodeTypes returns the object values of every triple whose subject
// is nodeURI and whose predicate is the type predicate (spec §4.7).
func (s *Store) NodeTypes(nodeURI string) []string {
	pred := TypePredicate
	matches := s.Filter(&nodeURI, &pred, nil)
	out := make([]string, len(matches))
	for i, m := range matches {
		out[i] = m.Object.Value
	}
	return out
}

// RemoveSubject removes every triple whose subject equals uri,
// preserving the relative order of the remaining triples (spec §4.7
// triple-cascade property).
func (s *Store) RemoveSubject(uri string) int {
	kept := s.triples[:0:0]
	removed := 0
	for _, t := range s.triples {
		if t.Subject == uri {
			removed++
			continue
		}
		kept = append(kept, t)
	}
	s.triples = kept
	return removed
}

// RewriteSubject replaces every occurrence of oldURI as a subject
// with newURI, preserving order; used by the legacy URI upgrade
// (spec §4.7/§8 scenario 5), which renames subjects in place rather
// than duplicating facts.
func (s *Store) RewriteSubject(oldURI, newURI string) {
	for i, t := range s.triples {
		if t.Subject == oldURI {
			s.triples[i].Subject = newURI
		}
	}
}

// CloneSubject appends a copy of every triple whose subject is oldURI
// with its subject replaced by newURI, leaving the originals intact.
// Used by group-clone re-subjecting (spec §4.8): a cloned node keeps
// its own copy of whatever facts were asserted about the original.
func (s *Store) CloneSubject(oldURI, newURI string) {
	var toAppend []Triple
	for _, t := range s.triples {
		if t.Subject == oldURI {
			toAppend = append(toAppend, Triple{Subject: newURI, Predicate: t.Predicate, Object: t.Object})
		}
	}
	s.triples = append(s.triples, toAppend...)
}
