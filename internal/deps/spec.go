// Copyright 2025 Jetify Inc. and contributors. All rights reserved.
// Use of this source code is governed by the license in the LICENSE file.

package deps

import (
	"encoding/json"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Entry is one dependency of a Spec.
type Entry struct {
	Name Name `json:"name" yaml:"name" toml:"name"`
	Ref  Ref  `json:"ref" yaml:"ref" toml:"ref"`
}

// Spec maps dependency names to version references. It keeps insertion
// order, which only matters for output and diagnostics.
type Spec struct {
	m *orderedmap.OrderedMap[Name, Ref]
}

// NewSpec returns a spec holding entries in the given order.
func NewSpec(entries ...Entry) *Spec {
	s := &Spec{m: orderedmap.New[Name, Ref]()}
	for _, e := range entries {
		s.m.Set(e.Name, e.Ref)
	}
	return s
}

// Clone returns an independent copy of s.
func (s *Spec) Clone() *Spec {
	return NewSpec(s.Entries()...)
}

func (s *Spec) Get(n Name) (Ref, bool) { return s.m.Get(n) }

func (s *Spec) Has(n Name) bool {
	_, ok := s.m.Get(n)
	return ok
}

func (s *Spec) Len() int { return s.m.Len() }

// Entries returns the entries in insertion order.
func (s *Spec) Entries() []Entry {
	out := make([]Entry, 0, s.m.Len())
	for pair := s.m.Oldest(); pair != nil; pair = pair.Next() {
		out = append(out, Entry{Name: pair.Key, Ref: pair.Value})
	}
	return out
}

// Names returns the dependency names in insertion order.
func (s *Spec) Names() []Name {
	out := make([]Name, 0, s.m.Len())
	for pair := s.m.Oldest(); pair != nil; pair = pair.Next() {
		out = append(out, pair.Key)
	}
	return out
}

// Refs returns the version references in insertion order.
func (s *Spec) Refs() []Ref {
	out := make([]Ref, 0, s.m.Len())
	for pair := s.m.Oldest(); pair != nil; pair = pair.Next() {
		out = append(out, pair.Value)
	}
	return out
}

// Equal reports whether s and other hold the same entries, ignoring order.
func (s *Spec) Equal(other *Spec) bool {
	if s.Len() != other.Len() {
		return false
	}
	for pair := s.m.Oldest(); pair != nil; pair = pair.Next() {
		ref, ok := other.Get(pair.Key)
		if !ok || ref != pair.Value {
			return false
		}
	}
	return true
}

// set and remove are only used while resolving, on a private copy.
func (s *Spec) set(n Name, r Ref) { s.m.Set(n, r) }

func (s *Spec) remove(names ...Name) {
	for _, n := range names {
		s.m.Delete(n)
	}
}

// MarshalJSON encodes s as a JSON object in insertion order.
func (s *Spec) MarshalJSON() ([]byte, error) {
	om := orderedmap.New[string, string]()
	for pair := s.m.Oldest(); pair != nil; pair = pair.Next() {
		om.Set(string(pair.Key), pair.Value.String())
	}
	return json.Marshal(om)
}
