// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package stage

import (
	"fmt"
	"math"
	"slices"
	"sort"
	"sync"
)

// Sample is one authored time sample.
type Sample struct {
	Time  float64
	Value any
}

// MemAttribute is an in-memory Attribute with an optional default value and
// any number of time samples.
//
// Between samples, numeric values are interpolated linearly and other
// values are held from the earlier sample. Outside the sampled range the
// nearest sample is held.
//
// Reads may run concurrently; authoring must not overlap with reads.
type MemAttribute struct {
	name       string
	def        any
	hasDefault bool
	samples    []Sample // sorted by Time
}

// NewAttribute returns an attribute with only a default value.
func NewAttribute(name string, value any) *MemAttribute {
	return &MemAttribute{name: name, def: value, hasDefault: true}
}

// NewSampledAttribute returns an attribute with time samples and no
// default. Samples may be given in any order; duplicate or non-finite
// times are rejected.
func NewSampledAttribute(name string, samples ...Sample) (*MemAttribute, error) {
	a := &MemAttribute{name: name}
	for _, s := range samples {
		if err := a.SetSample(s.Time, s.Value); err != nil {
			return nil, err
		}
	}
	return a, nil
}

// SetDefault sets the default value.
func (a *MemAttribute) SetDefault(v any) {
	a.def = v
	a.hasDefault = true
}

// SetSample authors a value at time t, replacing any sample already there.
func (a *MemAttribute) SetSample(t float64, v any) error {
	if math.IsNaN(t) || math.IsInf(t, 0) {
		return fmt.Errorf("%w: %s at time %v", ErrInvalidSample, a.name, t)
	}
	i := sort.Search(len(a.samples), func(i int) bool { return a.samples[i].Time >= t })
	if i < len(a.samples) && a.samples[i].Time == t {
		a.samples[i].Value = v
		return nil
	}
	a.samples = slices.Insert(a.samples, i, Sample{Time: t, Value: v})
	return nil
}

// Name returns the attribute name.
func (a *MemAttribute) Name() string {
	return a.name
}

// NumSamples returns the number of authored time samples.
func (a *MemAttribute) NumSamples() int {
	return len(a.samples)
}

// ValueMightBeTimeVarying reports whether more than one sample is authored.
func (a *MemAttribute) ValueMightBeTimeVarying() bool {
	return len(a.samples) > 1
}

// Get returns the value at t. At the default time the default value wins,
// falling back to the first sample. At a numeric time samples win, falling
// back to the default value.
func (a *MemAttribute) Get(t TimeCode) (any, bool) {
	if len(a.samples) == 0 {
		return a.def, a.hasDefault
	}
	if t.IsDefault() {
		if a.hasDefault {
			return a.def, true
		}
		return a.samples[0].Value, true
	}

	tf := float64(t)
	i := sort.Search(len(a.samples), func(i int) bool { return a.samples[i].Time >= tf })
	switch {
	case i == 0:
		return a.samples[0].Value, true
	case i == len(a.samples):
		return a.samples[i-1].Value, true
	case a.samples[i].Time == tf:
		return a.samples[i].Value, true
	}

	lo, hi := a.samples[i-1], a.samples[i]
	x, okLo := toDouble(lo.Value)
	y, okHi := toDouble(hi.Value)
	if !okLo || !okHi {
		return lo.Value, true
	}
	alpha := (tf - lo.Time) / (hi.Time - lo.Time)
	return x + (y-x)*alpha, true
}

// MemPrim is an in-memory Prim.
type MemPrim struct {
	path     Path
	typeName string
	schemas  []string

	mu    sync.RWMutex
	attrs map[string]*MemAttribute
}

// NewPrim returns a prim of typeName at path. Additional schema types it
// conforms to can be listed in schemas.
func NewPrim(path Path, typeName string, schemas ...string) *MemPrim {
	return &MemPrim{
		path:     path,
		typeName: typeName,
		schemas:  schemas,
		attrs:    make(map[string]*MemAttribute),
	}
}

// Path returns the prim path.
func (p *MemPrim) Path() Path {
	return p.path
}

// TypeName returns the concrete schema type.
func (p *MemPrim) TypeName() string {
	return p.typeName
}

// IsA reports whether schemaType is the prim's type or one of its
// additional schemas.
func (p *MemPrim) IsA(schemaType string) bool {
	return schemaType != "" && (p.typeName == schemaType || slices.Contains(p.schemas, schemaType))
}

// Attribute returns the named attribute.
func (p *MemPrim) Attribute(name string) (Attribute, bool) {
	p.mu.RLock()
	a, ok := p.attrs[name]
	p.mu.RUnlock()
	if !ok {
		return nil, false
	}
	return a, true
}

// AttributeNames returns the authored attribute names in sorted order.
func (p *MemPrim) AttributeNames() []string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	names := make([]string, 0, len(p.attrs))
	for n := range p.attrs {
		names = append(names, n)
	}
	slices.Sort(names)
	return names
}

// SetAttribute adds or replaces an attribute.
func (p *MemPrim) SetAttribute(a *MemAttribute) *MemPrim {
	p.mu.Lock()
	p.attrs[a.name] = a
	p.mu.Unlock()
	return p
}

// Set authors a default value for the named attribute, creating it when
// needed, and returns p for chaining.
func (p *MemPrim) Set(name string, value any) *MemPrim {
	p.mu.Lock()
	defer p.mu.Unlock()
	if a, ok := p.attrs[name]; ok {
		a.SetDefault(value)
		return p
	}
	p.attrs[name] = NewAttribute(name, value)
	return p
}

// SetSample authors a time sample for the named attribute, creating it
// when needed.
func (p *MemPrim) SetSample(name string, t float64, value any) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	a, ok := p.attrs[name]
	if !ok {
		a = &MemAttribute{name: name}
	}
	if err := a.SetSample(t, value); err != nil {
		return err
	}
	p.attrs[name] = a
	return nil
}

// Stage is an in-memory collection of prims keyed by path.
// It is safe for concurrent use.
type Stage struct {
	mu    sync.RWMutex
	prims map[Path]*MemPrim
	order []Path
}

// New returns an empty stage.
func New() *Stage {
	return &Stage{prims: make(map[Path]*MemPrim)}
}

// Add inserts prim. It fails if the path is invalid or already taken.
func (s *Stage) Add(prim *MemPrim) error {
	if _, err := ParsePath(string(prim.Path())); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.prims[prim.Path()]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicatePrim, prim.Path())
	}
	s.prims[prim.Path()] = prim
	s.order = append(s.order, prim.Path())
	return nil
}

// Prim returns the prim at path.
func (s *Stage) Prim(path Path) (*MemPrim, error) {
	s.mu.RLock()
	p, ok := s.prims[path]
	s.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrPrimNotFound, path)
	}
	return p, nil
}

// Prims returns all prims in insertion order.
func (s *Stage) Prims() []*MemPrim {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*MemPrim, 0, len(s.order))
	for _, p := range s.order {
		out = append(out, s.prims[p])
	}
	return out
}

// Len returns the number of prims.
func (s *Stage) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.prims)
}
