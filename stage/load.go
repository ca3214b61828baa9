// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package stage

import (
	"fmt"
	"io"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// sceneFile is the TOML layout read by Decode:
//
//	[[prim]]
//	path = "/World/pill"
//	type = "Capsule_1"
//	schemas = []                # optional extra schema types
//
//	[prim.attributes]           # default values
//	height = 4.0
//	axis = "X"
//
//	[[prim.samples]]            # time samples
//	attribute = "radiusTop"
//	time = 1
//	value = 0.5
type sceneFile struct {
	Prims []primSpec `toml:"prim"`
}

type primSpec struct {
	Path       string         `toml:"path"`
	Type       string         `toml:"type"`
	Schemas    []string       `toml:"schemas"`
	Attributes map[string]any `toml:"attributes"`
	Samples    []sampleSpec   `toml:"samples"`
}

type sampleSpec struct {
	Attribute string  `toml:"attribute"`
	Time      float64 `toml:"time"`
	Value     any     `toml:"value"`
}

// Load reads a TOML scene file from path.
func Load(path string) (*Stage, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open scene: %w", err)
	}
	defer f.Close()

	s, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Decode builds a stage from a TOML scene document. Unknown keys are
// rejected so that misspelled attribute tables do not pass silently.
func Decode(r io.Reader) (*Stage, error) {
	var doc sceneFile
	dec := toml.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("parse scene: %w", err)
	}

	s := New()
	for _, ps := range doc.Prims {
		path, err := ParsePath(ps.Path)
		if err != nil {
			return nil, err
		}
		prim := NewPrim(path, ps.Type, ps.Schemas...)
		for name, v := range ps.Attributes {
			prim.Set(name, v)
		}
		for _, smp := range ps.Samples {
			if smp.Attribute == "" {
				return nil, fmt.Errorf("%w: %s: sample without attribute name", ErrInvalidSample, path)
			}
			if err := prim.SetSample(smp.Attribute, smp.Time, smp.Value); err != nil {
				return nil, fmt.Errorf("%s: %w", path, err)
			}
		}
		if err := s.Add(prim); err != nil {
			return nil, err
		}
	}
	return s, nil
}
