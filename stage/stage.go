// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package stage defines the scene-description contract that imaging
// adapters read from: prims with a path, a schema type and named,
// time-sampled attributes.
//
// Adapters depend only on the Prim and Attribute interfaces. Stage is an
// in-memory implementation used by tests and by the capsulegen tool; Load
// and Decode build one from a TOML scene file.
package stage

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// Sentinel errors returned by stage construction and loading.
var (
	ErrInvalidPath   = errors.New("stage: invalid prim path")
	ErrPrimNotFound  = errors.New("stage: prim not found")
	ErrDuplicatePrim = errors.New("stage: duplicate prim")
	ErrInvalidSample = errors.New("stage: invalid time sample")
)

// Path is an absolute, slash-separated prim path such as "/World/capsule".
// The empty Path is the absent path.
type Path string

// ParsePath validates s and returns it as a Path.
func ParsePath(s string) (Path, error) {
	if s == "/" {
		return Path(s), nil
	}
	if !strings.HasPrefix(s, "/") || strings.HasSuffix(s, "/") || strings.Contains(s, "//") {
		return "", fmt.Errorf("%w: %q", ErrInvalidPath, s)
	}
	return Path(s), nil
}

// IsEmpty reports whether p is the absent path.
func (p Path) IsEmpty() bool {
	return p == ""
}

// AppendChild returns the path of the child named name.
func (p Path) AppendChild(name string) Path {
	if p == "/" || p == "" {
		return Path("/" + name)
	}
	return Path(string(p) + "/" + name)
}

// Name returns the last path element.
func (p Path) Name() string {
	s := string(p)
	return s[strings.LastIndexByte(s, '/')+1:]
}

// String returns the path text.
func (p Path) String() string {
	return string(p)
}

// TimeCode is an evaluation time. The default time code, returned by
// DefaultTime, selects an attribute's default (unsampled) value.
type TimeCode float64

// DefaultTime returns the default time code.
func DefaultTime() TimeCode {
	return TimeCode(math.NaN())
}

// IsDefault reports whether t is the default time code.
func (t TimeCode) IsDefault() bool {
	return math.IsNaN(float64(t))
}

// String returns "default" or the numeric time.
func (t TimeCode) String() string {
	if t.IsDefault() {
		return "default"
	}
	return fmt.Sprintf("%g", float64(t))
}

// Attribute is a named, possibly time-sampled value on a prim.
type Attribute interface {
	// Name returns the attribute name.
	Name() string
	// Get returns the value at time t. ok is false when no value is
	// authored.
	Get(t TimeCode) (value any, ok bool)
	// ValueMightBeTimeVarying reports whether more than one time sample
	// is authored.
	ValueMightBeTimeVarying() bool
}

// Prim is an authored scene entity.
type Prim interface {
	// Path returns the prim path.
	Path() Path
	// TypeName returns the prim's concrete schema type.
	TypeName() string
	// IsA reports whether the prim conforms to schemaType.
	IsA(schemaType string) bool
	// Attribute returns the named attribute, or false if the prim has none.
	Attribute(name string) (Attribute, bool)
}

// GetDouble reads the named attribute of prim as a double at t. Integer and
// single-precision values are widened. ok is false when the attribute is
// missing, has no value, or holds another type.
func GetDouble(prim Prim, name string, t TimeCode) (float64, bool) {
	attr, ok := prim.Attribute(name)
	if !ok {
		return 0, false
	}
	v, ok := attr.Get(t)
	if !ok {
		return 0, false
	}
	return toDouble(v)
}

// GetToken reads the named attribute of prim as a token at t. ok is false
// when the attribute is missing, has no value, or is not a string.
func GetToken(prim Prim, name string, t TimeCode) (string, bool) {
	attr, ok := prim.Attribute(name)
	if !ok {
		return "", false
	}
	v, ok := attr.Get(t)
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

// IsVarying reports whether the named attribute of prim exists and might
// vary over time.
func IsVarying(prim Prim, name string) bool {
	attr, ok := prim.Attribute(name)
	return ok && attr.ValueMightBeTimeVarying()
}

func toDouble(v any) (float64, bool) {
	switch x := v.(type) {
	case float64:
		return x, true
	case float32:
		return float64(x), true
	case int:
		return float64(x), true
	case int64:
		return float64(x), true
	case int32:
		return float64(x), true
	default:
		return 0, false
	}
}
