// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package dirty

// Resolver maps an edited attribute name to the flags it invalidates.
//
// Adapters handle the names they own and hand every other name to a more
// general Resolver.
type Resolver interface {
	Resolve(name string) Bits
}

// ResolverFunc adapts an ordinary function to the Resolver interface.
type ResolverFunc func(name string) Bits

// Resolve calls f(name).
func (f ResolverFunc) Resolve(name string) Bits {
	return f(name)
}

// Constant returns a Resolver that reports the same flags for every name.
func Constant(b Bits) Resolver {
	return ResolverFunc(func(string) Bits { return b })
}

// Table is a Resolver backed by an exact-name lookup with a fallback value
// for names not in the table.
type Table struct {
	Names    map[string]Bits
	Fallback Bits
}

// Resolve returns the table entry for name, or t.Fallback.
func (t Table) Resolve(name string) Bits {
	if b, ok := t.Names[name]; ok {
		return b
	}
	return t.Fallback
}

// Union resolves every name with r and returns the combined flags.
func Union(r Resolver, names []string) Bits {
	var out Bits
	for _, n := range names {
		out |= r.Resolve(n)
	}
	return out
}
