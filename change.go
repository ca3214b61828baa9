package capsule

import "github.com/gogpu/capsule/dirty"

// AffectsPoints reports whether editing the named attribute moves the
// generated points of a capsule of any schema variant.
func AffectsPoints(name string) bool {
	_, ok := pointsAttrs[name]
	return ok
}

// ProcessPropertyChange maps an edited attribute name to the flags it
// invalidates. Capsule dimension attributes map to dirty.DirtyPoints;
// every other name is resolved by fallback and its result returned
// unchanged.
func ProcessPropertyChange(name string, fallback dirty.Resolver) dirty.Bits {
	if AffectsPoints(name) {
		return dirty.DirtyPoints
	}
	return fallback.Resolve(name)
}
