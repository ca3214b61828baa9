package capsule

import (
	"github.com/gogpu/capsule/dirty"
	"github.com/gogpu/capsule/stage"
)

// trackPointsVariability ORs dirty.DirtyPoints into timeVarying when any
// points-affecting attribute of prim might vary over time. It returns the
// attribute that triggered, or "" when none did or the bit was already set.
func trackPointsVariability(prim stage.Prim, timeVarying *dirty.Bits) string {
	for _, name := range pointsAttrsFor(prim) {
		// Once set, further checks cannot change the result.
		if timeVarying.Has(dirty.DirtyPoints) {
			return ""
		}
		if stage.IsVarying(prim, name) {
			*timeVarying |= dirty.DirtyPoints
			Logger().Debug("capsule: time-varying attribute",
				"prim", prim.Path().String(),
				"attribute", name,
				"bits", dirty.DirtyPoints.String())
			return name
		}
	}
	return ""
}
