package capsule

import (
	"github.com/gogpu/capsule/geom"
	"github.com/gogpu/capsule/stage"
)

// Params are the canonical capsule dimensions, independent of which schema
// variant authored them. No positivity is enforced.
type Params struct {
	Height       float64
	RadiusBottom float64
	RadiusTop    float64
	Axis         geom.Axis
}

// DefaultParams returns the values used for any field that cannot be read:
// height 2, both radii 0.5, spine along Z.
func DefaultParams() Params {
	return Params{
		Height:       2.0,
		RadiusBottom: 0.5,
		RadiusTop:    0.5,
		Axis:         geom.AxisZ,
	}
}

// Basis returns the transform that orients generator space along p.Axis.
func (p Params) Basis() geom.Matrix4 {
	return geom.Basis(p.Axis)
}

// ExtractParams reads capsule parameters from prim at time t, starting
// from DefaultParams.
func ExtractParams(prim stage.Prim, t stage.TimeCode) Params {
	return ExtractParamsFrom(prim, t, DefaultParams())
}

// ExtractParamsFrom reads capsule parameters from prim at time t, starting
// from prior.
//
// Each schema variant the prim matches is read in order: legacy, then
// current. A field whose attribute cannot be read keeps its prior value and
// a warning is logged; the remaining fields are still read. A prim that
// matches no variant yields prior unchanged.
//
// A prim matching both variants is read twice with the current variant
// overwriting legacy fields it can read, and an "ambiguous capsule schema"
// warning is logged.
func ExtractParamsFrom(prim stage.Prim, t stage.TimeCode, prior Params) Params {
	p := prior
	matched := 0
	for i := range schemas {
		s := &schemas[i]
		if !prim.IsA(s.typeName) {
			continue
		}
		matched++
		if matched == 2 {
			Logger().Warn("capsule: ambiguous capsule schema, later variant overrides",
				"prim", prim.Path().String(),
				"schemas", MatchSchemas(prim))
		}

		r := &attrReader{prim: prim, time: t, schema: s.typeName}
		r.double(AttrHeight, &p.Height)
		s.readRadii(r, &p)
		r.axis(&p.Axis)
	}
	return p
}
