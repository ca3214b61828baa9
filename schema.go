package capsule

import (
	"github.com/gogpu/capsule/geom"
	"github.com/gogpu/capsule/stage"
)

// Attribute names read by the capsule adapter.
const (
	AttrHeight       = "height"
	AttrRadius       = "radius"
	AttrRadiusBottom = "radiusBottom"
	AttrRadiusTop    = "radiusTop"
	AttrAxis         = "axis"
)

// SchemaVariant identifies one of the authored capsule layouts.
type SchemaVariant uint8

const (
	// SchemaLegacy is the "Capsule" layout with one radius shared by both
	// caps.
	SchemaLegacy SchemaVariant = iota
	// SchemaCurrent is the "Capsule_1" layout with independent
	// radiusBottom and radiusTop.
	SchemaCurrent
)

// String returns the variant name.
func (v SchemaVariant) String() string {
	switch v {
	case SchemaLegacy:
		return "legacy"
	case SchemaCurrent:
		return "current"
	default:
		return "unknown"
	}
}

// TypeName returns the prim schema type the variant matches.
func (v SchemaVariant) TypeName() string {
	if int(v) < len(schemas) {
		return schemas[v].typeName
	}
	return ""
}

// schema is the capability set one variant provides for extraction:
// height, the two radii and the axis. Height and axis are read the same
// way by every variant; radii are variant specific.
type schema struct {
	variant  SchemaVariant
	typeName string
	// radiusAttrs lists the radius-family attributes the variant authors.
	radiusAttrs []string
	// readRadii stores the bottom and top radii into p, leaving a field
	// untouched when its attribute cannot be read.
	readRadii func(r *attrReader, p *Params)
}

// schemas is tried in order. A prim that matches more than one entry is
// extracted once per match, later matches overwriting earlier fields.
var schemas = [...]schema{
	{
		variant:     SchemaLegacy,
		typeName:    "Capsule",
		radiusAttrs: []string{AttrRadius},
		readRadii: func(r *attrReader, p *Params) {
			var radius float64
			if r.double(AttrRadius, &radius) {
				p.RadiusBottom = radius
				p.RadiusTop = radius
			}
		},
	},
	{
		variant:     SchemaCurrent,
		typeName:    "Capsule_1",
		radiusAttrs: []string{AttrRadiusBottom, AttrRadiusTop},
		readRadii: func(r *attrReader, p *Params) {
			r.double(AttrRadiusBottom, &p.RadiusBottom)
			r.double(AttrRadiusTop, &p.RadiusTop)
		},
	},
}

// pointsAttrs is every attribute name, across all variants, whose edit
// moves generated points.
var pointsAttrs = func() map[string]struct{} {
	m := map[string]struct{}{AttrHeight: {}, AttrAxis: {}}
	for _, s := range schemas {
		for _, n := range s.radiusAttrs {
			m[n] = struct{}{}
		}
	}
	return m
}()

// MatchSchemas returns the variants prim conforms to, in extraction order.
func MatchSchemas(prim stage.Prim) []SchemaVariant {
	var out []SchemaVariant
	for _, s := range schemas {
		if prim.IsA(s.typeName) {
			out = append(out, s.variant)
		}
	}
	return out
}

// IsCapsule reports whether prim conforms to any capsule variant.
func IsCapsule(prim stage.Prim) bool {
	for _, s := range schemas {
		if prim.IsA(s.typeName) {
			return true
		}
	}
	return false
}

// pointsAttrsFor returns the points-affecting attributes relevant to the
// variants prim matches: height, each matching variant's radii, then axis.
func pointsAttrsFor(prim stage.Prim) []string {
	var radii []string
	for _, s := range schemas {
		if prim.IsA(s.typeName) {
			radii = append(radii, s.radiusAttrs...)
		}
	}
	if radii == nil {
		return nil
	}
	names := make([]string, 0, len(radii)+2)
	names = append(names, AttrHeight)
	names = append(names, radii...)
	return append(names, AttrAxis)
}

// attrReader performs best-effort typed reads for one (prim, time) query
// and reports each failure as a warning.
type attrReader struct {
	prim   stage.Prim
	time   stage.TimeCode
	schema string
}

func (r *attrReader) double(name string, dst *float64) bool {
	v, ok := stage.GetDouble(r.prim, name, r.time)
	if !ok {
		r.warn(name, "double")
		return false
	}
	*dst = v
	return true
}

func (r *attrReader) axis(dst *geom.Axis) bool {
	tok, ok := stage.GetToken(r.prim, AttrAxis, r.time)
	if !ok {
		r.warn(AttrAxis, "token")
		return false
	}
	axis, ok := geom.ParseAxis(tok)
	if !ok {
		Logger().Warn("capsule: axis token not one of X, Y, Z",
			"prim", r.prim.Path().String(),
			"schema", r.schema,
			"token", tok)
		return false
	}
	*dst = axis
	return true
}

func (r *attrReader) warn(name, typ string) {
	Logger().Warn("capsule: could not evaluate attribute",
		"prim", r.prim.Path().String(),
		"schema", r.schema,
		"attribute", name,
		"type", typ,
		"timecode", r.time.String())
}
