package capsule

import (
	"github.com/gogpu/capsule/dirty"
	"github.com/gogpu/capsule/geom"
	"github.com/gogpu/capsule/stage"
)

// PrimTypeMesh is the render-index prim type capsules are drawn as.
const PrimTypeMesh = "mesh"

// RootSubprim names the single subprim a capsule exposes.
const RootSubprim = ""

// IndexProxy is the render index as seen by an adapter during population.
type IndexProxy interface {
	// IsRprimTypeSupported reports whether the index can draw typeID.
	IsRprimTypeSupported(typeID string) bool
	// InsertRprim registers a renderable prim of typeID at cachePath.
	InsertRprim(typeID string, cachePath stage.Path, prim stage.Prim)
}

// InstancerContext carries the enclosing instancer when a prim is
// populated as an instance prototype.
type InstancerContext struct {
	InstancerCachePath stage.Path
	ChildName          string
}

// ResolveCachePath returns the render-index path for prim: the prim path,
// or the instancer's child path when ic names one.
func ResolveCachePath(prim stage.Prim, ic *InstancerContext) stage.Path {
	if ic == nil || ic.InstancerCachePath.IsEmpty() || ic.ChildName == "" {
		return prim.Path()
	}
	return ic.InstancerCachePath.AppendChild(ic.ChildName)
}

// StageGlobals is the per-query evaluation state handed to SubprimData.
type StageGlobals struct {
	Time stage.TimeCode
}

// Adapter turns capsule prims of either schema variant into renderable
// meshes and tracks which renderer state their edits invalidate.
//
// An Adapter is immutable after creation and safe for concurrent use.
// Every query is a pure function of its arguments apart from the shared
// capsule topology, which is built once per process.
type Adapter struct {
	base     BaseAdapter
	fallback dirty.Resolver
}

// NewAdapter creates an adapter.
func NewAdapter(opts ...AdapterOption) *Adapter {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Adapter{base: o.base, fallback: o.fallback}
}

// ListSubprims returns the subprims of prim: always just RootSubprim.
func (a *Adapter) ListSubprims(stage.Prim) []string {
	return []string{RootSubprim}
}

// SubprimType returns PrimTypeMesh for the root subprim and "" otherwise.
func (a *Adapter) SubprimType(_ stage.Prim, subprim string) string {
	if subprim == RootSubprim {
		return PrimTypeMesh
	}
	return ""
}

// SubprimData returns the geometry source for the root subprim evaluated
// at globals.Time, or nil for any other subprim.
func (a *Adapter) SubprimData(prim stage.Prim, subprim string, globals StageGlobals) *PrimDataSource {
	if subprim != RootSubprim {
		return nil
	}
	return &PrimDataSource{adapter: a, prim: prim, time: globals.Time}
}

// InvalidateSubprim returns the union of the flags invalidated by each
// changed attribute of the root subprim, or dirty.Clean for any other
// subprim.
func (a *Adapter) InvalidateSubprim(prim stage.Prim, subprim string, changed []string) dirty.Bits {
	if subprim != RootSubprim {
		return dirty.Clean
	}
	var out dirty.Bits
	for _, name := range changed {
		out |= a.ProcessPropertyChange(prim, prim.Path(), name)
	}
	return out
}

// IsSupported reports whether index can draw capsules.
func (a *Adapter) IsSupported(index IndexProxy) bool {
	return index.IsRprimTypeSupported(PrimTypeMesh)
}

// Populate registers prim with index as a mesh and returns its cache path.
func (a *Adapter) Populate(prim stage.Prim, index IndexProxy, ic *InstancerContext) stage.Path {
	cachePath := ResolveCachePath(prim, ic)
	index.InsertRprim(PrimTypeMesh, cachePath, prim)
	return cachePath
}

// TrackVariability ORs into timeVarying every flag whose source attributes
// might vary over time: first the base adapter's, then dirty.DirtyPoints
// when height, a radius or axis is sampled.
func (a *Adapter) TrackVariability(prim stage.Prim, cachePath stage.Path, timeVarying *dirty.Bits, ic *InstancerContext) {
	a.base.TrackVariability(prim, cachePath, timeVarying, ic)
	trackPointsVariability(prim, timeVarying)
}

// ProcessPropertyChange returns dirty.DirtyPoints for capsule dimension
// attributes and defers every other name to the fallback resolver, or to
// the base adapter when none is configured.
func (a *Adapter) ProcessPropertyChange(prim stage.Prim, cachePath stage.Path, property string) dirty.Bits {
	return ProcessPropertyChange(property, a.resolver(prim, cachePath))
}

func (a *Adapter) resolver(prim stage.Prim, cachePath stage.Path) dirty.Resolver {
	if a.fallback != nil {
		return a.fallback
	}
	return dirty.ResolverFunc(func(name string) dirty.Bits {
		return a.base.ProcessPropertyChange(prim, cachePath, name)
	})
}

// GetPoints returns the capsule points of prim at time t in prim-local
// space. The count always equals GetTopology's point count.
func (a *Adapter) GetPoints(prim stage.Prim, t stage.TimeCode) []geom.Vec3f {
	p := ExtractParams(prim, t)
	basis := p.Basis()
	return geom.CapsulePoints(p.RadiusBottom, p.RadiusTop, p.Height, &basis)
}

// GetTopology returns the topology shared by every capsule. The arguments
// are accepted for interface symmetry and do not affect the result; the
// returned slices must not be modified.
func (a *Adapter) GetTopology(stage.Prim, stage.Path, stage.TimeCode) geom.MeshTopology {
	return geom.CapsuleTopology()
}
