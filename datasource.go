package capsule

import (
	"github.com/gogpu/capsule/geom"
	"github.com/gogpu/capsule/stage"
)

// PrimDataSource is the geometry handle SubprimData returns for a capsule
// at one evaluation time. Values are computed on each call; nothing is
// retained between calls.
type PrimDataSource struct {
	adapter *Adapter
	prim    stage.Prim
	time    stage.TimeCode
}

// Path returns the source prim path.
func (d *PrimDataSource) Path() stage.Path {
	return d.prim.Path()
}

// Time returns the evaluation time.
func (d *PrimDataSource) Time() stage.TimeCode {
	return d.time
}

// Params returns the canonical capsule parameters.
func (d *PrimDataSource) Params() Params {
	return ExtractParams(d.prim, d.time)
}

// Points returns the mesh points.
func (d *PrimDataSource) Points() []geom.Vec3f {
	return d.adapter.GetPoints(d.prim, d.time)
}

// Topology returns the shared capsule topology.
func (d *PrimDataSource) Topology() geom.MeshTopology {
	return d.adapter.GetTopology(d.prim, d.prim.Path(), d.time)
}

// DrawBatch returns the mesh packed for GPU upload as a triangle list.
func (d *PrimDataSource) DrawBatch() geom.DrawBatch {
	return geom.NewDrawBatch(d.Points(), geom.CapsuleTriangles())
}
