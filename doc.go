// Package capsule adapts procedural capsule prims to renderer-facing meshes.
//
// # Overview
//
// A capsule is authored as a handful of attributes: a height, a radius
// family and a spine axis. Two schema layouts describe the same shape:
//
//   - "Capsule" (legacy): one radius shared by both hemispherical caps
//   - "Capsule_1" (current): independent radiusBottom and radiusTop
//
// The Adapter reads whichever layout a prim uses, generates mesh points and
// the shared capsule topology, and maps attribute edits and time variability
// to dirty flags so that a render index recomputes only what changed.
//
// # Quick Start
//
//	st, _ := stage.Load("scene.toml")
//	prim, _ := st.Prim("/World/pill")
//
//	a := capsule.NewAdapter()
//	points := a.GetPoints(prim, stage.TimeCode(1))
//	topo := a.GetTopology(prim, prim.Path(), stage.TimeCode(1))
//
//	bits := a.ProcessPropertyChange(prim, prim.Path(), "radiusTop")
//	// bits == dirty.DirtyPoints
//
// # Failure Model
//
// Nothing in this package returns an error. An attribute that cannot be
// read leaves its field at the previous or default value and logs a
// warning through Logger; see SetLogger.
//
// # Architecture
//
//   - capsule: parameter extraction, change and variability tracking, Adapter
//   - geom: point and topology generation, axis basis, GPU draw layout
//   - dirty: invalidation flags and resolvers
//   - stage: the prim/attribute contract and an in-memory stage
package capsule
