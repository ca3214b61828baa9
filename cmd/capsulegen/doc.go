// Command capsulegen evaluates capsule prims from a TOML scene file.
//
// It prints generated points, exports Wavefront OBJ meshes, summarizes the
// shared topology and reports which renderer state an attribute edit
// invalidates:
//
//	capsulegen --scene scene.toml inspect
//	capsulegen --scene scene.toml --time 12 points /World/pill --format obj > pill.obj
//	capsulegen --scene scene.toml invalidate /World/pill radiusTop displayColor
package main
