package capsule

import (
	"strings"

	"github.com/gogpu/capsule/dirty"
	"github.com/gogpu/capsule/stage"
)

// BaseAdapter is the generic geometric-prim behavior the capsule adapter
// layers on top of. It handles every attribute the capsule adapter does not
// own: transforms, visibility, primvars and so on.
type BaseAdapter interface {
	// TrackVariability ORs into timeVarying the flags of generic
	// attributes that might vary over time.
	TrackVariability(prim stage.Prim, cachePath stage.Path, timeVarying *dirty.Bits, ic *InstancerContext)
	// ProcessPropertyChange returns the flags invalidated by editing
	// property.
	ProcessPropertyChange(prim stage.Prim, cachePath stage.Path, property string) dirty.Bits
}

// Attribute name prefixes and names handled by GprimAdapter.
const (
	xformOpPrefix         = "xformOp:"
	primvarsPrefix        = "primvars:"
	materialBindingPrefix = "material:binding"
)

// gprimChanges maps exact generic attribute names to their flags.
var gprimChanges = map[string]dirty.Bits{
	"visibility":     dirty.DirtyVisibility,
	"purpose":        dirty.DirtyRenderTag,
	"extent":         dirty.DirtyExtent,
	"doubleSided":    dirty.DirtyDoubleSided,
	"xformOpOrder":   dirty.DirtyTransform,
	"displayColor":   dirty.DirtyPrimvar,
	"displayOpacity": dirty.DirtyPrimvar,
	"orientation":    dirty.DirtyTopology,
}

// gprimVarying lists the generic attributes checked for time variability
// and the flag each one sets.
var gprimVarying = []struct {
	name string
	bit  dirty.Bits
}{
	{"extent", dirty.DirtyExtent},
	{"visibility", dirty.DirtyVisibility},
	{"displayColor", dirty.DirtyPrimvar},
	{"displayOpacity", dirty.DirtyPrimvar},
}

// GprimAdapter is the default BaseAdapter.
//
// Names it does not recognize resolve to dirty.AllDirty, so an unexpected
// edit never leaves stale renderer state behind.
type GprimAdapter struct{}

// ProcessPropertyChange implements BaseAdapter.
func (GprimAdapter) ProcessPropertyChange(_ stage.Prim, _ stage.Path, property string) dirty.Bits {
	return gprimResolve(property)
}

func gprimResolve(property string) dirty.Bits {
	if b, ok := gprimChanges[property]; ok {
		return b
	}
	switch {
	case strings.HasPrefix(property, xformOpPrefix):
		return dirty.DirtyTransform
	case strings.HasPrefix(property, primvarsPrefix):
		return dirty.DirtyPrimvar
	case strings.HasPrefix(property, materialBindingPrefix):
		return dirty.DirtyMaterialID
	}
	return dirty.AllDirty
}

// attributeLister is implemented by prims that can enumerate their
// attributes. Transform ops are only discoverable this way.
type attributeLister interface {
	AttributeNames() []string
}

// TrackVariability implements BaseAdapter.
func (GprimAdapter) TrackVariability(prim stage.Prim, _ stage.Path, timeVarying *dirty.Bits, _ *InstancerContext) {
	for _, v := range gprimVarying {
		if !timeVarying.Has(v.bit) && stage.IsVarying(prim, v.name) {
			*timeVarying |= v.bit
		}
	}

	if timeVarying.Has(dirty.DirtyTransform) {
		return
	}
	l, ok := prim.(attributeLister)
	if !ok {
		return
	}
	for _, name := range l.AttributeNames() {
		if strings.HasPrefix(name, xformOpPrefix) && stage.IsVarying(prim, name) {
			*timeVarying |= dirty.DirtyTransform
			return
		}
	}
}
