package capsule

import "github.com/gogpu/capsule/dirty"

// AdapterOption configures an Adapter during creation.
//
// Example:
//
//	// Default generic-prim handling
//	a := capsule.NewAdapter()
//
//	// Route unrecognized attribute edits to the render index's own table
//	a := capsule.NewAdapter(capsule.WithFallbackResolver(indexResolver))
type AdapterOption func(*adapterOptions)

// adapterOptions holds optional configuration for Adapter creation.
type adapterOptions struct {
	base     BaseAdapter
	fallback dirty.Resolver
}

// defaultOptions returns the default adapter options.
func defaultOptions() adapterOptions {
	return adapterOptions{
		base: GprimAdapter{},
	}
}

// WithBase sets the generic-prim adapter the capsule adapter layers on.
// A nil base restores GprimAdapter.
func WithBase(b BaseAdapter) AdapterOption {
	return func(o *adapterOptions) {
		if b == nil {
			b = GprimAdapter{}
		}
		o.base = b
	}
}

// WithFallbackResolver sets the resolver used for attribute edits the
// capsule adapter does not own. When unset, those edits go to the base
// adapter's ProcessPropertyChange.
func WithFallbackResolver(r dirty.Resolver) AdapterOption {
	return func(o *adapterOptions) {
		o.fallback = r
	}
}
