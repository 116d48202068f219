package renderstate

// Option configures a root snapshot or a Stack during creation.
// Use functional options to customize behavior.
//
// Example:
//
//	// Rectangle-only clipping (default)
//	st := renderstate.NewStack(800, 600)
//
//	// Region-capable clipping with the built-in span engine
//	st := renderstate.NewStack(800, 600, renderstate.WithRegions())
type Option func(*config)

// config holds optional configuration for snapshot creation.
type config struct {
	regionFactory RegionFactory
	viewport      Rect
	height        float64
}

// defaultConfig returns the default configuration: rectangle-only
// clipping, zero viewport.
func defaultConfig() config {
	return config{}
}

// WithRegionFactory injects the region engine used when boolean clip
// composition can no longer be expressed as a single rectangle.
// Passing nil keeps the rectangle-only engine.
//
// Example:
//
//	st := renderstate.NewStack(800, 600,
//	    renderstate.WithRegionFactory(myRegionFactory))
func WithRegionFactory(f RegionFactory) Option {
	return func(c *config) {
		c.regionFactory = f
	}
}

// WithRegions selects the built-in span-band region engine, enabling
// exact Difference and Xor clip composition at the cost of region
// bookkeeping.
func WithRegions() Option {
	return WithRegionFactory(SpanRegion())
}

// WithViewport sets the root viewport to (0, 0, width, height), seeds
// the root clip with the same bounds, and records the surface height.
func WithViewport(width, height float64) Option {
	return func(c *config) {
		c.viewport = RectLTRB(0, 0, width, height)
		c.height = height
	}
}

// WithSurfaceHeight overrides the surface height used to flip between
// device and framebuffer coordinates.
func WithSurfaceHeight(height float64) Option {
	return func(c *config) {
		c.height = height
	}
}
