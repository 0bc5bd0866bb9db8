package chamfer

// SweepDirection identifies one raster pass of the propagation engine.
type SweepDirection int

const (
	// SweepForward is the ascending raster pass.
	SweepForward SweepDirection = iota

	// SweepBackward is the descending raster pass.
	SweepBackward
)

// String returns "forward" or "backward".
func (d SweepDirection) String() string {
	if d == SweepForward {
		return "forward"
	}
	return "backward"
}

// Observer is notified after each completed sweep. It replaces global
// progress reporting: the engine's correctness never depends on it, and
// a nil observer costs nothing.
//
// Per-slice dispatch (DistanceTransformSlices) invokes the observer
// from worker goroutines; observers used there must be safe for
// concurrent use.
type Observer func(SweepDirection)

// Option configures a propagation call.
// Use functional options to customize transform behavior.
//
// Example:
//
//	// Raw mask units.
//	dist, err := chamfer.DistanceTransform2D[uint16](bin, chamfer.Borgefors)
//
//	// Calibrated units, with sweep notifications.
//	dist, err = chamfer.DistanceTransform2D[uint16](bin, chamfer.Borgefors,
//	    chamfer.Normalize(),
//	    chamfer.WithObserver(func(d chamfer.SweepDirection) { fmt.Println(d) }))
type Option func(*config)

// config holds optional settings for one propagation call.
type config struct {
	normalize bool
	observer  Observer
	workers   int
}

// applyOptions folds opts over the default configuration.
func applyOptions(opts []Option) config {
	var cfg config
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// Normalize divides finite output values by the mask's normalization
// weight before returning, so results are in units of the orthogonal
// step's geometric length rather than raw mask units. Integer
// encodings round to nearest; the sentinel is preserved.
func Normalize() Option {
	return func(c *config) { c.normalize = true }
}

// WithObserver registers a callback notified after each completed
// sweep. Pass nil to unregister.
func WithObserver(obs Observer) Option {
	return func(c *config) { c.observer = obs }
}

// WithWorkers sets the number of worker goroutines used by per-slice
// dispatch (DistanceTransformSlices). Zero or negative selects
// GOMAXPROCS. Single-grid transforms ignore it: the two sweeps of one
// field are strictly sequential.
func WithWorkers(n int) Option {
	return func(c *config) { c.workers = n }
}
