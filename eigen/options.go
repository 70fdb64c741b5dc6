package eigen

import (
	"math"

	"go.uber.org/zap"

	"github.com/katalvlaran/spectra/qr"
)

const (
	// DefaultTolerance bounds both the convergence test and the
	// sub-diagonal test of block extraction.
	DefaultTolerance = 1e-6

	// DefaultMaxIterations caps the number of QR steps.
	DefaultMaxIterations = 3000
)

// Option configures Solve.
type Option func(*Options)

// Options holds the resolved solver configuration.
type Options struct {
	tolerance      float64
	maxIterations  int
	deduplicate    bool
	signCorrection bool
	logger         *zap.Logger
}

// Tolerance returns the configured tolerance.
func (o Options) Tolerance() float64 { return o.tolerance }

// MaxIterations returns the configured iteration budget.
func (o Options) MaxIterations() int { return o.maxIterations }

// WithTolerance sets the convergence and sub-diagonal tolerance.
// Panics if tol is negative, NaN or infinite.
func WithTolerance(tol float64) Option {
	if tol < 0 || math.IsNaN(tol) || math.IsInf(tol, 0) {
		panic("eigen: WithTolerance: tolerance must be finite and >= 0")
	}

	return func(o *Options) { o.tolerance = tol }
}

// WithMaxIterations sets the iteration budget. Panics if n <= 0.
func WithMaxIterations(n int) Option {
	if n <= 0 {
		panic("eigen: WithMaxIterations: budget must be > 0")
	}

	return func(o *Options) { o.maxIterations = n }
}

// WithDeduplicate collapses eigenvalues equal within the tolerance,
// keeping the first occurrence.
func WithDeduplicate() Option {
	return func(o *Options) { o.deduplicate = true }
}

// WithSignCorrection forwards qr.WithSignCorrection to every factorization.
func WithSignCorrection() Option {
	return func(o *Options) { o.signCorrection = true }
}

// WithLogger routes iteration tracing to l. A nil logger disables logging.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l == nil {
			l = zap.NewNop()
		}
		o.logger = l
	}
}

// NewOptions resolves option setters against the defaults.
func NewOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

func gatherOptions(opts ...Option) Options {
	o := Options{
		tolerance:     DefaultTolerance,
		maxIterations: DefaultMaxIterations,
		logger:        zap.NewNop(),
	}
	for _, set := range opts {
		set(&o)
	}

	return o
}

func (o Options) qrOptions() []qr.Option {
	if o.signCorrection {
		return []qr.Option{qr.WithSignCorrection()}
	}

	return nil
}
