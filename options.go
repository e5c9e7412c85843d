package grpy

import "github.com/t73fde/grpy/types"

// Option configures an Engine or Manager with optional dependencies.
type Option func(*componentOptions)

// componentOptions holds optional Engine/Manager configuration.
type componentOptions struct {
	registry *Registry
	logger   types.Logger
	metrics  types.MetricsCollector
}

// WithRegistry sets a custom policy registry.
//
// Parameters:
//   - registry: Registry built via NewRegistry
//
// Returns:
//   - Option: Functional option for NewEngine/NewManager
//
// Example:
//
//	reg, _ := grpy.NewRegistry(
//	    grpy.PolicyInfo{Code: "RD", Name: "Random", Policy: policy.NewRandom()},
//	)
//	engine := grpy.NewEngine(grpy.WithRegistry(reg))
func WithRegistry(registry *Registry) Option {
	return func(o *componentOptions) {
		o.registry = registry
	}
}

// WithLogger sets a logger.
//
// Parameters:
//   - logger: Logger implementation (compatible with zap.SugaredLogger)
//
// Returns:
//   - Option: Functional option for NewEngine/NewManager
//
// Example:
//
//	logger := logging.NewSlog(slog.New(handler))
//	mgr, err := grpy.NewManager(cfg, src, store, grpy.WithLogger(logger))
func WithLogger(logger types.Logger) Option {
	return func(o *componentOptions) {
		o.logger = logger
	}
}

// WithMetrics sets a metrics collector.
//
// Parameters:
//   - metrics: MetricsCollector implementation
//
// Returns:
//   - Option: Functional option for NewEngine/NewManager
//
// Example:
//
//	collector := metrics.NewPrometheus(nil, "grpy")
//	mgr, err := grpy.NewManager(cfg, src, store, grpy.WithMetrics(collector))
func WithMetrics(metrics types.MetricsCollector) Option {
	return func(o *componentOptions) {
		o.metrics = metrics
	}
}
