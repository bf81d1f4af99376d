package kernel

import "time"

// kernelOptions holds configuration gathered from Option values.
type kernelOptions struct {
	logger          Logger
	checkerInterval time.Duration
}

// Option configures a Kernel created by New.
type Option interface {
	applyKernel(*kernelOptions)
}

type optionFunc func(*kernelOptions)

func (f optionFunc) applyKernel(opts *kernelOptions) { f(opts) }

// WithLogger overrides the Kernel's logger. Defaults to the package-level
// logger installed via SetLogger.
func WithLogger(logger Logger) Option {
	return optionFunc(func(opts *kernelOptions) {
		if logger != nil {
			opts.logger = logger
		}
	})
}

// WithCheckerInterval sets the polling interval StartChecker uses when none
// is supplied explicitly. Defaults to 2ms, matching the cadence a
// dedicated checker thread would spin at on a cooperative kernel with no
// blocking wait for "something changed".
func WithCheckerInterval(d time.Duration) Option {
	return optionFunc(func(opts *kernelOptions) {
		if d > 0 {
			opts.checkerInterval = d
		}
	})
}

func resolveOptions(opts []Option) *kernelOptions {
	cfg := &kernelOptions{
		logger:          getGlobalLogger(),
		checkerInterval: 2 * time.Millisecond,
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt.applyKernel(cfg)
	}
	return cfg
}
