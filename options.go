package numvec

import (
	"math/rand/v2"

	"github.com/hupe1980/numvec/rng"
)

// DefaultSeparator is the token separator used by FromString and String.
const DefaultSeparator = ";"

type options struct {
	source    rand.Source
	logger    *Logger
	separator string
}

func defaultOptions() options {
	return options{
		source:    rng.System(),
		logger:    NoopLogger(),
		separator: DefaultSeparator,
	}
}

func newOptions(optFns ...Option) options {
	o := defaultOptions()
	o.apply(optFns...)
	return o
}

func (o *options) apply(optFns ...Option) {
	for _, fn := range optFns {
		fn(o)
	}
}

// Option configures a Vector at construction.
//
// Options are inherited by every vector derived from the configured one,
// so a seeded source set once follows the whole chain of transforms.
type Option func(*options)

// WithSource configures the random source used by the random factories
// and by Choice, Sample and Shuffle.
//
// If nil is passed, rng.System() is used.
//
// Example:
//
//	src := rng.New(4711)
//	v, _ := numvec.Random(16, numvec.WithSource(src))
func WithSource(src rand.Source) Option {
	return func(o *options) {
		if src == nil {
			src = rng.System()
		}
		o.source = src
	}
}

// WithLogger configures a structured logger.
// If nil is passed, NoopLogger is used.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l == nil {
			l = NoopLogger()
		}
		o.logger = l
	}
}

// WithSeparator configures the token separator for FromString and String.
// An empty separator restores DefaultSeparator.
func WithSeparator(sep string) Option {
	return func(o *options) {
		if sep == "" {
			sep = DefaultSeparator
		}
		o.separator = sep
	}
}
