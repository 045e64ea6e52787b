package skill

import "log/slog"

const (
	DefaultRatingMaximum = 12
	DefaultHackedLabel   = "Hacked"
)

type options struct {
	logger      *slog.Logger
	maxRating   int
	hackedLabel string
	costs       CostTable
}

type Option func(*options)

func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithRatingMaximum caps the learned rating.
func WithRatingMaximum(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.maxRating = n
		}
	}
}

// WithHackedLabel sets the suffix a cracked skillsoft carries after the skill
// name, as in "Pistols, Hacked".
func WithHackedLabel(label string) Option {
	return func(o *options) {
		o.hackedLabel = label
	}
}

func WithCosts(c CostTable) Option {
	return func(o *options) {
		if c != nil {
			o.costs = c
		}
	}
}

func newOptions(opts []Option) options {
	o := options{
		logger:      slog.Default(),
		maxRating:   DefaultRatingMaximum,
		hackedLabel: DefaultHackedLabel,
		costs:       DefaultCosts,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
