package squadeval

import "log/slog"

// Option configures an Evaluator.
type Option func(*config)

type config struct {
	naProbThresh float64
	workers      int
	prAnalysis   bool
	plotDir      string
	scorePath    string
	plots        PlotSink
	scores       ScoreSink
	logger       *slog.Logger
}

func defaultConfig() config {
	return config{
		naProbThresh: 1.0,
		workers:      1,
		logger:       slog.Default(),
	}
}

// WithNoAnswerThreshold sets the no-answer probability threshold used
// for the reported exact and F1 scores (default: 1.0, which in-range
// probabilities never exceed).
func WithNoAnswerThreshold(t float64) Option {
	return func(c *config) {
		c.naProbThresh = t
	}
}

// WithParallelism sets the number of scoring workers (default: 1).
func WithParallelism(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.workers = n
		}
	}
}

// WithLogger sets the logger (default: slog.Default()).
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithPRAnalysis enables precision-recall analysis without plotting.
// It only takes effect when no-answer probabilities are supplied.
func WithPRAnalysis() Option {
	return func(c *config) {
		c.prAnalysis = true
	}
}

// WithPlotSink enables precision-recall analysis and renders one plot
// per metric into dir via sink.
func WithPlotSink(sink PlotSink, dir string) Option {
	return func(c *config) {
		c.plots = sink
		c.plotDir = dir
		c.prAnalysis = true
	}
}

// WithScoreSink persists the threshold-adjusted F1 scores to path via
// sink after each evaluation.
func WithScoreSink(sink ScoreSink, path string) Option {
	return func(c *config) {
		c.scores = sink
		c.scorePath = path
	}
}
