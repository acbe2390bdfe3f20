package address

import (
	"github.com/address-parser/usaddress/internal/parser"
	"go.uber.org/zap"
)

type options struct {
	expandStreets bool
	tables        *Tables
	logger        *zap.Logger
	weights       parser.SimilarityWeights
}

func defaultOptions() options {
	return options{
		expandStreets: true,
		weights:       parser.DefaultWeights,
	}
}

// Option configures a Parser
type Option func(*options)

// WithExpandStreets controls whether Street lists standardized, long and
// number-word forms after the literal street. Defaults to true.
func WithExpandStreets(expand bool) Option {
	return func(o *options) {
		o.expandStreets = expand
	}
}

// WithTables replaces the embedded abbreviation tables; see LoadTables
func WithTables(t *Tables) Option {
	return func(o *options) {
		o.tables = t
	}
}

// WithLogger sets the logger stage results are written to at debug level
func WithLogger(logger *zap.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithSimilarityWeights sets the metric weights used by StreetScore
func WithSimilarityWeights(jaroWinkler, levenshtein float64) Option {
	return func(o *options) {
		o.weights = parser.SimilarityWeights{JaroWinkler: jaroWinkler, Levenshtein: levenshtein}
	}
}
