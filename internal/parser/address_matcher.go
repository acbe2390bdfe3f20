package parser

import (
	"math"
	"strings"

	"github.com/address-parser/usaddress/internal/normalizer"
	"github.com/agnivade/levenshtein"
	"github.com/xrash/smetrics"
)

// SimilarityWeights blends the two string metrics used to score street
// names. Weights need not sum to one; the score is normalized by their sum.
type SimilarityWeights struct {
	JaroWinkler float64 `json:"jaro_winkler"`
	Levenshtein float64 `json:"levenshtein"`
}

// DefaultWeights favours Jaro-Winkler, which rewards shared prefixes
var DefaultWeights = SimilarityWeights{JaroWinkler: 0.6, Levenshtein: 0.4}

// ScoreStreet returns how closely name matches the best of the street
// candidates, in [0, 1]. Both sides are folded first so case, accents and
// suffix spelling ("Avenue" vs "Ave") do not count against a match.
func (sr *StreetResolver) ScoreStreet(candidates []string, name string, w SimilarityWeights) float64 {
	total := w.JaroWinkler + w.Levenshtein
	if total <= 0 {
		w, total = DefaultWeights, DefaultWeights.JaroWinkler+DefaultWeights.Levenshtein
	}

	query := sr.comparable(name)
	if query == "" {
		return 0
	}

	best := 0.0
	for _, candidate := range candidates {
		target := sr.comparable(candidate)
		if target == "" {
			continue
		}
		if target == query {
			return 1
		}

		// Jaro-Winkler distance
		jaroScore := smetrics.JaroWinkler(query, target, 0.7, 4)

		// Levenshtein distance normalized by the longer string
		levDist := levenshtein.ComputeDistance(query, target)
		maxLen := math.Max(float64(len([]rune(query))), float64(len([]rune(target))))
		levScore := 1.0 - float64(levDist)/maxLen

		score := (w.JaroWinkler*jaroScore + w.Levenshtein*levScore) / total
		if score > best {
			best = score
		}
	}
	return best
}

// comparable folds text and rewrites suffixes, directionals and ordinal
// words to their standard abbreviations
func (sr *StreetResolver) comparable(text string) string {
	tokens := strings.Fields(normalizer.Fold(text))
	if len(tokens) == 0 {
		return ""
	}
	standard := sr.standardForm(tokens, sr.findSuffix(tokens))
	return strings.ToLower(strings.Join(standard, " "))
}
