package parser

import "testing"

func TestScoreStreet(t *testing.T) {
	sr := newTestResolver()

	testCases := []struct {
		name       string
		candidates []string
		query      string
		min, max   float64
	}{
		{name: "Suffix_Spelling", candidates: []string{"Pennsylvania Av"}, query: "Pennsylvania Avenue", min: 1, max: 1},
		{name: "Directional_Spelling", candidates: []string{"N Seventh St"}, query: "North 7th Street", min: 1, max: 1},
		{name: "Case_And_Accents", candidates: []string{"Rue Saint-Andre"}, query: "rue saint-andré", min: 1, max: 1},
		{name: "Typo", candidates: []string{"Pennsylvania Ave"}, query: "Pensylvania Ave", min: 0.9, max: 0.999},
		{name: "Different_Street", candidates: []string{"Main St"}, query: "Elm Rd", min: 0, max: 0.7},
		{name: "Best_Candidate_Wins", candidates: []string{"Elm Rd", "Main St"}, query: "Main Street", min: 1, max: 1},
		{name: "Empty_Query", candidates: []string{"Main St"}, query: "", min: 0, max: 0},
		{name: "No_Candidates", candidates: nil, query: "Main St", min: 0, max: 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			score := sr.ScoreStreet(tc.candidates, tc.query, DefaultWeights)
			if score < tc.min || score > tc.max {
				t.Errorf("ScoreStreet(%q, %q) = %.3f, expected within [%.3f, %.3f]", tc.candidates, tc.query, score, tc.min, tc.max)
			}
		})
	}
}

func TestScoreStreet_Weights(t *testing.T) {
	sr := newTestResolver()
	candidates := []string{"Pennsylvania Ave"}

	jw := sr.ScoreStreet(candidates, "Pennsylvania Blvd", SimilarityWeights{JaroWinkler: 1})
	lev := sr.ScoreStreet(candidates, "Pennsylvania Blvd", SimilarityWeights{Levenshtein: 1})
	if jw <= lev {
		t.Errorf("Jaro-Winkler should reward the shared prefix more: jw=%.3f lev=%.3f", jw, lev)
	}

	// zero weights fall back to the defaults
	zero := sr.ScoreStreet(candidates, "Pennsylvania Blvd", SimilarityWeights{})
	def := sr.ScoreStreet(candidates, "Pennsylvania Blvd", DefaultWeights)
	if zero != def {
		t.Errorf("zero weights = %.3f, defaults = %.3f", zero, def)
	}
}
