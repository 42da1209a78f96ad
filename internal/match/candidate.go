package match

import (
	"sort"
)

// Candidate is a known name scored against an unknown one.
type Candidate struct {
	Name string

	// Scoring components
	NameScore  float64 // Normalized Levenshtein similarity (0-1)
	TokenScore float64 // Word overlap (0-1)

	// Combined score for ranking (higher is better)
	CombinedScore float64

	NormalizedName string
}

// CandidateList is a list of candidates with ranking functionality.
type CandidateList []Candidate

// Ranking thresholds.
const (
	// DefaultMinScore is the minimum combined score for a suggestion.
	DefaultMinScore = 0.5
	// DefaultAmbiguityThreshold is the score difference that marks ambiguity.
	DefaultAmbiguityThreshold = 0.05
)

// RankCandidates scores every known name against target and returns them
// sorted by combined score (descending), then by name.
func RankCandidates(target string, known []string) CandidateList {
	targetNorm := NormalizeName(target)

	candidates := make(CandidateList, 0, len(known))

	for _, name := range known {
		norm := NormalizeName(name)
		nameScore := Similarity(targetNorm, norm)
		tokenScore := TokenOverlap(target, name)

		candidates = append(candidates, Candidate{
			Name:           name,
			NameScore:      nameScore,
			TokenScore:     tokenScore,
			CombinedScore:  combinedScore(nameScore, tokenScore),
			NormalizedName: norm,
		})
	}

	sort.Sort(candidates)

	return candidates
}

// Suggestion holds the known names offered for an unknown one.
type Suggestion struct {
	Names []string
	// Ambiguous is set when the two best names score within
	// DefaultAmbiguityThreshold of each other.
	Ambiguous bool
}

// Suggest returns up to n known names close enough to target to be worth
// offering as a "did you mean".
func Suggest(target string, known []string, n int) Suggestion {
	if n <= 0 {
		return Suggestion{}
	}

	ranked := RankCandidates(target, known).AboveThreshold(DefaultMinScore).Top(n)
	if len(ranked) == 0 {
		return Suggestion{}
	}

	out := make([]string, len(ranked))
	for i, c := range ranked {
		out[i] = c.Name
	}

	return Suggestion{Names: out, Ambiguous: ranked.IsAmbiguous(DefaultAmbiguityThreshold)}
}

// combinedScore weighs character similarity 60% and word overlap 40%.
func combinedScore(nameScore, tokenScore float64) float64 {
	const (
		nameWeight  = 0.6
		tokenWeight = 0.4
	)

	return nameScore*nameWeight + tokenScore*tokenWeight
}

// Len implements sort.Interface.
func (c CandidateList) Len() int { return len(c) }

// Swap implements sort.Interface.
func (c CandidateList) Swap(i, j int) { c[i], c[j] = c[j], c[i] }

// Less implements sort.Interface.
func (c CandidateList) Less(i, j int) bool {
	if c[i].CombinedScore != c[j].CombinedScore {
		return c[i].CombinedScore > c[j].CombinedScore
	}

	return c[i].Name < c[j].Name
}

// Top returns the top n candidates.
func (c CandidateList) Top(n int) CandidateList {
	if n >= len(c) {
		return c
	}

	return c[:n]
}

// IsAmbiguous returns true if the top two candidates are within the threshold.
func (c CandidateList) IsAmbiguous(threshold float64) bool {
	if len(c) < 2 {
		return false
	}

	return c[0].CombinedScore-c[1].CombinedScore < threshold
}

// AboveThreshold returns candidates with combined score at or above threshold.
func (c CandidateList) AboveThreshold(threshold float64) CandidateList {
	var result CandidateList

	for _, cand := range c {
		if cand.CombinedScore >= threshold {
			result = append(result, cand)
		}
	}

	return result
}
