package match

import (
	"reflect"
	"testing"
)

func TestRankCandidates(t *testing.T) {
	candidates := RankCandidates("4x4", []string{"4x4f", "Castle Wall", "4x4"})

	if len(candidates) != 3 {
		t.Fatalf("Expected 3 candidates, got %d", len(candidates))
	}

	best := candidates[0]
	if best.Name != "4x4" {
		t.Fatalf("Expected best candidate 4x4, got %+v", best)
	}

	if best.CombinedScore != 1.0 {
		t.Errorf("Expected exact match to score 1.0, got %f", best.CombinedScore)
	}

	if candidates[1].Name != "4x4f" {
		t.Errorf("Expected 4x4f second, got %s", candidates[1].Name)
	}

	if candidates[2].Name != "Castle Wall" {
		t.Errorf("Expected Castle Wall last, got %s", candidates[2].Name)
	}
}

func TestRankCandidatesTieBreaksByName(t *testing.T) {
	candidates := RankCandidates("abc", []string{"abe", "abd"})

	if candidates[0].Name != "abd" || candidates[1].Name != "abe" {
		t.Errorf("Expected [abd abe], got [%s %s]", candidates[0].Name, candidates[1].Name)
	}

	if !candidates.IsAmbiguous(DefaultAmbiguityThreshold) {
		t.Error("Expected tied candidates to be ambiguous")
	}
}

func TestCandidateListHelpers(t *testing.T) {
	var empty CandidateList

	if empty.IsAmbiguous(0.1) {
		t.Error("Expected empty list not to be ambiguous")
	}

	list := CandidateList{
		{Name: "a", CombinedScore: 0.9},
		{Name: "b", CombinedScore: 0.6},
		{Name: "c", CombinedScore: 0.2},
	}

	if got := len(list.Top(2)); got != 2 {
		t.Errorf("Top(2) returned %d candidates", got)
	}

	if got := len(list.Top(10)); got != 3 {
		t.Errorf("Top(10) returned %d candidates", got)
	}

	if got := len(list.AboveThreshold(0.5)); got != 2 {
		t.Errorf("AboveThreshold(0.5) returned %d candidates", got)
	}

	if list.IsAmbiguous(0.1) {
		t.Error("Expected a 0.3 gap not to be ambiguous")
	}
}

func TestSuggest(t *testing.T) {
	known := []string{"2x2 Round", "Castle Wall", "1x1 Cone"}

	got := Suggest("2x2 Rnd", known, 2)
	want := Suggestion{Names: []string{"2x2 Round"}}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("Suggest = %+v, want %+v", got, want)
	}

	if got := Suggest("2x2 Rnd", known, 0); got.Names != nil {
		t.Errorf("Suggest with n=0 = %v, want nil", got.Names)
	}

	if got := Suggest("Foobar 9000", known, 3); len(got.Names) != 0 || got.Ambiguous {
		t.Errorf("Suggest for an unrelated name = %+v, want none", got)
	}
}

func TestSuggestMarksTies(t *testing.T) {
	known := []string{"1x4 Wedge", "1x2 Wedge", "Castle Wall"}

	got := Suggest("1x3 Wedge", known, 3)
	want := []string{"1x2 Wedge", "1x4 Wedge"}

	if !reflect.DeepEqual(got.Names, want) {
		t.Fatalf("Suggest names = %v, want %v", got.Names, want)
	}

	if !got.Ambiguous {
		t.Error("Expected equally close names to be marked ambiguous")
	}

	if single := Suggest("1x3 Wedge", known, 1); single.Ambiguous {
		t.Error("Expected a single suggestion not to be ambiguous")
	}
}
