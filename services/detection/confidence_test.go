package detection

import (
	"testing"

	"fixdesk/models"
)

func TestScoreBands(t *testing.T) {
	tests := []struct {
		relevance      float64
		wantConfidence int
		wantLevel      models.ConfidenceLevel
	}{
		{0.0, 0, models.ConfidenceVeryLow},
		{0.39, 39, models.ConfidenceVeryLow},
		{0.40, 40, models.ConfidenceLow},
		{0.59, 59, models.ConfidenceLow},
		{0.60, 60, models.ConfidenceMedium},
		{0.79, 79, models.ConfidenceMedium},
		{0.80, 80, models.ConfidenceHigh},
		{1.0, 100, models.ConfidenceHigh},
		// Out-of-range signals are clamped, never propagated.
		{-0.5, 0, models.ConfidenceVeryLow},
		{1.7, 100, models.ConfidenceHigh},
	}

	for _, tt := range tests {
		confidence, level := Score(tt.relevance)
		if confidence != tt.wantConfidence {
			t.Fatalf("Score(%v) confidence = %d, want %d", tt.relevance, confidence, tt.wantConfidence)
		}
		if level != tt.wantLevel {
			t.Fatalf("Score(%v) level = %q, want %q", tt.relevance, level, tt.wantLevel)
		}
	}
}

func TestScoreIsMonotonic(t *testing.T) {
	prev := -1
	for r := 0.0; r <= 1.0; r += 0.01 {
		confidence, _ := Score(r)
		if confidence < prev {
			t.Fatalf("Score not monotonic: confidence(%v) = %d < %d", r, confidence, prev)
		}
		prev = confidence
	}
}

func TestBestSuggestionKeepsFirstOnTie(t *testing.T) {
	recs := []models.SuggestionRecord{
		{Keyword: "first", Category: models.CategoryHVAC, Relevance: 0.8},
		{Keyword: "second", Category: models.CategoryPlumbing, Relevance: 0.8},
		{Keyword: "third", Category: models.CategoryElectrical, Relevance: 0.5},
	}
	best, ok := BestSuggestion(recs)
	if !ok {
		t.Fatal("expected a best suggestion")
	}
	if best.Keyword != "first" {
		t.Fatalf("best = %q, want first-seen record on tie", best.Keyword)
	}

	if _, ok := BestSuggestion(nil); ok {
		t.Fatal("expected ok=false for empty input")
	}
}

func TestAggregateSuggestionsSumsPerCategory(t *testing.T) {
	recs := []models.SuggestionRecord{
		{Keyword: "outlet", Category: models.CategoryElectrical, Relevance: 0.25},
		{Keyword: "leak", Category: models.CategoryPlumbing, Relevance: 0.6},
		{Keyword: "breaker", Category: models.CategoryElectrical, Relevance: 0.5},
	}
	category, total, ok := AggregateSuggestions(recs)
	if !ok {
		t.Fatal("expected an aggregated prediction")
	}
	if category != models.CategoryElectrical {
		t.Fatalf("category = %v, want Electrical (0.25+0.5 beats 0.6)", category)
	}
	if total != 0.75 {
		t.Fatalf("total = %v, want 0.75", total)
	}
}
