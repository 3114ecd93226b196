package detection

import (
	"math"

	"fixdesk/models"
)

// Score converts a raw 0-1 relevance signal into a 0-100 confidence and its
// discrete level. Out-of-range inputs are clamped, never propagated.
func Score(relevance float64) (int, models.ConfidenceLevel) {
	confidence := int(math.Round(relevance * 100))
	if confidence < 0 {
		confidence = 0
	}
	if confidence > 100 {
		confidence = 100
	}

	var level models.ConfidenceLevel
	switch {
	case confidence >= 80:
		level = models.ConfidenceHigh
	case confidence >= 60:
		level = models.ConfidenceMedium
	case confidence >= 40:
		level = models.ConfidenceLow
	default:
		level = models.ConfidenceVeryLow
	}
	return confidence, level
}

// BestSuggestion picks the record with maximum relevance. Ties keep the
// first-seen record. ok is false for an empty slice.
func BestSuggestion(recs []models.SuggestionRecord) (models.SuggestionRecord, bool) {
	if len(recs) == 0 {
		return models.SuggestionRecord{}, false
	}
	best := recs[0]
	for _, r := range recs[1:] {
		if r.Relevance > best.Relevance {
			best = r
		}
	}
	return best, true
}

// AggregateSuggestions sums relevance per category and returns the category
// with the highest total. Used by the plain ticket form to predict a
// category from all suggestions for the typed text. Ties keep the category
// seen first.
func AggregateSuggestions(recs []models.SuggestionRecord) (models.Category, float64, bool) {
	if len(recs) == 0 {
		return 0, 0, false
	}
	totals := make(map[models.Category]float64, len(recs))
	var order []models.Category
	for _, r := range recs {
		if _, seen := totals[r.Category]; !seen {
			order = append(order, r.Category)
		}
		totals[r.Category] += r.Relevance
	}
	best := order[0]
	for _, c := range order[1:] {
		if totals[c] > totals[best] {
			best = c
		}
	}
	return best, totals[best], true
}
