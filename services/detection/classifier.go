package detection

import (
	"context"
	"log"
	"strings"

	"fixdesk/models"
)

// Classify extracts a structured issue description from free text using the
// local lexicons only. It is pure and synchronous: same input, same result,
// no network, no errors. Empty or whitespace-only input yields a zero
// confidence General result.
func (s *DefaultDetectionService) Classify(text string) models.DetectionResult {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return fallbackResult("")
	}

	result := models.DetectionResult{
		Category:        models.CategoryGeneral,
		CategoryText:    models.CategoryGeneral.Name(),
		IssueTitle:      trimmed,
		MatchedKeywords: []string{},
	}

	rule, keyword, matched := matchCategory(trimmed)
	if matched {
		result.Category = rule.category
		result.CategoryText = rule.category.Name()
		result.IssueTitle = rule.title
		result.MatchedKeywords = append(result.MatchedKeywords, strings.ToLower(keyword))
		// A lexicon hit is a strong local signal; remote suggestions may
		// still refine the score.
		result.RelevanceScore = 0.75
		result.Confidence, _ = Score(result.RelevanceScore)
	}

	result.Location = extractLocation(trimmed)
	result.Urgency = InferUrgency(trimmed)
	result.PriorityNumber = detectPriority(trimmed)
	if u := highUrgencyPattern.FindString(trimmed); u != "" {
		result.MatchedKeywords = append(result.MatchedKeywords, strings.ToLower(u))
	}
	result.HasDetails = matched || result.Location != ""

	return result
}

// RemoteDetect asks the ticket API for keyword suggestions and scores the
// best one. Failures are absorbed: the caller always gets a usable result,
// degraded to General with zero confidence when the remote side is down.
func (s *DefaultDetectionService) RemoteDetect(ctx context.Context, text string) models.DetectionResult {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return fallbackResult("")
	}

	recs, err := s.Gateway.GetKeywordSuggestions(ctx, trimmed)
	if err != nil {
		log.Printf("RemoteDetect: suggestion lookup failed, falling back to local result: %v", err)
		return fallbackResult(trimmed)
	}

	best, ok := BestSuggestion(recs)
	if !ok {
		return fallbackResult(trimmed)
	}

	confidence, _ := Score(best.Relevance)
	result := models.DetectionResult{
		Category:        best.Category,
		CategoryText:    best.Category.Name(),
		IssueTitle:      best.Keyword,
		Location:        extractLocation(trimmed),
		Urgency:         InferUrgency(trimmed),
		PriorityNumber:  detectPriority(trimmed),
		Confidence:      confidence,
		RelevanceScore:  best.Relevance,
		MatchedKeywords: []string{},
	}
	for _, r := range recs {
		result.MatchedKeywords = append(result.MatchedKeywords, r.Keyword)
	}
	result.HasDetails = true

	return result
}

// fallbackResult is the degraded detection used whenever classification has
// nothing to work with or the remote side failed.
func fallbackResult(text string) models.DetectionResult {
	return models.DetectionResult{
		Category:        models.CategoryGeneral,
		CategoryText:    models.CategoryGeneral.Name(),
		IssueTitle:      text,
		Urgency:         models.UrgencyMedium,
		PriorityNumber:  models.PriorityMedium,
		MatchedKeywords: []string{},
	}
}
