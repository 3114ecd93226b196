package detection

import (
	"regexp"

	"fixdesk/models"
)

// categoryRule maps a keyword pattern to a service category and a canonical
// issue title. Rules are evaluated in declaration order and the first match
// wins, so the more specific categories must come before the generic
// maintenance fallback.
type categoryRule struct {
	pattern  *regexp.Regexp
	category models.Category
	title    string
}

var categoryRules = []categoryRule{
	// HVAC before electrical: "AC unit" must not fall through to generic
	// equipment rules.
	{
		pattern:  regexp.MustCompile(`(?i)\b(a/?c|air.?con(ditioning|ditioner)?|hvac|heat(ing|er)?|furnace|thermostat|too (hot|cold)|no (heat|cooling)|vent(ilation)?)\b`),
		category: models.CategoryHVAC,
		title:    "HVAC issue",
	},
	{
		pattern:  regexp.MustCompile(`(?i)\b(light(s|ing|bulb)?|lamp|electrical|electricity|power (out|outage|failure)|outlet|socket|circuit|breaker|wiring|sparking)\b`),
		category: models.CategoryElectrical,
		title:    "Electrical issue",
	},
	{
		pattern:  regexp.MustCompile(`(?i)\b(water|leak(ing|age)?|pipe|plumb(ing|er)?|drain(age)?|toilet|faucet|tap|sink|flush|clog(ged)?|sewage|drip(ping)?)\b`),
		category: models.CategoryPlumbing,
		title:    "Plumbing issue",
	},
	{
		pattern:  regexp.MustCompile(`(?i)\b(door lock|lock(ed|s)? (out|broken)|badge|key.?card|access (card|denied|control)|security|intruder|alarm|cctv|camera)\b`),
		category: models.CategorySecurity,
		title:    "Security / access issue",
	},
	{
		pattern:  regexp.MustCompile(`(?i)\b(elevator|lift|escalator|garage door|gate|mechanical|motor|conveyor)\b`),
		category: models.CategoryMaintenance,
		title:    "Elevator / mechanical issue",
	},
	{
		pattern:  regexp.MustCompile(`(?i)\b(clean(ing|er)?|janitor(ial)?|trash|garbage|rubbish|spill(ed)?|dirty|mess|restroom supplies|soap|paper towels?)\b`),
		category: models.CategoryCleaning,
		title:    "Cleaning request",
	},
	{
		pattern:  regexp.MustCompile(`(?i)\b(wi.?fi|internet|network|printer|computer|laptop|monitor|projector|phone line|vpn|it support)\b`),
		category: models.CategoryIT,
		title:    "IT / equipment issue",
	},
	{
		pattern:  regexp.MustCompile(`(?i)\b(fire hazard|smoke|gas leak|carbon monoxide|trip(ping)? hazard|unsafe|injur(y|ed)|first aid|exposed wir(e|ing))\b`),
		category: models.CategorySafety,
		title:    "Safety hazard",
	},
	// Generic maintenance catch-all: must stay last.
	{
		pattern:  regexp.MustCompile(`(?i)\b(broken|repair|fix|maintenance|damaged?|not working|malfunctio(n|ning)|out of order|replace(ment)?)\b`),
		category: models.CategoryMaintenance,
		title:    "Maintenance request",
	},
}

// matchCategory returns the first matching rule and the keyword that
// triggered it. ok is false when no rule matches.
func matchCategory(text string) (rule categoryRule, keyword string, ok bool) {
	for _, r := range categoryRules {
		if m := r.pattern.FindString(text); m != "" {
			return r, m, true
		}
	}
	return categoryRule{}, "", false
}
