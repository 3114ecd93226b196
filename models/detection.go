package models

// Category is a fixed facility-issue taxonomy code attached to a ticket.
type Category int

const (
	CategoryGeneral Category = iota + 1
	CategoryPlumbing
	CategoryElectrical
	CategoryHVAC
	CategoryCleaning
	CategorySecurity
	CategoryIT
	CategoryMaintenance
	CategorySafety
	CategoryOther
)

var categoryNames = map[Category]string{
	CategoryGeneral:     "General",
	CategoryPlumbing:    "Plumbing",
	CategoryElectrical:  "Electrical",
	CategoryHVAC:        "HVAC",
	CategoryCleaning:    "Cleaning",
	CategorySecurity:    "Security",
	CategoryIT:          "IT",
	CategoryMaintenance: "Maintenance",
	CategorySafety:      "Safety",
	CategoryOther:       "Other",
}

// Name returns the display name for the category code.
func (c Category) Name() string {
	if name, ok := categoryNames[c]; ok {
		return name
	}
	return "Other"
}

// Valid reports whether the code is part of the taxonomy.
func (c Category) Valid() bool {
	_, ok := categoryNames[c]
	return ok
}

// ConfidenceLevel is the discrete band derived from a 0-100 confidence score.
type ConfidenceLevel string

const (
	ConfidenceHigh    ConfidenceLevel = "High"
	ConfidenceMedium  ConfidenceLevel = "Medium"
	ConfidenceLow     ConfidenceLevel = "Low"
	ConfidenceVeryLow ConfidenceLevel = "VeryLow"
)

// DetectionResult is one classifier output for a piece of free text.
type DetectionResult struct {
	Category        Category `json:"category"`
	CategoryText    string   `json:"categoryText"`
	IssueTitle      string   `json:"issueTitle"`
	Location        string   `json:"location,omitempty"`
	Urgency         Urgency  `json:"urgency"`
	PriorityNumber  int      `json:"priorityNumber"`
	Confidence      int      `json:"confidence"`
	MatchedKeywords []string `json:"matchedKeywords"`
	RelevanceScore  float64  `json:"relevanceScore"`
	HasDetails      bool     `json:"hasDetails"`
}

// SuggestionRecord is one remote keyword-suggestion item returned by the
// ticket API for a piece of input text.
type SuggestionRecord struct {
	Keyword      string   `json:"keyword"`
	Category     Category `json:"category"`
	CategoryText string   `json:"categoryText"`
	Relevance    float64  `json:"relevance"`
}
