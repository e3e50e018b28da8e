package audit

// AuditRequest is the caller supplied input of an audit
type AuditRequest struct {
	URL           string `json:"url"`
	TargetKeyword string `json:"target_keyword"`
}

// MetaTags holds the page metadata extracted from the fetched markup
type MetaTags struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type CompetitorEntry struct {
	URL string `json:"url"`
}

// AuditResult is the fixed-shape response of a completed audit
type AuditResult struct {
	SEOScore              int               `json:"seo_score"`
	MetaTags              MetaTags          `json:"meta_tags"`
	SpeedInsights         map[string]any    `json:"speed_insights"`
	CompetitorComparison  []CompetitorEntry `json:"competitor_comparison"`
	BrandVoiceSuggestions string            `json:"brand_voice_suggestions"`
	VisualSuggestions     string            `json:"visual_suggestions"`
}
