package models

// GenerateRequest asks for SEO-oriented blog content from the active provider
type GenerateRequest struct {
	Keyword            string   `json:"keyword"`
	AdditionalKeywords []string `json:"additional_keywords,omitempty"`
	ContentType        string   `json:"content_type,omitempty"` // blog_post by default
	Tone               string   `json:"tone,omitempty"`
	TargetAudience     string   `json:"target_audience,omitempty"`
	Instructions       string   `json:"instructions,omitempty"`
	ProviderID         string   `json:"provider_id,omitempty"` // active provider used when empty
}

// GenerateResult is the stored outcome of a generation call
type GenerateResult struct {
	PostID          string `json:"post_id"`
	Title           string `json:"title"`
	Content         string `json:"content"`
	Excerpt         string `json:"excerpt"`
	MetaDescription string `json:"meta_description"`
	Provider        string `json:"provider"`
	Model           string `json:"model"`
}
