package repurpose

import "strings"

// RawResult is the outcome of one provider invocation: either a
// schema-constrained JSON object (Structured) or free text to be run through
// ExtractJSON. Exactly one side is populated; an all-zero value means the
// provider answered with nothing usable.
type RawResult struct {
	Structured map[string]any
	Text       string
}

func StructuredResult(obj map[string]any) RawResult { return RawResult{Structured: obj} }
func TextResult(text string) RawResult              { return RawResult{Text: text} }

func (r RawResult) IsStructured() bool { return r.Structured != nil }
func (r RawResult) IsEmpty() bool {
	return r.Structured == nil && strings.TrimSpace(r.Text) == ""
}

// LinkedInPost is one generated LinkedIn post variant.
type LinkedInPost struct {
	ID    int    `json:"id"`
	Title string `json:"title,omitempty"`
	Body  string `json:"body"`
}

// TwitterThread is one generated Twitter/X thread variant.
type TwitterThread struct {
	ID     int      `json:"id"`
	Title  string   `json:"title,omitempty"`
	Tweets []string `json:"tweets"`
}

// InstagramCaption is one generated Instagram caption variant.
type InstagramCaption struct {
	ID             int      `json:"id"`
	Style          string   `json:"style"`
	Text           string   `json:"text"`
	Hashtags       []string `json:"hashtags"`
	CharacterCount int      `json:"character_count"`
}

// SEOMeta is one generated SEO meta description variant. PrimaryKeyword is
// always the caller-supplied keyword, never whatever the model echoed back.
type SEOMeta struct {
	ID             int    `json:"id"`
	Description    string `json:"description"`
	CharacterCount int    `json:"character_count"`
	PrimaryKeyword string `json:"primary_keyword"`
}

// ImageSpec is the single deterministic record produced for an image request.
// UpstreamURL addresses the Pollinations renderer directly; consumers are
// expected to fetch it through a backend proxy.
type ImageSpec struct {
	Type        string `json:"type"`
	UpstreamURL string `json:"upstream_url"`
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	Style       string `json:"style"`
	Prompt      string `json:"prompt"`
	PromptShort string `json:"prompt_short"`
	Model       string `json:"model"`
	Seed        int    `json:"seed"`
	AspectRatio string `json:"aspect_ratio"`
}

// InstagramParams carries the caller-validated knobs for caption generation.
type InstagramParams struct {
	Audience string
	Tone     string
	Goal     string
}

// SEOParams carries the caller-validated knobs for meta description
// generation. Title is the stored content title, may be empty.
type SEOParams struct {
	Title          string
	PrimaryKeyword string
	SearchIntent   string
	Tone           string
}

// ImageParams selects the rendered image shape and visual style.
// RequestedType is "cover" or "instagram".
type ImageParams struct {
	Style         string
	RequestedType string
}
