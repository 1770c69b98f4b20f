package repurpose

import "strings"

// Prompt builders are pure: fixed instruction block, then caller parameters
// as labeled lines, then the trimmed source text last. Minimum-length
// enforcement on the source text is the caller's job.

const linkedInInstructions = `You are a professional content repurposer. Given long-form content, produce exactly 3 LinkedIn posts.

For each post:
- Professional tone, suitable for LinkedIn.
- Length: 150-300 words per post.
- Start with a strong hook.
- Include 3-5 relevant hashtags at the end.
- Each post should offer a distinct angle or takeaway from the source content.

Return the posts following the JSON schema provided in the request configuration.

Content to repurpose:
`

func BuildLinkedInPrompt(contentText string) string {
	return linkedInInstructions + strings.TrimSpace(contentText)
}

const twitterSystemPrompt = `You are an expert Twitter (X) content writer.

Given a long-form piece of content, you will turn it into multiple high-quality Twitter threads.

For each thread:
- 3 to 7 tweets per thread.
- The first tweet MUST be a strong hook that clearly states who the thread is for and why they should read it.
- Each tweet should have ONE main idea, be concise, and easy to read.
- Use simple language; avoid jargon and filler.
- You may use line breaks inside a tweet for bullet-style formatting.
- The last tweet in each thread MUST contain a clear call-to-action (reply, share, follow, or reflect).
- Hashtags: at most 2-3, and only in the first OR last tweet (not every tweet).
- Do NOT use clickbait or fake metrics.`

const twitterOutputInstructions = `Return ONLY valid JSON in this exact schema:

{
  "threads": [
    {
      "title": "Short internal title for the thread (optional)",
      "tweets": [
        "First tweet text (max 280 characters)",
        "Second tweet text (max 280 characters)",
        "Third tweet text (max 280 characters)"
      ]
    }
  ]
}

Constraints:
- Generate exactly 5 threads.
- Each thread must have between 3 and 7 tweets.
- Each tweet MUST be <= 280 characters.
- No markdown, no backticks, no explanations.
- Only return JSON.`

func BuildTwitterPrompt(contentText string) string {
	var b strings.Builder
	b.WriteString(twitterSystemPrompt)
	b.WriteString("\n\nLong-form content:\n")
	b.WriteString(`"""` + strings.TrimSpace(contentText) + `"""`)
	b.WriteString("\n\n")
	b.WriteString(twitterOutputInstructions)
	b.WriteString("\n")
	return b.String()
}

const instagramInstructions = `You are a social media copywriter. Given long-form content, produce exactly 3 Instagram caption variants.

For each caption:
- Lead with an attention-grabbing first line; Instagram truncates early.
- Keep the caption under 2200 characters.
- Include at most 5 relevant hashtags.
- End with a clear call-to-action (comment, save, share, or follow).
- Each variant should take a distinct style: e.g. storytelling, punchy, or educational.

Return the captions following the JSON schema provided in the request configuration.`

func BuildInstagramPrompt(contentText string, params InstagramParams) string {
	var b strings.Builder
	b.WriteString(instagramInstructions)
	b.WriteString("\n\n")
	b.WriteString("Target audience: " + strings.TrimSpace(params.Audience) + "\n")
	b.WriteString("Tone: " + strings.TrimSpace(params.Tone) + "\n")
	if goal := strings.TrimSpace(params.Goal); goal != "" {
		b.WriteString("Goal: " + goal + "\n")
	}
	b.WriteString("\nContent to repurpose:\n")
	b.WriteString(strings.TrimSpace(contentText))
	return b.String()
}

const seoSystemPrompt = `You are an SEO expert writing meta descriptions for search engine result pages (SERPs).

Given a long-form piece of content, you will generate multiple high-quality meta
descriptions that would appear under a page title in Google search results.

Each meta description must:
- Clearly explain what the page is about.
- Include the primary keyword naturally.
- Use active voice and be benefit-driven.
- Optionally end with a soft call-to-action (e.g., "Learn more", "Read the full guide").`

const seoOutputInstructions = `Return ONLY valid JSON in this exact schema:

{
  "metas": [
    {
      "description": "Meta description text",
      "primary_keyword": "the main keyword this meta targets"
    }
  ]
}

Constraints:
- Generate exactly 3 meta descriptions.
- Each description should be between 120 and 158 characters.
- Each description MUST include the primary keyword at least once.
- No markdown, no backticks, no explanations.
- Only return JSON.`

func BuildSEOPrompt(contentText string, params SEOParams) string {
	parts := []string{seoSystemPrompt, ""}

	if title := strings.TrimSpace(params.Title); title != "" {
		parts = append(parts, "Page title: "+title)
	}
	parts = append(parts, "Primary keyword: "+strings.TrimSpace(params.PrimaryKeyword))
	parts = append(parts, "Search intent: "+strings.TrimSpace(params.SearchIntent))
	if tone := strings.TrimSpace(params.Tone); tone != "" {
		parts = append(parts, "Tone: "+tone)
	}

	parts = append(parts, "\nLong-form content:\n")
	parts = append(parts, `"""`+strings.TrimSpace(contentText)+`"""`)
	parts = append(parts, "\n")
	parts = append(parts, seoOutputInstructions)

	return strings.Join(parts, "\n")
}

// imageStyleModifiers maps style presets to descriptive prompt modifiers.
var imageStyleModifiers = map[string]string{
	"minimal_gradient":    "minimalist flat illustration, soft gradients, high contrast, no text, clean UI style",
	"photo_realistic":     "photo-realistic scene, natural lighting, cinematic, no text",
	"tech_dark":           "futuristic user interface on dark background, neon accents, no text",
	"pastel_illustration": "pastel color palette, friendly illustration, soft shapes, no text",
}

const defaultImageStyleModifier = "modern illustration, clear focal point, no text"

// BuildImagePrompt composes a concise visual description for the upstream
// renderer. It deliberately never asks for overlaid text; words baked into
// the image are a recurring failure mode.
func BuildImagePrompt(title, summary, platform, style string) string {
	var b strings.Builder

	if platform == "instagram" {
		b.WriteString("instagram post, square composition, visually striking, centered subject. ")
	} else {
		b.WriteString("social media share image, 16:9 aspect ratio, suitable as a blog or LinkedIn cover. ")
	}

	modifier, ok := imageStyleModifiers[style]
	if !ok {
		modifier = defaultImageStyleModifier
	}
	b.WriteString(modifier)
	b.WriteString(". Do not include any words or letters in the image. ")

	if t := strings.TrimSpace(title); t != "" {
		b.WriteString("Topic: " + t + ". ")
	}
	b.WriteString(strings.TrimSpace(summary))

	return b.String()
}

// LinkedInPostsSchema is the JSON schema passed to the schema-capable
// provider for LinkedIn generation.
func LinkedInPostsSchema() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"posts": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"title": map[string]any{"type": "string"},
						"body":  map[string]any{"type": "string"},
					},
					"required": []string{"body"},
				},
			},
		},
		"required": []string{"posts"},
	}
}

// InstagramCaptionsSchema is the JSON schema passed to the schema-capable
// provider for Instagram caption generation.
func InstagramCaptionsSchema() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"captions": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"style": map[string]any{"type": "string"},
						"text":  map[string]any{"type": "string"},
						"hashtags": map[string]any{
							"type":  "array",
							"items": map[string]any{"type": "string"},
						},
					},
					"required": []string{"text"},
				},
			},
		},
		"required": []string{"captions"},
	}
}
