package repurpose

import (
	"context"
	"math/rand"
	"strings"

	"github.com/yungbote/repurpose-backend/internal/pkg/logger"
)

// SchemaProvider generates against a JSON schema. Implementations that
// support constrained decoding return a structured result; ones that fall
// back to plain text return a text result and the pipeline parses it.
type SchemaProvider interface {
	GenerateJSON(ctx context.Context, prompt string, schema map[string]any) (RawResult, error)
}

// TextProvider generates free text that the pipeline parses itself.
type TextProvider interface {
	GenerateText(ctx context.Context, prompt string, temperature float64) (RawResult, error)
}

const minSourceRunes = 20

const (
	twitterTemperature = 0.7
	seoTemperature     = 0.5
)

// Pipeline turns stored long-form content into per-platform post variants.
// Provider errors propagate untouched to the caller; unusable provider
// output (empty, unparseable) degrades to an empty slice with a warning.
type Pipeline struct {
	log    *logger.Logger
	gemini SchemaProvider
	groq   TextProvider
	seed   func() int
}

type Option func(*Pipeline)

// WithSeedSource overrides the image seed generator. Tests inject a fixed
// source to make specs reproducible.
func WithSeedSource(fn func() int) Option {
	return func(p *Pipeline) { p.seed = fn }
}

func New(log *logger.Logger, gemini SchemaProvider, groq TextProvider, opts ...Option) *Pipeline {
	p := &Pipeline{
		log:    log,
		gemini: gemini,
		groq:   groq,
		seed:   func() int { return rand.Intn(999_999_999) + 1 },
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// sourceTooShort guards every text entry point: blank or trivially short
// input yields an empty batch without spending a provider call.
func (p *Pipeline) sourceTooShort(platform, text string) bool {
	if len([]rune(strings.TrimSpace(text))) < minSourceRunes {
		p.log.Warn("source_text_too_short", "platform", platform)
		return true
	}
	return false
}

// parsed reduces a RawResult to a JSON object, or reports that nothing
// usable came back.
func (p *Pipeline) parsed(platform string, res RawResult) (map[string]any, bool) {
	if res.IsStructured() {
		return res.Structured, true
	}
	if strings.TrimSpace(res.Text) == "" {
		p.log.Warn("provider_empty_response", "platform", platform)
		return nil, false
	}
	return ExtractJSON(p.log, res.Text)
}

func (p *Pipeline) LinkedInPosts(ctx context.Context, contentText string) ([]LinkedInPost, error) {
	if p.sourceTooShort("linkedin", contentText) {
		return []LinkedInPost{}, nil
	}
	res, err := p.gemini.GenerateJSON(ctx, BuildLinkedInPrompt(contentText), LinkedInPostsSchema())
	if err != nil {
		p.log.Warn("provider_call_failed", "platform", "linkedin", "error", err.Error())
		return nil, err
	}
	obj, ok := p.parsed("linkedin", res)
	if !ok {
		return []LinkedInPost{}, nil
	}
	return normalizeLinkedInPosts(p.log, obj), nil
}

func (p *Pipeline) TwitterThreads(ctx context.Context, contentText string) ([]TwitterThread, error) {
	if p.sourceTooShort("twitter", contentText) {
		return []TwitterThread{}, nil
	}
	res, err := p.groq.GenerateText(ctx, BuildTwitterPrompt(contentText), twitterTemperature)
	if err != nil {
		p.log.Warn("provider_call_failed", "platform", "twitter", "error", err.Error())
		return nil, err
	}
	obj, ok := p.parsed("twitter", res)
	if !ok {
		return []TwitterThread{}, nil
	}
	return normalizeTwitterThreads(p.log, obj), nil
}

func (p *Pipeline) InstagramCaptions(ctx context.Context, contentText string, params InstagramParams) ([]InstagramCaption, error) {
	if p.sourceTooShort("instagram", contentText) {
		return []InstagramCaption{}, nil
	}
	res, err := p.gemini.GenerateJSON(ctx, BuildInstagramPrompt(contentText, params), InstagramCaptionsSchema())
	if err != nil {
		p.log.Warn("provider_call_failed", "platform", "instagram", "error", err.Error())
		return nil, err
	}
	obj, ok := p.parsed("instagram", res)
	if !ok {
		return []InstagramCaption{}, nil
	}
	return normalizeInstagramCaptions(p.log, obj), nil
}

func (p *Pipeline) SEOMetas(ctx context.Context, contentText string, params SEOParams) ([]SEOMeta, error) {
	if p.sourceTooShort("seo", contentText) {
		return []SEOMeta{}, nil
	}
	res, err := p.groq.GenerateText(ctx, BuildSEOPrompt(contentText, params), seoTemperature)
	if err != nil {
		p.log.Warn("provider_call_failed", "platform", "seo", "error", err.Error())
		return nil, err
	}
	obj, ok := p.parsed("seo", res)
	if !ok {
		return []SEOMeta{}, nil
	}
	return normalizeSEOMetas(p.log, obj, params.PrimaryKeyword), nil
}
