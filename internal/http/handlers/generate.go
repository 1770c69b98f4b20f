package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/yungbote/repurpose-backend/internal/data/repos"
	types "github.com/yungbote/repurpose-backend/internal/domain"
	"github.com/yungbote/repurpose-backend/internal/http/response"
	"github.com/yungbote/repurpose-backend/internal/pkg/logger"
	"github.com/yungbote/repurpose-backend/internal/repurpose"
)

// Generator is the slice of the repurposing pipeline the handler needs.
// Tests substitute it to exercise status mapping without provider calls.
type Generator interface {
	LinkedInPosts(ctx context.Context, contentText string) ([]repurpose.LinkedInPost, error)
	TwitterThreads(ctx context.Context, contentText string) ([]repurpose.TwitterThread, error)
	InstagramCaptions(ctx context.Context, contentText string, params repurpose.InstagramParams) ([]repurpose.InstagramCaption, error)
	SEOMetas(ctx context.Context, contentText string, params repurpose.SEOParams) ([]repurpose.SEOMeta, error)
	BuildImageSpec(title, contentText string, params repurpose.ImageParams) repurpose.ImageSpec
}

type GenerateHandler struct {
	log     *logger.Logger
	gen     Generator
	content repos.ContentRepo
	posts   repos.GeneratedPostRepo
}

func NewGenerateHandler(log *logger.Logger, gen Generator, content repos.ContentRepo, posts repos.GeneratedPostRepo) *GenerateHandler {
	return &GenerateHandler{
		log:     log.With("handler", "GenerateHandler"),
		gen:     gen,
		content: content,
		posts:   posts,
	}
}

const minGenerationRunes = 20

// loadContent resolves :content_id and enforces the minimum source length.
// It writes the error response itself and returns nil when the caller
// should bail.
func (h *GenerateHandler) loadContent(c *gin.Context) *types.Content {
	id, err := uuid.Parse(c.Param("content_id"))
	if err != nil || id == uuid.Nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_content_id", err)
		return nil
	}

	row, err := h.content.GetByID(c.Request.Context(), id)
	if err != nil {
		h.log.Error("load content failed", "error", err, "content_id", id)
		response.RespondError(c, http.StatusInternalServerError, "load_content_failed", err)
		return nil
	}
	if row == nil {
		response.RespondError(c, http.StatusNotFound, "content_not_found", errors.New("content not found"))
		return nil
	}

	if len([]rune(strings.TrimSpace(row.OriginalText))) < minGenerationRunes {
		response.RespondError(c, http.StatusBadRequest, "content_too_short",
			errors.New("content too short for generation"))
		return nil
	}
	return row
}

func metaJSON(v any) datatypes.JSON {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil
	}
	return datatypes.JSON(raw)
}

// POST /api/generate/linkedin/:content_id
func (h *GenerateHandler) GenerateLinkedIn(c *gin.Context) {
	content := h.loadContent(c)
	if content == nil {
		return
	}

	posts, err := h.gen.LinkedInPosts(c.Request.Context(), content.OriginalText)
	if err != nil {
		h.log.Warn("linkedin generation failed", "content_id", content.ID, "error", err.Error())
		response.RespondError(c, http.StatusBadGateway, "generation_failed",
			errors.New("generation failed"))
		return
	}
	if len(posts) == 0 {
		h.log.Warn("linkedin generation returned no posts", "content_id", content.ID)
		response.RespondError(c, http.StatusInternalServerError, "no_posts_generated",
			errors.New("no posts generated"))
		return
	}

	rows := make([]*types.GeneratedPost, 0, len(posts))
	for _, p := range posts {
		var meta datatypes.JSON
		if p.Title != "" {
			meta = metaJSON(gin.H{"title": p.Title})
		}
		rows = append(rows, &types.GeneratedPost{
			ContentID:     content.ID,
			Platform:      "linkedin",
			GeneratedText: p.Body,
			PostMetadata:  meta,
		})
	}
	saved, err := h.posts.Create(c.Request.Context(), rows)
	if err != nil {
		h.log.Error("persist linkedin posts failed", "error", err, "content_id", content.ID)
		response.RespondError(c, http.StatusInternalServerError, "persist_posts_failed", err)
		return
	}

	out := make([]gin.H, 0, len(saved))
	for i, row := range saved {
		out = append(out, gin.H{
			"id":         row.ID,
			"content_id": row.ContentID,
			"title":      posts[i].Title,
			"body":       row.GeneratedText,
			"created_at": row.CreatedAt,
		})
	}
	response.RespondCreated(c, gin.H{"content_id": content.ID, "posts": out})
}

// POST /api/generate/twitter/:content_id
func (h *GenerateHandler) GenerateTwitter(c *gin.Context) {
	content := h.loadContent(c)
	if content == nil {
		return
	}

	threads, err := h.gen.TwitterThreads(c.Request.Context(), content.OriginalText)
	if err != nil {
		h.log.Warn("twitter generation failed", "content_id", content.ID, "error", err.Error())
		response.RespondError(c, http.StatusBadGateway, "generation_failed",
			errors.New("generation failed"))
		return
	}
	if len(threads) == 0 {
		h.log.Warn("twitter generation returned no threads", "content_id", content.ID)
		response.RespondError(c, http.StatusInternalServerError, "no_threads_generated",
			errors.New("no threads generated"))
		return
	}

	rows := make([]*types.GeneratedPost, 0, len(threads))
	for _, t := range threads {
		rows = append(rows, &types.GeneratedPost{
			ContentID:     content.ID,
			Platform:      "twitter",
			GeneratedText: strings.Join(t.Tweets, "\n\n"),
			PostMetadata:  metaJSON(gin.H{"title": t.Title, "tweets": t.Tweets}),
		})
	}
	saved, err := h.posts.Create(c.Request.Context(), rows)
	if err != nil {
		h.log.Error("persist twitter threads failed", "error", err, "content_id", content.ID)
		response.RespondError(c, http.StatusInternalServerError, "persist_posts_failed", err)
		return
	}

	out := make([]gin.H, 0, len(saved))
	for i, row := range saved {
		out = append(out, gin.H{
			"id":         row.ID,
			"content_id": row.ContentID,
			"title":      threads[i].Title,
			"tweets":     threads[i].Tweets,
			"created_at": row.CreatedAt,
		})
	}
	response.RespondCreated(c, gin.H{"content_id": content.ID, "threads": out})
}

type instagramGenerateRequest struct {
	Audience string `json:"audience" binding:"required"`
	Tone     string `json:"tone" binding:"required"`
	Goal     string `json:"goal"`
}

// POST /api/generate/instagram/:content_id
func (h *GenerateHandler) GenerateInstagram(c *gin.Context) {
	content := h.loadContent(c)
	if content == nil {
		return
	}

	var req instagramGenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_instagram_payload", err)
		return
	}

	captions, err := h.gen.InstagramCaptions(c.Request.Context(), content.OriginalText, repurpose.InstagramParams{
		Audience: req.Audience,
		Tone:     req.Tone,
		Goal:     req.Goal,
	})
	if err != nil {
		h.log.Warn("instagram generation failed", "content_id", content.ID, "error", err.Error())
		response.RespondError(c, http.StatusBadGateway, "generation_failed",
			errors.New("generation failed"))
		return
	}
	if len(captions) == 0 {
		h.log.Warn("instagram generation returned no captions", "content_id", content.ID)
		response.RespondError(c, http.StatusInternalServerError, "no_captions_generated",
			errors.New("no captions generated"))
		return
	}

	rows := make([]*types.GeneratedPost, 0, len(captions))
	for _, cpt := range captions {
		rows = append(rows, &types.GeneratedPost{
			ContentID:     content.ID,
			Platform:      "instagram",
			GeneratedText: cpt.Text,
			PostMetadata: metaJSON(gin.H{
				"style":           cpt.Style,
				"hashtags":        cpt.Hashtags,
				"character_count": cpt.CharacterCount,
			}),
		})
	}
	if _, err := h.posts.Create(c.Request.Context(), rows); err != nil {
		h.log.Error("persist instagram captions failed", "error", err, "content_id", content.ID)
		response.RespondError(c, http.StatusInternalServerError, "persist_posts_failed", err)
		return
	}

	response.RespondCreated(c, gin.H{"content_id": content.ID, "captions": captions})
}

type seoGenerateRequest struct {
	PrimaryKeyword string `json:"primary_keyword" binding:"required"`
	SearchIntent   string `json:"search_intent" binding:"required,oneof=informational transactional navigational commercial"`
	Tone           string `json:"tone"`
}

// POST /api/generate/seo/:content_id
func (h *GenerateHandler) GenerateSEO(c *gin.Context) {
	content := h.loadContent(c)
	if content == nil {
		return
	}

	var req seoGenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_seo_payload", err)
		return
	}

	metas, err := h.gen.SEOMetas(c.Request.Context(), content.OriginalText, repurpose.SEOParams{
		Title:          content.Title,
		PrimaryKeyword: req.PrimaryKeyword,
		SearchIntent:   req.SearchIntent,
		Tone:           req.Tone,
	})
	if err != nil {
		h.log.Warn("seo generation failed", "content_id", content.ID, "error", err.Error())
		response.RespondError(c, http.StatusBadGateway, "generation_failed",
			errors.New("generation failed"))
		return
	}
	if len(metas) == 0 {
		h.log.Warn("seo generation returned no metas", "content_id", content.ID)
		response.RespondError(c, http.StatusInternalServerError, "no_metas_generated",
			errors.New("no meta descriptions generated"))
		return
	}

	rows := make([]*types.GeneratedPost, 0, len(metas))
	for _, m := range metas {
		rows = append(rows, &types.GeneratedPost{
			ContentID:     content.ID,
			Platform:      "seo",
			GeneratedText: m.Description,
			PostMetadata: metaJSON(gin.H{
				"character_count": m.CharacterCount,
				"primary_keyword": m.PrimaryKeyword,
			}),
		})
	}
	if _, err := h.posts.Create(c.Request.Context(), rows); err != nil {
		h.log.Error("persist seo metas failed", "error", err, "content_id", content.ID)
		response.RespondError(c, http.StatusInternalServerError, "persist_posts_failed", err)
		return
	}

	response.RespondCreated(c, gin.H{"content_id": content.ID, "metas": metas})
}

type imageGenerateRequest struct {
	Style string `json:"style"`
	Type  string `json:"type" binding:"omitempty,oneof=cover instagram"`
}

// POST /api/generate/image/:content_id
func (h *GenerateHandler) GenerateImage(c *gin.Context) {
	content := h.loadContent(c)
	if content == nil {
		return
	}

	req := imageGenerateRequest{Style: "minimal_gradient", Type: "cover"}
	if c.Request.Body != nil && c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			response.RespondError(c, http.StatusBadRequest, "invalid_image_payload", err)
			return
		}
		if req.Style == "" {
			req.Style = "minimal_gradient"
		}
		if req.Type == "" {
			req.Type = "cover"
		}
	}

	spec := h.gen.BuildImageSpec(content.Title, content.OriginalText, repurpose.ImageParams{
		Style:         req.Style,
		RequestedType: req.Type,
	})

	rows := []*types.GeneratedPost{{
		ContentID:     content.ID,
		Platform:      spec.Type,
		GeneratedText: spec.Prompt,
		PostMetadata:  metaJSON(spec),
	}}
	saved, err := h.posts.Create(c.Request.Context(), rows)
	if err != nil {
		h.log.Error("persist image spec failed", "error", err, "content_id", content.ID)
		response.RespondError(c, http.StatusInternalServerError, "persist_posts_failed", err)
		return
	}

	response.RespondCreated(c, gin.H{
		"content_id": content.ID,
		"image": gin.H{
			"id":           saved[0].ID,
			"type":         spec.Type,
			"image_url":    spec.UpstreamURL,
			"width":        spec.Width,
			"height":       spec.Height,
			"style":        spec.Style,
			"prompt":       spec.Prompt,
			"prompt_short": spec.PromptShort,
			"model":        spec.Model,
			"seed":         spec.Seed,
			"aspect_ratio": spec.AspectRatio,
			"created_at":   saved[0].CreatedAt,
		},
	})
}
