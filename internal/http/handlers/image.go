package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/yungbote/repurpose-backend/internal/data/repos"
	"github.com/yungbote/repurpose-backend/internal/http/response"
	"github.com/yungbote/repurpose-backend/internal/pkg/logger"
)

// ImageFetcher downloads a rendered image from the upstream host.
type ImageFetcher interface {
	Fetch(ctx context.Context, upstreamURL string) ([]byte, string, error)
}

type ImageHandler struct {
	log     *logger.Logger
	posts   repos.GeneratedPostRepo
	fetcher ImageFetcher
}

func NewImageHandler(log *logger.Logger, posts repos.GeneratedPostRepo, fetcher ImageFetcher) *ImageHandler {
	return &ImageHandler{
		log:     log.With("handler", "ImageHandler"),
		posts:   posts,
		fetcher: fetcher,
	}
}

// GET /api/images/:post_id
//
// Streams the rendered image for a stored image post. The upstream URL
// comes from the post's own metadata, never from the request, so the proxy
// only ever reaches the known renderer host.
func (h *ImageHandler) GetImage(c *gin.Context) {
	id, err := uuid.Parse(c.Param("post_id"))
	if err != nil || id == uuid.Nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_post_id", err)
		return
	}

	post, err := h.posts.GetByID(c.Request.Context(), id)
	if err != nil {
		h.log.Error("GetImage failed (load post)", "error", err, "post_id", id)
		response.RespondError(c, http.StatusInternalServerError, "load_post_failed", err)
		return
	}
	if post == nil || !strings.HasPrefix(post.Platform, "image_") {
		response.RespondError(c, http.StatusNotFound, "image_not_found", errors.New("image post not found"))
		return
	}

	var meta struct {
		UpstreamURL string `json:"upstream_url"`
	}
	if err := json.Unmarshal(post.PostMetadata, &meta); err != nil || meta.UpstreamURL == "" {
		h.log.Error("GetImage failed (bad metadata)", "post_id", id)
		response.RespondError(c, http.StatusInternalServerError, "invalid_image_metadata",
			errors.New("stored image metadata is unusable"))
		return
	}

	raw, contentType, err := h.fetcher.Fetch(c.Request.Context(), meta.UpstreamURL)
	if err != nil {
		h.log.Warn("GetImage upstream fetch failed", "post_id", id, "error", err.Error())
		response.RespondError(c, http.StatusBadGateway, "image_fetch_failed",
			errors.New("upstream image fetch failed"))
		return
	}

	c.Header("Cache-Control", "public, max-age=86400")
	c.Data(http.StatusOK, contentType, raw)
}
