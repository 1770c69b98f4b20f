package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/yungbote/repurpose-backend/internal/data/repos"
	types "github.com/yungbote/repurpose-backend/internal/domain"
	"github.com/yungbote/repurpose-backend/internal/http/response"
	"github.com/yungbote/repurpose-backend/internal/pkg/logger"
)

type ContentHandler struct {
	log     *logger.Logger
	content repos.ContentRepo
	posts   repos.GeneratedPostRepo
}

func NewContentHandler(log *logger.Logger, content repos.ContentRepo, posts repos.GeneratedPostRepo) *ContentHandler {
	return &ContentHandler{
		log:     log.With("handler", "ContentHandler"),
		content: content,
		posts:   posts,
	}
}

type contentCreateRequest struct {
	OriginalText string `json:"original_text" binding:"required,min=10,max=10000"`
	Title        string `json:"title" binding:"omitempty,max=255"`
	SourceURL    string `json:"source_url" binding:"omitempty,max=500"`
}

// POST /api/content
func (h *ContentHandler) CreateContent(c *gin.Context) {
	var req contentCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_content_payload", err)
		return
	}

	row := &types.Content{
		OriginalText: req.OriginalText,
		Title:        req.Title,
		SourceURL:    req.SourceURL,
		WordCount:    len(strings.Fields(req.OriginalText)),
	}
	created, err := h.content.Create(c.Request.Context(), row)
	if err != nil {
		h.log.Error("CreateContent failed", "error", err)
		response.RespondError(c, http.StatusInternalServerError, "create_content_failed", err)
		return
	}
	response.RespondCreated(c, created)
}

// GET /api/content?skip=0&limit=10
func (h *ContentHandler) ListContent(c *gin.Context) {
	skip, _ := strconv.Atoi(c.DefaultQuery("skip", "0"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if skip < 0 {
		skip = 0
	}
	if limit <= 0 || limit > 100 {
		limit = 10
	}

	rows, err := h.content.List(c.Request.Context(), skip, limit)
	if err != nil {
		h.log.Error("ListContent failed", "error", err)
		response.RespondError(c, http.StatusInternalServerError, "list_content_failed", err)
		return
	}
	response.RespondOK(c, rows)
}

// GET /api/content/:id
func (h *ContentHandler) GetContent(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil || id == uuid.Nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_content_id", err)
		return
	}

	row, err := h.content.GetByID(c.Request.Context(), id)
	if err != nil {
		h.log.Error("GetContent failed", "error", err, "content_id", id)
		response.RespondError(c, http.StatusInternalServerError, "load_content_failed", err)
		return
	}
	if row == nil {
		response.RespondError(c, http.StatusNotFound, "content_not_found", errors.New("content not found"))
		return
	}
	response.RespondOK(c, row)
}

type favoriteRequest struct {
	IsFavorite *bool `json:"is_favorite" binding:"required"`
}

// PATCH /api/posts/:post_id/favorite
func (h *ContentHandler) SetPostFavorite(c *gin.Context) {
	id, err := uuid.Parse(c.Param("post_id"))
	if err != nil || id == uuid.Nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_post_id", err)
		return
	}

	var req favoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_favorite_payload", err)
		return
	}

	post, err := h.posts.GetByID(c.Request.Context(), id)
	if err != nil {
		h.log.Error("SetPostFavorite failed (load post)", "error", err, "post_id", id)
		response.RespondError(c, http.StatusInternalServerError, "load_post_failed", err)
		return
	}
	if post == nil {
		response.RespondError(c, http.StatusNotFound, "post_not_found", errors.New("post not found"))
		return
	}

	if err := h.posts.SetFavorite(c.Request.Context(), id, *req.IsFavorite); err != nil {
		h.log.Error("SetPostFavorite failed (update)", "error", err, "post_id", id)
		response.RespondError(c, http.StatusInternalServerError, "update_favorite_failed", err)
		return
	}
	response.RespondOK(c, gin.H{"id": id, "is_favorite": *req.IsFavorite})
}

// GET /api/content/:id/posts?platform=linkedin
func (h *ContentHandler) ListContentPosts(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil || id == uuid.Nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_content_id", err)
		return
	}

	row, err := h.content.GetByID(c.Request.Context(), id)
	if err != nil {
		h.log.Error("ListContentPosts failed (load content)", "error", err, "content_id", id)
		response.RespondError(c, http.StatusInternalServerError, "load_content_failed", err)
		return
	}
	if row == nil {
		response.RespondError(c, http.StatusNotFound, "content_not_found", errors.New("content not found"))
		return
	}

	posts, err := h.posts.ListByContent(c.Request.Context(), id, c.Query("platform"))
	if err != nil {
		h.log.Error("ListContentPosts failed (load posts)", "error", err, "content_id", id)
		response.RespondError(c, http.StatusInternalServerError, "list_posts_failed", err)
		return
	}
	response.RespondOK(c, gin.H{"content_id": id, "posts": posts})
}
