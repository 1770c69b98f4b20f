package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	types "github.com/yungbote/repurpose-backend/internal/domain"
	"github.com/yungbote/repurpose-backend/internal/http/handlers"
	"github.com/yungbote/repurpose-backend/internal/pkg/logger"
)

func newContentRouter(contents *fakeContentRepo, posts *fakePostRepo) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := handlers.NewContentHandler(logger.NewNop(), contents, posts)

	r := gin.New()
	r.POST("/api/content", h.CreateContent)
	r.GET("/api/content", h.ListContent)
	r.GET("/api/content/:id", h.GetContent)
	r.GET("/api/content/:id/posts", h.ListContentPosts)
	r.PATCH("/api/posts/:post_id/favorite", h.SetPostFavorite)
	return r
}

func TestCreateContentComputesWordCount(t *testing.T) {
	contents := &fakeContentRepo{rows: map[uuid.UUID]*types.Content{}}
	r := newContentRouter(contents, &fakePostRepo{})

	w := post(r, "/api/content", gin.H{
		"original_text": "five words of test content",
		"title":         "Counting",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}

	var resp types.Content
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.WordCount != 5 {
		t.Fatalf("expected word_count 5, got %d", resp.WordCount)
	}
	if resp.ID == uuid.Nil {
		t.Fatalf("expected assigned id")
	}
}

func TestCreateContentValidation(t *testing.T) {
	contents := &fakeContentRepo{rows: map[uuid.UUID]*types.Content{}}
	r := newContentRouter(contents, &fakePostRepo{})

	// Under the 10 character minimum.
	w := post(r, "/api/content", gin.H{"original_text": "short"})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for short text, got %d", w.Code)
	}

	// Missing entirely.
	w = post(r, "/api/content", gin.H{"title": "no text"})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for missing text, got %d", w.Code)
	}
}

func TestGetContentNotFound(t *testing.T) {
	contents := &fakeContentRepo{rows: map[uuid.UUID]*types.Content{}}
	r := newContentRouter(contents, &fakePostRepo{})

	req := httptest.NewRequest(http.MethodGet, "/api/content/"+uuid.NewString(), nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/content/not-a-uuid", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for bad uuid, got %d", w.Code)
	}
}

func patch(r *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	raw, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPatch, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestSetPostFavorite(t *testing.T) {
	contents := &fakeContentRepo{rows: map[uuid.UUID]*types.Content{}}
	posts := &fakePostRepo{}
	row := seedContent(contents, "long enough content for favorite tests here")
	post := &types.GeneratedPost{ID: uuid.New(), ContentID: row.ID, Platform: "linkedin", GeneratedText: "a"}
	posts.created = append(posts.created, post)
	r := newContentRouter(contents, posts)

	w := patch(r, "/api/posts/"+post.ID.String()+"/favorite", gin.H{"is_favorite": true})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if !post.IsFavorite {
		t.Fatalf("favorite flag not applied")
	}

	// Explicit false must also bind; a missing field must not.
	w = patch(r, "/api/posts/"+post.ID.String()+"/favorite", gin.H{"is_favorite": false})
	if w.Code != http.StatusOK || post.IsFavorite {
		t.Fatalf("unfavorite failed: %d, favorite=%v", w.Code, post.IsFavorite)
	}
	w = patch(r, "/api/posts/"+post.ID.String()+"/favorite", gin.H{})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for missing is_favorite, got %d", w.Code)
	}
}

func TestSetPostFavoriteMissingPost404(t *testing.T) {
	contents := &fakeContentRepo{rows: map[uuid.UUID]*types.Content{}}
	r := newContentRouter(contents, &fakePostRepo{})

	w := patch(r, "/api/posts/"+uuid.NewString()+"/favorite", gin.H{"is_favorite": true})
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestListContentPosts(t *testing.T) {
	contents := &fakeContentRepo{rows: map[uuid.UUID]*types.Content{}}
	posts := &fakePostRepo{}
	row := seedContent(contents, "long enough content for listing tests here")
	posts.created = append(posts.created,
		&types.GeneratedPost{ID: uuid.New(), ContentID: row.ID, Platform: "linkedin", GeneratedText: "a"},
		&types.GeneratedPost{ID: uuid.New(), ContentID: row.ID, Platform: "seo", GeneratedText: "b"},
	)
	r := newContentRouter(contents, posts)

	req := httptest.NewRequest(http.MethodGet, "/api/content/"+row.ID.String()+"/posts?platform=seo", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Posts []types.GeneratedPost `json:"posts"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(resp.Posts) != 1 || resp.Posts[0].Platform != "seo" {
		t.Fatalf("platform filter failed: %s", w.Body.String())
	}
}
