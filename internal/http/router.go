package http

import (
	"github.com/gin-gonic/gin"

	httpH "github.com/yungbote/repurpose-backend/internal/http/handlers"
	httpMW "github.com/yungbote/repurpose-backend/internal/http/middleware"
	"github.com/yungbote/repurpose-backend/internal/pkg/logger"
)

type RouterConfig struct {
	Log *logger.Logger

	AllowedOrigins string
	RateLimiter    gin.HandlerFunc

	HealthHandler   *httpH.HealthHandler
	ContentHandler  *httpH.ContentHandler
	GenerateHandler *httpH.GenerateHandler
	ImageHandler    *httpH.ImageHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(httpMW.RequestLogger(cfg.Log))
	r.Use(httpMW.CORS(cfg.AllowedOrigins))

	// Health
	if cfg.HealthHandler != nil {
		r.GET("/healthcheck", cfg.HealthHandler.HealthCheck)
	}

	api := r.Group("/api")
	{
		// Content
		if cfg.ContentHandler != nil {
			api.POST("/content", cfg.ContentHandler.CreateContent)
			api.GET("/content", cfg.ContentHandler.ListContent)
			api.GET("/content/:id", cfg.ContentHandler.GetContent)
			api.GET("/content/:id/posts", cfg.ContentHandler.ListContentPosts)
			api.PATCH("/posts/:post_id/favorite", cfg.ContentHandler.SetPostFavorite)
		}

		// Generation; rate limited when a limiter is configured.
		if cfg.GenerateHandler != nil {
			gen := api.Group("/generate")
			if cfg.RateLimiter != nil {
				gen.Use(cfg.RateLimiter)
			}
			gen.POST("/linkedin/:content_id", cfg.GenerateHandler.GenerateLinkedIn)
			gen.POST("/twitter/:content_id", cfg.GenerateHandler.GenerateTwitter)
			gen.POST("/instagram/:content_id", cfg.GenerateHandler.GenerateInstagram)
			gen.POST("/seo/:content_id", cfg.GenerateHandler.GenerateSEO)
			gen.POST("/image/:content_id", cfg.GenerateHandler.GenerateImage)
		}

		// Rendered image proxy
		if cfg.ImageHandler != nil {
			api.GET("/images/:post_id", cfg.ImageHandler.GetImage)
		}
	}

	return r
}
