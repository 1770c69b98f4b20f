package app

import (
	httpH "github.com/yungbote/repurpose-backend/internal/http/handlers"
	"github.com/yungbote/repurpose-backend/internal/pkg/logger"
	"github.com/yungbote/repurpose-backend/internal/repurpose"
)

type Handlers struct {
	Health   *httpH.HealthHandler
	Content  *httpH.ContentHandler
	Generate *httpH.GenerateHandler
	Image    *httpH.ImageHandler
}

func wireHandlers(log *logger.Logger, clients Clients, reposet Repos) Handlers {
	log.Info("Wiring handlers...")

	pipeline := repurpose.New(log, clients.Gemini, clients.Groq)

	return Handlers{
		Health:   httpH.NewHealthHandler(),
		Content:  httpH.NewContentHandler(log, reposet.Content, reposet.GeneratedPost),
		Generate: httpH.NewGenerateHandler(log, pipeline, reposet.Content, reposet.GeneratedPost),
		Image:    httpH.NewImageHandler(log, reposet.GeneratedPost, clients.Pollinations),
	}
}
