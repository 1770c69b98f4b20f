package app

import (
	"github.com/redis/go-redis/v9"

	"github.com/yungbote/repurpose-backend/internal/clients/gemini"
	"github.com/yungbote/repurpose-backend/internal/clients/groq"
	"github.com/yungbote/repurpose-backend/internal/clients/pollinations"
	"github.com/yungbote/repurpose-backend/internal/pkg/logger"
)

type Clients struct {
	Gemini       gemini.Client
	Groq         groq.Client
	Pollinations pollinations.Client
	Redis        *redis.Client
}

func wireClients(log *logger.Logger, cfg Config) (Clients, error) {
	log.Info("Wiring clients...")

	geminiClient, err := gemini.NewClient(log)
	if err != nil {
		return Clients{}, err
	}
	groqClient, err := groq.NewClient(log)
	if err != nil {
		return Clients{}, err
	}
	pollinationsClient, err := pollinations.NewClient(log)
	if err != nil {
		return Clients{}, err
	}

	var rdb *redis.Client
	if cfg.RedisAddr != "" {
		rdb = redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	}

	return Clients{
		Gemini:       geminiClient,
		Groq:         groqClient,
		Pollinations: pollinationsClient,
		Redis:        rdb,
	}, nil
}
