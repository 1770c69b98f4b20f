package app

import (
	"github.com/yungbote/repurpose-backend/internal/pkg/logger"
	"github.com/yungbote/repurpose-backend/internal/utils"
)

type Config struct {
	AllowedOrigins     string
	RedisAddr          string
	GenerateRatePerMin int
}

func LoadConfig(log *logger.Logger) Config {
	return Config{
		AllowedOrigins:     utils.GetEnv("ALLOWED_ORIGINS", "", log),
		RedisAddr:          utils.GetEnv("REDIS_ADDR", "", log),
		GenerateRatePerMin: utils.GetEnvAsInt("RATE_LIMIT_RPM", 30, log),
	}
}
