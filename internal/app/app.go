package app

import (
	"fmt"
	"os"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/yungbote/repurpose-backend/internal/data/db"
	internalHTTP "github.com/yungbote/repurpose-backend/internal/http"
	httpMW "github.com/yungbote/repurpose-backend/internal/http/middleware"
	"github.com/yungbote/repurpose-backend/internal/pkg/logger"
)

type App struct {
	Log     *logger.Logger
	DB      *gorm.DB
	Router  *gin.Engine
	Cfg     Config
	Clients Clients
	Repos   Repos
}

func New() (*App, error) {
	logMode := os.Getenv("LOG_MODE")
	if logMode == "" {
		logMode = "development"
	}
	log, err := logger.New(logMode)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	log.Info("Loading environment variables...")
	cfg := LoadConfig(log)

	pg, err := db.NewPostgresService(log)
	if err != nil {
		log.Sync()
		return nil, fmt.Errorf("init postgres: %w", err)
	}
	if err := pg.AutoMigrateAll(); err != nil {
		log.Sync()
		return nil, fmt.Errorf("postgres automigrate: %w", err)
	}
	theDB := pg.DB()

	clientset, err := wireClients(log, cfg)
	if err != nil {
		log.Sync()
		return nil, err
	}

	reposet := wireRepos(theDB, log)
	handlerset := wireHandlers(log, clientset, reposet)

	var limiter gin.HandlerFunc
	if clientset.Redis != nil {
		limiter = httpMW.RateLimit(clientset.Redis, log, cfg.GenerateRatePerMin)
	}

	router := internalHTTP.NewRouter(internalHTTP.RouterConfig{
		Log:             log,
		AllowedOrigins:  cfg.AllowedOrigins,
		RateLimiter:     limiter,
		HealthHandler:   handlerset.Health,
		ContentHandler:  handlerset.Content,
		GenerateHandler: handlerset.Generate,
		ImageHandler:    handlerset.Image,
	})

	return &App{
		Log:     log,
		DB:      theDB,
		Router:  router,
		Cfg:     cfg,
		Clients: clientset,
		Repos:   reposet,
	}, nil
}

func (a *App) Run(addr string) error {
	if a == nil || a.Router == nil {
		return fmt.Errorf("app not initialized")
	}
	return a.Router.Run(addr)
}

func (a *App) Close() {
	if a == nil {
		return
	}
	if a.Clients.Redis != nil {
		_ = a.Clients.Redis.Close()
	}
	if a.Log != nil {
		a.Log.Sync()
	}
}
