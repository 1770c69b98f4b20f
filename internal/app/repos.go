package app

import (
	"gorm.io/gorm"

	"github.com/yungbote/repurpose-backend/internal/data/repos"
	"github.com/yungbote/repurpose-backend/internal/pkg/logger"
)

type Repos struct {
	Content       repos.ContentRepo
	GeneratedPost repos.GeneratedPostRepo
}

func wireRepos(db *gorm.DB, log *logger.Logger) Repos {
	log.Info("Wiring repos...")
	return Repos{
		Content:       repos.NewContentRepo(db, log),
		GeneratedPost: repos.NewGeneratedPostRepo(db, log),
	}
}
