package wire

import (
	"eduverse/internal/chat/handler"
	"eduverse/internal/common"
	"eduverse/internal/config"

	"gorm.io/gorm"
)

// Application bundles everything main needs after injection
type Application struct {
	Config  *config.Config
	DB      *gorm.DB
	Tokens  *common.TokenManager
	Handler *handler.ChatHandler
}

func provideTokenManager(cfg *config.Config) *common.TokenManager {
	return common.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.Issuer)
}
