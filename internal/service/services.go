package service

import (
	"github.com/quietpage/quietpage/internal/config"
	"github.com/quietpage/quietpage/internal/logger"
	"github.com/quietpage/quietpage/internal/store"
)

type Services struct {
	AuthService    AuthService
	DraftService   DraftService
	SaltService    SaltService
	AppInfoService AppInfoService
}

func NewServices(storages store.Storages, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		AuthService: NewAuthService(storages.UserRepository, cfg.App, logger),
		DraftService: NewDraftValidationService().
			Wrap(NewDraftService(storages.DraftRepository, logger)),
		SaltService:    NewSaltService(storages.SaltRepository, logger),
		AppInfoService: appInfo,
	}, nil
}
