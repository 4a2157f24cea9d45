package service

import (
	"github.com/MKhiriev/go-taskflow/internal/config"
	"github.com/MKhiriev/go-taskflow/internal/logger"
	"github.com/MKhiriev/go-taskflow/internal/store"
	"github.com/MKhiriev/go-taskflow/models"
)

type Services struct {
	AuthService    AuthService
	TodoService    TodoService
	NoteService    NoteService
	AppInfoService AppInfoService
}

func NewServices(storages *store.Storages, cfg config.App, buildInfo models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(buildInfo, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		AuthService:    NewAuthService(storages.UserRepository, storages.SessionRepository, cfg, logger),
		TodoService:    NewTodoValidationService().Wrap(NewTodoService(storages.TodoRepository, logger)),
		NoteService:    NewNoteValidationService().Wrap(NewNoteService(storages.NoteRepository, logger)),
		AppInfoService: appInfo,
	}, nil
}
