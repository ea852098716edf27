package router

import (
	"github.com/entertainmenthub/user-api/internal/application"
	"github.com/entertainmenthub/user-api/internal/container"
	pginfra "github.com/entertainmenthub/user-api/internal/infrastructure/postgres"
	handlers "github.com/entertainmenthub/user-api/internal/interface/http"
	"github.com/entertainmenthub/user-api/internal/router/modules"
	"github.com/entertainmenthub/user-api/pkg/helpers"
	"github.com/entertainmenthub/user-api/pkg/mailer"
)

// InitModules initializes all application modules and registers them with the router registry
// This function should be called once during application startup to wire up all modules
func InitModules(r *Registry) {
	cfg := container.GetConfig()
	repo := pginfra.NewUserRepository(container.GetPGPool())
	hasher := helpers.NewBcryptHasher(cfg.BcryptCost)

	var pub *mailer.Publisher
	if cfg.MailSendEnabled {
		pub = container.GetRabbitPub()
	}

	authSvc := application.NewAuthService(repo, hasher, container.GetJWT(), container.GetLogger(), pub)
	watchSvc := application.NewWatchlistService(repo, container.GetLogger())

	authHandler := handlers.NewAuthHandler(authSvc, container.GetLogger())
	watchHandler := handlers.NewWatchlistHandler(watchSvc, container.GetLogger())

	r.Add(modules.NewAuthModule(authHandler, container.GetJWT()))
	r.Add(modules.NewWatchlistModule(watchHandler, container.GetJWT()))
}
