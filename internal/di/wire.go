//go:build wireinject
// +build wireinject

package di

import (
	"github.com/google/wire"
	"gorm.io/gorm"

	"gomessenger/internal/auth"
	"gomessenger/internal/config"
	"gomessenger/internal/message"
	"gomessenger/internal/user"
)

// InitializeApp is the declaration wire generates the real body for.
func InitializeApp(cfg *config.Config, db *gorm.DB) (*App, error) {
	wire.Build(
		ProvideTokenIssuer,
		user.NewUserRepository,
		user.NewUserService,
		user.NewHandler,
		auth.NewAuthService,
		auth.NewHandler,
		message.NewMessageRepository,
		message.NewMessageService,
		message.NewHandler,
		NewRouter,
		wire.Struct(new(App), "*"),
	)
	return &App{}, nil
}
