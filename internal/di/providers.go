package di

import (
	"github.com/gorilla/mux"
	"gorm.io/gorm"

	"gomessenger/internal/common"
	"gomessenger/internal/config"
)

// App bundles everything main needs to run the service.
type App struct {
	Config *config.Config
	DB     *gorm.DB
	Router *mux.Router
}

func ProvideTokenIssuer(cfg *config.Config) (*common.TokenIssuer, error) {
	return common.NewTokenIssuer([]byte(cfg.Auth.TokenKey))
}
