package api

import (
	"github.com/Pranav212nair/xeno/internal/auth"
	"github.com/Pranav212nair/xeno/internal/cache"
	"github.com/Pranav212nair/xeno/internal/config"
	"github.com/Pranav212nair/xeno/internal/storage"
	"github.com/Pranav212nair/xeno/internal/sync"
)

const Version = "2.0.0"

type API struct {
	Storage *storage.Storage
	Issuer  *auth.Issuer
	Cache   *cache.Cache
	Sync    sync.Provider
	Cfg     *config.Config
}

func NewAPI(db *storage.Storage, issuer *auth.Issuer, c *cache.Cache, provider sync.Provider, cfg *config.Config) *API {
	return &API{
		Storage: db,
		Issuer:  issuer,
		Cache:   c,
		Sync:    provider,
		Cfg:     cfg,
	}
}
