package api

import (
	"time"

	"github.com/Gouravlamba/eminent-news/internal/config"
	"github.com/Gouravlamba/eminent-news/internal/mongodb"
	"github.com/Gouravlamba/eminent-news/internal/services/shorts"
	"github.com/go-chi/chi/v5"
)

type API struct {
	Db           *mongodb.DB
	Secret       string
	TokenExpire  time.Duration
	CookieExpire time.Duration
	SecureCookie bool
	LoginLimiter *IPRateLimiter

	// Videos is nil when no bucket is configured; uploads then answer 503.
	Videos shorts.VideoStore
}

func NewAPI(db *mongodb.DB, cfg config.Config, videos shorts.VideoStore) *API {
	return &API{
		Db:           db,
		Secret:       cfg.JWTSecret,
		TokenExpire:  cfg.JWTExpire,
		CookieExpire: cfg.CookieExpire,
		SecureCookie: cfg.IsProduction(),
		LoginLimiter: NewIPRateLimiter(cfg.LoginRateLimit),
		Videos:       videos,
	}
}

// Router registers a resource's routes below the API prefix.
type Router interface {
	Routes(r chi.Router)
}

// Routers returns the resource routers in mount order.
func (api *API) Routers() []Router {
	return []Router{
		NewsRouter{api: api},
		UsersRouter{api: api},
		ShortsRouter{api: api},
		AdsRouter{api: api},
	}
}
