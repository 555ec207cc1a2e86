package server

import (
	"net/http"

	"github.com/Gouravlamba/eminent-news/internal/api"
	"github.com/Gouravlamba/eminent-news/internal/httpx"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

const APIPrefix = "/api/v1"

func corsOptions() cors.Options {
	return cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization", "Cache-Control", "Expires", "Pragma"},
		AllowCredentials: false,
	}
}

// NewHandler assembles the application: CORS, body and cookie parsing, the
// health route and every router under APIPrefix in the given order. Any
// failure, including unknown routes, ends in api.ErrorHandler.
func NewHandler(routers ...api.Router) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RealIP)
	r.Use(RequestIdMiddleware)
	r.Use(Recoverer)
	r.Use(cors.Handler(corsOptions()))
	r.Use(httpx.BodyParser(api.ErrorHandler))
	r.Use(httpx.CookieParser)

	r.NotFound(api.NotFound)
	r.MethodNotAllowed(api.MethodNotAllowed)

	r.Get("/", api.RootHandler)

	r.Route(APIPrefix, func(v1 chi.Router) {
		for _, router := range routers {
			v1.Group(router.Routes)
		}
	})

	return r
}
