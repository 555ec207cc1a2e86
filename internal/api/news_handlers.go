package api

import (
	"net/http"

	"github.com/Gouravlamba/eminent-news/internal/auth"
	"github.com/Gouravlamba/eminent-news/internal/httpx"
	"github.com/Gouravlamba/eminent-news/internal/services/news"
	"github.com/go-chi/chi/v5"
)

type NewsRouter struct {
	api *API
}

func (nr NewsRouter) Routes(r chi.Router) {
	api := nr.api
	r.Route("/news", func(r chi.Router) {
		r.Get("/", handle(api.GetNews))
		r.Get("/{id}", handle(api.GetNewsById))

		r.Group(func(r chi.Router) {
			r.Use(api.RequireAuth, AuthorizeRoles(auth.RoleEditor, auth.RoleAdmin))
			r.Post("/", handle(api.AddNews))
			r.Put("/{id}", handle(api.UpdateNews))
			r.Delete("/{id}", handle(api.DeleteNews))
		})
	})
}

func (api *API) GetNews(w http.ResponseWriter, r *http.Request) error {
	page, size := parsePageQuery(r)

	newsPage, err := news.GetPageOfNews(api.Db, r.Context(), page, size)
	if err != nil {
		return err
	}
	return respondWithJSON(w, http.StatusOK, newsPage)
}

func (api *API) GetNewsById(w http.ResponseWriter, r *http.Request) error {
	item, err := news.GetNewsById(api.Db, r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		return err
	}
	return respondWithJSON(w, http.StatusOK, item)
}

func (api *API) AddNews(w http.ResponseWriter, r *http.Request) error {
	user, err := currentUser(r)
	if err != nil {
		return err
	}

	var req news.NewNewsRequest
	if err := httpx.Decode(r, &req); err != nil {
		return err
	}

	item, err := news.AddNews(api.Db, r.Context(), user.Id, req)
	if err != nil {
		return err
	}
	return respondWithJSON(w, http.StatusCreated, item)
}

func (api *API) UpdateNews(w http.ResponseWriter, r *http.Request) error {
	var req news.UpdateNewsRequest
	if err := httpx.Decode(r, &req); err != nil {
		return err
	}

	item, err := news.UpdateNews(api.Db, r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		return err
	}
	return respondWithJSON(w, http.StatusOK, item)
}

func (api *API) DeleteNews(w http.ResponseWriter, r *http.Request) error {
	if err := news.DeleteNews(api.Db, r.Context(), chi.URLParam(r, "id")); err != nil {
		return err
	}
	return respondWithMessage(w, http.StatusOK, "News deleted successfully")
}
