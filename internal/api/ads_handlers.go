package api

import (
	"net/http"
	"strings"

	"github.com/Gouravlamba/eminent-news/internal/auth"
	"github.com/Gouravlamba/eminent-news/internal/httpx"
	"github.com/Gouravlamba/eminent-news/internal/services/ads"
	"github.com/go-chi/chi/v5"
)

type AdsRouter struct {
	api *API
}

func (ar AdsRouter) Routes(r chi.Router) {
	api := ar.api
	r.Route("/ads", func(r chi.Router) {
		r.Get("/", handle(api.GetAds))
		r.Get("/{id}", handle(api.GetAdById))

		r.Group(func(r chi.Router) {
			r.Use(api.RequireAuth, AuthorizeRoles(auth.RoleAdmin))
			r.Post("/", handle(api.AddAd))
			r.Put("/{id}", handle(api.UpdateAd))
			r.Delete("/{id}", handle(api.DeleteAd))
		})
	})
}

func (api *API) GetAds(w http.ResponseWriter, r *http.Request) error {
	page, size := parsePageQuery(r)
	category := strings.TrimSpace(r.URL.Query().Get("category"))

	adsPage, err := ads.GetPageOfAds(api.Db, r.Context(), page, size, category)
	if err != nil {
		return err
	}
	return respondWithJSON(w, http.StatusOK, adsPage)
}

func (api *API) GetAdById(w http.ResponseWriter, r *http.Request) error {
	ad, err := ads.GetAdById(api.Db, r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		return err
	}
	return respondWithJSON(w, http.StatusOK, ad)
}

func (api *API) AddAd(w http.ResponseWriter, r *http.Request) error {
	var req ads.NewAdRequest
	if err := httpx.Decode(r, &req); err != nil {
		return err
	}

	ad, err := ads.AddAd(api.Db, r.Context(), req)
	if err != nil {
		return err
	}
	return respondWithJSON(w, http.StatusCreated, ad)
}

func (api *API) UpdateAd(w http.ResponseWriter, r *http.Request) error {
	var req ads.UpdateAdRequest
	if err := httpx.Decode(r, &req); err != nil {
		return err
	}

	ad, err := ads.UpdateAd(api.Db, r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		return err
	}
	return respondWithJSON(w, http.StatusOK, ad)
}

func (api *API) DeleteAd(w http.ResponseWriter, r *http.Request) error {
	if err := ads.DeleteAd(api.Db, r.Context(), chi.URLParam(r, "id")); err != nil {
		return err
	}
	return respondWithMessage(w, http.StatusOK, "Ad deleted successfully")
}
