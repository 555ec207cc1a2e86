package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/Gouravlamba/eminent-news/internal/auth"
	"github.com/Gouravlamba/eminent-news/internal/httpx"
	"github.com/Gouravlamba/eminent-news/internal/services/shorts"
	"github.com/go-chi/chi/v5"
)

const (
	maxVideoBytes        = 100 << 20
	multipartMemoryBytes = 32 << 20
)

type ShortsRouter struct {
	api *API
}

func (sr ShortsRouter) Routes(r chi.Router) {
	api := sr.api
	r.Route("/shorts", func(r chi.Router) {
		r.Get("/", handle(api.GetShorts))
		r.Get("/{id}", handle(api.GetShortById))

		r.Group(func(r chi.Router) {
			r.Use(api.RequireAuth, AuthorizeRoles(auth.RoleEditor, auth.RoleAdmin))
			r.Post("/", handle(api.AddShort))
			r.Post("/upload", handle(api.UploadShort))
			r.Put("/{id}", handle(api.UpdateShort))
			r.Delete("/{id}", handle(api.DeleteShort))
		})
	})
}

func (api *API) GetShorts(w http.ResponseWriter, r *http.Request) error {
	page, size := parsePageQuery(r)

	shortsPage, err := shorts.GetPageOfShorts(api.Db, r.Context(), page, size)
	if err != nil {
		return err
	}
	return respondWithJSON(w, http.StatusOK, shortsPage)
}

func (api *API) GetShortById(w http.ResponseWriter, r *http.Request) error {
	short, err := shorts.GetShortById(api.Db, r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		return err
	}
	return respondWithJSON(w, http.StatusOK, short)
}

func (api *API) AddShort(w http.ResponseWriter, r *http.Request) error {
	user, err := currentUser(r)
	if err != nil {
		return err
	}

	var req shorts.NewShortRequest
	if err := httpx.Decode(r, &req); err != nil {
		return err
	}

	short, err := shorts.AddShort(api.Db, r.Context(), user.Id, req)
	if err != nil {
		return err
	}
	return respondWithJSON(w, http.StatusCreated, short)
}

// UploadShort accepts a multipart form with a "video" file and a "title"
// field and stores the file in the configured bucket.
func (api *API) UploadShort(w http.ResponseWriter, r *http.Request) error {
	user, err := currentUser(r)
	if err != nil {
		return err
	}
	if api.Videos == nil {
		return shorts.ErrStorageUnavailable
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxVideoBytes)
	if err := r.ParseMultipartForm(multipartMemoryBytes); err != nil {
		var maxBytesErr *http.MaxBytesError
		switch {
		case errors.As(err, &maxBytesErr):
			return err
		case errors.Is(err, http.ErrNotMultipart):
			return ErrNotMultipart
		}
		return fmt.Errorf("%w: %v", httpx.ErrMalformedBody, err)
	}
	defer r.MultipartForm.RemoveAll()

	file, header, err := r.FormFile("video")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return shorts.ErrVideoRequired
		}
		return err
	}
	defer file.Close()

	short, err := shorts.UploadShort(api.Db, api.Videos, r.Context(), user.Id, shorts.VideoUpload{
		Title:       r.FormValue("title"),
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Body:        file,
	})
	if err != nil {
		return err
	}
	return respondWithJSON(w, http.StatusCreated, short)
}

func (api *API) UpdateShort(w http.ResponseWriter, r *http.Request) error {
	var req shorts.UpdateShortRequest
	if err := httpx.Decode(r, &req); err != nil {
		return err
	}

	short, err := shorts.UpdateShort(api.Db, r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		return err
	}
	return respondWithJSON(w, http.StatusOK, short)
}

func (api *API) DeleteShort(w http.ResponseWriter, r *http.Request) error {
	if err := shorts.DeleteShort(api.Db, r.Context(), chi.URLParam(r, "id")); err != nil {
		return err
	}
	return respondWithMessage(w, http.StatusOK, "Short deleted successfully")
}
