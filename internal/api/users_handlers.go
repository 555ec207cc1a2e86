package api

import (
	"net/http"

	"github.com/Gouravlamba/eminent-news/internal/auth"
	"github.com/Gouravlamba/eminent-news/internal/httpx"
	"github.com/Gouravlamba/eminent-news/internal/services/users"
	"github.com/go-chi/chi/v5"
)

type UsersRouter struct {
	api *API
}

func (ur UsersRouter) Routes(r chi.Router) {
	api := ur.api
	r.Post("/register", handle(api.RegisterHandler))
	r.With(api.LoginLimiter.Middleware).Post("/login", handle(api.LoginHandler))
	r.Get("/logout", handle(api.LogoutHandler))
	r.With(api.RequireAuth).Get("/me", handle(api.GetMe))

	r.Route("/admin/users", func(r chi.Router) {
		r.Use(api.RequireAuth, AuthorizeRoles(auth.RoleAdmin))
		r.Get("/", handle(api.GetUsers))
		r.Get("/{id}", handle(api.GetUser))
		r.Put("/{id}", handle(api.UpdateUserRole))
		r.Delete("/{id}", handle(api.DeleteUser))
	})
}

func (api *API) GetMe(w http.ResponseWriter, r *http.Request) error {
	user, err := currentUser(r)
	if err != nil {
		return err
	}
	return respondWithJSON(w, http.StatusOK, users.MapDbUserToApiUserResponse(*user))
}

func (api *API) GetUsers(w http.ResponseWriter, r *http.Request) error {
	allUsers, err := users.GetAllUsers(api.Db, r.Context())
	if err != nil {
		return err
	}
	return respondWithJSON(w, http.StatusOK, users.AllUsersResponse{Users: allUsers})
}

func (api *API) GetUser(w http.ResponseWriter, r *http.Request) error {
	user, err := users.GetUserById(api.Db, r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		return err
	}
	return respondWithJSON(w, http.StatusOK, user)
}

func (api *API) UpdateUserRole(w http.ResponseWriter, r *http.Request) error {
	caller, err := currentUser(r)
	if err != nil {
		return err
	}

	var req users.UpdateRoleRequest
	if err := httpx.Decode(r, &req); err != nil {
		return err
	}

	user, err := users.UpdateUserRole(api.Db, r.Context(), caller.Id, chi.URLParam(r, "id"), req)
	if err != nil {
		return err
	}
	return respondWithJSON(w, http.StatusOK, user)
}

func (api *API) DeleteUser(w http.ResponseWriter, r *http.Request) error {
	caller, err := currentUser(r)
	if err != nil {
		return err
	}

	if err := users.DeleteUser(api.Db, r.Context(), caller.Id, chi.URLParam(r, "id")); err != nil {
		return err
	}
	return respondWithMessage(w, http.StatusOK, "User deleted successfully")
}
