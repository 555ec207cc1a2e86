package api

import (
	"net/http"
	"time"

	"github.com/Gouravlamba/eminent-news/internal/auth"
	"github.com/Gouravlamba/eminent-news/internal/httpx"
	"github.com/Gouravlamba/eminent-news/internal/logx"
	"github.com/Gouravlamba/eminent-news/internal/mongodb"
	"github.com/Gouravlamba/eminent-news/internal/services/users"
	"go.uber.org/zap"
)

func (api *API) LoginHandler(w http.ResponseWriter, r *http.Request) error {
	var authReq auth.LoginRequest
	if err := httpx.Decode(r, &authReq); err != nil {
		return err
	}

	userDb, err := users.Authenticate(api.Db, r.Context(), authReq)
	if err != nil {
		return err
	}

	return api.sendToken(w, r, http.StatusOK, userDb)
}

func (api *API) RegisterHandler(w http.ResponseWriter, r *http.Request) error {
	var req users.NewUserRequest
	if err := httpx.Decode(r, &req); err != nil {
		return err
	}

	userDb, err := users.AddUser(api.Db, r.Context(), req, auth.RoleUser)
	if err != nil {
		return err
	}

	logx.FromContext(r.Context()).Info("user registered", zap.String("userId", userDb.Id.Hex()))
	return api.sendToken(w, r, http.StatusCreated, userDb)
}

func (api *API) LogoutHandler(w http.ResponseWriter, r *http.Request) error {
	http.SetCookie(w, &http.Cookie{
		Name:     auth.TokenCookie,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   api.SecureCookie,
		SameSite: http.SameSiteLaxMode,
	})
	return respondWithMessage(w, http.StatusOK, "Logged Out")
}

// sendToken signs a token for the user, stores it in the login cookie and
// returns it in the body for clients that use the Authorization header.
func (api *API) sendToken(w http.ResponseWriter, r *http.Request, code int, userDb mongodb.UserDb) error {
	token, err := auth.MakeJWT(userDb.Id.Hex(), api.Secret, api.TokenExpire)
	if err != nil {
		return err
	}

	http.SetCookie(w, &http.Cookie{
		Name:     auth.TokenCookie,
		Value:    token,
		Path:     "/",
		Expires:  time.Now().Add(api.CookieExpire),
		HttpOnly: true,
		Secure:   api.SecureCookie,
		SameSite: http.SameSiteLaxMode,
	})

	return respondWithJSON(w, code, users.MapDbUserToApiLoginResponse(userDb, token))
}
