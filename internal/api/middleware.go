package api

import (
	"errors"
	"net/http"
	"slices"

	"github.com/Gouravlamba/eminent-news/internal/auth"
	"github.com/Gouravlamba/eminent-news/internal/httpx"
	"github.com/Gouravlamba/eminent-news/internal/logx"
	"github.com/Gouravlamba/eminent-news/internal/mongodb"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// RequireAuth loads the user identified by the request token (cookie first,
// then bearer header) into the request context.
func (api *API) RequireAuth(next http.Handler) http.Handler {
	return handle(func(w http.ResponseWriter, r *http.Request) error {
		tokenString, err := auth.GetRequestToken(r.Header, httpx.Cookies(r))
		if err != nil {
			return err
		}

		userId, err := auth.ValidateJWT(tokenString, api.Secret)
		if err != nil {
			return err
		}

		oid, err := primitive.ObjectIDFromHex(userId)
		if err != nil {
			return auth.ErrInvalidToken
		}

		userDb, err := api.Db.GetUserById(r.Context(), oid)
		if errors.Is(err, mongodb.ErrRecordNotFound) {
			return auth.ErrInactiveUser
		}
		if err != nil {
			return err
		}

		ctx := auth.WithUser(r.Context(), userDb)
		ctx = logx.WithLogger(ctx, logx.FromContext(ctx).With(zap.String("userId", userDb.Id.Hex())))
		next.ServeHTTP(w, r.WithContext(ctx))
		return nil
	})
}

// AuthorizeRoles must run after RequireAuth.
func AuthorizeRoles(roles ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return handle(func(w http.ResponseWriter, r *http.Request) error {
			user, err := currentUser(r)
			if err != nil {
				return err
			}
			if !slices.Contains(roles, user.Role) {
				return ErrorForbiddenRole(user.Role)
			}
			next.ServeHTTP(w, r)
			return nil
		})
	}
}
