package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/samdazain/forumapi-v2/shared/domain"
	jwt_internal "github.com/samdazain/forumapi-v2/shared/jwt"
	"github.com/samdazain/forumapi-v2/shared/utils"
)

// Key to store the user id in the request context
type key int

const UserIdKey key = 0

// Auth reads bearer access tokens.
type Auth struct {
	jwtService jwt_internal.JwtService
}

func NewAuth(jwtService jwt_internal.JwtService) *Auth {
	return &Auth{jwtService: jwtService}
}

// NeedAuth rejects requests without a valid access token.
func (a *Auth) NeedAuth() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := bearerToken(r)
			if token == "" {
				utils.WriteFail(w, http.StatusUnauthorized, utils.MissingAuthentication)
				return
			}
			userId, err := a.jwtService.DecodeToken(token)
			if err != nil {
				utils.WriteErrorAndStatusCode(w, err)
				return
			}
			next.ServeHTTP(w, r.WithContext(WithUserId(r.Context(), userId)))
		})
	}
}

// OptionalAuth attaches the user id when a token is present. A missing token
// passes through so that payload verification reports it, a malformed one is
// rejected here.
func (a *Auth) OptionalAuth() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := bearerToken(r)
			if token == "" {
				next.ServeHTTP(w, r)
				return
			}
			userId, err := a.jwtService.DecodeToken(token)
			if err != nil {
				utils.WriteErrorAndStatusCode(w, err)
				return
			}
			next.ServeHTTP(w, r.WithContext(WithUserId(r.Context(), userId)))
		})
	}
}

func bearerToken(r *http.Request) string {
	token, _ := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
	return strings.TrimSpace(token)
}

func WithUserId(ctx context.Context, userId domain.UserId) context.Context {
	return context.WithValue(ctx, UserIdKey, userId)
}

// GetUserIdFromContext returns "" for anonymous requests.
func GetUserIdFromContext(r *http.Request) domain.UserId {
	userId, _ := r.Context().Value(UserIdKey).(domain.UserId)
	return userId
}
