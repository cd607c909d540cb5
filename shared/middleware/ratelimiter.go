package middleware

import (
	"net"
	"net/http"

	internal_errors "github.com/samdazain/forumapi-v2/shared/errors"
	"github.com/samdazain/forumapi-v2/shared/logger"
	"github.com/samdazain/forumapi-v2/shared/middleware/ratelimiter"
	"github.com/samdazain/forumapi-v2/shared/utils"
)

func RateLimit(rl *ratelimiter.UserRateLimiter, getIdentity func(r *http.Request) (string, error)) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity, err := getIdentity(r)
			if err != nil {
				utils.WriteErrorAndStatusCode(w, err)
				return
			}
			if !rl.Allow(identity) {
				utils.WriteFail(w, http.StatusTooManyRequests, "terlalu banyak permintaan, coba lagi nanti")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// GetIdentity keys authenticated requests by user id and anonymous ones by IP.
func GetIdentity(r *http.Request) (string, error) {
	if userId := GetUserIdFromContext(r); userId != "" {
		return "user_" + userId, nil
	}
	ip, err := GetIP(r)
	if err != nil {
		return "", err
	}
	return "ip_" + ip, nil
}

// GetIP extracts the client IP from RemoteAddr (chi's RealIP middleware
// rewrites it when running behind a proxy).
func GetIP(r *http.Request) (string, error) {
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		ip = r.RemoteAddr
	}
	if net.ParseIP(ip) == nil {
		logger.Log.Debug("unparseable remote address", "remote_addr", r.RemoteAddr)
		return "", internal_errors.BadRequest("alamat klien tidak valid")
	}
	return ip, nil
}
