package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/samdazain/forumapi-v2/shared/domain"
	internal_errors "github.com/samdazain/forumapi-v2/shared/errors"
	"github.com/samdazain/forumapi-v2/shared/logger"
)

type JwtService interface {
	NewToken(userId domain.UserId) (string, error)
	DecodeToken(jwtStr string) (domain.UserId, error)
}

// Jwt signs HS256 tokens carrying the user id in the "uid" claim.
// A zero ttl issues tokens without expiry (refresh tokens are revoked
// through storage instead).
type Jwt struct {
	secretKey   string
	ttl         time.Duration
	invalidText string
}

func New(secretKey string, ttl time.Duration, invalidText string) JwtService {
	return &Jwt{secretKey, ttl, invalidText}
}

func (j *Jwt) NewToken(userId domain.UserId) (string, error) {
	claims := jwt.MapClaims{}
	claims["uid"] = userId
	claims["jti"] = uuid.NewString() // tokens issued within the same second must differ
	claims["iat"] = time.Now().Unix()
	if j.ttl > 0 {
		claims["exp"] = time.Now().Add(j.ttl).Unix()
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(j.secretKey))
	if err != nil {
		return "", fmt.Errorf("can't create token: %w", err)
	}

	return tokenString, nil
}

func (j *Jwt) DecodeToken(jwtStr string) (domain.UserId, error) {
	token, err := jwt.Parse(jwtStr, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(j.secretKey), nil
	})
	if err != nil || !token.Valid {
		logger.Log.Debug("rejected token", "error", err)
		return "", internal_errors.Unauthorized(j.invalidText)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", internal_errors.Unauthorized(j.invalidText)
	}
	uid, ok := claims["uid"].(string)
	if !ok || uid == "" {
		return "", internal_errors.Unauthorized(j.invalidText)
	}

	return uid, nil
}
