package service

import (
	"context"

	"github.com/samdazain/forumapi-v2/shared/domain"
	"github.com/samdazain/forumapi-v2/shared/errors"
	"github.com/samdazain/forumapi-v2/shared/logger"
)

type AuthService interface {
	Login(ctx context.Context, username domain.Username, password domain.Password) (domain.AuthTokens, error)
	Refresh(ctx context.Context, refreshToken string) (string, error)
	Logout(ctx context.Context, refreshToken string) error
}

type TokenIssuer interface {
	NewToken(userId domain.UserId) (string, error)
	DecodeToken(token string) (domain.UserId, error)
}

// Auth issues access/refresh token pairs. Refresh tokens are persisted so that
// logout can revoke them.
type Auth struct {
	users   UserStorage
	tokens  AuthStorage
	hasher  PasswordHasher
	access  TokenIssuer
	refresh TokenIssuer
}

func NewAuth(users UserStorage, tokens AuthStorage, hasher PasswordHasher, access, refresh TokenIssuer) AuthService {
	return &Auth{users, tokens, hasher, access, refresh}
}

func (a *Auth) Login(ctx context.Context, username domain.Username, password domain.Password) (domain.AuthTokens, error) {
	creds, err := a.users.GetCredentials(ctx, username)
	if err != nil {
		return domain.AuthTokens{}, err
	}
	if err := a.hasher.Compare(creds.PasswordHash, password); err != nil {
		return domain.AuthTokens{}, err
	}

	accessToken, err := a.access.NewToken(creds.Id)
	if err != nil {
		return domain.AuthTokens{}, err
	}
	refreshToken, err := a.refresh.NewToken(creds.Id)
	if err != nil {
		return domain.AuthTokens{}, err
	}
	if err := a.tokens.AddToken(ctx, refreshToken); err != nil {
		return domain.AuthTokens{}, err
	}

	logger.Log.Info("user logged in", "user_id", creds.Id)
	return domain.AuthTokens{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}

func (a *Auth) Refresh(ctx context.Context, refreshToken string) (string, error) {
	userId, err := a.refresh.DecodeToken(refreshToken)
	if err != nil {
		return "", errors.BadRequest("refresh token tidak valid")
	}
	if err := a.tokens.VerifyToken(ctx, refreshToken); err != nil {
		return "", err
	}
	return a.access.NewToken(userId)
}

func (a *Auth) Logout(ctx context.Context, refreshToken string) error {
	if err := a.tokens.VerifyToken(ctx, refreshToken); err != nil {
		return err
	}
	return a.tokens.DeleteToken(ctx, refreshToken)
}
