package pg

import (
	"context"
	"fmt"
	"net/http"

	internal_errors "github.com/samdazain/forumapi-v2/shared/errors"
)

func (s *Storage) AddToken(ctx context.Context, token string) error {
	if _, err := s.db.ExecContext(ctx, "INSERT INTO authentications (token) VALUES ($1) ON CONFLICT DO NOTHING", token); err != nil {
		return fmt.Errorf("failed to save token: %w", err)
	}
	return nil
}

func (s *Storage) VerifyToken(ctx context.Context, token string) error {
	err := verifyExists(ctx, s.db, "SELECT 1 FROM authentications WHERE token = $1", token, msgTokenNotFound)
	if internal_errors.HasStatus(err, http.StatusNotFound) {
		return internal_errors.BadRequest(msgTokenNotFound)
	}
	return err
}

func (s *Storage) DeleteToken(ctx context.Context, token string) error {
	if _, err := s.db.ExecContext(ctx, "DELETE FROM authentications WHERE token = $1", token); err != nil {
		return fmt.Errorf("failed to delete token: %w", err)
	}
	return nil
}
