package pg

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"
	"github.com/samdazain/forumapi-v2/shared/domain"
	internal_errors "github.com/samdazain/forumapi-v2/shared/errors"
)

const uniqueViolation = "23505"

func (s *Storage) VerifyAvailableUsername(ctx context.Context, username domain.Username) error {
	var taken bool
	err := s.db.QueryRowContext(ctx, "SELECT EXISTS (SELECT 1 FROM users WHERE username = $1)", username).Scan(&taken)
	if err != nil {
		return fmt.Errorf("failed to check username: %w", err)
	}
	if taken {
		return internal_errors.BadRequest(msgUsernameTaken)
	}
	return nil
}

func (s *Storage) AddUser(ctx context.Context, user domain.RegisterUser) (domain.RegisteredUser, error) {
	var added domain.RegisteredUser
	err := s.db.QueryRowContext(ctx, `
        INSERT INTO users (id, username, password, fullname)
        VALUES ($1, $2, $3, $4)
        RETURNING id, username, fullname
    `, s.id("user"), user.Username, user.Password, user.Fullname).Scan(&added.Id, &added.Username, &added.Fullname)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return domain.RegisteredUser{}, internal_errors.BadRequest(msgUsernameTaken)
		}
		return domain.RegisteredUser{}, fmt.Errorf("failed to insert user: %w", err)
	}
	return added, nil
}

func (s *Storage) GetCredentials(ctx context.Context, username domain.Username) (domain.UserCredentials, error) {
	var creds domain.UserCredentials
	err := s.db.QueryRowContext(ctx,
		"SELECT id, username, password FROM users WHERE username = $1", username,
	).Scan(&creds.Id, &creds.Username, &creds.PasswordHash)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.UserCredentials{}, internal_errors.BadRequest(msgUsernameNotFound)
		}
		return domain.UserCredentials{}, fmt.Errorf("failed to get user: %w", err)
	}
	return creds, nil
}
