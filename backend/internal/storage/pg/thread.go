package pg

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/samdazain/forumapi-v2/shared/domain"
	internal_errors "github.com/samdazain/forumapi-v2/shared/errors"
)

func (s *Storage) AddThread(ctx context.Context, thread domain.AddThread) (domain.AddedThread, error) {
	var added domain.AddedThread
	err := s.db.QueryRowContext(ctx, `
        INSERT INTO threads (id, title, body, date, owner)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id, title, owner
    `, s.id("thread"), thread.Title, thread.Body, s.now(), thread.Owner).Scan(&added.Id, &added.Title, &added.Owner)
	if err != nil {
		return domain.AddedThread{}, fmt.Errorf("failed to insert thread: %w", err)
	}
	return added, nil
}

func (s *Storage) VerifyAvailableThread(ctx context.Context, id domain.ThreadId) error {
	return verifyExists(ctx, s.db, "SELECT 1 FROM threads WHERE id = $1", id, msgThreadNotFound)
}

func (s *Storage) GetThreadById(ctx context.Context, id domain.ThreadId) (domain.ThreadDetail, error) {
	var thread domain.ThreadDetail
	err := s.db.QueryRowContext(ctx, `
        SELECT t.id, t.title, t.body, t.date, COALESCE(u.username, '')
        FROM threads t
        LEFT JOIN users u ON u.id = t.owner
        WHERE t.id = $1
    `, id).Scan(&thread.Id, &thread.Title, &thread.Body, &thread.Date, &thread.Username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ThreadDetail{}, internal_errors.NotFound(msgThreadNotFound)
		}
		return domain.ThreadDetail{}, fmt.Errorf("failed to get thread: %w", err)
	}
	return thread, nil
}
