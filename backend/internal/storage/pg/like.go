package pg

import (
	"context"
	"fmt"

	"github.com/samdazain/forumapi-v2/shared/domain"
)

func (s *Storage) CheckLike(ctx context.Context, commentId domain.CommentId, owner domain.UserId) (bool, error) {
	var exists bool
	err := s.db.QueryRowContext(ctx,
		"SELECT EXISTS (SELECT 1 FROM likes WHERE comment_id = $1 AND owner = $2)",
		commentId, owner,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check like: %w", err)
	}
	return exists, nil
}

// AddLike is a no-op if the pair is already liked; concurrent toggles can
// lose a transition but never duplicate a row.
func (s *Storage) AddLike(ctx context.Context, commentId domain.CommentId, owner domain.UserId) error {
	_, err := s.db.ExecContext(ctx, `
        INSERT INTO likes (id, comment_id, owner, date)
        VALUES ($1, $2, $3, $4)
        ON CONFLICT (comment_id, owner) DO NOTHING
    `, s.id("like"), commentId, owner, s.now())
	if err != nil {
		return fmt.Errorf("failed to insert like: %w", err)
	}
	return nil
}

func (s *Storage) DeleteLike(ctx context.Context, commentId domain.CommentId, owner domain.UserId) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM likes WHERE comment_id = $1 AND owner = $2", commentId, owner)
	if err != nil {
		return fmt.Errorf("failed to delete like: %w", err)
	}
	return nil
}

func (s *Storage) GetLikeCount(ctx context.Context, commentId domain.CommentId) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM likes WHERE comment_id = $1", commentId).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count likes: %w", err)
	}
	return count, nil
}
