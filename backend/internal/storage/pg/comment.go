package pg

import (
	"context"
	"fmt"

	"github.com/samdazain/forumapi-v2/shared/domain"
)

func (s *Storage) AddComment(ctx context.Context, comment domain.AddComment) (domain.AddedComment, error) {
	var added domain.AddedComment
	err := s.db.QueryRowContext(ctx, `
        INSERT INTO comments (id, thread_id, content, date, owner)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id, content, owner
    `, s.id("comment"), comment.ThreadId, comment.Content, s.now(), comment.Owner).Scan(&added.Id, &added.Content, &added.Owner)
	if err != nil {
		return domain.AddedComment{}, fmt.Errorf("failed to insert comment: %w", err)
	}
	return added, nil
}

func (s *Storage) VerifyAvailableComment(ctx context.Context, id domain.CommentId) error {
	return verifyExists(ctx, s.db, "SELECT 1 FROM comments WHERE id = $1", id, msgCommentNotFound)
}

func (s *Storage) GetCommentsByThreadId(ctx context.Context, threadId domain.ThreadId) ([]domain.CommentRow, error) {
	rows, err := s.db.QueryContext(ctx, `
        SELECT c.id, c.content, c.date, c.owner, c.thread_id, c.is_delete, COALESCE(u.username, '')
        FROM comments c
        LEFT JOIN users u ON u.id = c.owner
        WHERE c.thread_id = $1
        ORDER BY c.date ASC, c.id ASC
    `, threadId)
	if err != nil {
		return nil, fmt.Errorf("failed to query comments: %w", err)
	}
	defer rows.Close()

	var comments []domain.CommentRow
	for rows.Next() {
		var c domain.CommentRow
		if err := rows.Scan(&c.Id, &c.Content, &c.Date, &c.Owner, &c.ThreadId, &c.IsDelete, &c.Username); err != nil {
			return nil, fmt.Errorf("failed to scan comment: %w", err)
		}
		comments = append(comments, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate comments: %w", err)
	}
	return comments, nil
}

func (s *Storage) VerifyCommentOwner(ctx context.Context, id domain.CommentId, owner domain.UserId) error {
	return verifyOwner(ctx, s.db, "SELECT owner FROM comments WHERE id = $1", id, owner, msgCommentNotFound, msgNotCommentOwner)
}

func (s *Storage) DeleteComment(ctx context.Context, id domain.CommentId, owner domain.UserId) error {
	_, err := s.db.ExecContext(ctx, "UPDATE comments SET is_delete = TRUE WHERE id = $1 AND owner = $2", id, owner)
	if err != nil {
		return fmt.Errorf("failed to delete comment: %w", err)
	}
	return nil
}
