package pg

import (
	"context"
	"fmt"

	"github.com/samdazain/forumapi-v2/shared/domain"
)

func (s *Storage) AddReply(ctx context.Context, reply domain.AddReply) (domain.AddedReply, error) {
	var added domain.AddedReply
	err := s.db.QueryRowContext(ctx, `
        INSERT INTO replies (id, comment_id, content, date, owner)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id, content, owner
    `, s.id("reply"), reply.CommentId, reply.Content, s.now(), reply.Owner).Scan(&added.Id, &added.Content, &added.Owner)
	if err != nil {
		return domain.AddedReply{}, fmt.Errorf("failed to insert reply: %w", err)
	}
	return added, nil
}

func (s *Storage) VerifyAvailableReply(ctx context.Context, id domain.ReplyId) error {
	return verifyExists(ctx, s.db, "SELECT 1 FROM replies WHERE id = $1", id, msgReplyNotFound)
}

func (s *Storage) GetRepliesByCommentId(ctx context.Context, commentId domain.CommentId) ([]domain.ReplyRow, error) {
	rows, err := s.db.QueryContext(ctx, `
        SELECT r.id, r.content, r.date, r.owner, r.comment_id, r.is_delete, COALESCE(u.username, '')
        FROM replies r
        LEFT JOIN users u ON u.id = r.owner
        WHERE r.comment_id = $1
        ORDER BY r.date ASC, r.id ASC
    `, commentId)
	if err != nil {
		return nil, fmt.Errorf("failed to query replies: %w", err)
	}
	defer rows.Close()

	var replies []domain.ReplyRow
	for rows.Next() {
		var r domain.ReplyRow
		if err := rows.Scan(&r.Id, &r.Content, &r.Date, &r.Owner, &r.CommentId, &r.IsDelete, &r.Username); err != nil {
			return nil, fmt.Errorf("failed to scan reply: %w", err)
		}
		replies = append(replies, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate replies: %w", err)
	}
	return replies, nil
}

func (s *Storage) VerifyReplyOwner(ctx context.Context, id domain.ReplyId, owner domain.UserId) error {
	return verifyOwner(ctx, s.db, "SELECT owner FROM replies WHERE id = $1", id, owner, msgReplyNotFound, msgNotReplyOwner)
}

func (s *Storage) DeleteReply(ctx context.Context, id domain.ReplyId, owner domain.UserId) error {
	_, err := s.db.ExecContext(ctx, "UPDATE replies SET is_delete = TRUE WHERE id = $1 AND owner = $2", id, owner)
	if err != nil {
		return fmt.Errorf("failed to delete reply: %w", err)
	}
	return nil
}
