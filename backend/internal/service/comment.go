package service

import (
	"context"

	"github.com/samdazain/forumapi-v2/shared/domain"
)

type CommentService interface {
	Create(ctx context.Context, payload domain.Payload) (domain.AddedComment, error)
	Delete(ctx context.Context, payload domain.Payload) error
	// ToggleLike likes the comment, or unlikes it if already liked. Returns
	// whether the comment is liked afterwards.
	ToggleLike(ctx context.Context, payload domain.Payload) (bool, error)
}

type Comment struct {
	threads   ThreadStorage
	comments  CommentStorage
	likes     LikeStorage
	validator ContentValidator
}

func NewComment(threads ThreadStorage, comments CommentStorage, likes LikeStorage, validator ContentValidator) CommentService {
	return &Comment{threads, comments, likes, validator}
}

func (c *Comment) Create(ctx context.Context, payload domain.Payload) (domain.AddedComment, error) {
	if err := c.threads.VerifyAvailableThread(ctx, payload.String(domain.ThreadIdKey)); err != nil {
		return domain.AddedComment{}, err
	}

	comment, err := domain.NewAddComment(payload)
	if err != nil {
		return domain.AddedComment{}, err
	}
	if err := c.validator.Text(comment.Content); err != nil {
		return domain.AddedComment{}, err
	}

	return c.comments.AddComment(ctx, comment)
}

func (c *Comment) Delete(ctx context.Context, payload domain.Payload) error {
	action, err := domain.NewDeleteComment(payload)
	if err != nil {
		return err
	}
	if err := c.verify(ctx, action); err != nil {
		return err
	}
	if err := c.comments.VerifyCommentOwner(ctx, action.CommentId, action.Owner); err != nil {
		return err
	}
	return c.comments.DeleteComment(ctx, action.CommentId, action.Owner)
}

func (c *Comment) ToggleLike(ctx context.Context, payload domain.Payload) (bool, error) {
	action, err := domain.NewLikeComment(payload)
	if err != nil {
		return false, err
	}
	if err := c.verify(ctx, action); err != nil {
		return false, err
	}

	liked, err := c.likes.CheckLike(ctx, action.CommentId, action.Owner)
	if err != nil {
		return false, err
	}
	if liked {
		return false, c.likes.DeleteLike(ctx, action.CommentId, action.Owner)
	}
	return true, c.likes.AddLike(ctx, action.CommentId, action.Owner)
}

func (c *Comment) verify(ctx context.Context, action domain.CommentAction) error {
	if err := c.threads.VerifyAvailableThread(ctx, action.ThreadId); err != nil {
		return err
	}
	return c.comments.VerifyAvailableComment(ctx, action.CommentId)
}
