package service

import (
	"context"

	"github.com/samdazain/forumapi-v2/shared/domain"
)

type ReplyService interface {
	Create(ctx context.Context, payload domain.Payload) (domain.AddedReply, error)
	Delete(ctx context.Context, payload domain.Payload) error
}

type Reply struct {
	threads   ThreadStorage
	comments  CommentStorage
	replies   ReplyStorage
	validator ContentValidator
}

func NewReply(threads ThreadStorage, comments CommentStorage, replies ReplyStorage, validator ContentValidator) ReplyService {
	return &Reply{threads, comments, replies, validator}
}

func (r *Reply) Create(ctx context.Context, payload domain.Payload) (domain.AddedReply, error) {
	if err := r.threads.VerifyAvailableThread(ctx, payload.String(domain.ThreadIdKey)); err != nil {
		return domain.AddedReply{}, err
	}
	if err := r.comments.VerifyAvailableComment(ctx, payload.String(domain.CommentIdKey)); err != nil {
		return domain.AddedReply{}, err
	}

	reply, err := domain.NewAddReply(payload)
	if err != nil {
		return domain.AddedReply{}, err
	}
	if err := r.validator.Text(reply.Content); err != nil {
		return domain.AddedReply{}, err
	}

	return r.replies.AddReply(ctx, reply)
}

func (r *Reply) Delete(ctx context.Context, payload domain.Payload) error {
	action, err := domain.NewDeleteReply(payload)
	if err != nil {
		return err
	}
	if err := r.comments.VerifyAvailableComment(ctx, action.CommentId); err != nil {
		return err
	}
	if err := r.replies.VerifyReplyOwner(ctx, action.ReplyId, action.Owner); err != nil {
		return err
	}
	return r.replies.DeleteReply(ctx, action.ReplyId, action.Owner)
}
