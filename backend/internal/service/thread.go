package service

import (
	"context"

	"github.com/samdazain/forumapi-v2/shared/config"
	"github.com/samdazain/forumapi-v2/shared/domain"
	"golang.org/x/sync/errgroup"
)

type ThreadService interface {
	Create(ctx context.Context, payload domain.Payload) (domain.AddedThread, error)
	Get(ctx context.Context, id domain.ThreadId) (domain.ThreadView, error)
}

// ContentValidator bounds user supplied text. Text is stored as received.
type ContentValidator interface {
	Title(title string) error
	Text(text string) error
}

type Thread struct {
	threads   ThreadStorage
	comments  CommentStorage
	replies   ReplyStorage
	likes     LikeStorage
	validator ContentValidator
	// max comments enriched at once, <= 0 means unbounded
	concurrency int
}

func NewThread(threads ThreadStorage, comments CommentStorage, replies ReplyStorage, likes LikeStorage, validator ContentValidator, cfg *config.Public) ThreadService {
	return &Thread{
		threads:     threads,
		comments:    comments,
		replies:     replies,
		likes:       likes,
		validator:   validator,
		concurrency: cfg.EnrichConcurrency,
	}
}

func (t *Thread) Create(ctx context.Context, payload domain.Payload) (domain.AddedThread, error) {
	thread, err := domain.NewAddThread(payload)
	if err != nil {
		return domain.AddedThread{}, err
	}

	if err := t.validator.Title(thread.Title); err != nil {
		return domain.AddedThread{}, err
	}
	if err := t.validator.Text(thread.Body); err != nil {
		return domain.AddedThread{}, err
	}

	return t.threads.AddThread(ctx, thread)
}

// Get assembles a thread with its comments, their replies and like counts.
// Comments are enriched concurrently; each result is written to its own
// index so the storage order survives.
func (t *Thread) Get(ctx context.Context, id domain.ThreadId) (domain.ThreadView, error) {
	detail, err := t.threads.GetThreadById(ctx, id)
	if err != nil {
		return domain.ThreadView{}, err
	}

	comments, err := t.comments.GetCommentsByThreadId(ctx, id)
	if err != nil {
		return domain.ThreadView{}, err
	}

	views := make([]domain.CommentView, len(comments))
	g, gctx := errgroup.WithContext(ctx)
	if t.concurrency > 0 {
		g.SetLimit(t.concurrency)
	}
	for i, comment := range comments {
		g.Go(func() error {
			replies, err := t.replies.GetRepliesByCommentId(gctx, comment.Id)
			if err != nil {
				return err
			}
			likeCount, err := t.likes.GetLikeCount(gctx, comment.Id)
			if err != nil {
				return err
			}
			views[i] = comment.View(likeCount, replies)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return domain.ThreadView{}, err
	}

	return domain.ThreadView{ThreadDetail: detail, Comments: views}, nil
}
