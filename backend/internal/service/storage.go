package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/samdazain/forumapi-v2/shared/domain"
)

// Storage contracts, one per capability. Implementations live in
// internal/storage; the Unimplemented* types below satisfy each contract with
// methods that fail, for embedding in partial adapters and test doubles.

type ThreadStorage interface {
	AddThread(ctx context.Context, thread domain.AddThread) (domain.AddedThread, error)
	VerifyAvailableThread(ctx context.Context, id domain.ThreadId) error
	GetThreadById(ctx context.Context, id domain.ThreadId) (domain.ThreadDetail, error)
}

type CommentStorage interface {
	AddComment(ctx context.Context, comment domain.AddComment) (domain.AddedComment, error)
	VerifyAvailableComment(ctx context.Context, id domain.CommentId) error
	// GetCommentsByThreadId returns comments ascending by date.
	GetCommentsByThreadId(ctx context.Context, threadId domain.ThreadId) ([]domain.CommentRow, error)
	VerifyCommentOwner(ctx context.Context, id domain.CommentId, owner domain.UserId) error
	// DeleteComment flags the comment matching both id and owner. No error
	// when nothing matches.
	DeleteComment(ctx context.Context, id domain.CommentId, owner domain.UserId) error
}

type ReplyStorage interface {
	AddReply(ctx context.Context, reply domain.AddReply) (domain.AddedReply, error)
	VerifyAvailableReply(ctx context.Context, id domain.ReplyId) error
	GetRepliesByCommentId(ctx context.Context, commentId domain.CommentId) ([]domain.ReplyRow, error)
	VerifyReplyOwner(ctx context.Context, id domain.ReplyId, owner domain.UserId) error
	DeleteReply(ctx context.Context, id domain.ReplyId, owner domain.UserId) error
}

type LikeStorage interface {
	CheckLike(ctx context.Context, commentId domain.CommentId, owner domain.UserId) (bool, error)
	AddLike(ctx context.Context, commentId domain.CommentId, owner domain.UserId) error
	DeleteLike(ctx context.Context, commentId domain.CommentId, owner domain.UserId) error
	GetLikeCount(ctx context.Context, commentId domain.CommentId) (int, error)
}

type UserStorage interface {
	VerifyAvailableUsername(ctx context.Context, username domain.Username) error
	// AddUser expects user.Password to be already hashed.
	AddUser(ctx context.Context, user domain.RegisterUser) (domain.RegisteredUser, error)
	GetCredentials(ctx context.Context, username domain.Username) (domain.UserCredentials, error)
}

type AuthStorage interface {
	AddToken(ctx context.Context, token string) error
	VerifyToken(ctx context.Context, token string) error
	DeleteToken(ctx context.Context, token string) error
}

var ErrNotImplemented = errors.New("METHOD_NOT_IMPLEMENTED")

var (
	errThreadNotImplemented  = fmt.Errorf("THREAD_REPOSITORY.%w", ErrNotImplemented)
	errCommentNotImplemented = fmt.Errorf("COMMENT_REPOSITORY.%w", ErrNotImplemented)
	errReplyNotImplemented   = fmt.Errorf("REPLY_REPOSITORY.%w", ErrNotImplemented)
	errLikeNotImplemented    = fmt.Errorf("LIKE_REPOSITORY.%w", ErrNotImplemented)
)

type UnimplementedThreadStorage struct{}

func (UnimplementedThreadStorage) AddThread(context.Context, domain.AddThread) (domain.AddedThread, error) {
	return domain.AddedThread{}, errThreadNotImplemented
}

func (UnimplementedThreadStorage) VerifyAvailableThread(context.Context, domain.ThreadId) error {
	return errThreadNotImplemented
}

func (UnimplementedThreadStorage) GetThreadById(context.Context, domain.ThreadId) (domain.ThreadDetail, error) {
	return domain.ThreadDetail{}, errThreadNotImplemented
}

type UnimplementedCommentStorage struct{}

func (UnimplementedCommentStorage) AddComment(context.Context, domain.AddComment) (domain.AddedComment, error) {
	return domain.AddedComment{}, errCommentNotImplemented
}

func (UnimplementedCommentStorage) VerifyAvailableComment(context.Context, domain.CommentId) error {
	return errCommentNotImplemented
}

func (UnimplementedCommentStorage) GetCommentsByThreadId(context.Context, domain.ThreadId) ([]domain.CommentRow, error) {
	return nil, errCommentNotImplemented
}

func (UnimplementedCommentStorage) VerifyCommentOwner(context.Context, domain.CommentId, domain.UserId) error {
	return errCommentNotImplemented
}

func (UnimplementedCommentStorage) DeleteComment(context.Context, domain.CommentId, domain.UserId) error {
	return errCommentNotImplemented
}

type UnimplementedReplyStorage struct{}

func (UnimplementedReplyStorage) AddReply(context.Context, domain.AddReply) (domain.AddedReply, error) {
	return domain.AddedReply{}, errReplyNotImplemented
}

func (UnimplementedReplyStorage) VerifyAvailableReply(context.Context, domain.ReplyId) error {
	return errReplyNotImplemented
}

func (UnimplementedReplyStorage) GetRepliesByCommentId(context.Context, domain.CommentId) ([]domain.ReplyRow, error) {
	return nil, errReplyNotImplemented
}

func (UnimplementedReplyStorage) VerifyReplyOwner(context.Context, domain.ReplyId, domain.UserId) error {
	return errReplyNotImplemented
}

func (UnimplementedReplyStorage) DeleteReply(context.Context, domain.ReplyId, domain.UserId) error {
	return errReplyNotImplemented
}

type UnimplementedLikeStorage struct{}

func (UnimplementedLikeStorage) CheckLike(context.Context, domain.CommentId, domain.UserId) (bool, error) {
	return false, errLikeNotImplemented
}

func (UnimplementedLikeStorage) AddLike(context.Context, domain.CommentId, domain.UserId) error {
	return errLikeNotImplemented
}

func (UnimplementedLikeStorage) DeleteLike(context.Context, domain.CommentId, domain.UserId) error {
	return errLikeNotImplemented
}

func (UnimplementedLikeStorage) GetLikeCount(context.Context, domain.CommentId) (int, error) {
	return 0, errLikeNotImplemented
}
