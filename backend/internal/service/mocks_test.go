package service

import (
	"context"
	"sync"

	"github.com/samdazain/forumapi-v2/shared/domain"
)

// callLog records storage calls across mocks so tests can assert pipeline order.
type callLog struct {
	mu    sync.Mutex
	calls []string
}

func (l *callLog) add(name string) {
	if l == nil {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.calls = append(l.calls, name)
}

func (l *callLog) Calls() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]string(nil), l.calls...)
}

// --- MockThreadStorage ---

type MockThreadStorage struct {
	log                       *callLog
	addThreadFunc             func(thread domain.AddThread) (domain.AddedThread, error)
	verifyAvailableThreadFunc func(id domain.ThreadId) error
	getThreadByIdFunc         func(id domain.ThreadId) (domain.ThreadDetail, error)
}

func (m *MockThreadStorage) AddThread(_ context.Context, thread domain.AddThread) (domain.AddedThread, error) {
	m.log.add("AddThread")
	if m.addThreadFunc != nil {
		return m.addThreadFunc(thread)
	}
	return domain.AddedThread{Id: "thread-123", Title: thread.Title, Owner: thread.Owner}, nil
}

func (m *MockThreadStorage) VerifyAvailableThread(_ context.Context, id domain.ThreadId) error {
	m.log.add("VerifyAvailableThread")
	if m.verifyAvailableThreadFunc != nil {
		return m.verifyAvailableThreadFunc(id)
	}
	return nil
}

func (m *MockThreadStorage) GetThreadById(_ context.Context, id domain.ThreadId) (domain.ThreadDetail, error) {
	m.log.add("GetThreadById")
	if m.getThreadByIdFunc != nil {
		return m.getThreadByIdFunc(id)
	}
	return domain.ThreadDetail{Id: id}, nil
}

// --- MockCommentStorage ---

type MockCommentStorage struct {
	log                        *callLog
	addCommentFunc             func(comment domain.AddComment) (domain.AddedComment, error)
	verifyAvailableCommentFunc func(id domain.CommentId) error
	getCommentsByThreadIdFunc  func(threadId domain.ThreadId) ([]domain.CommentRow, error)
	verifyCommentOwnerFunc     func(id domain.CommentId, owner domain.UserId) error
	deleteCommentFunc          func(id domain.CommentId, owner domain.UserId) error
}

func (m *MockCommentStorage) AddComment(_ context.Context, comment domain.AddComment) (domain.AddedComment, error) {
	m.log.add("AddComment")
	if m.addCommentFunc != nil {
		return m.addCommentFunc(comment)
	}
	return domain.AddedComment{Id: "comment-123", Content: comment.Content, Owner: comment.Owner}, nil
}

func (m *MockCommentStorage) VerifyAvailableComment(_ context.Context, id domain.CommentId) error {
	m.log.add("VerifyAvailableComment")
	if m.verifyAvailableCommentFunc != nil {
		return m.verifyAvailableCommentFunc(id)
	}
	return nil
}

func (m *MockCommentStorage) GetCommentsByThreadId(_ context.Context, threadId domain.ThreadId) ([]domain.CommentRow, error) {
	m.log.add("GetCommentsByThreadId")
	if m.getCommentsByThreadIdFunc != nil {
		return m.getCommentsByThreadIdFunc(threadId)
	}
	return nil, nil
}

func (m *MockCommentStorage) VerifyCommentOwner(_ context.Context, id domain.CommentId, owner domain.UserId) error {
	m.log.add("VerifyCommentOwner")
	if m.verifyCommentOwnerFunc != nil {
		return m.verifyCommentOwnerFunc(id, owner)
	}
	return nil
}

func (m *MockCommentStorage) DeleteComment(_ context.Context, id domain.CommentId, owner domain.UserId) error {
	m.log.add("DeleteComment")
	if m.deleteCommentFunc != nil {
		return m.deleteCommentFunc(id, owner)
	}
	return nil
}

// --- MockReplyStorage ---

type MockReplyStorage struct {
	log                       *callLog
	addReplyFunc              func(reply domain.AddReply) (domain.AddedReply, error)
	verifyAvailableReplyFunc  func(id domain.ReplyId) error
	getRepliesByCommentIdFunc func(commentId domain.CommentId) ([]domain.ReplyRow, error)
	verifyReplyOwnerFunc      func(id domain.ReplyId, owner domain.UserId) error
	deleteReplyFunc           func(id domain.ReplyId, owner domain.UserId) error
}

func (m *MockReplyStorage) AddReply(_ context.Context, reply domain.AddReply) (domain.AddedReply, error) {
	m.log.add("AddReply")
	if m.addReplyFunc != nil {
		return m.addReplyFunc(reply)
	}
	return domain.AddedReply{Id: "reply-123", Content: reply.Content, Owner: reply.Owner}, nil
}

func (m *MockReplyStorage) VerifyAvailableReply(_ context.Context, id domain.ReplyId) error {
	m.log.add("VerifyAvailableReply")
	if m.verifyAvailableReplyFunc != nil {
		return m.verifyAvailableReplyFunc(id)
	}
	return nil
}

func (m *MockReplyStorage) GetRepliesByCommentId(_ context.Context, commentId domain.CommentId) ([]domain.ReplyRow, error) {
	if m.getRepliesByCommentIdFunc != nil {
		return m.getRepliesByCommentIdFunc(commentId)
	}
	return nil, nil
}

func (m *MockReplyStorage) VerifyReplyOwner(_ context.Context, id domain.ReplyId, owner domain.UserId) error {
	m.log.add("VerifyReplyOwner")
	if m.verifyReplyOwnerFunc != nil {
		return m.verifyReplyOwnerFunc(id, owner)
	}
	return nil
}

func (m *MockReplyStorage) DeleteReply(_ context.Context, id domain.ReplyId, owner domain.UserId) error {
	m.log.add("DeleteReply")
	if m.deleteReplyFunc != nil {
		return m.deleteReplyFunc(id, owner)
	}
	return nil
}

// --- MockLikeStorage ---

type MockLikeStorage struct {
	log              *callLog
	checkLikeFunc    func(commentId domain.CommentId, owner domain.UserId) (bool, error)
	addLikeFunc      func(commentId domain.CommentId, owner domain.UserId) error
	deleteLikeFunc   func(commentId domain.CommentId, owner domain.UserId) error
	getLikeCountFunc func(commentId domain.CommentId) (int, error)
}

func (m *MockLikeStorage) CheckLike(_ context.Context, commentId domain.CommentId, owner domain.UserId) (bool, error) {
	m.log.add("CheckLike")
	if m.checkLikeFunc != nil {
		return m.checkLikeFunc(commentId, owner)
	}
	return false, nil
}

func (m *MockLikeStorage) AddLike(_ context.Context, commentId domain.CommentId, owner domain.UserId) error {
	m.log.add("AddLike")
	if m.addLikeFunc != nil {
		return m.addLikeFunc(commentId, owner)
	}
	return nil
}

func (m *MockLikeStorage) DeleteLike(_ context.Context, commentId domain.CommentId, owner domain.UserId) error {
	m.log.add("DeleteLike")
	if m.deleteLikeFunc != nil {
		return m.deleteLikeFunc(commentId, owner)
	}
	return nil
}

func (m *MockLikeStorage) GetLikeCount(_ context.Context, commentId domain.CommentId) (int, error) {
	if m.getLikeCountFunc != nil {
		return m.getLikeCountFunc(commentId)
	}
	return 0, nil
}

// --- MockContentValidator ---

type MockContentValidator struct {
	titleFunc func(title string) error
	textFunc  func(text string) error
}

func (m *MockContentValidator) Title(title string) error {
	if m.titleFunc != nil {
		return m.titleFunc(title)
	}
	return nil
}

func (m *MockContentValidator) Text(text string) error {
	if m.textFunc != nil {
		return m.textFunc(text)
	}
	return nil
}

// --- User/Auth mocks ---

type MockUserStorage struct {
	verifyAvailableUsernameFunc func(username domain.Username) error
	addUserFunc                 func(user domain.RegisterUser) (domain.RegisteredUser, error)
	getCredentialsFunc          func(username domain.Username) (domain.UserCredentials, error)

	mu         sync.Mutex
	addUserArg *domain.RegisterUser
}

func (m *MockUserStorage) VerifyAvailableUsername(_ context.Context, username domain.Username) error {
	if m.verifyAvailableUsernameFunc != nil {
		return m.verifyAvailableUsernameFunc(username)
	}
	return nil
}

func (m *MockUserStorage) AddUser(_ context.Context, user domain.RegisterUser) (domain.RegisteredUser, error) {
	m.mu.Lock()
	m.addUserArg = &user
	m.mu.Unlock()
	if m.addUserFunc != nil {
		return m.addUserFunc(user)
	}
	return domain.RegisteredUser{Id: "user-123", Username: user.Username, Fullname: user.Fullname}, nil
}

func (m *MockUserStorage) GetCredentials(_ context.Context, username domain.Username) (domain.UserCredentials, error) {
	if m.getCredentialsFunc != nil {
		return m.getCredentialsFunc(username)
	}
	return domain.UserCredentials{Id: "user-123", Username: username, PasswordHash: "hashed:secret"}, nil
}

type MockAuthStorage struct {
	mu     sync.Mutex
	tokens map[string]bool
}

func (m *MockAuthStorage) AddToken(_ context.Context, token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.tokens == nil {
		m.tokens = map[string]bool{}
	}
	m.tokens[token] = true
	return nil
}

func (m *MockAuthStorage) VerifyToken(_ context.Context, token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.tokens[token] {
		return errRefreshTokenNotFound
	}
	return nil
}

func (m *MockAuthStorage) DeleteToken(_ context.Context, token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.tokens, token)
	return nil
}

type MockUserValidator struct {
	registerUserFunc func(user domain.RegisterUser) error
}

func (m *MockUserValidator) RegisterUser(user domain.RegisterUser) error {
	if m.registerUserFunc != nil {
		return m.registerUserFunc(user)
	}
	return nil
}

// MockHasher "hashes" by prefixing.
type MockHasher struct{}

func (MockHasher) Hash(password string) (string, error) { return "hashed:" + password, nil }

func (MockHasher) Compare(hash, password string) error {
	if hash != "hashed:"+password {
		return errWrongCredentials
	}
	return nil
}

// MockTokenIssuer encodes the user id into the token verbatim.
type MockTokenIssuer struct {
	prefix string
}

func (m MockTokenIssuer) NewToken(userId domain.UserId) (string, error) {
	return m.prefix + userId, nil
}

func (m MockTokenIssuer) DecodeToken(token string) (domain.UserId, error) {
	if len(token) <= len(m.prefix) || token[:len(m.prefix)] != m.prefix {
		return "", errWrongCredentials
	}
	return token[len(m.prefix):], nil
}
