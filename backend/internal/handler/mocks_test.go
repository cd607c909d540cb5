package handler

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/samdazain/forumapi-v2/shared/config"
	"github.com/samdazain/forumapi-v2/shared/domain"
	mw "github.com/samdazain/forumapi-v2/shared/middleware"
	"github.com/stretchr/testify/require"
)

// --- Service mocks ---

type MockThreadService struct {
	MockCreate func(ctx context.Context, payload domain.Payload) (domain.AddedThread, error)
	MockGet    func(ctx context.Context, id domain.ThreadId) (domain.ThreadView, error)
}

func (m *MockThreadService) Create(ctx context.Context, payload domain.Payload) (domain.AddedThread, error) {
	if m.MockCreate != nil {
		return m.MockCreate(ctx, payload)
	}
	return domain.AddedThread{}, nil
}

func (m *MockThreadService) Get(ctx context.Context, id domain.ThreadId) (domain.ThreadView, error) {
	if m.MockGet != nil {
		return m.MockGet(ctx, id)
	}
	return domain.ThreadView{}, nil
}

type MockCommentService struct {
	MockCreate     func(ctx context.Context, payload domain.Payload) (domain.AddedComment, error)
	MockDelete     func(ctx context.Context, payload domain.Payload) error
	MockToggleLike func(ctx context.Context, payload domain.Payload) (bool, error)
}

func (m *MockCommentService) Create(ctx context.Context, payload domain.Payload) (domain.AddedComment, error) {
	if m.MockCreate != nil {
		return m.MockCreate(ctx, payload)
	}
	return domain.AddedComment{}, nil
}

func (m *MockCommentService) Delete(ctx context.Context, payload domain.Payload) error {
	if m.MockDelete != nil {
		return m.MockDelete(ctx, payload)
	}
	return nil
}

func (m *MockCommentService) ToggleLike(ctx context.Context, payload domain.Payload) (bool, error) {
	if m.MockToggleLike != nil {
		return m.MockToggleLike(ctx, payload)
	}
	return true, nil
}

type MockReplyService struct {
	MockCreate func(ctx context.Context, payload domain.Payload) (domain.AddedReply, error)
	MockDelete func(ctx context.Context, payload domain.Payload) error
}

func (m *MockReplyService) Create(ctx context.Context, payload domain.Payload) (domain.AddedReply, error) {
	if m.MockCreate != nil {
		return m.MockCreate(ctx, payload)
	}
	return domain.AddedReply{}, nil
}

func (m *MockReplyService) Delete(ctx context.Context, payload domain.Payload) error {
	if m.MockDelete != nil {
		return m.MockDelete(ctx, payload)
	}
	return nil
}

type MockUserService struct {
	MockRegister func(ctx context.Context, user domain.RegisterUser) (domain.RegisteredUser, error)
}

func (m *MockUserService) Register(ctx context.Context, user domain.RegisterUser) (domain.RegisteredUser, error) {
	if m.MockRegister != nil {
		return m.MockRegister(ctx, user)
	}
	return domain.RegisteredUser{}, nil
}

type MockAuthService struct {
	MockLogin   func(ctx context.Context, username domain.Username, password domain.Password) (domain.AuthTokens, error)
	MockRefresh func(ctx context.Context, refreshToken string) (string, error)
	MockLogout  func(ctx context.Context, refreshToken string) error
}

func (m *MockAuthService) Login(ctx context.Context, username domain.Username, password domain.Password) (domain.AuthTokens, error) {
	if m.MockLogin != nil {
		return m.MockLogin(ctx, username, password)
	}
	return domain.AuthTokens{}, nil
}

func (m *MockAuthService) Refresh(ctx context.Context, refreshToken string) (string, error) {
	if m.MockRefresh != nil {
		return m.MockRefresh(ctx, refreshToken)
	}
	return "", nil
}

func (m *MockAuthService) Logout(ctx context.Context, refreshToken string) error {
	if m.MockLogout != nil {
		return m.MockLogout(ctx, refreshToken)
	}
	return nil
}

type MockHealthChecker struct {
	PingFunc func(ctx context.Context) error
}

func (m *MockHealthChecker) Ping(ctx context.Context) error {
	if m.PingFunc != nil {
		return m.PingFunc(ctx)
	}
	return nil // Default: healthy
}

// --- Helpers ---

func newTestHandler() *Handler {
	return New(
		&MockUserService{},
		&MockAuthService{},
		&MockThreadService{},
		&MockCommentService{},
		&MockReplyService{},
		&MockHealthChecker{},
		&config.Config{},
	)
}

// testRouter mounts the handler on the same paths as the real router, without
// the auth and rate limit middleware.
func testRouter(h *Handler) http.Handler {
	r := chi.NewRouter()
	r.Post("/users", h.RegisterUser)
	r.Post("/authentications", h.Login)
	r.Put("/authentications", h.RefreshToken)
	r.Delete("/authentications", h.Logout)
	r.Post("/threads", h.CreateThread)
	r.Get("/threads/{threadId}", h.GetThread)
	r.Post("/threads/{threadId}/comments", h.CreateComment)
	r.Delete("/threads/{threadId}/comments/{commentId}", h.DeleteComment)
	r.Put("/threads/{threadId}/comments/{commentId}/likes", h.ToggleCommentLike)
	r.Post("/threads/{threadId}/comments/{commentId}/replies", h.CreateReply)
	r.Delete("/threads/{threadId}/comments/{commentId}/replies/{replyId}", h.DeleteReply)
	return r
}

// do sends a request as userId ("" for anonymous) and returns the recorder.
func do(t *testing.T, h *Handler, method, target, body string, userId domain.UserId) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if userId != "" {
		req = req.WithContext(mw.WithUserId(req.Context(), userId))
	}
	rr := httptest.NewRecorder()
	testRouter(h).ServeHTTP(rr, req)
	return rr
}

type testResponse struct {
	Status  string         `json:"status"`
	Message string         `json:"message"`
	Data    map[string]any `json:"data"`
}

func decode(t *testing.T, rr *httptest.ResponseRecorder) testResponse {
	t.Helper()
	var resp testResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp), rr.Body.String())
	return resp
}
