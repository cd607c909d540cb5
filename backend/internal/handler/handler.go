package handler

import (
	"context"

	"github.com/samdazain/forumapi-v2/backend/internal/service"
	"github.com/samdazain/forumapi-v2/shared/config"
)

// HealthChecker reports whether the backing store is reachable.
type HealthChecker interface {
	Ping(ctx context.Context) error
}

type Handler struct {
	user    service.UserService
	auth    service.AuthService
	thread  service.ThreadService
	comment service.CommentService
	reply   service.ReplyService
	health  HealthChecker
	cfg     *config.Config
}

func New(
	user service.UserService,
	auth service.AuthService,
	thread service.ThreadService,
	comment service.CommentService,
	reply service.ReplyService,
	health HealthChecker,
	cfg *config.Config,
) *Handler {
	return &Handler{
		user:    user,
		auth:    auth,
		thread:  thread,
		comment: comment,
		reply:   reply,
		health:  health,
		cfg:     cfg,
	}
}
