package setup

import (
	"context"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/samdazain/forumapi-v2/backend/internal/handler"
	"github.com/samdazain/forumapi-v2/backend/internal/service"
	"github.com/samdazain/forumapi-v2/backend/internal/storage/pg"
	"github.com/samdazain/forumapi-v2/backend/internal/utils"
	"github.com/samdazain/forumapi-v2/shared/config"
	"github.com/samdazain/forumapi-v2/shared/jwt"
	mw "github.com/samdazain/forumapi-v2/shared/middleware"
	"github.com/samdazain/forumapi-v2/shared/middleware/ratelimiter"
)

// Dependencies struct to hold all initialized dependencies.
type Dependencies struct {
	Storage        *pg.Storage
	Handler        *handler.Handler
	AuthMiddleware *mw.Auth
	WriteLimiter   *ratelimiter.UserRateLimiter
	Config         *config.Config
}

// SetupDependencies initializes all dependencies required for the application.
func SetupDependencies(ctx context.Context, cfg *config.Config) (*Dependencies, error) {
	storage, err := pg.New(ctx, cfg)
	if err != nil {
		return nil, err
	}

	accessJwt := jwt.New(cfg.Private.AccessTokenKey, cfg.Public.AccessTokenTTL, "access token tidak valid")
	refreshJwt := jwt.New(cfg.Private.RefreshTokenKey, 0, "refresh token tidak valid")

	hasher := utils.NewBcryptHasher(bcrypt.DefaultCost)
	content := utils.NewContentValidator(&cfg.Public)

	user := service.NewUser(storage, utils.NewUserValidator(), hasher)
	auth := service.NewAuth(storage, storage, hasher, accessJwt, refreshJwt)
	thread := service.NewThread(storage, storage, storage, storage, content, &cfg.Public)
	comment := service.NewComment(storage, storage, storage, content)
	reply := service.NewReply(storage, storage, storage, content)

	h := handler.New(user, auth, thread, comment, reply, storage, cfg)

	return &Dependencies{
		Storage:        storage,
		Handler:        h,
		AuthMiddleware: mw.NewAuth(accessJwt),
		WriteLimiter:   ratelimiter.New(cfg.Public.WriteRateLimit, cfg.Public.WriteRateBurst, time.Hour),
		Config:         cfg,
	}, nil
}

// Close releases background workers and the db pool.
func (d *Dependencies) Close() error {
	d.WriteLimiter.Stop()
	return d.Storage.Cleanup()
}
