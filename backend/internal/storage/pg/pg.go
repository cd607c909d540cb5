package pg

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/samdazain/forumapi-v2/shared/config"
	"github.com/samdazain/forumapi-v2/shared/logger"
	sharedpg "github.com/samdazain/forumapi-v2/shared/storage/pg"
)

// Wire messages of storage level errors.
const (
	msgThreadNotFound   = "thread tidak ditemukan"
	msgCommentNotFound  = "comment tidak valid atau tidak ditemukan"
	msgReplyNotFound    = "reply tidak ditemukan"
	msgNotCommentOwner  = "Tidak dapat akses, anda bukan pemilik comment"
	msgNotReplyOwner    = "Tidak dapat akses, anda bukan pemilik reply"
	msgUsernameTaken    = "username tidak tersedia"
	msgUsernameNotFound = "username tidak ditemukan"
	msgTokenNotFound    = "refresh token tidak ditemukan di database"
)

// Storage implements every storage contract of the service layer on
// PostgreSQL. Ids and timestamps come from injectable generators.
type Storage struct {
	db    *sql.DB
	newId func() string
	now   func() time.Time
}

type Option func(*Storage)

func WithIdGenerator(newId func() string) Option {
	return func(s *Storage) { s.newId = newId }
}

func WithClock(now func() time.Time) Option {
	return func(s *Storage) { s.now = now }
}

// New connects to the database and, if configured, applies migrations.
func New(ctx context.Context, cfg *config.Config, opts ...Option) (*Storage, error) {
	logger.Log.Info("connecting to db", "host", cfg.Private.Pg.Host, "dbname", cfg.Private.Pg.Dbname)
	db, err := sharedpg.Connect(ctx, cfg, sharedpg.DefaultConnectionConfig())
	if err != nil {
		return nil, err
	}
	logger.Log.Info("successfully connected to db")

	if cfg.Public.AutoMigrate {
		if err := sharedpg.Migrate(ctx, db); err != nil {
			db.Close()
			return nil, err
		}
		logger.Log.Info("migrations applied")
	}

	return NewWithDB(db, opts...), nil
}

func NewWithDB(db *sql.DB, opts ...Option) *Storage {
	s := &Storage{
		db:    db,
		newId: uuid.NewString,
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Storage) id(prefix string) string {
	return fmt.Sprintf("%s-%s", prefix, s.newId())
}

func (s *Storage) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *Storage) Cleanup() error {
	return s.db.Close()
}
