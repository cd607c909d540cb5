package handler

import (
	"context"
	"net/http"
	"testing"

	"github.com/samdazain/forumapi-v2/shared/domain"
	internal_errors "github.com/samdazain/forumapi-v2/shared/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterUser(t *testing.T) {
	t.Run("registered", func(t *testing.T) {
		h := newTestHandler()
		h.user = &MockUserService{
			MockRegister: func(ctx context.Context, user domain.RegisterUser) (domain.RegisteredUser, error) {
				assert.Equal(t, domain.RegisterUser{Username: "dicoding", Password: "secret", Fullname: "Dicoding Indonesia"}, user)
				return domain.RegisteredUser{Id: "user-123", Username: user.Username, Fullname: user.Fullname}, nil
			},
		}

		rr := do(t, h, http.MethodPost, "/users", `{"username":"dicoding","password":"secret","fullname":"Dicoding Indonesia"}`, "")

		require.Equal(t, http.StatusCreated, rr.Code)
		added := decode(t, rr).Data["addedUser"].(map[string]any)
		assert.Equal(t, "user-123", added["id"])
		assert.Equal(t, "dicoding", added["username"])
		assert.Equal(t, "Dicoding Indonesia", added["fullname"])
	})

	t.Run("missing field never reaches the service", func(t *testing.T) {
		h := newTestHandler()
		h.user = &MockUserService{
			MockRegister: func(ctx context.Context, user domain.RegisterUser) (domain.RegisteredUser, error) {
				t.Fatal("service must not be called")
				return domain.RegisteredUser{}, nil
			},
		}

		rr := do(t, h, http.MethodPost, "/users", `{"username":"dicoding","password":"secret"}`, "")

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, "Required fields missing", decode(t, rr).Message)
	})

	t.Run("taken username is 400", func(t *testing.T) {
		h := newTestHandler()
		h.user = &MockUserService{
			MockRegister: func(ctx context.Context, user domain.RegisterUser) (domain.RegisteredUser, error) {
				return domain.RegisteredUser{}, internal_errors.BadRequest("username tidak tersedia")
			},
		}

		rr := do(t, h, http.MethodPost, "/users", `{"username":"dicoding","password":"secret","fullname":"D"}`, "")

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, "username tidak tersedia", decode(t, rr).Message)
	})
}
