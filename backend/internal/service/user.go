package service

import (
	"context"

	"github.com/samdazain/forumapi-v2/shared/domain"
)

type UserService interface {
	Register(ctx context.Context, user domain.RegisterUser) (domain.RegisteredUser, error)
}

type UserValidator interface {
	RegisterUser(user domain.RegisterUser) error
}

type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) error
}

type User struct {
	storage   UserStorage
	validator UserValidator
	hasher    PasswordHasher
}

func NewUser(storage UserStorage, validator UserValidator, hasher PasswordHasher) UserService {
	return &User{storage, validator, hasher}
}

func (u *User) Register(ctx context.Context, user domain.RegisterUser) (domain.RegisteredUser, error) {
	if err := u.validator.RegisterUser(user); err != nil {
		return domain.RegisteredUser{}, err
	}
	if err := u.storage.VerifyAvailableUsername(ctx, user.Username); err != nil {
		return domain.RegisteredUser{}, err
	}

	hash, err := u.hasher.Hash(user.Password)
	if err != nil {
		return domain.RegisteredUser{}, err
	}
	user.Password = hash

	return u.storage.AddUser(ctx, user)
}
