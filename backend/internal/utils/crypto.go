package utils

import (
	stderrors "errors"
	"fmt"

	"github.com/samdazain/forumapi-v2/shared/errors"
	"golang.org/x/crypto/bcrypt"
)

// BcryptHasher hashes passwords for storage.
type BcryptHasher struct {
	cost int
}

func NewBcryptHasher(cost int) *BcryptHasher {
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	return &BcryptHasher{cost: cost}
}

func (h *BcryptHasher) Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// Compare returns 401 on mismatch.
func (h *BcryptHasher) Compare(hash, password string) error {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	if stderrors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return errors.Unauthorized("kredensial yang Anda masukkan salah")
	}
	if err != nil {
		return fmt.Errorf("compare password: %w", err)
	}
	return nil
}
