package auth

import (
	"golang.org/x/crypto/bcrypt"
)

// PasswordHasher is the hashing collaborator. Handlers never see raw bcrypt.
type PasswordHasher interface {
	Hash(plain string) (string, error)
	Compare(hash, plain string) error
}

type BcryptHasher struct {
	Cost int
}

func (h BcryptHasher) cost() int {
	if h.Cost == 0 {
		return bcrypt.DefaultCost
	}
	return h.Cost
}

func (h BcryptHasher) Hash(plain string) (string, error) {
	data, err := bcrypt.GenerateFromPassword([]byte(plain), h.cost())
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func (h BcryptHasher) Compare(hash, plain string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain))
}
