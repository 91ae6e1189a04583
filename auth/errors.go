package auth

import (
	"github.com/foladipo/docs-cabinet-cp2-sub000/errors"
)

// Machine-readable tags for credential failures. Clients distinguish "log in
// again" (expired) from "something is wrong with the token" (invalid) by
// tag, so the two are never collapsed.
const (
	TagMissingToken    = "MissingTokenError"
	TagEmptyToken      = "EmptyTokenError"
	TagInvalidToken    = "InvalidTokenError"
	TagExpiredToken    = "ExpiredTokenError"
	TagNonExistentUser = "NonExistentUserError"
)

func MissingToken() error {
	return errors.New("no token found in request", errors.BadRequest(), errors.WithTag(TagMissingToken))
}

func EmptyToken() error {
	return errors.New("token is empty", errors.BadRequest(), errors.WithTag(TagEmptyToken))
}

func InvalidToken(cause error) error {
	return errors.New("invalid token", errors.Unauthorized(), errors.WithTag(TagInvalidToken), errors.WithCause(cause))
}

func ExpiredToken(cause error) error {
	return errors.New("token has expired, please log in again", errors.Unauthorized(), errors.WithTag(TagExpiredToken), errors.WithCause(cause))
}

func NonExistentUser() error {
	return errors.New("the account this token belongs to no longer exists", errors.Unauthorized(), errors.WithTag(TagNonExistentUser))
}
