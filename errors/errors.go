package errors

import (
	"fmt"
)

// Error is the error type surfaced to callers. Code is the HTTP status the
// transport should answer with, Tag a stable machine-readable identifier
// clients can switch on, Message the human-readable part.
type Error interface {
	error

	Code() int
	Tag() string
	Message() string
	Cause() error
}

// DefaultCode is used when no code is given. It is set to 500,
// Internal Server Error.
var DefaultCode = 500

type appError struct {
	code  int
	tag   string
	msg   string
	cause *appError
}

func (err *appError) Error() string {
	if err.cause == nil {
		return err.msg
	}

	return fmt.Sprintf("%s: %v", err.msg, err.cause)
}

func (err *appError) Code() int {
	return err.code
}

func (err *appError) Tag() string {
	return err.tag
}

func (err *appError) Message() string {
	return err.msg
}

func (err *appError) Cause() error {
	if err.cause == nil {
		return nil
	}
	return err.cause
}

type ErrorEnricher func(error) error

func WithCode(code int) ErrorEnricher {
	return func(err error) error {
		if err == nil {
			return nil
		}

		if err, ok := err.(*appError); ok {
			err.code = code
			return err
		}

		return &appError{
			msg:  err.Error(),
			code: code,
		}
	}
}

func WithTag(tag string) ErrorEnricher {
	return func(err error) error {
		if err == nil {
			return nil
		}

		if err, ok := err.(*appError); ok {
			err.tag = tag
			return err
		}

		return &appError{
			msg:  err.Error(),
			code: DefaultCode,
			tag:  tag,
		}
	}
}

func WithCause(cause error) ErrorEnricher {
	var appCause *appError
	switch cause := cause.(type) {
	case *appError:
		appCause = cause
	default:
		appCause = &appError{msg: cause.Error(), code: DefaultCode}
	}

	return func(err error) error {
		if err == nil {
			return nil
		}

		if appErr, ok := err.(*appError); ok {
			appErr.cause = appCause
			return appErr
		}

		return &appError{
			msg:   err.Error(),
			code:  appCause.code,
			cause: appCause,
		}
	}
}

func New(msg string, fs ...ErrorEnricher) error {
	var err error
	err = &appError{
		msg:  msg,
		code: DefaultCode,
	}

	for _, f := range fs {
		err = f(err)
	}

	return err
}
