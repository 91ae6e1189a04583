package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestWithCode(t *testing.T) {
	tts := []struct {
		err      error
		code     int
		expected *appError
	}{
		{
			err:  errors.New("simple error"),
			code: 404,
			expected: &appError{
				msg:  "simple error",
				code: 404,
			},
		},
		{
			err: &appError{
				msg:  "custom error",
				code: 200,
			},
			code: 501,
			expected: &appError{
				msg:  "custom error",
				code: 501,
			},
		},
		{
			err: &appError{
				msg:   "keep cause",
				code:  125,
				cause: &appError{msg: "I am the cause"},
			},
			code: 305,
			expected: &appError{
				msg:   "keep cause",
				code:  305,
				cause: &appError{msg: "I am the cause"},
			},
		},
		{
			// nil input should give nil output
			err:      nil,
			code:     305,
			expected: nil,
		},
	}

	for i, tt := range tts {
		err, _ := WithCode(tt.code)(tt.err).(*appError)
		assertErrors(tt.expected, err, t, fmt.Sprintf("%d WithCode", i))
	}
}

func TestWithTag(t *testing.T) {
	err := New("no token found", BadRequest(), WithTag("MissingTokenError"))

	appErr, ok := err.(Error)
	if !ok {
		t.Fatal("New should return an errors.Error")
	}

	if appErr.Tag() != "MissingTokenError" {
		t.Errorf("incorrect tag: expected MissingTokenError got %s", appErr.Tag())
	}
	if appErr.Code() != 400 {
		t.Errorf("incorrect code: expected 400 got %d", appErr.Code())
	}
	if Tag(errors.New("plain")) != "" {
		t.Error("plain errors should carry no tag")
	}
}

func TestWithCause(t *testing.T) {
	tts := []struct {
		err      error
		cause    error
		expected *appError
	}{
		{
			err:   errors.New("simple error"),
			cause: errors.New("I am the cause"),
			expected: &appError{
				msg:   "simple error",
				code:  500,
				cause: &appError{msg: "I am the cause", code: DefaultCode},
			},
		},
		{
			err: errors.New("simple error"),
			cause: &appError{
				msg:  "forward code",
				code: 120,
			},
			expected: &appError{
				msg:   "simple error",
				code:  120,
				cause: &appError{msg: "forward code", code: 120},
			},
		},
		{
			err: &appError{
				msg:  "custom error",
				code: 200,
			},
			cause: &appError{
				msg:  "custom cause",
				code: 300,
			},
			expected: &appError{
				msg:   "custom error",
				code:  200,
				cause: &appError{msg: "custom cause", code: 300},
			},
		},
		{
			// nil input should give nil output
			err:      nil,
			cause:    errors.New("the cause is ignored if the wrapper is nil"),
			expected: nil,
		},
	}

	for i, tt := range tts {
		err, _ := WithCause(tt.cause)(tt.err).(*appError)
		assertErrors(tt.expected, err, t, fmt.Sprintf("%d WithCause", i))
	}
}

func assertErrors(exp *appError, got *appError, t *testing.T, name string) {
	if exp == nil && got == nil {
		return
	}

	if exp == nil && got != nil {
		t.Errorf("%s - expected nil, got non-nil", name)
		return
	}

	if exp != nil && got == nil {
		t.Errorf("%s - expected non-nil, got nil", name)
		return
	}

	if got.code != exp.code {
		t.Errorf("%s - code: %d != %d", name, exp.code, got.code)
	}

	if got.msg != exp.msg {
		t.Errorf("%s - msg: %s != %s", name, exp.msg, got.msg)
	}

	if got.tag != exp.tag {
		t.Errorf("%s - tag: %s != %s", name, exp.tag, got.tag)
	}

	assertErrors(exp.cause, got.cause, t, name)
}
