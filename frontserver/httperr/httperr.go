// Package httperr provides errors that carry an HTTP status code.
package httperr

import (
	"fmt"
	"net/http"

	"github.com/pkg/errors"
)

type StatusCoder interface {
	StatusCode() int
}

// ErrCode returns the status code carried by err, or 500 if none.
func ErrCode(err error) int {
	var sc StatusCoder

	if errors.As(err, &sc) {
		return sc.StatusCode()
	}

	return http.StatusInternalServerError
}

// WriteErr writes the error code and the error as plain text.
func WriteErr(w http.ResponseWriter, err error) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(ErrCode(err))
	fmt.Fprintln(w, err)
}

type basicError struct {
	code int
	msg  string
}

var (
	_ error       = (*basicError)(nil)
	_ StatusCoder = (*basicError)(nil)
)

func New(code int, msg string) error {
	return basicError{code, msg}
}

func (e basicError) Error() string {
	return e.msg
}

func (e basicError) StatusCode() int {
	return e.code
}

type wrapError struct {
	code int
	wrap error
}

var (
	_ error       = (*wrapError)(nil)
	_ StatusCoder = (*wrapError)(nil)
)

func Wrap(err error, code int, msg string) error {
	if err == nil {
		return nil
	}
	return wrapError{code, errors.Wrap(err, msg)}
}

func (e wrapError) Error() string {
	return e.wrap.Error()
}

func (e wrapError) StatusCode() int {
	return e.code
}

func (e wrapError) Unwrap() error {
	return e.wrap
}
