package responses

import "fmt"

// APIError interface for custom API errors
type APIError interface {
	Error() string
	StatusCode() int
}

type BadRequestError struct {
	Msg string
}

func (e BadRequestError) Error() string {
	return e.Msg
}

func (BadRequestError) StatusCode() int {
	return 400
}

type NotFoundError struct {
	Msg string
}

func (e NotFoundError) Error() string {
	return e.Msg
}

func (NotFoundError) StatusCode() int {
	return 404
}

type InternalServerError struct {
	Msg string
}

func (e InternalServerError) Error() string {
	return e.Msg
}

func (InternalServerError) StatusCode() int {
	return 500
}

// UserError is a failure the user can fix on their own: a bad argument, an
// unregistered name, a spreadsheet layout problem. Its message is shown to
// the user verbatim. Any other error type is an internal failure and only a
// short summary is shown.
type UserError struct {
	Msg string
}

func (e UserError) Error() string {
	return e.Msg
}

// Userf builds a UserError from a format string.
func Userf(format string, a ...interface{}) UserError {
	return UserError{Msg: fmt.Sprintf(format, a...)}
}
