package common

import (
	"fmt"
)

type ErrorCode uint

// Error is a coded error. Errors sharing the same code are regarded as the
// same kind of error by Is, whatever message or cause they carry.
type Error struct {
	code    string
	message string
	cause   error
}

func NewError(name string, number ErrorCode, message string) Error {
	return Error{code: fmt.Sprintf("%s-%d", name, number), message: message}
}

func (e Error) MarshalJSON() ([]byte, error) {
	return EncodeJSON(e.fields(), false, false)
}

func (e Error) Error() string {
	b, _ := EncodeJSON(e.fields(), false, false)

	return TerminalLogString(string(b))
}

func (e Error) fields() map[string]string {
	m := map[string]string{
		"code":    e.code,
		"message": e.message,
	}

	if e.cause != nil {
		m["cause"] = e.cause.Error()
	}

	return m
}

func (e Error) Code() string {
	return e.code
}

func (e Error) Message() string {
	return e.message
}

func (e Error) Unwrap() error {
	return e.cause
}

func (e Error) SetMessage(format string, args ...interface{}) Error {
	return Error{code: e.code, message: fmt.Sprintf(format, args...), cause: e.cause}
}

func (e Error) AppendMessage(format string, args ...interface{}) Error {
	return Error{
		code: e.code,
		message: fmt.Sprintf(
			"%s; %s",
			e.message,
			fmt.Sprintf(format, args...),
		),
		cause: e.cause,
	}
}

func (e Error) Wrap(err error) Error {
	return Error{code: e.code, message: e.message, cause: err}
}

func (e Error) Is(err error) bool {
	return e.Equal(err)
}

func (e Error) Equal(n error) bool {
	ne, found := n.(Error)
	if !found {
		return false
	}

	return e.Code() == ne.Code()
}
