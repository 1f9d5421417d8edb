package host

import (
	"errors"
	"fmt"
	"syscall"
	"unicode"
	"unicode/utf8"
)

// NameError reports a call to a module or method that is not registered.
type NameError struct {
	Name string
}

func (e *NameError) Error() string { return "name " + e.Name + " is not defined" }

// TypeError reports arguments that do not match a method's signature.
type TypeError struct {
	Msg string
}

func (e *TypeError) Error() string { return e.Msg }

// IOError is the I/O error category. Msg is "<op> [Errno N] <description>".
type IOError struct {
	Op    string
	Errno syscall.Errno
	Msg   string
	Err   error
}

func (e *IOError) Error() string { return e.Msg }

func (e *IOError) Unwrap() error { return e.Err }

// NewIOError builds an IOError for op from err, keeping err's errno.
func NewIOError(op string, err error) *IOError {
	var errno syscall.Errno
	if !errors.As(err, &errno) {
		return &IOError{Op: op, Msg: op + ": " + err.Error(), Err: err}
	}
	return &IOError{
		Op:    op,
		Errno: errno,
		Msg:   fmt.Sprintf("%s [Errno %d] %s", op, uintptr(errno), strerror(errno)),
		Err:   err,
	}
}

// strerror capitalises Go's errno text so it reads like the C library's.
func strerror(errno syscall.Errno) string {
	s := errno.Error()
	r, n := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[n:]
}

// ParseString accepts exactly one string argument.
func ParseString(args []any) (string, error) {
	if len(args) != 1 {
		return "", &TypeError{Msg: fmt.Sprintf("function takes exactly 1 argument (%d given)", len(args))}
	}
	s, ok := args[0].(string)
	if !ok {
		return "", &TypeError{Msg: fmt.Sprintf("argument 1 must be string, not %T", args[0])}
	}
	return s, nil
}
