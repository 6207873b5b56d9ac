package exitcode

import (
	"fmt"

	"golang.org/x/xerrors"
)

type ExitCode int64

func (x ExitCode) IsSuccess() bool {
	return x == Ok
}

func (x ExitCode) IsError() bool {
	return !x.IsSuccess()
}

// Implement error to trigger Go compiler checking of exit code handling.
func (x ExitCode) Error() string {
	return x.String()
}

func (x ExitCode) String() string {
	name, ok := names[x]
	if ok {
		return fmt.Sprintf("%s(%d)", name, x)
	}
	return fmt.Sprintf("%d", x)
}

// Wrapf attaches an exit code to an error, without altering its message.
func (x ExitCode) Wrapf(msg string, args ...interface{}) error {
	return &codedError{x, fmt.Errorf(msg, args...)}
}

// Unwrap extracts an exit code from an error, defaulting if no code is found.
func Unwrap(err error, defaultExitCode ExitCode) ExitCode {
	var coded *codedError
	if xerrors.As(err, &coded) {
		return coded.code
	}
	return defaultExitCode
}

type codedError struct {
	code ExitCode
	err  error
}

func (e *codedError) Error() string {
	return e.err.Error()
}

func (e *codedError) Unwrap() error {
	return e.err
}

const (
	Ok = ExitCode(0)

	// The message sender doesn't exist, or is not permitted to call the method.
	SysErrSenderInvalid = ExitCode(1)

	// The target of the message is forbidden to the sender.
	SysErrForbidden = ExitCode(8)

	// The actor code performed a disallowed operation, such as nesting state
	// transactions or sending within one.
	SysErrorIllegalActor = ExitCode(9)

	// Common user-level error codes. Actor-specific codes begin at
	// FirstActorErrorCode.
	ErrIllegalArgument   = ExitCode(16)
	ErrNotFound          = ExitCode(17)
	ErrForbidden         = ExitCode(18)
	ErrInsufficientFunds = ExitCode(19)
	ErrIllegalState      = ExitCode(20)
	ErrSerialization     = ExitCode(21)

	FirstActorErrorCode = ExitCode(32)
)

var names = map[ExitCode]string{
	Ok:                   "Ok",
	SysErrSenderInvalid:  "SysErrSenderInvalid",
	SysErrForbidden:      "SysErrForbidden",
	SysErrorIllegalActor: "SysErrorIllegalActor",
	ErrIllegalArgument:   "ErrIllegalArgument",
	ErrNotFound:          "ErrNotFound",
	ErrForbidden:         "ErrForbidden",
	ErrInsufficientFunds: "ErrInsufficientFunds",
	ErrIllegalState:      "ErrIllegalState",
	ErrSerialization:     "ErrSerialization",
}
