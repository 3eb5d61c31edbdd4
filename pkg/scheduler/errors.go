package scheduler

import (
	"errors"
)

var (
	// ErrCanceled is the result of a job that was canceled before it ran.
	ErrCanceled = errors.New("job canceled")
	// ErrFailed matches the result of a job whose task returned an error.
	ErrFailed = errors.New("job failed")
)

type errFailed struct {
	err error
}

func (e *errFailed) Error() string {
	reason := "unknown reason"
	if e.err != nil {
		reason = e.err.Error()
	}
	return ErrFailed.Error() + ": " + reason
}

func (e *errFailed) Is(target error) bool {
	return target == ErrFailed
}

func (e *errFailed) Unwrap() error {
	return e.err
}
