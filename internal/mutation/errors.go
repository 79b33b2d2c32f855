package mutation

import (
	"errors"
	"fmt"
)

var (
	// ErrRejected means the action is disabled for the target.
	ErrRejected = errors.New("action not allowed")
	// ErrNotFound means the target is not in the scope.
	ErrNotFound = errors.New("target not found in scope")
	// ErrScopeNotReady means the scope has not finished loading.
	ErrScopeNotReady = errors.New("scope not loaded")
)

// Error is a failed remote mutation. Message is safe to show to the user;
// the scope was left unchanged and the action can be retried.
type Error struct {
	Action  Action
	Message string
	Err     error
}

func newError(action Action, err error) *Error {
	return &Error{
		Action:  action,
		Message: fmt.Sprintf("Failed to %s. Please try again.", action),
		Err:     err,
	}
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func rejection(action Action) error {
	switch action {
	case DeleteComment:
		return fmt.Errorf("%w: demo comments are read-only", ErrRejected)
	case UpvoteCard, DeleteCard:
		return fmt.Errorf("%w: demo cards cannot be upvoted or deleted", ErrRejected)
	default:
		return ErrRejected
	}
}
