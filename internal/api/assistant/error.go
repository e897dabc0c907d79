package assistant

import "errors"

var (
	ErrCommandNotRecognized = errors.New("command not recognized")
	ErrNoActiveProduct      = errors.New("no product is currently being viewed")
	ErrSubmissionInFlight   = errors.New("order submission already in progress")
	ErrListenerNotRunning   = errors.New("listening session is not running")
	ErrProfileIncomplete    = errors.New("payment details are incomplete")
)
