package app

import "errors"

// Sentinel errors for common application errors
var (
	ErrNotFound        = errors.New("not found")
	ErrInvalidArgument = errors.New("invalid argument")
	ErrNoCurrentJob    = errors.New("no job is currently displayed")
	ErrQueueExhausted  = errors.New("no more jobs in the queue")
	ErrNotSignedIn     = errors.New("no user is signed in on this device")
)
