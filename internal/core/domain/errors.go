package domain

import "errors"

var (
	ErrItemNotFound = errors.New("item not found")
	ErrTaskNotFound = errors.New("task not found")
	ErrUserNotFound = errors.New("user not found")

	// ErrTaskUserNotFound signals a task create or reassignment pointing at a
	// user id that does not resolve.
	ErrTaskUserNotFound = errors.New("task user not found")

	ErrEmailTaken    = errors.New("email already registered")
	ErrUsernameTaken = errors.New("username already taken")
)
