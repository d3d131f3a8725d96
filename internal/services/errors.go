package services

import "errors"

var (
	// ErrUnknownUser is returned when a username lookup finds no row.
	ErrUnknownUser = errors.New("unknown user")
	// ErrWrongPassword is returned when credentials do not verify.
	ErrWrongPassword = errors.New("wrong password")
	// ErrUsernameTaken is returned when registration hits an existing username.
	ErrUsernameTaken = errors.New("username already taken")
	// ErrSelfFriend is returned when a user tries to friend themselves.
	ErrSelfFriend = errors.New("cannot friend yourself")
	// ErrAlreadyFriends is returned when the directed edge already exists.
	ErrAlreadyFriends = errors.New("already friends")
	// ErrUnknownPost is returned when a post lookup finds no row.
	ErrUnknownPost = errors.New("unknown post")
)
