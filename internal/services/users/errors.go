package users

import "errors"

// ErrUserNotFound is returned when no user matches a lookup, or an update or delete touched no rows.
var ErrUserNotFound = errors.New("user not found")

// ErrInvalidCredentials is returned when the email or password does not match.
var ErrInvalidCredentials = errors.New("email or password are incorrect")

// ErrDuplicate is returned when trying to store a user with an email that already exists
var ErrDuplicate = errors.New("user with this email already exists")

// ErrInvalidID is returned when an identifier is not a valid ObjectID.
var ErrInvalidID = errors.New("invalid user id")

// ErrInvalidDateRange is returned when a range ends before it starts.
var ErrInvalidDateRange = errors.New("end date must not be before start date")
