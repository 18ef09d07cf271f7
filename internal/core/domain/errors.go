package domain

import "errors"

// Closed error set. Every failure an operation can surface to a caller is one
// of these; the API error handler maps each to a fixed HTTP status.
var (
	// ErrTokenNotFound covers every credential problem a caller is allowed to
	// see: missing, malformed, tampered, or expired token, and an admin-signup
	// secret mismatch. The internal distinction stays in logs and metrics.
	ErrTokenNotFound = errors.New("token not found")

	ErrUserNotFound    = errors.New("user not found")
	ErrUserExists      = errors.New("username already exists")
	ErrInvalidPassword = errors.New("invalid password")
	ErrBoardNotFound   = errors.New("board not found")
	ErrCommentNotFound = errors.New("comment not found")
	ErrNotAllowed      = errors.New("not allowed to modify this resource")
)
