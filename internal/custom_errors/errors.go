package custom_errors

import "errors"

var (
	ErrPostNotFound  = errors.New("post not found")
	ErrGroupNotFound = errors.New("group not found")
	ErrUserNotFound  = errors.New("user not found")

	ErrPostAuthorMismatch = errors.New("user is not the author of the post")

	ErrGroupSlugExists    = errors.New("group slug already exists")
	ErrUsernameExists     = errors.New("username already exists")
	ErrInvalidCredentials = errors.New("invalid username or password")

	ErrValidationFailed = errors.New("validation failed")
	ErrNoUpdateRows     = errors.New("no fields to update")

	ErrDatabaseQuery = errors.New("database query error")
	ErrDatabaseScan  = errors.New("database scan error")
)
