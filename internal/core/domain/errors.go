package domain

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserExists         = errors.New("user already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrProjectNotFound    = errors.New("project not found")
	ErrForbidden          = errors.New("access forbidden")
	ErrAlreadyEnrolled    = errors.New("already enrolled in project")
	ErrInvalidStatus      = errors.New("invalid project status")
	ErrInvalidRole        = errors.New("invalid role")
)
