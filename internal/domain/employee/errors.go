package employee

import "errors"

var (
	ErrEmployeeNotFound = errors.New("employee record not found")
	ErrEmailExists      = errors.New("employee with this email already exists")
	ErrNoUserAccount    = errors.New("employee has no user account")
)
