package employee

import "errors"

var (
	ErrEmployeeNotFound  = errors.New("employee not found")
	ErrInvalidEmployeeID = errors.New("employee id must be a positive integer")
)
