package attendance

import "errors"

var (
	ErrRecordNotFound   = errors.New("attendance record not found")
	ErrEmployeeNotFound = errors.New("employee for attendance record not found")
)
