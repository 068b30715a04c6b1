package store

import "errors"

var (
	ErrEmployeeNotFound    = errors.New("employee not found")
	ErrDuplicateEmployeeID = errors.New("employee_id already exists")
)
