package admin

import "errors"

var (
	ErrAdminNotFound = errors.New("admin not found")
	ErrAdminExists   = errors.New("admin already exists for this email")
)
