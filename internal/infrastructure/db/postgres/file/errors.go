package file

import "errors"

var (
	ErrFileNotFound  = errors.New("file not found")
	ErrOwnerNotFound = errors.New("owner user not found")
)
