package repository

import "errors"

var (
	ErrFailedToGet     = errors.New("failed to get record")
	ErrFailedToExecute = errors.New("failed to execute stored routine")
)
