package services

import (
	"context"
	"errors"
)

var (
	ErrUserAlreadyExists  = errors.New("username or email already exists")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrPasswordTooLong    = errors.New("password exceeds 72 bytes")
	ErrUserNotFound       = errors.New("user not found")
	ErrBatchAlreadyExists = errors.New("batch code already exists")
	ErrBatchNotFound      = errors.New("batch not found")
	ErrReceiptNotFound    = errors.New("ledger receipt not found")
)

// AfterCommit schedules fn to run once the request's database transaction
// has committed. Implementations run fn immediately when there is none.
type AfterCommit func(ctx context.Context, fn func())

// AfterRollback schedules fn to run if the request's database transaction is
// rolled back. Implementations drop fn when there is no transaction.
type AfterRollback func(ctx context.Context, fn func())

func runAfterCommit(ctx context.Context, hook AfterCommit, fn func()) {
	if hook == nil {
		fn()
		return
	}
	hook(ctx, fn)
}
