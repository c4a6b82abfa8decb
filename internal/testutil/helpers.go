package testutil

import (
	"errors"
)

const StoreError = "store error occurred"

// OperationResult is a typed return value for a mocked call.
type OperationResult[T any] struct {
	Data T
	Err  error
}

// Return a generic typed error for a store call.
func GetMockStoreError[T any]() *OperationResult[T] {
	return NewErrorResult[T](StoreError)
}

func NewErrorResult[T any](err string) *OperationResult[T] {
	return &OperationResult[T]{
		Data: *new(T),
		Err:  errors.New(err),
	}
}

// Wrap a generic Data into a OperationResult struct.
func NewSuccessResult[T any](Data T) *OperationResult[T] {
	return &OperationResult[T]{
		Data: Data,
		Err:  nil,
	}
}
