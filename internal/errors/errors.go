// Package errors provides sentinel errors and custom error types for hubsync.
// Use errors.Is() and errors.As() to check for specific error types.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for fatal preconditions
var (
	// ErrDetachedHead indicates that HEAD is not on a branch
	ErrDetachedHead = errors.New("head is detached")

	// ErrNoRemote indicates that no remote could be resolved for the current branch
	ErrNoRemote = errors.New("no remote for current branch")

	// ErrInvalidName indicates a branch or remote name that is not valid text
	ErrInvalidName = errors.New("invalid name")

	// ErrFetch indicates that fetching from the remote failed
	ErrFetch = errors.New("fetch failed")
)

// InvalidNameError reports a ref or remote name that is not valid UTF-8.
type InvalidNameError struct {
	Name string
}

func (e *InvalidNameError) Error() string {
	return fmt.Sprintf("name %q is not valid UTF-8", e.Name)
}

// Is returns true if the target error is ErrInvalidName
func (e *InvalidNameError) Is(target error) bool {
	return target == ErrInvalidName
}

// NewInvalidNameError creates a new InvalidNameError
func NewInvalidNameError(name string) *InvalidNameError {
	return &InvalidNameError{Name: name}
}

// FetchError wraps a transport failure for a named remote.
type FetchError struct {
	Remote string
	Err    error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch %s: %v", e.Remote, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// Is returns true if the target error is ErrFetch
func (e *FetchError) Is(target error) bool {
	return target == ErrFetch
}

// NewFetchError creates a new FetchError
func NewFetchError(remote string, err error) *FetchError {
	return &FetchError{Remote: remote, Err: err}
}

// BranchError reports a per-branch execution failure. It does not abort the
// run; the remaining branches are still processed.
type BranchError struct {
	BranchName string
	Op         string
	Err        error
}

func (e *BranchError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.BranchName, e.Err)
}

func (e *BranchError) Unwrap() error {
	return e.Err
}

// NewBranchError creates a new BranchError
func NewBranchError(branchName, op string, err error) *BranchError {
	return &BranchError{BranchName: branchName, Op: op, Err: err}
}
