// Copyright (c) 2013-2017 The btcsuite developers
// Copyright (c) 2022 The Keymaker Coin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"errors"
	"fmt"
)

// ErrorCode identifies a kind of error.
type ErrorCode int

// These constants are used to identify a specific ParamsError.
const (
	// ErrUnknownNetwork indicates a network identifier outside of main,
	// test and regtest.
	ErrUnknownNetwork ErrorCode = iota

	// ErrNilBuilder indicates no genesis builder was supplied.
	ErrNilBuilder
)

// Map of ErrorCode values back to their constant names for pretty printing.
var errorCodeStrings = map[ErrorCode]string{
	ErrUnknownNetwork: "ErrUnknownNetwork",
	ErrNilBuilder:     "ErrNilBuilder",
}

// String returns the ErrorCode as a human-readable name.
func (e ErrorCode) String() string {
	if s := errorCodeStrings[e]; s != "" {
		return s
	}
	return fmt.Sprintf("Unknown ErrorCode (%d)", int(e))
}

// ErrNotSelected is the panic value of Registry.Current when no network has
// been selected yet.
var ErrNotSelected = errors.New("network parameters requested before a network was selected")

// ParamsError describes a recoverable configuration problem, such as asking
// for a network that does not exist.  The caller decides whether to exit or
// ask again.
type ParamsError struct {
	ErrorCode   ErrorCode // Describes the kind of error
	Func        string    // Function name
	Description string    // Human readable description of the issue
}

// Error satisfies the error interface and prints human-readable errors.
func (e *ParamsError) Error() string {
	if e.Func != "" {
		return fmt.Sprintf("%v: %v", e.Func, e.Description)
	}
	return e.Description
}

// Is reports whether target is a ParamsError with the same error code, so
// errors.Is(err, &ParamsError{ErrorCode: ErrUnknownNetwork}) works.
func (e *ParamsError) Is(target error) bool {
	var pe *ParamsError
	if !errors.As(target, &pe) {
		return false
	}
	return pe.ErrorCode == e.ErrorCode
}

// paramsError creates a ParamsError given a set of arguments.
func paramsError(c ErrorCode, f string, desc string) *ParamsError {
	return &ParamsError{ErrorCode: c, Func: f, Description: desc}
}

// IsErrorCode returns whether err is a ParamsError carrying the given code.
func IsErrorCode(err error, c ErrorCode) bool {
	var pe *ParamsError
	return errors.As(err, &pe) && pe.ErrorCode == c
}

// IntegrityError reports that the constants compiled into the binary do not
// describe the chain they claim to.  It is never recoverable: a node that
// carries one would fork itself off its network, so construction panics with
// it instead of returning it.
type IntegrityError struct {
	Net         Net    // Network whose parameters are inconsistent
	What        string // Which value failed, e.g. "genesis hash"
	Description string // Human readable description of the mismatch
}

// Error satisfies the error interface and prints human-readable errors.
func (e *IntegrityError) Error() string {
	return fmt.Sprintf("%s network: %s: %s", e.Net, e.What, e.Description)
}

// integrityError creates an IntegrityError given a set of arguments.
func integrityError(net Net, what, format string, args ...interface{}) *IntegrityError {
	return &IntegrityError{Net: net, What: what, Description: fmt.Sprintf(format, args...)}
}
