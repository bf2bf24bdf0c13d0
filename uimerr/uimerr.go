/*
Copyright 2024 The Universal Ink Library Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package uimerr defines the error taxonomy shared by every package in
// this module: codec failures, consistency violations and the
// mutation-API failures raised by the tree and model packages.
package uimerr

import "github.com/pkg/errors"

// Kind classifies an error into the taxonomy of spec §7.
type Kind int

const (
	// KindFormat signals wire-format damage: bad magic, truncated
	// chunk, failed protobuf parse.
	KindFormat Kind = iota
	// KindUnsupportedVersion signals a version triple the codec
	// cannot handle.
	KindUnsupportedVersion
	// KindConsistency signals a post-parse invariant failure.
	KindConsistency
	// KindNotFound signals a lookup by id or name with no match.
	KindNotFound
	// KindAlreadyAttached signals attaching a node that already has
	// a parent.
	KindAlreadyAttached
	// KindDuplicateURI signals registering a node URI already in use.
	KindDuplicateURI
	// KindOutOfRange signals fragment indices, t-values, or channel
	// values outside their legal bounds.
	KindOutOfRange
	// KindInvalidArgument signals an illegal combination of
	// arguments or model state.
	KindInvalidArgument
)

func (k Kind) String() string {
	switch k {
	case KindFormat:
		return "FormatError"
	case KindUnsupportedVersion:
		return "UnsupportedVersion"
	case KindConsistency:
		return "ConsistencyError"
	case KindNotFound:
		return "NotFound"
	case KindAlreadyAttached:
		return "AlreadyAttached"
	case KindDuplicateURI:
		return "DuplicateUri"
	case KindOutOfRange:
		return "OutOfRange"
	case KindInvalidArgument:
		return "InvalidArgument"
	default:
		return "Unknown"
	}
}

// Error is the concrete error type every public API in this module
// returns for a taxonomy failure. Location is a chunk id or node URI
// when applicable; it is empty otherwise.
type Error struct {
	Kind     Kind
	Location string
	Message  string
	cause    error
}

func (e *Error) Error() string {
	if e.Location != "" {
		return e.Kind.String() + " [" + e.Location + "]: " + e.Message
	}
	return e.Kind.String() + ": " + e.Message
}

// Unwrap exposes the wrapped cause, if any, to errors.Is/errors.As.
func (e *Error) Unwrap() error { return e.cause }

// New builds an Error with no location and no wrapped cause.
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// At builds an Error carrying a location token.
func At(kind Kind, location, message string) *Error {
	return &Error{Kind: kind, Location: location, Message: message}
}

// Wrap attaches kind/location context to an existing cause, keeping
// the cause chain intact via github.com/pkg/errors. The cause is
// reachable through Unwrap (and so through the standard errors.Is and
// errors.As); *Error has no Cause method, so errors.Cause stops at it.
func Wrap(cause error, kind Kind, location, message string) *Error {
	return &Error{Kind: kind, Location: location, Message: message, cause: errors.Wrap(cause, message)}
}

// Is reports whether err is a *Error of the given kind.
func Is(err error, kind Kind) bool {
	e, ok := err.(*Error)
	return ok && e.Kind == kind
}
