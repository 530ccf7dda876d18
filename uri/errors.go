/*
Copyright 2025 Grizzly Authors

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

package uri

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidURI is the kind of every error caused by a malformed port or
	// a malformed IPv6 authority.
	ErrInvalidURI = errors.New("invalid URI")
	// ErrNullInput is returned by Resolve when no raw string is given.
	ErrNullInput = errors.New("raw URI is absent")
	// ErrUnsupportedScheme is returned by ValidateSupportedScheme for schemes
	// that cannot be used to send a request.
	ErrUnsupportedScheme = errors.New("unsupported URI scheme")
)

// ParseError is the error type returned by Resolve and its wrappers.
// Err holds one of the package sentinels so callers can use errors.Is.
type ParseError struct {
	Message string
	Err     error
}

// Error returns the string representation of the parse error.
func (e *ParseError) Error() string {
	return fmt.Sprintf("URI parse error: %s", e.Message)
}

// Unwrap provides compatibility with Go's standard errors package.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// newParseError creates a new ParseError, wrapping the kind of the original
// error. It returns nil if the input error is nil.
func newParseError(err error) *ParseError {
	if err == nil {
		return nil
	}
	return &ParseError{Message: err.Error(), Err: errors.Unwrap(err)}
}

// kindError is used by the parser to describe a failure together with the
// offending piece of input.
type kindError struct {
	kind    error
	message string
	details string
}

func (e *kindError) Error() string {
	if e.details != "" {
		return fmt.Sprintf("%s '%s'", e.message, e.details)
	}
	return e.message
}

func (e *kindError) Unwrap() error {
	return e.kind
}

func invalidAuthority(authority string) *kindError {
	return &kindError{kind: ErrInvalidURI, message: "Invalid authority field", details: authority}
}

func invalidPort(port string) *kindError {
	return &kindError{kind: ErrInvalidURI, message: "Invalid port number", details: port}
}
