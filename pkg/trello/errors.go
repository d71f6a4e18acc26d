package trello

import (
	"errors"
	"fmt"
	"strings"
)

// Static errors that can be wrapped with context.
var (
	ErrConfigRequired            = errors.New("config is required")
	ErrResourceAlreadyRegistered = errors.New("resource type already registered")
	ErrResourceNotRegistered     = errors.New("resource type not registered")
)

// InvalidSubresourceError reports subresource names that are not declared for
// a resource type. It is returned before any network call is made.
type InvalidSubresourceError struct {
	Resource string
	Names    []string
}

// Error implements the error interface.
func (e *InvalidSubresourceError) Error() string {
	return fmt.Sprintf("invalid subresource(s) %s for resource type %q",
		strings.Join(e.Names, ", "), e.Resource)
}

// InvalidParentError reports parent resource names that are not declared for
// a resource type.
type InvalidParentError struct {
	Resource string
	Names    []string
}

// Error implements the error interface.
func (e *InvalidParentError) Error() string {
	return fmt.Sprintf("invalid parent resource(s) %s for resource type %q",
		strings.Join(e.Names, ", "), e.Resource)
}

// RequestFailedError reports a non-200 response from the Trello API. It
// carries the request URL and the status code; the triggering call is aborted
// and never returns partial results.
type RequestFailedError struct {
	URL        string
	StatusCode int
}

// Error implements the error interface.
func (e *RequestFailedError) Error() string {
	return fmt.Sprintf("request to %s failed with status %d", e.URL, e.StatusCode)
}

// MalformedResponseError reports a response body that is neither an object
// nor an array of objects. An object without an "id" field is not malformed;
// it yields an empty sequence instead.
type MalformedResponseError struct {
	URL    string
	Detail string
}

// Error implements the error interface.
func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("malformed response from %s: %s", e.URL, e.Detail)
}

// ConfigurationError reports required configuration that was absent at client
// construction time. It is always raised before any network call.
type ConfigurationError struct {
	Missing []string
}

// Error implements the error interface.
func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("missing required configuration: %s", strings.Join(e.Missing, ", "))
}

// IsInvalidSubresource checks if the error reports an undeclared subresource.
func IsInvalidSubresource(err error) bool {
	target := &InvalidSubresourceError{}

	return errors.As(err, &target)
}

// IsInvalidParent checks if the error reports an undeclared parent resource.
func IsInvalidParent(err error) bool {
	target := &InvalidParentError{}

	return errors.As(err, &target)
}

// IsRequestFailed checks if the error reports a non-200 API response.
func IsRequestFailed(err error) bool {
	target := &RequestFailedError{}

	return errors.As(err, &target)
}

// IsMalformedResponse checks if the error reports an unusable response body.
func IsMalformedResponse(err error) bool {
	target := &MalformedResponseError{}

	return errors.As(err, &target)
}

// IsConfigurationMissing checks if the error reports absent configuration.
func IsConfigurationMissing(err error) bool {
	target := &ConfigurationError{}

	return errors.As(err, &target)
}
