// Copyright 2025 The LUCI Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package gapi

import (
	"errors"
	"fmt"
)

// Kind classifies terminal call failures.
type Kind int

const (
	// KindFailure is a non-2xx response whose body did not carry a parseable
	// structured error.
	KindFailure Kind = iota
	// KindFieldClash means a free-form additional parameter collided with a
	// typed or path parameter's wire name.
	KindFieldClash
	// KindMissingToken means the token provider failed and the delegate
	// declined to retry.
	KindMissingToken
	// KindTransport is a network-level failure (connection, TLS, etc.) with
	// no HTTP response.
	KindTransport
	// KindBadRequest is a non-2xx response with a parsed structured error
	// payload.
	KindBadRequest
	// KindJSONDecode means a 2xx response body failed to parse as the
	// operation's response schema.
	KindJSONDecode
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case KindFailure:
		return "failure"
	case KindFieldClash:
		return "field clash"
	case KindMissingToken:
		return "missing token"
	case KindTransport:
		return "transport error"
	case KindBadRequest:
		return "bad request"
	case KindJSONDecode:
		return "json decode error"
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// ErrorStatus is the standard structured error payload Google APIs return,
// the "error" member of the response envelope.
type ErrorStatus struct {
	Code    int          `json:"code,omitempty"`
	Message string       `json:"message,omitempty"`
	Status  string       `json:"status,omitempty"`
	Errors  []*ErrorItem `json:"errors,omitempty"`
}

// ErrorItem is one entry of ErrorStatus.Errors.
type ErrorItem struct {
	Domain       string `json:"domain,omitempty"`
	Reason       string `json:"reason,omitempty"`
	Message      string `json:"message,omitempty"`
	Location     string `json:"location,omitempty"`
	LocationType string `json:"locationType,omitempty"`
}

type errorReply struct {
	Error *ErrorStatus `json:"error"`
}

// CallError is the terminal error produced by Call.Do.
//
// Exactly one is returned per failed call; retried attempts do not surface
// their individual errors except through the delegate.
type CallError struct {
	// Kind classifies the failure.
	Kind Kind
	// Method is the method id of the failed operation, e.g.
	// "cloudtasks.projects.locations.queues.create".
	Method string
	// Key is the colliding parameter name for KindFieldClash.
	Key string
	// HTTPCode is the response status code, when a response was received.
	HTTPCode int
	// Status is the parsed structured payload for KindBadRequest.
	Status *ErrorStatus
	// Body is the raw response body for KindFailure and KindJSONDecode.
	Body string
	// Err is the underlying error, if any.
	Err error
}

// Error implements the error interface.
func (e *CallError) Error() string {
	msg := fmt.Sprintf("%s: %s", e.Method, e.Kind)
	switch e.Kind {
	case KindFieldClash:
		msg += fmt.Sprintf(": additional parameter %q collides with a reserved parameter", e.Key)
	case KindBadRequest:
		msg += fmt.Sprintf(": HTTP %d: %s", e.HTTPCode, e.Status.Message)
	case KindFailure:
		msg += fmt.Sprintf(": HTTP %d", e.HTTPCode)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap returns the underlying error.
func (e *CallError) Unwrap() error { return e.Err }

// AsCallError unwraps err (through any annotation layers) to the CallError
// that produced it, if there is one.
func AsCallError(err error) (*CallError, bool) {
	var ce *CallError
	if errors.As(err, &ce) {
		return ce, true
	}
	return nil, false
}
