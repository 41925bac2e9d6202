/*
 * Copyright (c) 2025, WSO2 LLC. (http://www.wso2.com).
 *
 * WSO2 LLC. licenses this file to you under the Apache License,
 * Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing,
 * software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
 * KIND, either express or implied.  See the License for the
 * specific language governing permissions and limitations
 * under the License.
 */

package client

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// FailureKind classifies why an upstream call failed.
type FailureKind string

const (
	FailureNotFound     FailureKind = "not_found"
	FailureUnauthorized FailureKind = "unauthorized"
	FailureServerError  FailureKind = "server_error"
	FailureNetworkError FailureKind = "network_error"
	FailureMalformed    FailureKind = "malformed"
)

var failureKinds = map[string]FailureKind{
	string(FailureNotFound):     FailureNotFound,
	string(FailureUnauthorized): FailureUnauthorized,
	string(FailureServerError):  FailureServerError,
	string(FailureNetworkError): FailureNetworkError,
	string(FailureMalformed):    FailureMalformed,
}

// ParseFailureKind maps a configured name such as "unauthorized" to its kind.
func ParseFailureKind(name string) (FailureKind, bool) {
	kind, ok := failureKinds[strings.ToLower(strings.TrimSpace(name))]
	return kind, ok
}

// AccessError is returned for every failed upstream call.
type AccessError struct {
	Kind       FailureKind
	StatusCode int
	Method     string
	Path       string
	Body       string
	Err        error
}

func (e *AccessError) Error() string {
	msg := fmt.Sprintf("%s %s failed: %s", e.Method, e.Path, e.Kind)
	if e.StatusCode != 0 {
		msg += fmt.Sprintf(" (status %d)", e.StatusCode)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *AccessError) Unwrap() error {
	return e.Err
}

// ClassifyStatus maps a non-2xx HTTP status to a failure kind.
func ClassifyStatus(statusCode int) FailureKind {
	switch statusCode {
	case http.StatusNotFound:
		return FailureNotFound
	case http.StatusUnauthorized, http.StatusForbidden:
		return FailureUnauthorized
	default:
		return FailureServerError
	}
}

// KindOf returns the failure kind of err. Errors that did not come from the client count as network errors.
func KindOf(err error) FailureKind {
	var accessErr *AccessError
	if errors.As(err, &accessErr) {
		return accessErr.Kind
	}
	return FailureNetworkError
}

// StatusOf returns the upstream HTTP status carried by err, or 0.
func StatusOf(err error) int {
	var accessErr *AccessError
	if errors.As(err, &accessErr) {
		return accessErr.StatusCode
	}
	return 0
}
