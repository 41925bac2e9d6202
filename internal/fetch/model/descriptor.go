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

package model

import (
	"net/http"
	"net/url"
	"sort"
	"strings"
)

// Descriptor is a read-only request definition for one collection endpoint.
type Descriptor struct {
	Method      string            `json:"method"`
	Path        string            `json:"path"`
	QueryParams map[string]string `json:"query_params,omitempty"`
}

// NewDescriptor builds a GET descriptor for path.
func NewDescriptor(path string, queryParams map[string]string) Descriptor {
	return Descriptor{Method: http.MethodGet, Path: path, QueryParams: queryParams}
}

// HTTPMethod returns the method, defaulting to GET.
func (d Descriptor) HTTPMethod() string {
	if d.Method == "" {
		return http.MethodGet
	}
	return strings.ToUpper(d.Method)
}

// String renders the descriptor as path?query with sorted keys, for logs.
func (d Descriptor) String() string {
	if len(d.QueryParams) == 0 {
		return d.Path
	}
	keys := make([]string, 0, len(d.QueryParams))
	for k := range d.QueryParams {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	values := url.Values{}
	for _, k := range keys {
		values.Set(k, d.QueryParams[k])
	}
	return d.Path + "?" + values.Encode()
}
