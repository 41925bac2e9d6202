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

package service

import (
	"fmt"

	"github.com/wso2/ride-admin-data-service/internal/system/client"
)

// FallbackPolicy decides, per failure kind, whether the resolver moves on to the next descriptor
// or stops and surfaces the failure to the caller.
type FallbackPolicy struct {
	surface map[client.FailureKind]bool
}

// DefaultFallbackPolicy falls through on every failure kind.
func DefaultFallbackPolicy() FallbackPolicy {
	return FallbackPolicy{surface: map[client.FailureKind]bool{}}
}

// NewFallbackPolicy builds a policy that surfaces the named failure kinds.
func NewFallbackPolicy(surfaceKinds []string) (FallbackPolicy, error) {
	policy := DefaultFallbackPolicy()
	for _, name := range surfaceKinds {
		kind, ok := client.ParseFailureKind(name)
		if !ok {
			return policy, fmt.Errorf("unknown failure kind in fetch.surface_failures: %q", name)
		}
		policy.surface[kind] = true
	}
	return policy, nil
}

// ShouldSurface reports whether a failure of this kind stops the chain.
func (p FallbackPolicy) ShouldSurface(kind client.FailureKind) bool {
	return p.surface[kind]
}
