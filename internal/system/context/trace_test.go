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

package context

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTraceID_RoundTrip(t *testing.T) {
	ctx := WithTraceID(context.Background(), "trace-1")
	assert.Equal(t, "trace-1", GetTraceID(ctx))
	assert.Equal(t, "trace-1", GetOrGenerateTraceID(ctx))
}

func TestGetOrGenerateTraceID_GeneratesWhenMissing(t *testing.T) {
	first := GetOrGenerateTraceID(context.Background())
	second := GetOrGenerateTraceID(context.Background())
	assert.NotEmpty(t, first)
	assert.NotEqual(t, first, second)
	assert.Empty(t, GetTraceID(context.Background()))
}

func TestAuthTokenAndInitiator(t *testing.T) {
	ctx := WithInitiator(WithAuthToken(context.Background(), "tok"), "admin-1")
	assert.Equal(t, "tok", GetAuthToken(ctx))
	assert.Equal(t, "admin-1", GetInitiator(ctx))
	assert.Empty(t, GetAuthToken(context.Background()))
}
