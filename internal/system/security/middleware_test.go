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

package security

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wso2/ride-admin-data-service/internal/system/config"
	"github.com/wso2/ride-admin-data-service/internal/system/constants"
	sysContext "github.com/wso2/ride-admin-data-service/internal/system/context"
	"github.com/wso2/ride-admin-data-service/internal/system/log"
)

type captured struct {
	token     string
	initiator string
	traceID   string
	called    bool
}

func capturingHandler(c *captured) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c.called = true
		c.token = sysContext.GetAuthToken(r.Context())
		c.initiator = sysContext.GetInitiator(r.Context())
		c.traceID = sysContext.GetTraceID(r.Context())
		w.WriteHeader(http.StatusOK)
	}
}

func token(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("k"))
	require.NoError(t, err)
	return signed
}

func TestMiddleware_AuthDisabledForwardsToken(t *testing.T) {
	_ = log.Init("DEBUG")
	c := &captured{}
	handler := Middleware(config.AuthConfig{}, constants.ApiBasePath, capturingHandler(c))

	r := httptest.NewRequest(http.MethodGet, "/api/v1/collections/hubs", nil)
	r.Header.Set("Authorization", "Bearer opaque-token")
	r.Header.Set(constants.TraceIDHeader, "trace-7")
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "opaque-token", c.token)
	assert.Equal(t, "trace-7", c.traceID)
	assert.Equal(t, "trace-7", w.Header().Get(constants.TraceIDHeader))
}

func TestMiddleware_AuthEnabled(t *testing.T) {
	_ = log.Init("DEBUG")
	authCfg := config.AuthConfig{Enabled: true}

	c := &captured{}
	handler := Middleware(authCfg, constants.ApiBasePath, capturingHandler(c))
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/dashboard", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.False(t, c.called)

	expired := token(t, jwt.MapClaims{"sub": "a", "exp": time.Now().Add(-time.Hour).Unix()})
	r := httptest.NewRequest(http.MethodGet, "/api/v1/dashboard", nil)
	r.Header.Set("Authorization", "Bearer "+expired)
	w = httptest.NewRecorder()
	handler.ServeHTTP(w, r)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	valid := token(t, jwt.MapClaims{"sub": "admin", "exp": time.Now().Add(time.Hour).Unix()})
	r = httptest.NewRequest(http.MethodGet, "/api/v1/dashboard", nil)
	r.Header.Set("Authorization", "Bearer "+valid)
	w = httptest.NewRecorder()
	handler.ServeHTTP(w, r)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, valid, c.token)
	assert.Equal(t, "admin", c.initiator)
	assert.NotEmpty(t, c.traceID)
}

func TestMiddleware_HealthIsOpen(t *testing.T) {
	c := &captured{}
	handler := Middleware(config.AuthConfig{Enabled: true}, constants.ApiBasePath, capturingHandler(c))
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, c.called)
}

func TestRequirePermission(t *testing.T) {
	_ = log.Init("DEBUG")
	authCfg := config.AuthConfig{
		Enabled:        true,
		RequiredScopes: map[string][]string{constants.OperationEditCollection: {"ride_admin"}},
	}
	c := &captured{}
	guarded := Middleware(authCfg, constants.ApiBasePath,
		RequirePermission(authCfg, constants.OperationEditCollection, capturingHandler(c)))

	r := httptest.NewRequest(http.MethodPost, "/api/v1/collections/hubs", nil)
	r.Header.Set("Authorization", "Bearer "+token(t, jwt.MapClaims{"sub": "viewer", "scope": "ride_viewer"}))
	w := httptest.NewRecorder()
	guarded.ServeHTTP(w, r)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.False(t, c.called)

	r = httptest.NewRequest(http.MethodPost, "/api/v1/collections/hubs", nil)
	r.Header.Set("Authorization", "Bearer "+token(t, jwt.MapClaims{"sub": "admin", "scope": "ride_admin"}))
	w = httptest.NewRecorder()
	guarded.ServeHTTP(w, r)
	assert.Equal(t, http.StatusOK, w.Code)
}
