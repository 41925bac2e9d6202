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
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	fetchModel "github.com/wso2/ride-admin-data-service/internal/fetch/model"
	"github.com/wso2/ride-admin-data-service/internal/system/config"
	sysContext "github.com/wso2/ride-admin-data-service/internal/system/context"
	"github.com/wso2/ride-admin-data-service/internal/system/log"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *APIClient {
	t.Helper()
	_ = log.Init("DEBUG")
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewAPIClientWithHTTPClient(server.URL, server.Client())
}

func TestGetCollection_Success(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/hubs", r.URL.Path)
		assert.Equal(t, "true", r.URL.Query().Get("active"))
		assert.Equal(t, "Bearer tok-1", r.Header.Get("Authorization"))
		_, _ = w.Write([]byte(`[{"id":1,"name":"Hub A"}]`))
	})

	ctx := sysContext.WithAuthToken(context.Background(), "tok-1")
	collection, err := c.GetCollection(ctx, fetchModel.NewDescriptor("/api/hubs", map[string]string{"active": "true"}))

	require.NoError(t, err)
	require.Len(t, collection, 1)
	assert.Equal(t, map[string]interface{}{"id": float64(1), "name": "Hub A"}, collection[0].Fields)
	assert.False(t, collection[0].IsSynthetic())
}

func TestGetCollection_ClassifiesFailures(t *testing.T) {
	cases := []struct {
		name   string
		status int
		body   string
		kind   FailureKind
	}{
		{"not found", http.StatusNotFound, `{"detail":"no"}`, FailureNotFound},
		{"unauthorized", http.StatusUnauthorized, ``, FailureUnauthorized},
		{"forbidden", http.StatusForbidden, ``, FailureUnauthorized},
		{"server error", http.StatusBadGateway, ``, FailureServerError},
		{"object instead of array", http.StatusOK, `{"results":[]}`, FailureMalformed},
		{"array of scalars", http.StatusOK, `[1,2]`, FailureMalformed},
		{"null body", http.StatusOK, `null`, FailureMalformed},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
				_, _ = w.Write([]byte(tc.body))
			})
			_, err := c.GetCollection(context.Background(), fetchModel.NewDescriptor("/api/hubs", nil))
			require.Error(t, err)
			assert.Equal(t, tc.kind, KindOf(err))
		})
	}
}

func TestGetCollection_NetworkError(t *testing.T) {
	_ = log.Init("DEBUG")
	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()

	c := NewAPIClientWithHTTPClient(url, http.DefaultClient)
	_, err := c.GetCollection(context.Background(), fetchModel.NewDescriptor("/api/hubs", nil))
	require.Error(t, err)
	assert.Equal(t, FailureNetworkError, KindOf(err))
	assert.Equal(t, 0, StatusOf(err))
}

func TestSend_PostsJSONAndReturnsObject(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		raw, _ := io.ReadAll(r.Body)
		var body map[string]interface{}
		require.NoError(t, json.Unmarshal(raw, &body))
		assert.Equal(t, "Hub C", body["name"])
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":3,"name":"Hub C"}`))
	})

	created, err := c.Send(context.Background(), http.MethodPost, "/api/hubs", map[string]interface{}{"name": "Hub C"})
	require.NoError(t, err)
	assert.Equal(t, float64(3), created["id"])
}

func TestSend_SurfacesUpstreamRejection(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"name":["required"]}`))
	})

	_, err := c.Send(context.Background(), http.MethodPut, "/api/hubs/1", map[string]interface{}{})
	require.Error(t, err)
	var accessErr *AccessError
	require.ErrorAs(t, err, &accessErr)
	assert.Equal(t, http.StatusBadRequest, accessErr.StatusCode)
	assert.Equal(t, FailureServerError, accessErr.Kind)
	assert.Contains(t, accessErr.Body, "required")
}

func TestNewAPIClient_RequiresBaseURL(t *testing.T) {
	_, err := NewAPIClient(config.Config{})
	assert.Error(t, err)

	c, err := NewAPIClient(config.Config{Upstream: config.UpstreamConfig{BaseURL: "http://api.local/", TimeoutSeconds: 5}})
	require.NoError(t, err)
	assert.Equal(t, "http://api.local", c.BaseURL)
}

func TestParseFailureKind(t *testing.T) {
	kind, ok := ParseFailureKind(" Unauthorized ")
	assert.True(t, ok)
	assert.Equal(t, FailureUnauthorized, kind)

	_, ok = ParseFailureKind("teapot")
	assert.False(t, ok)
}
