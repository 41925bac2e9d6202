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

package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wso2/ride-admin-data-service/internal/system/config"
	errors2 "github.com/wso2/ride-admin-data-service/internal/system/errors"
	"github.com/wso2/ride-admin-data-service/internal/system/log"
)

func TestNew_FileBackendIsDefault(t *testing.T) {
	_ = log.Init("DEBUG")
	path := writeFixtureFile(t, sampleFixtures)

	fixtureStore, err := New(context.Background(), "/ignored", config.Config{
		Fixtures: config.FixturesConfig{File: path, CacheTTLSeconds: 60},
	})

	require.NoError(t, err)
	defer fixtureStore.Close()
	assert.IsType(t, &CachedStore{}, fixtureStore)
	hubs, err := fixtureStore.GetFixture(context.Background(), "hubs")
	require.NoError(t, err)
	assert.Len(t, hubs, 2)
}

func TestNew_UnknownBackend(t *testing.T) {
	_, err := New(context.Background(), "", config.Config{Fixtures: config.FixturesConfig{Backend: "redis"}})

	var serverErr *errors2.ServerError
	require.ErrorAs(t, err, &serverErr)
	assert.Equal(t, errors2.FIXTURE_LOAD_FAILED.Code, serverErr.Code)
}
