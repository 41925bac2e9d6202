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
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wso2/ride-admin-data-service/internal/records/model"
)

type MockFixtureStore struct {
	mock.Mock
}

func (m *MockFixtureStore) GetFixture(ctx context.Context, name string) (model.Collection, error) {
	args := m.Called(ctx, name)
	collection, _ := args.Get(0).(model.Collection)
	return collection, args.Error(1)
}

func (m *MockFixtureStore) Ping(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockFixtureStore) Close() error {
	return m.Called().Error(0)
}

func TestCachedStore_ServesFromCache(t *testing.T) {
	base := new(MockFixtureStore)
	hubs := model.FromMaps([]map[string]interface{}{{"id": 1, "name": "Central"}})
	base.On("GetFixture", mock.Anything, "hubs").Return(hubs, nil).Once()

	cached := NewCachedStore(base, time.Minute)
	first, err := cached.GetFixture(context.Background(), "hubs")
	require.NoError(t, err)
	first[0].Fields["name"] = "mutated"

	second, err := cached.GetFixture(context.Background(), "hubs")
	require.NoError(t, err)
	assert.Equal(t, "Central", second[0].GetString("name"))
	base.AssertNumberOfCalls(t, "GetFixture", 1)
}

func TestCachedStore_DisabledCacheAndErrors(t *testing.T) {
	base := new(MockFixtureStore)
	base.On("GetFixture", mock.Anything, "rides").Return(model.Collection{}, nil).Twice()
	base.On("GetFixture", mock.Anything, "broken").Return(nil, errors.New("db down")).Once()
	base.On("Close").Return(nil).Once()

	cached := NewCachedStore(base, 0)
	_, _ = cached.GetFixture(context.Background(), "rides")
	_, _ = cached.GetFixture(context.Background(), "rides")
	_, err := cached.GetFixture(context.Background(), "broken")

	assert.Error(t, err)
	assert.NoError(t, cached.Close())
	base.AssertExpectations(t)
}

func TestCachedStore_RefreshReplacesCachedCopy(t *testing.T) {
	base := new(MockFixtureStore)
	stale := model.FromMaps([]map[string]interface{}{{"id": 1, "name": "Central"}})
	fresh := model.FromMaps([]map[string]interface{}{{"id": 1, "name": "Central"}, {"id": 2, "name": "Airport"}})
	base.On("GetFixture", mock.Anything, "hubs").Return(stale, nil).Once()
	base.On("GetFixture", mock.Anything, "hubs").Return(fresh, nil).Once()

	cached := NewCachedStore(base, time.Minute)
	_, err := cached.GetFixture(context.Background(), "hubs")
	require.NoError(t, err)

	require.NoError(t, cached.Refresh(context.Background(), "hubs"))
	got, err := cached.GetFixture(context.Background(), "hubs")

	require.NoError(t, err)
	assert.Len(t, got, 2)
	base.AssertExpectations(t)
}

func TestCachedStore_RefreshFailureKeepsCachedCopy(t *testing.T) {
	base := new(MockFixtureStore)
	hubs := model.FromMaps([]map[string]interface{}{{"id": 1, "name": "Central"}})
	base.On("GetFixture", mock.Anything, "hubs").Return(hubs, nil).Once()
	base.On("GetFixture", mock.Anything, "hubs").Return(nil, errors.New("connection refused")).Once()

	cached := NewCachedStore(base, time.Minute)
	_, err := cached.GetFixture(context.Background(), "hubs")
	require.NoError(t, err)

	assert.Error(t, cached.Refresh(context.Background(), "hubs"))
	got, err := cached.GetFixture(context.Background(), "hubs")

	require.NoError(t, err)
	assert.Equal(t, "Central", got[0].GetString("name"))
}
