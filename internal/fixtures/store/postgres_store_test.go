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
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wso2/ride-admin-data-service/internal/records/model"
	"github.com/wso2/ride-admin-data-service/internal/system/database/scripts"
)

type MockDBClient struct {
	mock.Mock
}

func (m *MockDBClient) ExecuteQuery(ctx context.Context, query string, args ...interface{}) ([]map[string]interface{}, error) {
	called := m.Called(append([]interface{}{query}, args...)...)
	rows, _ := called.Get(0).([]map[string]interface{})
	return rows, called.Error(1)
}

func (m *MockDBClient) Execute(ctx context.Context, query string, args ...interface{}) (int64, error) {
	called := m.Called(append([]interface{}{query}, args...)...)
	return int64(called.Int(0)), called.Error(1)
}

func (m *MockDBClient) Ping(ctx context.Context) error {
	return m.Called().Error(0)
}

func (m *MockDBClient) Close() error {
	return m.Called().Error(0)
}

func (m *MockDBClient) InitDatabase(home, file string) error {
	return m.Called(home, file).Error(0)
}

func TestPostgresStore_GetFixture(t *testing.T) {
	dbClient := new(MockDBClient)
	dbClient.On("ExecuteQuery", scripts.GetFixtureRecords[dbType], "drivers").Return([]map[string]interface{}{
		{"record": []byte(`{"id": 3, "user_id": 7}`)},
		{"record": `{"id": 4, "user_id": 8}`},
	}, nil)

	collection, err := NewPostgresStore(dbClient).GetFixture(context.Background(), "drivers")
	require.NoError(t, err)
	require.Len(t, collection, 2)
	id, _ := collection[1].ID("id")
	assert.Equal(t, int64(4), id)
}

func TestPostgresStore_RejectsNonObjectRecords(t *testing.T) {
	dbClient := new(MockDBClient)
	dbClient.On("ExecuteQuery", scripts.GetFixtureRecords[dbType], "hubs").Return([]map[string]interface{}{
		{"record": `[1, 2]`},
	}, nil)

	_, err := NewPostgresStore(dbClient).GetFixture(context.Background(), "hubs")
	assert.Error(t, err)
}

func TestPostgresStore_SaveFixture(t *testing.T) {
	dbClient := new(MockDBClient)
	dbClient.On("Execute", scripts.DeleteFixtureCollection[dbType], "hubs").Return(2, nil).Once()
	dbClient.On("Execute", scripts.InsertFixtureRecord[dbType], "hubs", 0, `{"id":1}`).Return(1, nil).Once()
	dbClient.On("Execute", scripts.InsertFixtureRecord[dbType], "hubs", 1, `{"id":2}`).Return(1, nil).Once()

	err := NewPostgresStore(dbClient).SaveFixture(context.Background(), "hubs",
		model.FromMaps([]map[string]interface{}{{"id": 1}, {"id": 2}}))

	require.NoError(t, err)
	dbClient.AssertExpectations(t)
}
