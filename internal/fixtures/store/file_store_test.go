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
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wso2/ride-admin-data-service/internal/system/log"
)

const sampleFixtures = `
hubs:
  - id: 1
    name: Central Hub
    address:
      city: Colombo
  - id: 2
    name: Airport Hub
users:
  - id: 7
    name: Ana
    user_type: driver
`

func writeFixtureFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fixtures.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestFileStore_GetFixture(t *testing.T) {
	_ = log.Init("DEBUG")
	fileStore, err := NewFileStore(writeFixtureFile(t, sampleFixtures))
	require.NoError(t, err)

	hubs, err := fileStore.GetFixture(context.Background(), "hubs")
	require.NoError(t, err)
	require.Len(t, hubs, 2)
	assert.Equal(t, "Central Hub", hubs[0].GetString("name"))
	assert.Equal(t, map[string]interface{}{"city": "Colombo"}, hubs[0].Fields["address"])
	id, ok := hubs[1].ID("id")
	assert.True(t, ok)
	assert.Equal(t, int64(2), id)
	assert.False(t, hubs[0].IsSynthetic())

	missing, err := fileStore.GetFixture(context.Background(), "rides")
	require.NoError(t, err)
	assert.Empty(t, missing)
	assert.NoError(t, fileStore.Ping(context.Background()))
}

func TestFileStore_ReturnsIndependentCopies(t *testing.T) {
	fileStore, err := NewFileStore(writeFixtureFile(t, sampleFixtures))
	require.NoError(t, err)

	first, _ := fileStore.GetFixture(context.Background(), "users")
	first[0].Fields["name"] = "changed"

	second, _ := fileStore.GetFixture(context.Background(), "users")
	assert.Equal(t, "Ana", second[0].GetString("name"))
}

func TestFileStore_Errors(t *testing.T) {
	_, err := NewFileStore(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = NewFileStore(writeFixtureFile(t, "hubs: [1, 2]"))
	assert.Error(t, err)
}

func TestResolvePath(t *testing.T) {
	assert.Equal(t, filepath.Join("/opt/ras", "repository/conf/fixtures.yaml"), resolvePath("/opt/ras", "repository/conf/fixtures.yaml"))
	assert.Equal(t, "/etc/fixtures.yaml", resolvePath("/opt/ras", "/etc/fixtures.yaml"))
}

func TestFileStore_ShippedFixtures(t *testing.T) {
	fileStore, err := NewFileStore("../../../repository/conf/fixtures.yaml")
	require.NoError(t, err)

	for _, name := range []string{"hubs", "destinations", "users", "drivers", "vehicles", "rides", "bookings"} {
		collection, err := fileStore.GetFixture(context.Background(), name)
		require.NoError(t, err)
		assert.NotEmpty(t, collection, name)
		for _, record := range collection {
			_, ok := record.ID("id")
			assert.True(t, ok, name)
		}
	}
}
