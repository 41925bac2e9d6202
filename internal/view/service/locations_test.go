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
	"testing"

	"github.com/stretchr/testify/assert"
	recordModel "github.com/wso2/ride-admin-data-service/internal/records/model"
)

func TestMergeLocations(t *testing.T) {
	hubs := recordModel.FromMaps([]map[string]interface{}{{"id": 1, "name": "Central Hub"}, {"id": 2, "name": "Airport Hub"}})
	destinations := recordModel.FromMaps([]map[string]interface{}{{"id": 1, "name": "Beach"}, {"name": "Unknown"}})

	locations := MergeLocations(hubs, destinations)

	keys := []string{}
	for _, l := range locations {
		keys = append(keys, l.GetString("location_key"))
	}
	assert.Equal(t, []string{"hub:1", "hub:2", "destination:1", "destination:#1"}, keys)
	assert.Equal(t, "hub", locations[0].GetString("location_type"))
	assert.Equal(t, "destination", locations[2].GetString("location_type"))
	assert.Equal(t, "Beach", locations[2].GetString("name"))
	assert.NotContains(t, hubs[0].Fields, "location_key")
}

func TestMergeLocations_RepeatedIDsStayUnique(t *testing.T) {
	hubs := recordModel.FromMaps([]map[string]interface{}{{"id": 1}, {"id": 1}})
	locations := MergeLocations(hubs, nil)
	assert.Equal(t, "hub:1", locations[0].GetString("location_key"))
	assert.Equal(t, "hub:#1", locations[1].GetString("location_key"))
}
