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

	recordModel "github.com/wso2/ride-admin-data-service/internal/records/model"
	"github.com/wso2/ride-admin-data-service/internal/system/constants"
)

// MergeLocations combines hubs and destinations into one addressable location list. Hub and
// destination ids overlap, so each output record gets a location_type and a unique location_key
// such as "hub:1". Hubs come first and each group keeps its input order. Records without an id,
// or repeating an id already used, are keyed by position ("hub:#3").
func MergeLocations(hubs, destinations recordModel.Collection) recordModel.Collection {
	locations := make(recordModel.Collection, 0, len(hubs)+len(destinations))
	used := make(map[string]bool, len(hubs)+len(destinations))
	locations = appendLocations(locations, hubs, constants.LocationTypeHub, used)
	locations = appendLocations(locations, destinations, constants.LocationTypeDestination, used)
	return locations
}

func appendLocations(out, in recordModel.Collection, locationType string, used map[string]bool) recordModel.Collection {
	for i, record := range in {
		key := fmt.Sprintf("%s:#%d", locationType, i)
		if id, ok := record.ID(constants.IDField); ok && !used[fmt.Sprintf("%s:%d", locationType, id)] {
			key = fmt.Sprintf("%s:%d", locationType, id)
		}
		used[key] = true
		location := record.With(constants.LocationTypeField, locationType)
		location.Fields[constants.LocationKeyField] = key
		out = append(out, location)
	}
	return out
}
