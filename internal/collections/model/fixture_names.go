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

package model

import "github.com/wso2/ride-admin-data-service/internal/system/config"

// FixtureNames returns the distinct fixture names used by the configured collections, in declaration order.
func FixtureNames(collections []config.CollectionConfig) []string {
	seen := make(map[string]bool, len(collections))
	names := make([]string, 0, len(collections))
	for _, cfg := range collections {
		name := FromConfig(cfg).Fixture
		if seen[name] {
			continue
		}
		seen[name] = true
		names = append(names, name)
	}
	return names
}
