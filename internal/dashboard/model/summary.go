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

import (
	fetchModel "github.com/wso2/ride-admin-data-service/internal/fetch/model"
)

// Summary holds the admin dashboard aggregates.
type Summary struct {
	TotalUsers       int                          `json:"total_users"`
	UsersByCategory  map[string]int               `json:"users_by_category"`
	TotalDrivers     int                          `json:"total_drivers"`
	SyntheticDrivers int                          `json:"synthetic_drivers"`
	ActiveDrivers    int                          `json:"active_drivers"`
	TotalRides       int                          `json:"total_rides"`
	RidesByStatus    map[string]int               `json:"rides_by_status"`
	TotalBookings    int                          `json:"total_bookings"`
	BookingsByStatus map[string]int               `json:"bookings_by_status"`
	Revenue          float64                      `json:"revenue"`
	Sources          map[string]fetchModel.Source `json:"sources"`
	Degraded         bool                         `json:"degraded"`
	Notice           string                       `json:"notice,omitempty"`
}
