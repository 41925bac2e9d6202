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

package provider

import (
	"github.com/wso2/ride-admin-data-service/internal/dashboard/service"
)

// DashboardProviderInterface defines the interface for the dashboard provider.
type DashboardProviderInterface interface {
	GetDashboardService() service.DashboardServiceInterface
}

// DashboardProvider is the default implementation of the DashboardProviderInterface.
type DashboardProvider struct{}

// NewDashboardProvider creates a new instance of DashboardProvider.
func NewDashboardProvider() DashboardProviderInterface {

	return &DashboardProvider{}
}

// GetDashboardService returns the dashboard service instance.
func (dp *DashboardProvider) GetDashboardService() service.DashboardServiceInterface {

	return service.GetDashboardService()
}
