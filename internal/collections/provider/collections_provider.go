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
	"github.com/wso2/ride-admin-data-service/internal/collections/service"
)

// CollectionsProviderInterface defines the interface for the collections provider.
type CollectionsProviderInterface interface {
	GetCollectionsService() service.CollectionsServiceInterface
}

// CollectionsProvider is the default implementation of the CollectionsProviderInterface.
type CollectionsProvider struct{}

// NewCollectionsProvider creates a new instance of CollectionsProvider.
func NewCollectionsProvider() CollectionsProviderInterface {

	return &CollectionsProvider{}
}

// GetCollectionsService returns the collections service instance.
func (cp *CollectionsProvider) GetCollectionsService() service.CollectionsServiceInterface {

	return service.GetCollectionsService()
}
