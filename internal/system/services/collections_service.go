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

package services

import (
	"fmt"
	"net/http"

	"github.com/wso2/ride-admin-data-service/internal/collections/handler"
	"github.com/wso2/ride-admin-data-service/internal/collections/provider"
	"github.com/wso2/ride-admin-data-service/internal/system/config"
	"github.com/wso2/ride-admin-data-service/internal/system/constants"
	"github.com/wso2/ride-admin-data-service/internal/system/security"
)

type CollectionsService struct {
	collectionsHandler *handler.CollectionsHandler
}

func NewCollectionsService(mux *http.ServeMux, apiBasePath string, authCfg config.AuthConfig) *CollectionsService {

	instance := &CollectionsService{
		collectionsHandler: handler.NewCollectionsHandler(provider.NewCollectionsProvider()),
	}
	instance.RegisterRoutes(mux, apiBasePath, authCfg)

	return instance
}

func (s *CollectionsService) RegisterRoutes(mux *http.ServeMux, apiBasePath string, authCfg config.AuthConfig) {

	view := func(next http.HandlerFunc) http.HandlerFunc {
		return security.RequirePermission(authCfg, constants.OperationViewCollection, next)
	}
	edit := func(next http.HandlerFunc) http.HandlerFunc {
		return security.RequirePermission(authCfg, constants.OperationEditCollection, next)
	}

	mux.HandleFunc(fmt.Sprintf("GET %s/collections", apiBasePath), view(s.collectionsHandler.ListCollections))
	mux.HandleFunc(fmt.Sprintf("GET %s/collections/{name}", apiBasePath), view(s.collectionsHandler.GetCollection))
	mux.HandleFunc(fmt.Sprintf("POST %s/collections/{name}", apiBasePath), edit(s.collectionsHandler.CreateRecord))
	mux.HandleFunc(fmt.Sprintf("PUT %s/collections/{name}/{id}", apiBasePath), edit(s.collectionsHandler.UpdateRecord))
	mux.HandleFunc(fmt.Sprintf("GET %s/locations", apiBasePath), view(s.collectionsHandler.GetLocations))
}
