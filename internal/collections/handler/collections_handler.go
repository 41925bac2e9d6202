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

package handler

import (
	"net/http"
	"strings"

	"github.com/wso2/ride-admin-data-service/internal/collections/model"
	"github.com/wso2/ride-admin-data-service/internal/collections/provider"
	"github.com/wso2/ride-admin-data-service/internal/collections/service"
	"github.com/wso2/ride-admin-data-service/internal/system/constants"
	errors2 "github.com/wso2/ride-admin-data-service/internal/system/errors"
	"github.com/wso2/ride-admin-data-service/internal/system/pagination"
	"github.com/wso2/ride-admin-data-service/internal/system/utils"
)

type CollectionsHandler struct {
	provider provider.CollectionsProviderInterface
}

func NewCollectionsHandler(collectionsProvider provider.CollectionsProviderInterface) *CollectionsHandler {

	return &CollectionsHandler{
		provider: collectionsProvider,
	}
}

func (ch *CollectionsHandler) service() service.CollectionsServiceInterface {
	return ch.provider.GetCollectionsService()
}

// ListCollections handles listing of the configured collections
func (ch *CollectionsHandler) ListCollections(w http.ResponseWriter, r *http.Request) {

	utils.WriteJSON(w, http.StatusOK, ch.service().ListCollections())
}

// GetCollection handles a read view of one collection
func (ch *CollectionsHandler) GetCollection(w http.ResponseWriter, r *http.Request) {

	query, err := parseViewQuery(r)
	if err != nil {
		utils.HandleError(w, r, err)
		return
	}
	view, err := ch.service().GetView(r.Context(), r.PathValue("name"), query)
	if err != nil {
		utils.HandleError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, view)
}

// GetLocations handles the merged hubs and destinations view
func (ch *CollectionsHandler) GetLocations(w http.ResponseWriter, r *http.Request) {

	query, err := parseViewQuery(r)
	if err != nil {
		utils.HandleError(w, r, err)
		return
	}
	view, err := ch.service().GetLocations(r.Context(), query)
	if err != nil {
		utils.HandleError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, view)
}

// CreateRecord handles creation of a record in a collection
func (ch *CollectionsHandler) CreateRecord(w http.ResponseWriter, r *http.Request) {

	name := r.PathValue("name")
	var payload map[string]interface{}
	if err := utils.DecodeJSONBody(r, name, &payload); err != nil {
		utils.HandleError(w, r, err)
		return
	}
	created, err := ch.service().CreateRecord(r.Context(), name, payload)
	if err != nil {
		utils.HandleError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusCreated, created)
}

// UpdateRecord handles replacement of a record in a collection
func (ch *CollectionsHandler) UpdateRecord(w http.ResponseWriter, r *http.Request) {

	name := r.PathValue("name")
	var payload map[string]interface{}
	if err := utils.DecodeJSONBody(r, name, &payload); err != nil {
		utils.HandleError(w, r, err)
		return
	}
	updated, err := ch.service().UpdateRecord(r.Context(), name, r.PathValue("id"), payload)
	if err != nil {
		utils.HandleError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, updated)
}

func parseViewQuery(r *http.Request) (model.ViewQuery, error) {

	limit, err := pagination.ParseLimit(r)
	if err != nil {
		return model.ViewQuery{}, badRequest("The limit parameter must be a positive integer.")
	}
	offset, err := pagination.ParseOffset(r)
	if err != nil {
		return model.ViewQuery{}, badRequest("The offset parameter must be a non-negative integer.")
	}

	var filters []string
	for _, filter := range r.URL.Query()[constants.Filter] {
		if strings.TrimSpace(filter) != "" {
			filters = append(filters, filter)
		}
	}
	return model.ViewQuery{
		Filters: filters,
		Search:  r.URL.Query().Get(constants.SearchQuery),
		Limit:   limit,
		Offset:  offset,
	}, nil
}

func badRequest(description string) error {
	return errors2.NewClientError(errors2.ErrorMessage{
		Code:        errors2.BAD_REQUEST.Code,
		Message:     errors2.BAD_REQUEST.Message,
		Description: description,
	}, http.StatusBadRequest)
}
