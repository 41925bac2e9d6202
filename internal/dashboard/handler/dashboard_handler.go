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

	"github.com/wso2/ride-admin-data-service/internal/dashboard/provider"
	"github.com/wso2/ride-admin-data-service/internal/system/utils"
)

type DashboardHandler struct {
	provider provider.DashboardProviderInterface
}

func NewDashboardHandler(dashboardProvider provider.DashboardProviderInterface) *DashboardHandler {

	return &DashboardHandler{
		provider: dashboardProvider,
	}
}

// GetSummary handles dashboard summary requests
func (dh *DashboardHandler) GetSummary(w http.ResponseWriter, r *http.Request) {

	summary, err := dh.provider.GetDashboardService().GetSummary(r.Context())
	if err != nil {
		utils.HandleError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, summary)
}
