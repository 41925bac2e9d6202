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
	recordModel "github.com/wso2/ride-admin-data-service/internal/records/model"
	"github.com/wso2/ride-admin-data-service/internal/system/pagination"
)

// LoadedCollection is a resolved, normalised and optionally reconciled collection.
type LoadedCollection struct {
	Name            string                 `json:"name"`
	Source          fetchModel.Source      `json:"source"`
	SecondarySource fetchModel.Source      `json:"secondary_source,omitempty"`
	Records         recordModel.Collection `json:"records"`
	Attempts        []fetchModel.Attempt   `json:"attempts"`
	Synthesized     int                    `json:"synthesized,omitempty"`
}

// EffectiveSource is the least live of the collection's own source and, when reconciled, the
// source of the collection it was reconciled against.
func (c LoadedCollection) EffectiveSource() fetchModel.Source {
	if c.SecondarySource == "" {
		return c.Source
	}
	return fetchModel.CombineSources(c.Source, c.SecondarySource)
}

// ViewQuery carries the filter, search and paging parameters of a view request.
type ViewQuery struct {
	Filters []string
	Search  string
	Limit   int
	Offset  int
}

// CollectionView is the response body of a read view.
type CollectionView struct {
	Collection string                       `json:"collection"`
	Source     fetchModel.Source            `json:"source"`
	Sources    map[string]fetchModel.Source `json:"sources,omitempty"`
	Notice     string                       `json:"notice,omitempty"`
	Count      int                          `json:"count"`
	Records    recordModel.Collection       `json:"records"`
	Pagination pagination.Pagination        `json:"pagination"`
}

// CollectionSummary lists a configured collection.
type CollectionSummary struct {
	Name       string `json:"name"`
	Path       string `json:"path"`
	Fallbacks  int    `json:"fallbacks"`
	Reconciled bool   `json:"reconciled"`
}
