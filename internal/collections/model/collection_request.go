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
	"github.com/wso2/ride-admin-data-service/internal/system/config"
	"github.com/wso2/ride-admin-data-service/internal/system/constants"
)

// ReconcileRequest describes the secondary collection a view is reconciled against.
type ReconcileRequest struct {
	Secondary     []fetchModel.Descriptor `json:"secondary"`
	IDField       string                  `json:"id_field"`
	EligibleField string                  `json:"eligible_field,omitempty"`
	EligibleValue string                  `json:"eligible_value,omitempty"`
}

// CollectionRequest is the declarative definition of one admin page collection.
type CollectionRequest struct {
	Name         string                  `json:"name"`
	Primary      fetchModel.Descriptor   `json:"primary"`
	Fallbacks    []fetchModel.Descriptor `json:"fallbacks,omitempty"`
	Fixture      string                  `json:"fixture"`
	SearchFields []string                `json:"search_fields,omitempty"`
	Reconcile    *ReconcileRequest       `json:"reconcile,omitempty"`
}

// Descriptors returns the primary descriptor followed by the fallbacks, in attempt order.
func (r CollectionRequest) Descriptors() []fetchModel.Descriptor {
	descriptors := make([]fetchModel.Descriptor, 0, len(r.Fallbacks)+1)
	descriptors = append(descriptors, r.Primary)
	return append(descriptors, r.Fallbacks...)
}

// FromConfig builds a collection request from its deployment.yaml entry.
func FromConfig(cfg config.CollectionConfig) CollectionRequest {

	request := CollectionRequest{
		Name:         cfg.Name,
		Primary:      toDescriptor(cfg.Primary),
		Fixture:      cfg.Fixture,
		SearchFields: cfg.SearchFields,
	}
	if request.Fixture == "" {
		request.Fixture = cfg.Name
	}
	for _, fallback := range cfg.Fallbacks {
		request.Fallbacks = append(request.Fallbacks, toDescriptor(fallback))
	}
	if cfg.Reconcile != nil {
		reconcile := &ReconcileRequest{
			IDField:       cfg.Reconcile.IDField,
			EligibleField: cfg.Reconcile.EligibleField,
			EligibleValue: cfg.Reconcile.EligibleValue,
		}
		if reconcile.IDField == "" {
			reconcile.IDField = constants.IDField
		}
		for _, secondary := range cfg.Reconcile.Secondary {
			reconcile.Secondary = append(reconcile.Secondary, toDescriptor(secondary))
		}
		request.Reconcile = reconcile
	}
	return request
}

func toDescriptor(cfg config.DescriptorConfig) fetchModel.Descriptor {
	descriptor := fetchModel.NewDescriptor(cfg.Path, cfg.QueryParams)
	if cfg.Method != "" {
		descriptor.Method = cfg.Method
	}
	return descriptor
}
