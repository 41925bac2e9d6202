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
	"strings"

	recordModel "github.com/wso2/ride-admin-data-service/internal/records/model"
	"github.com/wso2/ride-admin-data-service/internal/view/model"
)

// Filter returns the records of collection matching every criterion, in input order.
// The input collection is not modified.
func Filter(collection recordModel.Collection, criteria model.Criteria) recordModel.Collection {
	result := make(recordModel.Collection, 0, len(collection))
	for _, record := range collection {
		if Matches(record, criteria) {
			result = append(result, record)
		}
	}
	return result
}

// Matches reports whether record satisfies every criterion.
func Matches(record recordModel.Record, criteria model.Criteria) bool {
	if criteria.Category != "" && !matchesCategory(record, criteria.Category) {
		return false
	}
	for _, eq := range criteria.Equals {
		if !FieldEquals(record, eq.Field, eq.Value) {
			return false
		}
	}
	for _, in := range criteria.In {
		if !matchesSet(record, in) {
			return false
		}
	}
	for _, co := range criteria.Contains {
		if !containsFold(record.GetString(co.Field), co.Value) {
			return false
		}
	}
	if criteria.Text != nil && criteria.Text.Query != "" && !matchesText(record, *criteria.Text) {
		return false
	}
	return true
}

func matchesCategory(record recordModel.Record, category string) bool {
	return CanonicalCategory(record) == strings.ToLower(strings.TrimSpace(category))
}

func matchesSet(record recordModel.Record, set model.FieldSet) bool {
	for _, candidate := range set.Values {
		if FieldEquals(record, set.Field, candidate) {
			return true
		}
	}
	return false
}

func matchesText(record recordModel.Record, text model.TextMatch) bool {
	if len(text.Fields) == 0 {
		for _, value := range record.Fields {
			if s, ok := value.(string); ok && containsFold(s, text.Query) {
				return true
			}
		}
		return false
	}
	for _, field := range text.Fields {
		if containsFold(record.GetString(field), text.Query) {
			return true
		}
	}
	return false
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}
