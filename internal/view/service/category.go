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
	"github.com/wso2/ride-admin-data-service/internal/system/constants"
)

// CanonicalCategory maps the two user category fields to one value.
// user_type and role are meant to be synonyms but upstream data does not always keep them in sync,
// so a record is a driver when either field says so. Otherwise user_type wins over role.
func CanonicalCategory(record recordModel.Record) string {
	if value, ok := record.Fields[constants.CanonicalCategoryField].(string); ok && value != "" {
		return value
	}
	return deriveCategory(record)
}

func deriveCategory(record recordModel.Record) string {
	userType := strings.ToLower(strings.TrimSpace(record.GetString(constants.UserTypeField)))
	role := strings.ToLower(strings.TrimSpace(record.GetString(constants.RoleField)))
	switch {
	case userType == constants.CategoryDriver || role == constants.CategoryDriver:
		return constants.CategoryDriver
	case userType != "":
		return userType
	default:
		return role
	}
}

// NormalizeCategories returns a copy of collection where every record that carries user_type or
// role also carries canonical_category. Records without either field are passed through unchanged.
func NormalizeCategories(collection recordModel.Collection) recordModel.Collection {
	normalized := make(recordModel.Collection, len(collection))
	for i, record := range collection {
		category := deriveCategory(record)
		if category == "" {
			normalized[i] = record
			continue
		}
		normalized[i] = record.With(constants.CanonicalCategoryField, category)
	}
	return normalized
}

// CategoryIs is a reconcile predicate matching records of the given canonical category.
func CategoryIs(category string) func(recordModel.Record) bool {
	category = strings.ToLower(category)
	return func(record recordModel.Record) bool {
		return CanonicalCategory(record) == category
	}
}

// IsCategoryField reports whether field holds a user category.
func IsCategoryField(field string) bool {
	switch field {
	case constants.UserTypeField, constants.RoleField, constants.CanonicalCategoryField:
		return true
	}
	return false
}

// FieldEquals reports whether record's field equals value exactly.
// A driver value on user_type or role matches when either field says driver, and
// canonical_category compares the canonical value. Every other value is compared against the
// named field as written.
func FieldEquals(record recordModel.Record, field, value string) bool {
	switch {
	case field == constants.CanonicalCategoryField:
		return CanonicalCategory(record) == strings.ToLower(strings.TrimSpace(value))
	case IsCategoryField(field) && strings.EqualFold(strings.TrimSpace(value), constants.CategoryDriver):
		return CanonicalCategory(record) == constants.CategoryDriver
	}
	actual, ok := record.Get(field)
	return ok && recordModel.Stringify(actual) == value
}
