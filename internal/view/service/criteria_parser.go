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
	"fmt"
	"strings"

	"github.com/wso2/ride-admin-data-service/internal/view/model"
)

const (
	operatorEquals   = "eq"
	operatorIn       = "in"
	operatorContains = "co"
)

// ParseCriteria builds criteria from filter expressions of the form "field op value", where op is
// eq, in (comma separated values) or co. Each expression may join several clauses with " and ".
// query is a free text search over searchFields.
func ParseCriteria(filters []string, query string, searchFields []string) (model.Criteria, error) {
	var criteria model.Criteria
	for _, filter := range filters {
		for _, clause := range strings.Split(filter, " and ") {
			clause = strings.TrimSpace(clause)
			if clause == "" {
				continue
			}
			if err := addClause(&criteria, clause); err != nil {
				return model.Criteria{}, err
			}
		}
	}
	if q := strings.TrimSpace(query); q != "" {
		criteria.Text = &model.TextMatch{Query: q, Fields: searchFields}
	}
	return criteria, nil
}

func addClause(criteria *model.Criteria, clause string) error {
	parts := strings.SplitN(clause, " ", 3)
	if len(parts) != 3 {
		return fmt.Errorf("filter %q must have the form 'field operator value'", clause)
	}
	field, operator, value := parts[0], strings.ToLower(parts[1]), strings.Trim(strings.TrimSpace(parts[2]), `"`)
	if field == "" || value == "" {
		return fmt.Errorf("filter %q has an empty field or value", clause)
	}

	switch operator {
	case operatorEquals:
		criteria.Equals = append(criteria.Equals, model.FieldMatch{Field: field, Value: value})
	case operatorIn:
		var values []string
		for _, v := range strings.Split(value, ",") {
			if v = strings.TrimSpace(v); v != "" {
				values = append(values, v)
			}
		}
		if len(values) == 0 {
			return fmt.Errorf("filter %q has no values", clause)
		}
		criteria.In = append(criteria.In, model.FieldSet{Field: field, Values: values})
	case operatorContains:
		criteria.Contains = append(criteria.Contains, model.FieldMatch{Field: field, Value: value})
	default:
		return fmt.Errorf("unsupported filter operator %q", operator)
	}
	return nil
}
