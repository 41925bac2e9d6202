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

// FieldMatch is an exact (Equals) or case-insensitive substring (Contains) match on one field.
type FieldMatch struct {
	Field string `json:"field"`
	Value string `json:"value"`
}

// FieldSet matches records whose field is one of Values.
type FieldSet struct {
	Field  string   `json:"field"`
	Values []string `json:"values"`
}

// TextMatch is a case-insensitive substring search across several fields; any field may match.
// With no Fields, every string-valued field is searched.
type TextMatch struct {
	Query  string   `json:"query"`
	Fields []string `json:"fields,omitempty"`
}

// Criteria are combined with logical AND.
type Criteria struct {
	Equals   []FieldMatch `json:"equals,omitempty"`
	In       []FieldSet   `json:"in,omitempty"`
	Contains []FieldMatch `json:"contains,omitempty"`
	Text     *TextMatch   `json:"text,omitempty"`
	Category string       `json:"category,omitempty"`
}

// IsEmpty reports whether the criteria match everything.
func (c Criteria) IsEmpty() bool {
	return len(c.Equals) == 0 && len(c.In) == 0 && len(c.Contains) == 0 &&
		(c.Text == nil || c.Text.Query == "") && c.Category == ""
}
