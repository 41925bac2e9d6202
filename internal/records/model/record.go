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
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"github.com/wso2/ride-admin-data-service/internal/system/constants"
)

// Origin tells whether a record was returned by its authoritative source or constructed to fill a gap.
type Origin string

const (
	OriginReal      Origin = "real"
	OriginSynthetic Origin = "synthetic"
)

// Record is one domain entity (hub, user, driver, ride, ...) as a keyed field mapping.
type Record struct {
	Fields map[string]interface{}
	Origin Origin
}

// Collection is an ordered sequence of records.
type Collection []Record

// NewRecord wraps fields as a real record.
func NewRecord(fields map[string]interface{}) Record {
	if fields == nil {
		fields = map[string]interface{}{}
	}
	return Record{Fields: fields, Origin: OriginReal}
}

// NewSyntheticRecord wraps fields as a synthetic record.
func NewSyntheticRecord(fields map[string]interface{}) Record {
	r := NewRecord(fields)
	r.Origin = OriginSynthetic
	return r
}

// FromMaps builds a collection of real records.
func FromMaps(items []map[string]interface{}) Collection {
	collection := make(Collection, 0, len(items))
	for _, item := range items {
		collection = append(collection, NewRecord(item))
	}
	return collection
}

func (r Record) IsSynthetic() bool {
	return r.Origin == OriginSynthetic
}

// Get returns the raw value of a field.
func (r Record) Get(field string) (interface{}, bool) {
	value, ok := r.Fields[field]
	return value, ok
}

// GetString returns the field rendered as a string, or "" if it is absent or null.
func (r Record) GetString(field string) string {
	value, ok := r.Fields[field]
	if !ok {
		return ""
	}
	return Stringify(value)
}

// ID returns the integer identifier stored under field.
func (r Record) ID(field string) (int64, bool) {
	value, ok := r.Fields[field]
	if !ok {
		return 0, false
	}
	return ToInt64(value)
}

// Clone returns a shallow copy; the field map is copied, nested values are shared.
func (r Record) Clone() Record {
	fields := make(map[string]interface{}, len(r.Fields))
	for k, v := range r.Fields {
		fields[k] = v
	}
	return Record{Fields: fields, Origin: r.Origin}
}

// With returns a copy of the record with field set to value.
func (r Record) With(field string, value interface{}) Record {
	clone := r.Clone()
	clone.Fields[field] = value
	return clone
}

// Clone copies the collection and each record's field map.
func (c Collection) Clone() Collection {
	clone := make(Collection, len(c))
	for i, record := range c {
		clone[i] = record.Clone()
	}
	return clone
}

// Maps returns the field maps of the collection.
func (c Collection) Maps() []map[string]interface{} {
	maps := make([]map[string]interface{}, len(c))
	for i, record := range c {
		maps[i] = record.Fields
	}
	return maps
}

// MarshalJSON renders the fields flat and adds "synthetic": true for synthetic records.
func (r Record) MarshalJSON() ([]byte, error) {
	if !r.IsSynthetic() {
		if r.Fields == nil {
			return []byte("{}"), nil
		}
		return json.Marshal(r.Fields)
	}
	out := make(map[string]interface{}, len(r.Fields)+1)
	for k, v := range r.Fields {
		out[k] = v
	}
	out[constants.SyntheticField] = true
	return json.Marshal(out)
}

// UnmarshalJSON accepts the flat form produced by MarshalJSON.
func (r *Record) UnmarshalJSON(data []byte) error {
	var fields map[string]interface{}
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}
	r.Origin = OriginReal
	if synthetic, ok := fields[constants.SyntheticField].(bool); ok {
		delete(fields, constants.SyntheticField)
		if synthetic {
			r.Origin = OriginSynthetic
		}
	}
	if fields == nil {
		fields = map[string]interface{}{}
	}
	r.Fields = fields
	return nil
}

// ToInt64 converts identifier-like values decoded from JSON, YAML or BSON.
// Fractional numbers and non-numeric strings are rejected.
func ToInt64(value interface{}) (int64, bool) {
	switch v := value.(type) {
	case int:
		return int64(v), true
	case int32:
		return int64(v), true
	case int64:
		return v, true
	case uint:
		if uint64(v) > math.MaxInt64 {
			return 0, false
		}
		return int64(v), true
	case uint32:
		return int64(v), true
	case uint64:
		if v > math.MaxInt64 {
			return 0, false
		}
		return int64(v), true
	case float32:
		return floatToInt64(float64(v))
	case float64:
		return floatToInt64(v)
	case json.Number:
		i, err := v.Int64()
		if err != nil {
			return 0, false
		}
		return i, true
	case string:
		i, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
		if err != nil {
			return 0, false
		}
		return i, true
	default:
		return 0, false
	}
}

func floatToInt64(f float64) (int64, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, false
	}
	// float64(math.MaxInt64) rounds up to 2^63, which is already out of range.
	if f >= math.MaxInt64 || f < math.MinInt64 {
		return 0, false
	}
	return int64(f), true
}

// ToFloat64 converts numeric values decoded from JSON, YAML or BSON.
func ToFloat64(value interface{}) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case json.Number:
		f, err := v.Float64()
		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		return f, err == nil
	default:
		return 0, false
	}
}

// ToBool interprets boolean-like values such as true, "true", 1.
func ToBool(value interface{}) bool {
	switch v := value.(type) {
	case bool:
		return v
	case string:
		b, err := strconv.ParseBool(strings.TrimSpace(v))
		return err == nil && b
	default:
		if f, ok := ToFloat64(v); ok {
			return f != 0
		}
		return false
	}
}

// Stringify renders scalar values the way they appear in query strings (1, not 1.000000).
func Stringify(value interface{}) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32)
	case int:
		return strconv.Itoa(v)
	case int32:
		return strconv.FormatInt(int64(v), 10)
	case int64:
		return strconv.FormatInt(v, 10)
	case json.Number:
		return v.String()
	default:
		b, err := json.Marshal(v)
		if err != nil {
			return ""
		}
		return string(b)
	}
}
