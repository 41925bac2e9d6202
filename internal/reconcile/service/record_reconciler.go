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

	recordModel "github.com/wso2/ride-admin-data-service/internal/records/model"
	"github.com/wso2/ride-admin-data-service/internal/system/constants"
	errors2 "github.com/wso2/ride-admin-data-service/internal/system/errors"
	"github.com/wso2/ride-admin-data-service/internal/system/log"
)

// Predicate tells whether a secondary-only record implies a missing primary-side record.
type Predicate func(record recordModel.Record) bool

// Report summarises one reconciliation.
type Report struct {
	Real        int `json:"real"`
	Synthesized int `json:"synthesized"`
	Overlapping int `json:"overlapping"`
	Ineligible  int `json:"ineligible"`
	Skipped     int `json:"skipped"`
}

// Reconcile produces the deduplicated union of primary and the synthetic records implied by secondary.
func Reconcile(primary, secondary recordModel.Collection, idField string, eligible Predicate) recordModel.Collection {
	result, _ := ReconcileWithReport(primary, secondary, idField, eligible)
	return result
}

// ReconcileWithReport is Reconcile plus counters describing what happened to each input record.
//
// Real records keep primary's relative order; the first occurrence of an id wins. A secondary record
// whose id is absent from primary and that satisfies eligible becomes one synthetic record with the
// negated id, appended after the real records. Records without a usable id are dropped.
func ReconcileWithReport(primary, secondary recordModel.Collection, idField string,
	eligible Predicate) (recordModel.Collection, Report) {

	logger := log.GetLogger()
	var report Report
	if idField == "" {
		idField = constants.IDField
	}

	seen := make(map[int64]bool, len(primary)+len(secondary))
	result := make(recordModel.Collection, 0, len(primary))

	for _, record := range primary {
		id, ok := record.ID(idField)
		if !ok {
			report.Skipped++
			logSkipped(logger, "primary", idField, record)
			continue
		}
		if seen[id] {
			report.Overlapping++
			continue
		}
		seen[id] = true
		result = append(result, record)
		report.Real++
	}
	primaryIDs := make(map[int64]bool, len(seen))
	for id := range seen {
		primaryIDs[id] = true
	}

	var synthetic recordModel.Collection
	synthesizedFrom := make(map[int64]bool)
	for _, record := range secondary {
		id, ok := record.ID(idField)
		if !ok {
			report.Skipped++
			logSkipped(logger, "secondary", idField, record)
			continue
		}
		if primaryIDs[id] || synthesizedFrom[id] {
			report.Overlapping++
			continue
		}
		if eligible != nil && !eligible(record) {
			report.Ineligible++
			continue
		}
		sentinel, ok := SentinelID(id)
		if !ok || seen[sentinel] {
			report.Skipped++
			logger.Warn(fmt.Sprintf("Cannot synthesize a record for %s=%d without an identifier collision", idField, id),
				log.String("code", errors2.RECONCILIATION_SKIPPED.Code))
			continue
		}
		seen[sentinel] = true
		synthesizedFrom[id] = true

		fields := record.Clone().Fields
		fields[idField] = sentinel
		fields[constants.SourceIDField] = id
		synthetic = append(synthetic, recordModel.NewSyntheticRecord(fields))
		report.Synthesized++
	}

	result = append(result, synthetic...)
	if report.Synthesized > 0 || report.Skipped > 0 {
		logger.Debug("Reconciled collections", log.Any("report", report))
	}
	return result, report
}

// SentinelID is the identifier given to a synthetic record built from a secondary record with id.
// Only positive ids have a sentinel, so sentinels never look like real upstream ids.
func SentinelID(id int64) (int64, bool) {
	if id <= 0 {
		return 0, false
	}
	return -id, true
}

// FieldEquals builds a predicate matching records whose field renders as value.
func FieldEquals(field, value string) Predicate {
	return func(record recordModel.Record) bool {
		return record.GetString(field) == value
	}
}

func logSkipped(logger *log.Logger, side, idField string, record recordModel.Record) {
	logger.Warn(fmt.Sprintf("Dropping %s record without a usable %s", side, idField),
		log.String("code", errors2.RECONCILIATION_SKIPPED.Code),
		log.Any(idField, record.Fields[idField]))
}
