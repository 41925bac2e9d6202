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
	"time"

	recordModel "github.com/wso2/ride-admin-data-service/internal/records/model"
)

// Source tags which attempt produced a resolved collection.
type Source string

const (
	SourcePrimary  Source = "primary"
	SourceFallback Source = "fallback"
	SourceFixture  Source = "fixture"
)

// IsLive reports whether the collection came from the primary endpoint.
func (s Source) IsLive() bool {
	return s == SourcePrimary
}

const OutcomeSucceeded = "succeeded"

// Attempt is the diagnostic record of one descriptor attempt.
type Attempt struct {
	Path       string        `json:"path"`
	Outcome    string        `json:"outcome"`
	StatusCode int           `json:"status_code,omitempty"`
	Duration   time.Duration `json:"duration"`
}

// Resolution is a resolved collection with its source tag and the attempts that led to it.
type Resolution struct {
	Source   Source                 `json:"source"`
	Records  recordModel.Collection `json:"records"`
	Attempts []Attempt              `json:"attempts"`
}

var sourceRank = map[Source]int{SourcePrimary: 0, SourceFallback: 1, SourceFixture: 2}

// CombineSources returns the least live of sources, for views built from several collections.
func CombineSources(sources ...Source) Source {
	combined := SourcePrimary
	for _, source := range sources {
		if sourceRank[source] > sourceRank[combined] {
			combined = source
		}
	}
	return combined
}
