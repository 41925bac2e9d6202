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

package schedulers

import (
	"context"
	"time"

	"github.com/wso2/ride-admin-data-service/internal/system/log"
)

// FixtureRefresher reloads one fixture into the fixture cache.
type FixtureRefresher interface {
	Refresh(ctx context.Context, name string) error
}

// StartFixtureRefreshScheduler reloads the named fixtures once at startup and then on every tick,
// until ctx is cancelled.
func StartFixtureRefreshScheduler(ctx context.Context, refresher FixtureRefresher, names []string,
	interval time.Duration) {

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	refreshFixtures(ctx, refresher, names)

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			refreshFixtures(ctx, refresher, names)
		}
	}
}

// refreshFixtures keeps the previous cached copy of any fixture that fails to reload.
func refreshFixtures(ctx context.Context, refresher FixtureRefresher, names []string) {
	logger := log.GetLogger()

	refreshed := 0
	for _, name := range names {
		if ctx.Err() != nil {
			return
		}
		if err := refresher.Refresh(ctx, name); err != nil {
			logger.Warn("Failed to refresh fixture", log.String("fixture", name), log.Error(err))
			continue
		}
		refreshed++
	}
	logger.Debug("Fixture cache refreshed", log.Int("refreshed", refreshed), log.Int("total", len(names)))
}
