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
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/wso2/ride-admin-data-service/internal/system/log"
)

// Pinger is a dependency whose reachability decides readiness.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthCheckServiceInterface defines the service interface.
type HealthCheckServiceInterface interface {
	CheckReadiness(ctx context.Context) error
}

// HealthCheckService is the default implementation.
type HealthCheckService struct {
	fixtureStore Pinger
}

var (
	fixtureStore   Pinger
	fixtureStoreMu sync.RWMutex
)

// SetFixtureStore registers the fixture store checked by readiness probes.
func SetFixtureStore(store Pinger) {
	fixtureStoreMu.Lock()
	defer fixtureStoreMu.Unlock()
	fixtureStore = store
}

// GetHealthCheckService returns a new instance.
func GetHealthCheckService() HealthCheckServiceInterface {
	fixtureStoreMu.RLock()
	defer fixtureStoreMu.RUnlock()
	return &HealthCheckService{fixtureStore: fixtureStore}
}

// CheckReadiness reports whether the fixture store can serve fallback data.
func (h HealthCheckService) CheckReadiness(ctx context.Context) error {
	logger := log.GetLogger()
	if logger == nil {
		return errors.New("logger not initialized")
	}

	if h.fixtureStore == nil {
		return errors.New("fixture store not initialized")
	}
	if err := h.fixtureStore.Ping(ctx); err != nil {
		return fmt.Errorf("fixture store connectivity check failed: %v", err)
	}
	return nil
}
