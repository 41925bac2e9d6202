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
	"strings"
	"sync"

	collectionsModel "github.com/wso2/ride-admin-data-service/internal/collections/model"
	"github.com/wso2/ride-admin-data-service/internal/dashboard/model"
	fetchModel "github.com/wso2/ride-admin-data-service/internal/fetch/model"
	recordModel "github.com/wso2/ride-admin-data-service/internal/records/model"
	"github.com/wso2/ride-admin-data-service/internal/system/config"
	"github.com/wso2/ride-admin-data-service/internal/system/constants"
	"github.com/wso2/ride-admin-data-service/internal/system/log"
	viewService "github.com/wso2/ride-admin-data-service/internal/view/service"
	"golang.org/x/sync/errgroup"
)

// CollectionLoader loads one configured collection.
type CollectionLoader interface {
	Load(ctx context.Context, name string) (collectionsModel.LoadedCollection, error)
}

type DashboardServiceInterface interface {
	GetSummary(ctx context.Context) (model.Summary, error)
}

// DashboardService aggregates the users, drivers, rides and bookings collections.
type DashboardService struct {
	loader CollectionLoader
	config config.DashboardConfig
}

var (
	instance   DashboardServiceInterface
	instanceMu sync.RWMutex
)

func NewDashboardService(loader CollectionLoader, cfg config.DashboardConfig) *DashboardService {
	return &DashboardService{loader: loader, config: cfg}
}

// SetDashboardService registers the instance returned by GetDashboardService.
func SetDashboardService(service DashboardServiceInterface) {
	instanceMu.Lock()
	defer instanceMu.Unlock()
	instance = service
}

// GetDashboardService returns the registered dashboard service.
func GetDashboardService() DashboardServiceInterface {
	instanceMu.RLock()
	defer instanceMu.RUnlock()
	return instance
}

// GetSummary loads the four collections concurrently and aggregates them.
// Each collection is an independent request with its own fallback chain.
func (s *DashboardService) GetSummary(ctx context.Context) (model.Summary, error) {

	names := map[string]string{
		"users":    s.config.Users,
		"drivers":  s.config.Drivers,
		"rides":    s.config.Rides,
		"bookings": s.config.Bookings,
	}

	var mu sync.Mutex
	loaded := make(map[string]collectionsModel.LoadedCollection, len(names))
	group, groupCtx := errgroup.WithContext(ctx)
	for key, name := range names {
		if name == "" {
			continue
		}
		group.Go(func() error {
			collection, err := s.loader.Load(groupCtx, name)
			if err != nil {
				return err
			}
			mu.Lock()
			loaded[key] = collection
			mu.Unlock()
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		log.GetLogger().Info("Dashboard summary failed", log.Error(err))
		return model.Summary{}, err
	}

	summary := Summarize(loaded["users"], loaded["drivers"], loaded["rides"], loaded["bookings"])
	for key := range names {
		if _, ok := loaded[key]; !ok {
			delete(summary.Sources, key)
		}
	}
	if summary.Degraded {
		summary.Notice = constants.FallbackNotice
	}
	return summary, nil
}

// Summarize computes the dashboard aggregates. It does no I/O.
// The summary is degraded when any loaded collection, or the collection it was reconciled against,
// did not come from its primary endpoint.
func Summarize(users, drivers, rides, bookings collectionsModel.LoadedCollection) model.Summary {

	summary := model.Summary{
		TotalUsers:       len(users.Records),
		UsersByCategory:  map[string]int{},
		TotalDrivers:     len(drivers.Records),
		TotalRides:       len(rides.Records),
		RidesByStatus:    countBy(rides.Records, constants.StatusField),
		TotalBookings:    len(bookings.Records),
		BookingsByStatus: countBy(bookings.Records, constants.StatusField),
		Sources: map[string]fetchModel.Source{
			"users":    users.EffectiveSource(),
			"drivers":  drivers.EffectiveSource(),
			"rides":    rides.EffectiveSource(),
			"bookings": bookings.EffectiveSource(),
		},
	}

	for _, user := range users.Records {
		category := viewService.CanonicalCategory(user)
		if category == "" {
			category = "unknown"
		}
		summary.UsersByCategory[category]++
	}
	for _, driver := range drivers.Records {
		if driver.IsSynthetic() {
			summary.SyntheticDrivers++
		}
		if value, ok := driver.Get(constants.IsActiveField); ok && recordModel.ToBool(value) {
			summary.ActiveDrivers++
		}
	}
	for _, booking := range bookings.Records {
		if !strings.EqualFold(booking.GetString(constants.StatusField), constants.BookingStatusCompleted) {
			continue
		}
		if amount, ok := recordModel.ToFloat64(booking.Fields[constants.AmountField]); ok {
			summary.Revenue += amount
		}
	}
	for _, source := range summary.Sources {
		if source != "" && !source.IsLive() {
			summary.Degraded = true
		}
	}
	return summary
}

func countBy(collection recordModel.Collection, field string) map[string]int {
	counts := map[string]int{}
	for _, record := range collection {
		value := strings.ToLower(record.GetString(field))
		if value == "" {
			value = "unknown"
		}
		counts[value]++
	}
	return counts
}
