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
	"net/http"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	collectionsModel "github.com/wso2/ride-admin-data-service/internal/collections/model"
	fetchModel "github.com/wso2/ride-admin-data-service/internal/fetch/model"
	recordModel "github.com/wso2/ride-admin-data-service/internal/records/model"
	"github.com/wso2/ride-admin-data-service/internal/system/config"
	"github.com/wso2/ride-admin-data-service/internal/system/constants"
	errors2 "github.com/wso2/ride-admin-data-service/internal/system/errors"
	"github.com/wso2/ride-admin-data-service/internal/system/log"
	"go.uber.org/goleak"
)

type stubLoader struct {
	collections map[string]collectionsModel.LoadedCollection
	failOn      string
	calls       atomic.Int32
}

func (l *stubLoader) Load(ctx context.Context, name string) (collectionsModel.LoadedCollection, error) {
	l.calls.Add(1)
	if name == l.failOn {
		return collectionsModel.LoadedCollection{}, errors2.NewClientError(errors2.UN_AUTHORIZED, http.StatusUnauthorized)
	}
	if err := ctx.Err(); err != nil {
		return collectionsModel.LoadedCollection{}, err
	}
	return l.collections[name], nil
}

func loaded(source fetchModel.Source, records ...map[string]interface{}) collectionsModel.LoadedCollection {
	return collectionsModel.LoadedCollection{Source: source, Records: recordModel.FromMaps(records)}
}

var dashboardConfig = config.DashboardConfig{Users: "users", Drivers: "drivers", Rides: "rides", Bookings: "bookings"}

func newStubLoader(driversSource fetchModel.Source) *stubLoader {
	drivers := loaded(driversSource,
		map[string]interface{}{"id": 1, "is_active": true},
		map[string]interface{}{"id": 2, "is_active": "false"},
	)
	drivers.Records = append(drivers.Records, recordModel.NewSyntheticRecord(map[string]interface{}{"id": -3}))
	return &stubLoader{collections: map[string]collectionsModel.LoadedCollection{
		"users": loaded(fetchModel.SourcePrimary,
			map[string]interface{}{"id": 1, "user_type": "driver"},
			map[string]interface{}{"id": 3, "user_type": "passenger", "role": "driver"},
			map[string]interface{}{"id": 4, "user_type": "passenger"},
			map[string]interface{}{"id": 5},
		),
		"drivers": drivers,
		"rides": loaded(fetchModel.SourcePrimary,
			map[string]interface{}{"id": 1, "status": "completed"},
			map[string]interface{}{"id": 2, "status": "Ongoing"},
			map[string]interface{}{"id": 3, "status": "ongoing"},
		),
		"bookings": loaded(fetchModel.SourcePrimary,
			map[string]interface{}{"id": 1, "status": "completed", "amount": 12.5},
			map[string]interface{}{"id": 2, "status": "COMPLETED", "amount": "7.5"},
			map[string]interface{}{"id": 3, "status": "cancelled", "amount": 100},
		),
	}}
}

func TestGetSummary(t *testing.T) {
	defer goleak.VerifyNone(t)
	_ = log.Init("DEBUG")
	loader := newStubLoader(fetchModel.SourcePrimary)

	summary, err := NewDashboardService(loader, dashboardConfig).GetSummary(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int32(4), loader.calls.Load())
	assert.Equal(t, 4, summary.TotalUsers)
	assert.Equal(t, map[string]int{"driver": 2, "passenger": 1, "unknown": 1}, summary.UsersByCategory)
	assert.Equal(t, 3, summary.TotalDrivers)
	assert.Equal(t, 1, summary.SyntheticDrivers)
	assert.Equal(t, 1, summary.ActiveDrivers)
	assert.Equal(t, map[string]int{"completed": 1, "ongoing": 2}, summary.RidesByStatus)
	assert.Equal(t, 3, summary.TotalBookings)
	assert.InDelta(t, 20.0, summary.Revenue, 0.0001)
	assert.False(t, summary.Degraded)
	assert.Empty(t, summary.Notice)
}

func TestGetSummary_DegradedWhenAnySourceIsNotPrimary(t *testing.T) {
	defer goleak.VerifyNone(t)
	_ = log.Init("DEBUG")

	summary, err := NewDashboardService(newStubLoader(fetchModel.SourceFixture), dashboardConfig).GetSummary(context.Background())

	require.NoError(t, err)
	assert.True(t, summary.Degraded)
	assert.Equal(t, constants.FallbackNotice, summary.Notice)
	assert.Equal(t, fetchModel.SourceFixture, summary.Sources["drivers"])
}

func TestGetSummary_SurfacedErrorStopsTheSummary(t *testing.T) {
	defer goleak.VerifyNone(t)
	_ = log.Init("DEBUG")
	loader := newStubLoader(fetchModel.SourcePrimary)
	loader.failOn = "rides"

	_, err := NewDashboardService(loader, dashboardConfig).GetSummary(context.Background())

	var clientErr *errors2.ClientError
	require.ErrorAs(t, err, &clientErr)
	assert.Equal(t, http.StatusUnauthorized, clientErr.StatusCode)
}

func TestGetSummary_SkipsUnconfiguredCollections(t *testing.T) {
	defer goleak.VerifyNone(t)
	_ = log.Init("DEBUG")
	loader := newStubLoader(fetchModel.SourcePrimary)

	summary, err := NewDashboardService(loader, config.DashboardConfig{Users: "users"}).GetSummary(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int32(1), loader.calls.Load())
	assert.Equal(t, map[string]fetchModel.Source{"users": fetchModel.SourcePrimary}, summary.Sources)
	assert.False(t, summary.Degraded)
	assert.Equal(t, 0, summary.TotalRides)
}

func TestGetSummary_DegradedWhenReconciledAgainstFixture(t *testing.T) {
	defer goleak.VerifyNone(t)
	_ = log.Init("DEBUG")
	loader := newStubLoader(fetchModel.SourcePrimary)
	drivers := loader.collections["drivers"]
	drivers.SecondarySource = fetchModel.SourceFixture
	loader.collections["drivers"] = drivers

	summary, err := NewDashboardService(loader, dashboardConfig).GetSummary(context.Background())

	require.NoError(t, err)
	assert.True(t, summary.Degraded)
	assert.Equal(t, constants.FallbackNotice, summary.Notice)
	assert.Equal(t, fetchModel.SourceFixture, summary.Sources["drivers"])
}
