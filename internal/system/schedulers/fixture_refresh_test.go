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
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/wso2/ride-admin-data-service/internal/system/log"
	"go.uber.org/goleak"
)

type recordingRefresher struct {
	mu    sync.Mutex
	calls map[string]int
	fail  string
}

func (r *recordingRefresher) Refresh(_ context.Context, name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls[name]++
	if name == r.fail {
		return errors.New("backend unavailable")
	}
	return nil
}

func (r *recordingRefresher) count(name string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.calls[name]
}

func TestStartFixtureRefreshScheduler_RefreshesUntilCancelled(t *testing.T) {
	defer goleak.VerifyNone(t)
	_ = log.Init("DEBUG")

	refresher := &recordingRefresher{calls: map[string]int{}, fail: "users"}
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		defer close(done)
		StartFixtureRefreshScheduler(ctx, refresher, []string{"users", "hubs"}, 10*time.Millisecond)
	}()

	assert.Eventually(t, func() bool {
		return refresher.count("hubs") >= 2
	}, time.Second, 5*time.Millisecond)
	cancel()
	<-done

	// A failing fixture does not stop the others from refreshing.
	assert.GreaterOrEqual(t, refresher.count("users"), 2)
}

func TestRefreshFixtures_StopsWhenContextIsDone(t *testing.T) {
	_ = log.Init("DEBUG")

	refresher := &recordingRefresher{calls: map[string]int{}}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	refreshFixtures(ctx, refresher, []string{"hubs", "destinations"})

	assert.Zero(t, refresher.count("hubs"))
	assert.Zero(t, refresher.count("destinations"))
}
