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

package store

import (
	"context"
	"time"

	"github.com/wso2/ride-admin-data-service/internal/records/model"
	"github.com/wso2/ride-admin-data-service/internal/system/cache"
)

// CachedStore keeps recently served fixtures in memory.
type CachedStore struct {
	base  FixtureStoreInterface
	cache *cache.Cache
}

func NewCachedStore(base FixtureStoreInterface, ttl time.Duration) *CachedStore {
	return &CachedStore{base: base, cache: cache.NewCache(ttl)}
}

// GetFixture returns a copy of the cached fixture so callers cannot alter later answers.
func (s *CachedStore) GetFixture(ctx context.Context, name string) (model.Collection, error) {

	if cached, found := s.cache.Get(name); found {
		return cached.(model.Collection).Clone(), nil
	}
	collection, err := s.base.GetFixture(ctx, name)
	if err != nil {
		return nil, err
	}
	s.cache.Set(name, collection.Clone())
	return collection, nil
}

// Refresh reloads a fixture from the backend and replaces the cached copy.
func (s *CachedStore) Refresh(ctx context.Context, name string) error {
	collection, err := s.base.GetFixture(ctx, name)
	if err != nil {
		return err
	}
	s.cache.Set(name, collection.Clone())
	return nil
}

func (s *CachedStore) Ping(ctx context.Context) error {
	return s.base.Ping(ctx)
}

func (s *CachedStore) Close() error {
	s.cache.Clear()
	return s.base.Close()
}
