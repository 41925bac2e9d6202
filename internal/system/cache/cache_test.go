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

package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCache_SetGet(t *testing.T) {
	c := NewCache(time.Minute)
	c.Set("hubs", []string{"a"})

	value, ok := c.Get("hubs")
	assert.True(t, ok)
	assert.Equal(t, []string{"a"}, value)

	c.Delete("hubs")
	_, ok = c.Get("hubs")
	assert.False(t, ok)
}

func TestCache_Expiry(t *testing.T) {
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	c := NewCache(time.Second)
	c.now = func() time.Time { return now }

	c.Set("rides", 1)
	now = now.Add(2 * time.Second)

	_, ok := c.Get("rides")
	assert.False(t, ok)
}

func TestCache_DisabledWithZeroTTL(t *testing.T) {
	c := NewCache(0)
	c.Set("users", 1)
	_, ok := c.Get("users")
	assert.False(t, ok)
}
