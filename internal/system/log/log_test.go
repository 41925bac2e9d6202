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

package log

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetLogger_DefaultsWhenNotInitialized(t *testing.T) {
	loggerMu.Lock()
	logger = nil
	loggerMu.Unlock()

	first := GetLogger()
	require.NotNil(t, first)
	assert.Same(t, first, GetLogger())
}

func TestInit_RejectsUnknownLevel(t *testing.T) {
	assert.Error(t, Init("LOUD"))
	assert.NoError(t, Init("debug"))
}

func TestInitAndGetLogger_Concurrently(t *testing.T) {
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_ = Init("DEBUG")
		}()
		go func() {
			defer wg.Done()
			GetLogger().Debug("concurrent access", String("component", "test"))
		}()
	}
	wg.Wait()
	assert.NotNil(t, GetLogger())
}
