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
	"fmt"
	"time"

	"github.com/wso2/ride-admin-data-service/internal/records/model"
	"github.com/wso2/ride-admin-data-service/internal/system/config"
	"github.com/wso2/ride-admin-data-service/internal/system/constants"
	"github.com/wso2/ride-admin-data-service/internal/system/database/provider"
	errors2 "github.com/wso2/ride-admin-data-service/internal/system/errors"
	"github.com/wso2/ride-admin-data-service/internal/system/log"
)

// FixtureStoreInterface serves the static fixture collections used when every live source fails.
type FixtureStoreInterface interface {
	// GetFixture returns the named fixture. An unknown name yields an empty collection.
	GetFixture(ctx context.Context, name string) (model.Collection, error)
	Ping(ctx context.Context) error
	Close() error
}

// New builds the fixture store selected by fixtures.backend and wraps it with the fixture cache.
func New(ctx context.Context, home string, cfg config.Config) (FixtureStoreInterface, error) {

	var (
		base FixtureStoreInterface
		err  error
	)
	switch cfg.Fixtures.Backend {
	case "", constants.FixtureBackendFile:
		base, err = NewFileStore(resolvePath(home, cfg.Fixtures.File))
	case constants.FixtureBackendPostgres:
		dbClient, dbErr := provider.NewDBProvider(cfg.DataSource).GetDBClient()
		if dbErr != nil {
			return nil, fixtureLoadError("fixture database unavailable", dbErr)
		}
		base = NewPostgresStore(dbClient)
	case constants.FixtureBackendMongo:
		base, err = NewMongoStore(ctx, cfg.Fixtures.Mongo)
	default:
		return nil, fixtureLoadError(fmt.Sprintf("unknown fixture backend %q", cfg.Fixtures.Backend), nil)
	}
	if err != nil {
		return nil, err
	}

	log.GetLogger().Info("Fixture store initialized",
		log.String("backend", backendName(cfg.Fixtures.Backend)),
		log.Int("cacheTTLSeconds", cfg.Fixtures.CacheTTLSeconds))
	return NewCachedStore(base, time.Duration(cfg.Fixtures.CacheTTLSeconds)*time.Second), nil
}

func backendName(backend string) string {
	if backend == "" {
		return constants.FixtureBackendFile
	}
	return backend
}

func fixtureLoadError(description string, cause error) error {
	errorMsg := errors2.ErrorMessage{
		Code:        errors2.FIXTURE_LOAD_FAILED.Code,
		Message:     errors2.FIXTURE_LOAD_FAILED.Message,
		Description: description,
	}
	if cause == nil {
		return errors2.NewServerError(errorMsg, fmt.Errorf("%s", description))
	}
	return errors2.NewServerError(errorMsg, cause)
}
