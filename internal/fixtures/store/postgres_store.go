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
	"encoding/json"
	"fmt"

	"github.com/pkg/errors"
	"github.com/wso2/ride-admin-data-service/internal/records/model"
	"github.com/wso2/ride-admin-data-service/internal/system/database/client"
	"github.com/wso2/ride-admin-data-service/internal/system/database/scripts"
)

const dbType = "postgres"

// PostgresStore serves fixtures from the collection_fixtures table.
type PostgresStore struct {
	dbClient client.DBClientInterface
}

func NewPostgresStore(dbClient client.DBClientInterface) *PostgresStore {
	return &PostgresStore{dbClient: dbClient}
}

func (s *PostgresStore) GetFixture(ctx context.Context, name string) (model.Collection, error) {

	rows, err := s.dbClient.ExecuteQuery(ctx, scripts.GetFixtureRecords[dbType], name)
	if err != nil {
		return nil, fixtureLoadError("failed to query fixture "+name, err)
	}

	collection := make(model.Collection, 0, len(rows))
	for _, row := range rows {
		fields, err := decodeRecordColumn(row["record"])
		if err != nil {
			return nil, fixtureLoadError("failed to decode fixture "+name, err)
		}
		collection = append(collection, model.NewRecord(fields))
	}
	return collection, nil
}

// SaveFixture replaces the stored records of a fixture, keeping their order.
func (s *PostgresStore) SaveFixture(ctx context.Context, name string, collection model.Collection) error {

	if _, err := s.dbClient.Execute(ctx, scripts.DeleteFixtureCollection[dbType], name); err != nil {
		return errors.Wrapf(err, "failed to clear fixture %s", name)
	}
	for position, record := range collection {
		payload, err := json.Marshal(record.Fields)
		if err != nil {
			return errors.Wrapf(err, "failed to encode record %d of fixture %s", position, name)
		}
		if _, err := s.dbClient.Execute(ctx, scripts.InsertFixtureRecord[dbType], name, position, string(payload)); err != nil {
			return errors.Wrapf(err, "failed to insert record %d of fixture %s", position, name)
		}
	}
	return nil
}

func (s *PostgresStore) Ping(ctx context.Context) error {
	return s.dbClient.Ping(ctx)
}

func (s *PostgresStore) Close() error {
	return s.dbClient.Close()
}

func decodeRecordColumn(value interface{}) (map[string]interface{}, error) {
	var raw []byte
	switch v := value.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return nil, fmt.Errorf("unexpected record column type %T", value)
	}
	var fields map[string]interface{}
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, err
	}
	if fields == nil {
		return nil, fmt.Errorf("record column is not a JSON object")
	}
	return fields, nil
}
