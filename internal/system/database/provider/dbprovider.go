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

package provider

import (
	"database/sql"
	"fmt"
	"sync"

	"github.com/pkg/errors"
	"github.com/wso2/ride-admin-data-service/internal/system/config"
	"github.com/wso2/ride-admin-data-service/internal/system/database/client"
)

// DBConfig represents the local database configuration.
type DBConfig struct {
	dsn        string
	driverName string
}

// DBProviderInterface defines the interface for getting database clients.
type DBProviderInterface interface {
	GetDBClient() (client.DBClientInterface, error)
}

// DBProvider is the implementation of DBProviderInterface.
type DBProvider struct {
	dataSource config.DataSourceConfig
}

var (
	testDB   *sql.DB
	testDBMu sync.RWMutex
)

// NewDBProvider creates a new instance of DBProvider for the given data source.
func NewDBProvider(dataSource config.DataSourceConfig) DBProviderInterface {

	return &DBProvider{dataSource: dataSource}
}

// SetTestDB makes every provider hand out clients backed by db. Used by integration tests.
func SetTestDB(db *sql.DB) {
	testDBMu.Lock()
	defer testDBMu.Unlock()
	testDB = db
}

// GetDBClient opens and pings a connection to the configured data source.
func (d *DBProvider) GetDBClient() (client.DBClientInterface, error) {

	testDBMu.RLock()
	db := testDB
	testDBMu.RUnlock()
	if db != nil {
		return client.NewDBClient(db), nil
	}

	dbConfig := getDBConfig(d.dataSource)
	db, err := sql.Open(dbConfig.driverName, dbConfig.dsn)
	if err != nil {
		return nil, errors.Wrap(err, "failed to connect to database")
	}

	// Test the database connection.
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, "failed to ping database")
	}

	return client.NewDBClient(db), nil
}

// getDBConfig returns the database configuration based on the provided data source.
func getDBConfig(dataSource config.DataSourceConfig) DBConfig {

	sslMode := dataSource.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}
	return DBConfig{
		driverName: "postgres",
		dsn: fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
			dataSource.Hostname, dataSource.Port, dataSource.Username, dataSource.Password,
			dataSource.Name, sslMode),
	}
}
