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

package utils

import (
	"database/sql"
	"os"

	"github.com/pkg/errors"
)

// CreateTablesFromFile executes the schema script at path.
func CreateTablesFromFile(db *sql.DB, path string) error {
	schemaBytes, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrap(err, "failed to read schema file")
	}

	if _, err = db.Exec(string(schemaBytes)); err != nil {
		return errors.Wrap(err, "failed to execute schema")
	}
	return nil
}

// IntegrationEnabled reports whether container backed tests were requested.
func IntegrationEnabled() bool {
	return os.Getenv("RAS_INTEGRATION") == "true"
}
