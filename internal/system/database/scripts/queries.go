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

package scripts

var GetFixtureRecords = map[string]string{
	"postgres": `SELECT record::text AS record FROM collection_fixtures WHERE collection_name = $1 ORDER BY position ASC`,
}

var CountFixtureCollections = map[string]string{
	"postgres": `SELECT COUNT(DISTINCT collection_name) AS total FROM collection_fixtures`,
}

var DeleteFixtureCollection = map[string]string{
	"postgres": `DELETE FROM collection_fixtures WHERE collection_name = $1`,
}

var InsertFixtureRecord = map[string]string{
	"postgres": `INSERT INTO collection_fixtures (collection_name, position, record) VALUES ($1, $2, $3::jsonb)`,
}
