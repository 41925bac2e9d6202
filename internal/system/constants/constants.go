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

package constants

const ApiBasePath = "/api/v1"
const CollectionsApiPath = "collections"
const LocationsApiPath = "locations"
const DashboardApiPath = "dashboard"
const Filter = "filter"
const SearchQuery = "q"
const DeploymentConfigFile = "/repository/conf/deployment.yaml"

type contextKey string

const (
	TraceIDContextKey   contextKey = "trace-id"
	AuthTokenContextKey contextKey = "auth-token"
	InitiatorContextKey contextKey = "initiator"
	ScopesContextKey    contextKey = "scopes"
)

const TraceIDHeader = "X-Trace-Id"

// Record field names shared with the upstream API.
const (
	IDField                = "id"
	UserTypeField          = "user_type"
	RoleField              = "role"
	CanonicalCategoryField = "canonical_category"
	SyntheticField         = "synthetic"
	SourceIDField          = "source_id"
	LocationTypeField      = "location_type"
	LocationKeyField       = "location_key"
	StatusField            = "status"
	IsActiveField          = "is_active"
	AmountField            = "amount"
)

const (
	CategoryDriver    = "driver"
	CategoryPassenger = "passenger"
	CategoryAdmin     = "admin"
)

const (
	LocationTypeHub         = "hub"
	LocationTypeDestination = "destination"
)

// Keys of the per-input sources reported by a reconciled view.
const (
	SourceKeyPrimary    = "primary"
	SourceKeyReconciled = "reconciled_against"
)

const BookingStatusCompleted = "completed"

// FallbackNotice is shown by the admin pages when a view is not backed by live data.
const FallbackNotice = "Failed to load live data, showing sample data."

const (
	FixtureBackendFile     = "file"
	FixtureBackendPostgres = "postgres"
	FixtureBackendMongo    = "mongodb"
)

// Operations checked against the token scopes.
const (
	OperationViewCollection = "collection:view"
	OperationEditCollection = "collection:edit"
	OperationViewDashboard  = "dashboard:view"
)

const SpaceSeparator = " "
