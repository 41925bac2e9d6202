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

package config

type AddrConfig struct {
	Port int    `yaml:"port"`
	Host string `yaml:"host"`
}

type LogConfig struct {
	LogLevel string `yaml:"log_level"`
}

type AuthConfig struct {
	Enabled            bool                `yaml:"enabled"`
	CORSAllowedOrigins []string            `yaml:"cors_allowed_origins"`
	RequiredScopes     map[string][]string `yaml:"required_scopes"`
}

// UpstreamConfig points at the ride-sharing REST API the admin pages read from.
type UpstreamConfig struct {
	BaseURL        string `yaml:"base_url"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
}

type TLSConfig struct {
	CertDir     string `yaml:"cert_dir"`
	TrustStore  string `yaml:"trust_store"`
	MTLSEnabled bool   `yaml:"mtls_enabled"`
	ClientCert  string `yaml:"client_cert"`
	ClientKey   string `yaml:"client_key"`
}

type FetchConfig struct {
	// SurfaceFailures lists failure kinds that stop the fallback chain instead of falling through.
	SurfaceFailures []string `yaml:"surface_failures"`
}

type MongoConfig struct {
	URI        string `yaml:"uri"`
	Database   string `yaml:"database"`
	Collection string `yaml:"collection"`
}

type FixturesConfig struct {
	Backend         string `yaml:"backend"`
	File            string `yaml:"file"`
	CacheTTLSeconds int    `yaml:"cache_ttl_seconds"`
	// RefreshIntervalSeconds reloads cached fixtures from the backend periodically. Zero disables it.
	RefreshIntervalSeconds int         `yaml:"refresh_interval_seconds"`
	Mongo                  MongoConfig `yaml:"mongodb"`
}

type DataSourceConfig struct {
	Hostname string `yaml:"hostname"`
	Port     int    `yaml:"port"`
	Name     string `yaml:"name"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	SSLMode  string `yaml:"sslmode"`
}

type DescriptorConfig struct {
	Method      string            `yaml:"method"`
	Path        string            `yaml:"path"`
	QueryParams map[string]string `yaml:"query_params"`
}

type ReconcileConfig struct {
	Secondary     []DescriptorConfig `yaml:"secondary"`
	IDField       string             `yaml:"id_field"`
	EligibleField string             `yaml:"eligible_field"`
	EligibleValue string             `yaml:"eligible_value"`
}

type CollectionConfig struct {
	Name         string             `yaml:"name"`
	Primary      DescriptorConfig   `yaml:"primary"`
	Fallbacks    []DescriptorConfig `yaml:"fallbacks"`
	Fixture      string             `yaml:"fixture"`
	SearchFields []string           `yaml:"search_fields"`
	Reconcile    *ReconcileConfig   `yaml:"reconcile"`
}

type LocationsConfig struct {
	Hubs         string `yaml:"hubs"`
	Destinations string `yaml:"destinations"`
}

type DashboardConfig struct {
	Users    string `yaml:"users"`
	Drivers  string `yaml:"drivers"`
	Rides    string `yaml:"rides"`
	Bookings string `yaml:"bookings"`
}

type Config struct {
	Addr        AddrConfig         `yaml:"addr"`
	Log         LogConfig          `yaml:"log"`
	Auth        AuthConfig         `yaml:"auth"`
	Upstream    UpstreamConfig     `yaml:"upstream"`
	TLS         TLSConfig          `yaml:"tls"`
	Fetch       FetchConfig        `yaml:"fetch"`
	Fixtures    FixturesConfig     `yaml:"fixtures"`
	DataSource  DataSourceConfig   `yaml:"datasource"`
	Collections []CollectionConfig `yaml:"collections"`
	Locations   LocationsConfig    `yaml:"locations"`
	Dashboard   DashboardConfig    `yaml:"dashboard"`
}
