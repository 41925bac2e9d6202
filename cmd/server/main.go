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

package main

import (
	"context"
	"flag"
	"fmt"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/joho/godotenv"
	collectionsModel "github.com/wso2/ride-admin-data-service/internal/collections/model"
	collectionsService "github.com/wso2/ride-admin-data-service/internal/collections/service"
	dashboardService "github.com/wso2/ride-admin-data-service/internal/dashboard/service"
	fetchService "github.com/wso2/ride-admin-data-service/internal/fetch/service"
	"github.com/wso2/ride-admin-data-service/internal/fixtures/store"
	healthService "github.com/wso2/ride-admin-data-service/internal/health_check/service"
	"github.com/wso2/ride-admin-data-service/internal/system/client"
	"github.com/wso2/ride-admin-data-service/internal/system/config"
	"github.com/wso2/ride-admin-data-service/internal/system/constants"
	"github.com/wso2/ride-admin-data-service/internal/system/log"
	"github.com/wso2/ride-admin-data-service/internal/system/managers"
	"github.com/wso2/ride-admin-data-service/internal/system/schedulers"
	"github.com/wso2/ride-admin-data-service/internal/system/security"
)

func main() {
	serviceHome := getServiceHome()

	envFiles, err := filepath.Glob(filepath.Join(serviceHome, "config", "*.env"))
	if err == nil && len(envFiles) > 0 {
		_ = godotenv.Load(envFiles...)
	}

	// Load the configuration file
	serviceConfig, err := config.LoadConfig(serviceHome, constants.DeploymentConfigFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize runtime configurations.
	if err := config.InitializeRuntime(serviceHome, serviceConfig); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize runtime: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	logLevel := serviceConfig.Log.LogLevel
	if logLevel == "" {
		logLevel = "INFO"
	}
	if err := log.Init(logLevel); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	logger := log.GetLogger()

	fixtureStore, err := initServices(serviceHome, serviceConfig)
	if err != nil {
		logger.Fatal("Failed to initialize services", log.Error(err))
	}
	defer fixtureStore.Close()

	refreshCtx, stopRefresh := context.WithCancel(context.Background())
	defer stopRefresh()
	startFixtureRefresh(refreshCtx, fixtureStore, serviceConfig)

	serverAddr := fmt.Sprintf("%s:%d", serviceConfig.Addr.Host, serviceConfig.Addr.Port)
	handler := enableCORS(serviceConfig.Auth.CORSAllowedOrigins,
		security.Middleware(serviceConfig.Auth, constants.ApiBasePath, initMultiplexer(serviceConfig.Auth)))

	ln, err := net.Listen("tcp", serverAddr)
	if err != nil {
		logger.Fatal("Failed to start listener", log.String("address", serverAddr), log.Error(err))
	}
	logger.Info("Ride admin data service started", log.String("address", serverAddr))

	server := &http.Server{Handler: handler}
	if err := server.Serve(ln); err != nil {
		logger.Error("Failed to serve requests", log.Error(err))
	}
}

// initServices wires the remote accessor, the shared fallback resolver and the fixture store
// behind the collections and dashboard services.
func initServices(serviceHome string, cfg *config.Config) (store.FixtureStoreInterface, error) {

	apiClient, err := client.NewAPIClient(*cfg)
	if err != nil {
		return nil, err
	}
	policy, err := fetchService.NewFallbackPolicy(cfg.Fetch.SurfaceFailures)
	if err != nil {
		return nil, err
	}
	resolver := fetchService.NewFallbackResolver(apiClient, policy)

	fixtureStore, err := store.New(context.Background(), serviceHome, *cfg)
	if err != nil {
		return nil, err
	}
	healthService.SetFixtureStore(fixtureStore)

	collections, err := collectionsService.NewCollectionsService(cfg.Collections, cfg.Locations, resolver,
		fixtureStore, apiClient)
	if err != nil {
		_ = fixtureStore.Close()
		return nil, err
	}
	collectionsService.SetCollectionsService(collections)
	dashboardService.SetDashboardService(dashboardService.NewDashboardService(collections, cfg.Dashboard))

	log.GetLogger().Info("Collections registered", log.Int("count", len(cfg.Collections)),
		log.Any("surfaceFailures", cfg.Fetch.SurfaceFailures))
	return fixtureStore, nil
}

// startFixtureRefresh keeps the fixture cache warm when fixtures.refresh_interval_seconds is set.
func startFixtureRefresh(ctx context.Context, fixtureStore store.FixtureStoreInterface, cfg *config.Config) {
	if cfg.Fixtures.RefreshIntervalSeconds <= 0 {
		return
	}
	refresher, ok := fixtureStore.(schedulers.FixtureRefresher)
	if !ok {
		return
	}
	interval := time.Duration(cfg.Fixtures.RefreshIntervalSeconds) * time.Second
	go schedulers.StartFixtureRefreshScheduler(ctx, refresher, collectionsModel.FixtureNames(cfg.Collections), interval)
}

// initMultiplexer initializes the HTTP multiplexer and registers the services.
func initMultiplexer(authCfg config.AuthConfig) *http.ServeMux {

	mux := http.NewServeMux()
	serviceManager := managers.NewServiceManager(mux, authCfg)

	// Register the services.
	if err := serviceManager.RegisterServices(constants.ApiBasePath); err != nil {
		log.GetLogger().Error("Failed to register the services.", log.Error(err))
	}

	return mux
}

func enableCORS(allowedOrigins []string, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		switch {
		case origin == "":
		case len(allowedOrigins) == 0:
			// Without an allow list no origin is trusted with credentials.
			w.Header().Set("Access-Control-Allow-Origin", "*")
		case slices.Contains(allowedOrigins, origin):
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Credentials", "true")
			w.Header().Add("Vary", "Origin")
		}
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", strings.Join([]string{"Authorization", "Content-Type",
			constants.TraceIDHeader}, ", "))
		w.Header().Set("Access-Control-Expose-Headers", constants.TraceIDHeader)
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func getServiceHome() string {

	// Parse project directory from command line arguments.
	projectHomeFlag := flag.String("home", "", "Path to the ride admin data service home directory")
	flag.Parse()

	if *projectHomeFlag != "" {
		return *projectHomeFlag
	}
	// If no command line argument is provided, use the current working directory.
	dir, err := os.Getwd()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to get current working directory: %v\n", err)
		return "."
	}
	return dir
}
