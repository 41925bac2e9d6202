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

package service

import (
	"context"
	"fmt"
	"net/http"
	"sync"

	"github.com/wso2/ride-admin-data-service/internal/collections/model"
	fetchModel "github.com/wso2/ride-admin-data-service/internal/fetch/model"
	fetchService "github.com/wso2/ride-admin-data-service/internal/fetch/service"
	"github.com/wso2/ride-admin-data-service/internal/fixtures/store"
	recordModel "github.com/wso2/ride-admin-data-service/internal/records/model"
	reconcileService "github.com/wso2/ride-admin-data-service/internal/reconcile/service"
	"github.com/wso2/ride-admin-data-service/internal/system/client"
	"github.com/wso2/ride-admin-data-service/internal/system/config"
	"github.com/wso2/ride-admin-data-service/internal/system/constants"
	sysContext "github.com/wso2/ride-admin-data-service/internal/system/context"
	errors2 "github.com/wso2/ride-admin-data-service/internal/system/errors"
	"github.com/wso2/ride-admin-data-service/internal/system/log"
	"github.com/wso2/ride-admin-data-service/internal/system/pagination"
	viewService "github.com/wso2/ride-admin-data-service/internal/view/service"
)

// RecordWriter forwards create and update requests to the upstream API.
type RecordWriter interface {
	Send(ctx context.Context, method, path string, payload interface{}) (map[string]interface{}, error)
}

// CollectionsServiceInterface defines the operations behind the admin collection views.
type CollectionsServiceInterface interface {
	ListCollections() []model.CollectionSummary
	Load(ctx context.Context, name string) (model.LoadedCollection, error)
	GetView(ctx context.Context, name string, query model.ViewQuery) (model.CollectionView, error)
	GetLocations(ctx context.Context, query model.ViewQuery) (model.CollectionView, error)
	CreateRecord(ctx context.Context, name string, payload map[string]interface{}) (map[string]interface{}, error)
	UpdateRecord(ctx context.Context, name, id string, payload map[string]interface{}) (map[string]interface{}, error)
}

// CollectionsService serves every configured collection through one shared fallback resolver.
type CollectionsService struct {
	requests  map[string]model.CollectionRequest
	order     []string
	locations config.LocationsConfig
	resolver  fetchService.FallbackResolverInterface
	fixtures  store.FixtureStoreInterface
	writer    RecordWriter
}

var (
	instance   CollectionsServiceInterface
	instanceMu sync.RWMutex
)

// NewCollectionsService builds the service from the configured collection requests.
func NewCollectionsService(collections []config.CollectionConfig, locations config.LocationsConfig,
	resolver fetchService.FallbackResolverInterface, fixtures store.FixtureStoreInterface,
	writer RecordWriter) (*CollectionsService, error) {

	service := &CollectionsService{
		requests:  make(map[string]model.CollectionRequest, len(collections)),
		locations: locations,
		resolver:  resolver,
		fixtures:  fixtures,
		writer:    writer,
	}
	for _, collection := range collections {
		if collection.Name == "" || collection.Primary.Path == "" {
			return nil, fmt.Errorf("collection %q must have a name and a primary path", collection.Name)
		}
		if _, exists := service.requests[collection.Name]; exists {
			return nil, fmt.Errorf("collection %q is configured more than once", collection.Name)
		}
		service.requests[collection.Name] = model.FromConfig(collection)
		service.order = append(service.order, collection.Name)
	}
	return service, nil
}

// SetCollectionsService registers the instance returned by GetCollectionsService.
func SetCollectionsService(service CollectionsServiceInterface) {
	instanceMu.Lock()
	defer instanceMu.Unlock()
	instance = service
}

// GetCollectionsService returns the registered collections service.
func GetCollectionsService() CollectionsServiceInterface {
	instanceMu.RLock()
	defer instanceMu.RUnlock()
	return instance
}

func (s *CollectionsService) ListCollections() []model.CollectionSummary {

	summaries := make([]model.CollectionSummary, 0, len(s.order))
	for _, name := range s.order {
		request := s.requests[name]
		summaries = append(summaries, model.CollectionSummary{
			Name:       name,
			Path:       request.Primary.Path,
			Fallbacks:  len(request.Fallbacks),
			Reconciled: request.Reconcile != nil,
		})
	}
	return summaries
}

// Load resolves a collection, normalises user categories and reconciles it when configured.
func (s *CollectionsService) Load(ctx context.Context, name string) (model.LoadedCollection, error) {

	logger := log.GetLogger()
	request, err := s.request(name)
	if err != nil {
		return model.LoadedCollection{}, err
	}

	resolution, err := s.resolver.Resolve(ctx, request.Descriptors(), s.fixture(ctx, request.Fixture))
	if err != nil {
		return model.LoadedCollection{}, err
	}
	if resolution.Source == fetchModel.SourceFixture {
		logger.Audit(log.AuditEvent{
			InitiatorID:   sysContext.GetInitiator(ctx),
			InitiatorType: log.InitiatorTypeSystem,
			TargetID:      name,
			TargetType:    log.TargetTypeCollection,
			ActionID:      log.ActionServeFixture,
			TraceID:       sysContext.GetTraceID(ctx),
		})
	}

	loaded := model.LoadedCollection{
		Name:     name,
		Source:   resolution.Source,
		Records:  viewService.NormalizeCategories(resolution.Records),
		Attempts: resolution.Attempts,
	}
	if request.Reconcile == nil {
		return loaded, nil
	}

	secondary, err := s.resolver.Resolve(ctx, request.Reconcile.Secondary, recordModel.Collection{})
	if err != nil {
		return model.LoadedCollection{}, err
	}
	records, report := reconcileService.ReconcileWithReport(loaded.Records,
		viewService.NormalizeCategories(secondary.Records), request.Reconcile.IDField, eligibility(*request.Reconcile))

	loaded.Records = records
	loaded.SecondarySource = secondary.Source
	loaded.Attempts = append(loaded.Attempts, secondary.Attempts...)
	loaded.Synthesized = report.Synthesized
	logger.Debug(fmt.Sprintf("Reconciled collection %s", name), log.Any("report", report))
	return loaded, nil
}

// GetView loads a collection and applies the filter, search and paging of query.
func (s *CollectionsService) GetView(ctx context.Context, name string, query model.ViewQuery) (model.CollectionView, error) {

	request, err := s.request(name)
	if err != nil {
		return model.CollectionView{}, err
	}
	criteria, err := viewService.ParseCriteria(query.Filters, query.Search, request.SearchFields)
	if err != nil {
		return model.CollectionView{}, invalidFilterError(err)
	}

	loaded, err := s.Load(ctx, name)
	if err != nil {
		return model.CollectionView{}, err
	}
	var sources map[string]fetchModel.Source
	if loaded.SecondarySource != "" {
		sources = map[string]fetchModel.Source{
			constants.SourceKeyPrimary:    loaded.Source,
			constants.SourceKeyReconciled: loaded.SecondarySource,
		}
	}
	return buildView(name, loaded.EffectiveSource(), sources, viewService.Filter(loaded.Records, criteria), query), nil
}

// GetLocations merges hubs and destinations into one view.
func (s *CollectionsService) GetLocations(ctx context.Context, query model.ViewQuery) (model.CollectionView, error) {

	var searchFields []string
	for _, name := range []string{s.locations.Hubs, s.locations.Destinations} {
		if request, ok := s.requests[name]; ok {
			searchFields = append(searchFields, request.SearchFields...)
		}
	}
	criteria, err := viewService.ParseCriteria(query.Filters, query.Search, searchFields)
	if err != nil {
		return model.CollectionView{}, invalidFilterError(err)
	}

	hubs, err := s.Load(ctx, s.locations.Hubs)
	if err != nil {
		return model.CollectionView{}, err
	}
	destinations, err := s.Load(ctx, s.locations.Destinations)
	if err != nil {
		return model.CollectionView{}, err
	}

	sources := map[string]fetchModel.Source{
		constants.LocationTypeHub:         hubs.Source,
		constants.LocationTypeDestination: destinations.Source,
	}
	locations := viewService.MergeLocations(hubs.Records, destinations.Records)
	return buildView("locations", fetchModel.CombineSources(hubs.Source, destinations.Source), sources,
		viewService.Filter(locations, criteria), query), nil
}

// CreateRecord forwards a new record to the collection's primary path. Failures are not masked.
func (s *CollectionsService) CreateRecord(ctx context.Context, name string,
	payload map[string]interface{}) (map[string]interface{}, error) {

	request, err := s.request(name)
	if err != nil {
		return nil, err
	}
	created, err := s.writer.Send(ctx, http.MethodPost, request.Primary.Path, payload)
	if err != nil {
		return nil, writeError(name, err)
	}

	targetID := ""
	if created != nil {
		targetID = recordModel.Stringify(created[constants.IDField])
	}
	auditWrite(ctx, log.ActionCreateRecord, name, targetID)
	return created, nil
}

// UpdateRecord forwards an update of record id to the collection's primary path.
func (s *CollectionsService) UpdateRecord(ctx context.Context, name, id string,
	payload map[string]interface{}) (map[string]interface{}, error) {

	request, err := s.request(name)
	if err != nil {
		return nil, err
	}
	if _, ok := recordModel.ToInt64(id); !ok {
		return nil, errors2.NewClientError(errors2.ErrorMessage{
			Code:        errors2.BAD_REQUEST.Code,
			Message:     errors2.BAD_REQUEST.Message,
			Description: fmt.Sprintf("Record id %q is not a valid identifier.", id),
		}, http.StatusBadRequest)
	}

	updated, err := s.writer.Send(ctx, http.MethodPut, request.Primary.Path+"/"+id, payload)
	if err != nil {
		return nil, writeError(name, err)
	}
	auditWrite(ctx, log.ActionUpdateRecord, name, id)
	return updated, nil
}

func (s *CollectionsService) request(name string) (model.CollectionRequest, error) {
	request, ok := s.requests[name]
	if !ok {
		return model.CollectionRequest{}, errors2.NewClientError(errors2.ErrorMessage{
			Code:        errors2.COLLECTION_NOT_FOUND.Code,
			Message:     errors2.COLLECTION_NOT_FOUND.Message,
			Description: fmt.Sprintf("Collection %q is not configured.", name),
		}, http.StatusNotFound)
	}
	return request, nil
}

// fixture returns the named fixture, or an empty collection when the store cannot serve it.
func (s *CollectionsService) fixture(ctx context.Context, name string) recordModel.Collection {
	fixture, err := s.fixtures.GetFixture(ctx, name)
	if err != nil {
		log.GetLogger().Warn(fmt.Sprintf("Fixture %s is unavailable, using an empty collection", name), log.Error(err))
		return recordModel.Collection{}
	}
	return fixture
}

func eligibility(reconcile model.ReconcileRequest) reconcileService.Predicate {
	switch {
	case reconcile.EligibleField == "":
		return nil
	case viewService.IsCategoryField(reconcile.EligibleField):
		return func(record recordModel.Record) bool {
			return viewService.FieldEquals(record, reconcile.EligibleField, reconcile.EligibleValue)
		}
	default:
		return reconcileService.FieldEquals(reconcile.EligibleField, reconcile.EligibleValue)
	}
}

func buildView(name string, source fetchModel.Source, sources map[string]fetchModel.Source,
	records recordModel.Collection, query model.ViewQuery) model.CollectionView {

	start, end := pagination.Window(len(records), query.Limit, query.Offset)
	page := records[start:end]
	view := model.CollectionView{
		Collection: name,
		Source:     source,
		Sources:    sources,
		Count:      len(records),
		Records:    page,
		Pagination: pagination.Pagination{
			Total:  len(records),
			Limit:  query.Limit,
			Offset: start,
			Count:  len(page),
		},
	}
	if !source.IsLive() {
		view.Notice = constants.FallbackNotice
	}
	return view
}

func invalidFilterError(err error) error {
	return errors2.NewClientError(errors2.ErrorMessage{
		Code:        errors2.INVALID_FILTER.Code,
		Message:     errors2.INVALID_FILTER.Message,
		Description: err.Error(),
	}, http.StatusBadRequest)
}

// writeError maps an upstream write failure to a client error carrying the upstream status class.
func writeError(name string, err error) error {

	log.GetLogger().Info(fmt.Sprintf("Write to collection %s failed", name), log.Error(err))
	status := client.StatusOf(err)
	switch client.KindOf(err) {
	case client.FailureUnauthorized:
		return errors2.NewClientError(errors2.ErrorMessage{
			Code:        errors2.UN_AUTHORIZED.Code,
			Message:     errors2.UN_AUTHORIZED.Message,
			Description: "The upstream service did not accept the caller's credentials.",
		}, status)
	case client.FailureNotFound:
		return errors2.NewClientError(errors2.ErrorMessage{
			Code:        errors2.UPSTREAM_REJECTED.Code,
			Message:     errors2.UPSTREAM_REJECTED.Message,
			Description: fmt.Sprintf("The upstream %s resource was not found.", name),
		}, http.StatusNotFound)
	case client.FailureServerError:
		if status >= 400 && status < 500 {
			return errors2.NewClientError(errors2.ErrorMessage{
				Code:        errors2.UPSTREAM_REJECTED.Code,
				Message:     errors2.UPSTREAM_REJECTED.Message,
				Description: fmt.Sprintf("The upstream service rejected the %s record.", name),
			}, status)
		}
	}
	return errors2.NewClientError(errors2.ErrorMessage{
		Code:        errors2.WRITE_RECORD_FAILED.Code,
		Message:     errors2.WRITE_RECORD_FAILED.Message,
		Description: err.Error(),
	}, http.StatusBadGateway)
}

func auditWrite(ctx context.Context, action, collection, targetID string) {
	initiatorType := log.InitiatorTypeUser
	initiator := sysContext.GetInitiator(ctx)
	if initiator == "" {
		initiatorType = log.InitiatorTypeSystem
	}
	log.GetLogger().Audit(log.AuditEvent{
		InitiatorID:   initiator,
		InitiatorType: initiatorType,
		TargetID:      targetID,
		TargetType:    log.TargetTypeRecord,
		ActionID:      action,
		TraceID:       sysContext.GetTraceID(ctx),
		Data:          map[string]string{"collection": collection},
	})
}
