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
	"time"

	fetchModel "github.com/wso2/ride-admin-data-service/internal/fetch/model"
	recordModel "github.com/wso2/ride-admin-data-service/internal/records/model"
	"github.com/wso2/ride-admin-data-service/internal/system/client"
	errors2 "github.com/wso2/ride-admin-data-service/internal/system/errors"
	"github.com/wso2/ride-admin-data-service/internal/system/log"
)

// RemoteAccessor fetches one collection endpoint. Implemented by client.APIClient.
type RemoteAccessor interface {
	GetCollection(ctx context.Context, d fetchModel.Descriptor) (recordModel.Collection, error)
}

// FallbackResolverInterface defines the resolver used by every collection read.
type FallbackResolverInterface interface {
	Resolve(ctx context.Context, descriptors []fetchModel.Descriptor, fixture recordModel.Collection) (fetchModel.Resolution, error)
}

// FallbackResolver tries descriptors strictly in order and falls back to a fixture when all of them fail.
type FallbackResolver struct {
	accessor RemoteAccessor
	policy   FallbackPolicy
}

// NewFallbackResolver creates a resolver over accessor.
func NewFallbackResolver(accessor RemoteAccessor, policy FallbackPolicy) *FallbackResolver {
	return &FallbackResolver{
		accessor: accessor,
		policy:   policy,
	}
}

// Resolve returns the first successful descriptor's collection, tagged primary or fallback, or the
// fixture tagged fixture. Attempts are sequential; a success stops the chain.
// An error is returned only when the policy surfaces the failure kind that occurred.
func (r *FallbackResolver) Resolve(ctx context.Context, descriptors []fetchModel.Descriptor,
	fixture recordModel.Collection) (fetchModel.Resolution, error) {

	logger := log.GetLogger()
	resolution := fetchModel.Resolution{Attempts: make([]fetchModel.Attempt, 0, len(descriptors))}

	for i, descriptor := range descriptors {
		if ctx.Err() != nil {
			logger.Debug("Collection request abandoned by the caller", log.String("path", descriptor.String()))
			break
		}

		start := time.Now()
		records, err := r.accessor.GetCollection(ctx, descriptor)
		attempt := fetchModel.Attempt{Path: descriptor.String(), Duration: time.Since(start)}

		if err == nil {
			attempt.Outcome = fetchModel.OutcomeSucceeded
			resolution.Attempts = append(resolution.Attempts, attempt)
			resolution.Source = fetchModel.SourceFallback
			if i == 0 {
				resolution.Source = fetchModel.SourcePrimary
			}
			if records == nil {
				records = recordModel.Collection{}
			}
			resolution.Records = records
			logger.Debug(fmt.Sprintf("Resolved collection from %s", descriptor.String()),
				log.String("source", string(resolution.Source)), log.Int("records", len(records)),
				log.Int("attempts", len(resolution.Attempts)))
			return resolution, nil
		}

		kind := client.KindOf(err)
		attempt.Outcome = string(kind)
		attempt.StatusCode = client.StatusOf(err)
		resolution.Attempts = append(resolution.Attempts, attempt)
		logger.Debug(fmt.Sprintf("Collection endpoint %s failed", descriptor.String()),
			log.String("kind", string(kind)), log.Int("status", attempt.StatusCode), log.Error(err))

		if r.policy.ShouldSurface(kind) {
			logger.Warn(fmt.Sprintf("Surfacing %s failure from %s instead of falling back", kind, descriptor.String()))
			return resolution, surfacedError(kind, descriptor, err)
		}
	}

	resolution.Source = fetchModel.SourceFixture
	resolution.Records = fixture.Clone()
	logger.Warn("All collection endpoints failed, serving fixture data",
		log.Int("attempts", len(resolution.Attempts)), log.Int("records", len(resolution.Records)),
		log.Any("outcomes", outcomes(resolution.Attempts)))
	return resolution, nil
}

func surfacedError(kind client.FailureKind, descriptor fetchModel.Descriptor, cause error) error {
	description := fmt.Sprintf("Request to %s failed: %s", descriptor.Path, kind)
	switch kind {
	case client.FailureUnauthorized:
		return errors2.NewClientError(errors2.ErrorMessage{
			Code:        errors2.UN_AUTHORIZED.Code,
			Message:     errors2.UN_AUTHORIZED.Message,
			Description: description,
		}, http.StatusUnauthorized)
	case client.FailureNotFound:
		return errors2.NewClientError(errors2.ErrorMessage{
			Code:        errors2.ENDPOINT_UNAVAILABLE.Code,
			Message:     errors2.ENDPOINT_UNAVAILABLE.Message,
			Description: description,
		}, http.StatusNotFound)
	case client.FailureMalformed:
		return errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.MALFORMED_RESPONSE.Code,
			Message:     errors2.MALFORMED_RESPONSE.Message,
			Description: description,
		}, cause)
	default:
		return errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.ENDPOINT_UNAVAILABLE.Code,
			Message:     errors2.ENDPOINT_UNAVAILABLE.Message,
			Description: description,
		}, cause)
	}
}

func outcomes(attempts []fetchModel.Attempt) []string {
	out := make([]string, len(attempts))
	for i, a := range attempts {
		out[i] = a.Path + "=" + a.Outcome
	}
	return out
}
