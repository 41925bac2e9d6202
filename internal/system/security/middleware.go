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

package security

import (
	"net/http"
	"strings"

	"github.com/wso2/ride-admin-data-service/internal/system/authn"
	"github.com/wso2/ride-admin-data-service/internal/system/authz"
	"github.com/wso2/ride-admin-data-service/internal/system/config"
	"github.com/wso2/ride-admin-data-service/internal/system/constants"
	sysContext "github.com/wso2/ride-admin-data-service/internal/system/context"
	"github.com/wso2/ride-admin-data-service/internal/system/errors"
	"github.com/wso2/ride-admin-data-service/internal/system/log"
	"github.com/wso2/ride-admin-data-service/internal/system/utils"
)

// Middleware attaches a trace id to every request. On API paths it also authenticates the bearer
// token when auth is enabled and keeps the token in the request context for outbound calls.
func Middleware(authCfg config.AuthConfig, apiBasePath string, next http.Handler) http.Handler {

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {

		traceID := strings.TrimSpace(r.Header.Get(constants.TraceIDHeader))
		if traceID == "" {
			traceID = sysContext.GenerateTraceID()
		}
		w.Header().Set(constants.TraceIDHeader, traceID)
		ctx := sysContext.WithTraceID(r.Context(), traceID)
		r = r.WithContext(ctx)

		if !strings.HasPrefix(r.URL.Path, apiBasePath) || r.Method == http.MethodOptions {
			next.ServeHTTP(w, r)
			return
		}

		token, hasToken := bearerToken(r)
		if !authCfg.Enabled {
			if hasToken {
				ctx = sysContext.WithAuthToken(ctx, token)
			}
			next.ServeHTTP(w, r.WithContext(ctx))
			return
		}

		if !hasToken {
			rejectUnauthenticated(w, r, "Missing or invalid Authorization header")
			return
		}
		claims, err := authn.ValidateAuthenticationAndReturnClaims(token)
		if err != nil {
			rejectUnauthenticated(w, r, "Invalid or expired bearer token")
			return
		}

		ctx = sysContext.WithAuthToken(ctx, token)
		ctx = sysContext.WithInitiator(ctx, authn.Subject(claims))
		ctx = sysContext.WithScopes(ctx, authn.Scopes(claims))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequirePermission guards a handler with the scopes configured for operation.
func RequirePermission(authCfg config.AuthConfig, operation string, next http.HandlerFunc) http.HandlerFunc {

	return func(w http.ResponseWriter, r *http.Request) {
		if authCfg.Enabled && !authz.ValidatePermission(sysContext.GetScopes(r.Context()), operation,
			authCfg.RequiredScopes) {
			utils.HandleError(w, r, errors.NewClientError(errors.ErrorMessage{
				Code:        errors.FORBIDDEN.Code,
				Message:     errors.FORBIDDEN.Message,
				Description: "Do not have permission to perform this operation",
			}, http.StatusForbidden))
			return
		}
		next(w, r)
	}
}

func bearerToken(r *http.Request) (string, bool) {
	authHeader := r.Header.Get("Authorization")
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return "", false
	}
	token := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
	return token, token != ""
}

func rejectUnauthenticated(w http.ResponseWriter, r *http.Request, description string) {

	log.GetLogger().Audit(log.AuditEvent{
		InitiatorType: log.InitiatorTypeUser,
		TargetID:      r.URL.Path,
		TargetType:    log.TargetTypeCollection,
		ActionID:      log.ActionAuthenticationFailure,
		TraceID:       sysContext.GetTraceID(r.Context()),
	})
	utils.HandleError(w, r, errors.NewClientError(errors.ErrorMessage{
		Code:        errors.UN_AUTHORIZED.Code,
		Message:     errors.UN_AUTHORIZED.Message,
		Description: description,
	}, http.StatusUnauthorized))
}
