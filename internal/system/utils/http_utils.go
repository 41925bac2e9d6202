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
	"encoding/json"
	"errors" // Standard Go errors package
	"net/http"

	sysContext "github.com/wso2/ride-admin-data-service/internal/system/context"
	customerrors "github.com/wso2/ride-admin-data-service/internal/system/errors" // Alias for the custom errors
	"github.com/wso2/ride-admin-data-service/internal/system/log"
)

// HandleError sends an HTTP error response based on the provided error
func HandleError(w http.ResponseWriter, r *http.Request, err error) {
	traceID := sysContext.GetTraceID(r.Context())

	var clientError *customerrors.ClientError
	if ok := errors.As(err, &clientError); ok {
		msg := clientError.ErrorMessage
		if msg.TraceID == "" {
			msg.TraceID = traceID
		}
		WriteJSON(w, clientError.StatusCode, msg)
		return
	}

	log.GetLogger().Error("Request failed", log.String("path", r.URL.Path), log.String("traceId", traceID),
		log.Error(err))
	var serverError *customerrors.ServerError
	if ok := errors.As(err, &serverError); ok {
		WriteJSON(w, http.StatusInternalServerError, customerrors.ErrorMessage{
			Code:        serverError.Code,
			Message:     serverError.Message,
			Description: "Internal server error",
			TraceID:     traceID,
		})
		return
	}
	WriteJSON(w, http.StatusInternalServerError, map[string]string{
		"error":    "Internal server error",
		"trace_id": traceID,
	})
}

// WriteJSON encodes data as the JSON response body with the given status.
func WriteJSON(w http.ResponseWriter, statusCode int, data interface{}) {

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(data)
}

// DecodeJSONBody decodes the request body into target, answering client errors for bad payloads.
func DecodeJSONBody(r *http.Request, resourceName string, target interface{}) error {

	if err := json.NewDecoder(r.Body).Decode(target); err != nil {
		return customerrors.NewClientError(customerrors.ErrorMessage{
			Code:        customerrors.BAD_REQUEST.Code,
			Message:     customerrors.BAD_REQUEST.Message,
			Description: HandleDecodeError(err, resourceName),
		}, http.StatusBadRequest)
	}
	return nil
}
