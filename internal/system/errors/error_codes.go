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

package errors

const errorPrefix = "RAS-"

var (
	// Server error codes

	ENDPOINT_UNAVAILABLE = ErrorMessage{
		Code:    errorPrefix + "15001",
		Message: "Upstream endpoint is unavailable.",
	}

	MALFORMED_RESPONSE = ErrorMessage{
		Code:    errorPrefix + "15002",
		Message: "Upstream endpoint returned a malformed response.",
	}

	RECONCILIATION_SKIPPED = ErrorMessage{
		Code:    errorPrefix + "15003",
		Message: "Record skipped during reconciliation.",
	}

	FIXTURE_LOAD_FAILED = ErrorMessage{
		Code:    errorPrefix + "15004",
		Message: "Error while loading fixture data.",
	}

	WRITE_RECORD_FAILED = ErrorMessage{
		Code:    errorPrefix + "15005",
		Message: "Error while writing the record to the upstream service.",
	}

	DASHBOARD_FAILED = ErrorMessage{
		Code:    errorPrefix + "15006",
		Message: "Error while building the dashboard summary.",
	}

	PARSING_ERROR = ErrorMessage{
		Code:    errorPrefix + "15007",
		Message: "Error while parsing the token.",
	}

	// Client error codes

	COLLECTION_NOT_FOUND = ErrorMessage{
		Code:    errorPrefix + "10001",
		Message: "Collection not found.",
	}

	INVALID_FILTER = ErrorMessage{
		Code:    errorPrefix + "10002",
		Message: "Invalid filter.",
	}

	BAD_REQUEST = ErrorMessage{
		Code:    errorPrefix + "10003",
		Message: "Invalid request.",
	}

	UPSTREAM_REJECTED = ErrorMessage{
		Code:    errorPrefix + "10004",
		Message: "The upstream service rejected the request.",
	}

	UN_AUTHORIZED = ErrorMessage{
		Code:        errorPrefix + "10401",
		Message:     "Unauthorized.",
		Description: "The request is not authenticated.",
	}

	FORBIDDEN = ErrorMessage{
		Code:        errorPrefix + "10403",
		Message:     "Forbidden.",
		Description: "You do not have permission to perform this operation.",
	}
)
