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

package client

import (
	"bytes"
	"context"
	"crypto/tls"
	"crypto/x509"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pkg/errors"
	fetchModel "github.com/wso2/ride-admin-data-service/internal/fetch/model"
	recordModel "github.com/wso2/ride-admin-data-service/internal/records/model"
	"github.com/wso2/ride-admin-data-service/internal/system/config"
	"github.com/wso2/ride-admin-data-service/internal/system/constants"
	sysContext "github.com/wso2/ride-admin-data-service/internal/system/context"
	"github.com/wso2/ride-admin-data-service/internal/system/log"
)

const (
	defaultTimeout = 30 * time.Second
	maxBodyPreview = 512
)

// APIClient issues requests against the ride-sharing REST API.
type APIClient struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewAPIClient creates an APIClient with a TLS/mTLS-ready HTTP client.
func NewAPIClient(cfg config.Config) (*APIClient, error) {
	baseURL := strings.TrimRight(cfg.Upstream.BaseURL, "/")
	if baseURL == "" {
		return nil, errors.New("upstream base_url is not configured")
	}
	log.GetLogger().Info("Creating APIClient with base URL: " + baseURL)

	timeout := defaultTimeout
	if cfg.Upstream.TimeoutSeconds > 0 {
		timeout = time.Duration(cfg.Upstream.TimeoutSeconds) * time.Second
	}

	httpClient, err := newOutboundHTTPClient(cfg.TLS, timeout)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create outbound HTTP client")
	}
	return NewAPIClientWithHTTPClient(baseURL, httpClient), nil
}

// NewAPIClientWithHTTPClient creates an APIClient around an existing http.Client.
func NewAPIClientWithHTTPClient(baseURL string, httpClient *http.Client) *APIClient {
	return &APIClient{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		HTTPClient: httpClient,
	}
}

// Builds an HTTP client with TLS/mTLS configuration for outbound requests.
// Validates the server using CA, and optionally presents a client certificate if mTLS is enabled.
func newOutboundHTTPClient(tlsCfg config.TLSConfig, timeout time.Duration) (*http.Client, error) {
	certDir := tlsCfg.CertDir
	if certDir != "" && !filepath.IsAbs(certDir) {
		if abs, err := filepath.Abs(certDir); err == nil {
			certDir = abs
		}
	}

	// Root CAs: start with system roots, then append trust store if provided.
	rootCAs, err := x509.SystemCertPool()
	if err != nil || rootCAs == nil {
		rootCAs = x509.NewCertPool()
	}

	if tlsCfg.TrustStore != "" {
		trustPath := filepath.Join(certDir, tlsCfg.TrustStore)
		trustPEM, err := os.ReadFile(trustPath)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to read trust_store at %s", trustPath)
		}
		if ok := rootCAs.AppendCertsFromPEM(trustPEM); !ok {
			return nil, errors.Errorf("failed to append certs from trust_store: %s", trustPath)
		}
	}

	var certificates []tls.Certificate
	if tlsCfg.MTLSEnabled {
		publicCrt := filepath.Join(certDir, tlsCfg.ClientCert)
		privateKey := filepath.Join(certDir, tlsCfg.ClientKey)
		pair, err := tls.LoadX509KeyPair(publicCrt, privateKey)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to load cert/key (%s, %s)", publicCrt, privateKey)
		}
		certificates = []tls.Certificate{pair}
	}

	tr := &http.Transport{
		TLSClientConfig: &tls.Config{
			MinVersion:   tls.VersionTLS12,
			RootCAs:      rootCAs,
			Certificates: certificates,
		},
		TLSHandshakeTimeout: 10 * time.Second,
		IdleConnTimeout:     60 * time.Second,
		MaxIdleConns:        100,
		MaxConnsPerHost:     100,
	}
	return &http.Client{
		Transport: tr,
		Timeout:   timeout,
	}, nil
}

// GetCollection fetches a collection endpoint. A 2xx response must carry a JSON array of objects.
func (c *APIClient) GetCollection(ctx context.Context, d fetchModel.Descriptor) (recordModel.Collection, error) {

	logger := log.GetLogger()
	method := d.HTTPMethod()
	endpoint, err := c.buildURL(d.Path, d.QueryParams)
	if err != nil {
		return nil, &AccessError{Kind: FailureNetworkError, Method: method, Path: d.Path, Err: err}
	}

	body, err := c.do(ctx, method, endpoint, d.Path, nil)
	if err != nil {
		return nil, err
	}

	var items []interface{}
	if err := json.Unmarshal(body, &items); err != nil {
		logger.Debug(fmt.Sprintf("Collection endpoint %s did not return a JSON array", d.Path), log.Error(err))
		return nil, &AccessError{Kind: FailureMalformed, Method: method, Path: d.Path, StatusCode: http.StatusOK,
			Body: preview(body), Err: err}
	}
	if items == nil {
		// JSON null is not a collection.
		return nil, &AccessError{Kind: FailureMalformed, Method: method, Path: d.Path, StatusCode: http.StatusOK,
			Body: preview(body), Err: errors.New("response body is null")}
	}

	collection := make(recordModel.Collection, 0, len(items))
	for i, item := range items {
		fields, ok := item.(map[string]interface{})
		if !ok {
			return nil, &AccessError{Kind: FailureMalformed, Method: method, Path: d.Path, StatusCode: http.StatusOK,
				Err: errors.Errorf("element %d is not an object", i)}
		}
		collection = append(collection, recordModel.NewRecord(fields))
	}
	return collection, nil
}

// Send issues a write (POST/PUT) with a JSON body and returns the decoded response object, if any.
func (c *APIClient) Send(ctx context.Context, method, path string, payload interface{}) (map[string]interface{}, error) {

	endpoint, err := c.buildURL(path, nil)
	if err != nil {
		return nil, &AccessError{Kind: FailureNetworkError, Method: method, Path: path, Err: err}
	}

	encoded, err := json.Marshal(payload)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode request body")
	}

	body, err := c.do(ctx, method, endpoint, path, encoded)
	if err != nil {
		return nil, err
	}
	if len(bytes.TrimSpace(body)) == 0 {
		return nil, nil
	}

	var decoded interface{}
	if err := json.Unmarshal(body, &decoded); err != nil {
		return nil, &AccessError{Kind: FailureMalformed, Method: method, Path: path, StatusCode: http.StatusOK,
			Body: preview(body), Err: err}
	}
	if object, ok := decoded.(map[string]interface{}); ok {
		return object, nil
	}
	return map[string]interface{}{"data": decoded}, nil
}

// do performs the request and returns the body of a 2xx response.
func (c *APIClient) do(ctx context.Context, method, endpoint, path string, payload []byte) ([]byte, error) {

	logger := log.GetLogger()
	var reader io.Reader
	if payload != nil {
		reader = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return nil, &AccessError{Kind: FailureNetworkError, Method: method, Path: path, Err: err}
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := sysContext.GetAuthToken(ctx); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if traceID := sysContext.GetTraceID(ctx); traceID != "" {
		req.Header.Set(constants.TraceIDHeader, traceID)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		logger.Debug(fmt.Sprintf("Request %s %s did not get a response", method, path), log.Error(err))
		return nil, &AccessError{Kind: FailureNetworkError, Method: method, Path: path, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &AccessError{Kind: FailureNetworkError, Method: method, Path: path,
			StatusCode: resp.StatusCode, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		kind := ClassifyStatus(resp.StatusCode)
		logger.Debug(fmt.Sprintf("Request %s %s returned status %d", method, path, resp.StatusCode),
			log.String("kind", string(kind)))
		return nil, &AccessError{Kind: kind, Method: method, Path: path, StatusCode: resp.StatusCode,
			Body: preview(body)}
	}
	return body, nil
}

func (c *APIClient) buildURL(path string, queryParams map[string]string) (string, error) {
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	u, err := url.Parse(c.BaseURL + path)
	if err != nil {
		return "", err
	}
	if len(queryParams) > 0 {
		q := u.Query()
		for k, v := range queryParams {
			q.Set(k, v)
		}
		u.RawQuery = q.Encode()
	}
	return u.String(), nil
}

func preview(body []byte) string {
	s := strings.TrimSpace(string(body))
	if len(s) > maxBodyPreview {
		return s[:maxBodyPreview]
	}
	return s
}
