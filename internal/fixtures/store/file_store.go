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

package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/wso2/ride-admin-data-service/internal/records/model"
	"gopkg.in/yaml.v2"
)

// FileStore serves fixtures from a YAML document mapping collection names to record lists.
type FileStore struct {
	path     string
	fixtures map[string][]map[string]interface{}
}

// NewFileStore reads and decodes the fixture file once.
func NewFileStore(path string) (*FileStore, error) {

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fixtureLoadError("failed to read fixture file "+path, err)
	}
	fixtures, err := ParseFixtures(raw)
	if err != nil {
		return nil, fixtureLoadError("failed to parse fixture file "+path, err)
	}
	return &FileStore{path: path, fixtures: fixtures}, nil
}

// ParseFixtures decodes a fixture document into plain JSON-compatible maps.
func ParseFixtures(raw []byte) (map[string][]map[string]interface{}, error) {

	var document map[string][]map[interface{}]interface{}
	if err := yaml.Unmarshal(raw, &document); err != nil {
		return nil, errors.Wrap(err, "invalid fixture document")
	}

	fixtures := make(map[string][]map[string]interface{}, len(document))
	for name, records := range document {
		converted := make([]map[string]interface{}, 0, len(records))
		for _, record := range records {
			fields, ok := normalizeYAML(record).(map[string]interface{})
			if !ok {
				return nil, fmt.Errorf("fixture %s contains a non-object record", name)
			}
			converted = append(converted, fields)
		}
		fixtures[name] = converted
	}
	return fixtures, nil
}

// normalizeYAML converts yaml.v2 maps keyed by interface{} into string-keyed maps.
func normalizeYAML(value interface{}) interface{} {
	switch v := value.(type) {
	case map[interface{}]interface{}:
		out := make(map[string]interface{}, len(v))
		for key, item := range v {
			out[fmt.Sprint(key)] = normalizeYAML(item)
		}
		return out
	case []interface{}:
		out := make([]interface{}, len(v))
		for i, item := range v {
			out[i] = normalizeYAML(item)
		}
		return out
	default:
		return v
	}
}

func (s *FileStore) GetFixture(_ context.Context, name string) (model.Collection, error) {

	records := s.fixtures[name]
	collection := make(model.Collection, 0, len(records))
	for _, record := range records {
		collection = append(collection, model.NewRecord(record).Clone())
	}
	return collection, nil
}

func (s *FileStore) Ping(_ context.Context) error {
	return nil
}

func (s *FileStore) Close() error {
	return nil
}

func resolvePath(home, file string) string {
	if file == "" || filepath.IsAbs(file) {
		return file
	}
	return filepath.Join(home, file)
}
