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
	"time"

	"github.com/pkg/errors"
	"github.com/wso2/ride-admin-data-service/internal/records/model"
	"github.com/wso2/ride-admin-data-service/internal/system/config"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const defaultMongoCollection = "fixtures"

// fixtureDocument is one record of a fixture collection.
type fixtureDocument struct {
	Collection string `bson:"collection"`
	Position   int    `bson:"position"`
	Record     bson.M `bson:"record"`
}

// MongoStore serves fixtures from a MongoDB collection of fixtureDocument.
type MongoStore struct {
	client     *mongo.Client
	collection *mongo.Collection
}

// NewMongoStore connects to MongoDB and verifies the connection.
func NewMongoStore(ctx context.Context, cfg config.MongoConfig) (*MongoStore, error) {

	connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, fixtureLoadError("MongoDB connection failed", err)
	}
	if err := client.Ping(connectCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fixtureLoadError("MongoDB ping failed", err)
	}

	collectionName := cfg.Collection
	if collectionName == "" {
		collectionName = defaultMongoCollection
	}
	return &MongoStore{
		client:     client,
		collection: client.Database(cfg.Database).Collection(collectionName),
	}, nil
}

func (s *MongoStore) GetFixture(ctx context.Context, name string) (model.Collection, error) {

	queryCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	findOptions := options.Find().SetSort(bson.D{{Key: "position", Value: 1}})
	cursor, err := s.collection.Find(queryCtx, bson.M{"collection": name}, findOptions)
	if err != nil {
		return nil, fixtureLoadError("failed to query fixture "+name, err)
	}
	defer cursor.Close(queryCtx)

	var documents []fixtureDocument
	if err := cursor.All(queryCtx, &documents); err != nil {
		return nil, fixtureLoadError("failed to decode fixture "+name, err)
	}

	collection := make(model.Collection, 0, len(documents))
	for _, document := range documents {
		collection = append(collection, model.NewRecord(fromBSON(document.Record)))
	}
	return collection, nil
}

// SaveFixture replaces the stored documents of a fixture, keeping their order.
func (s *MongoStore) SaveFixture(ctx context.Context, name string, collection model.Collection) error {

	if _, err := s.collection.DeleteMany(ctx, bson.M{"collection": name}); err != nil {
		return errors.Wrapf(err, "failed to clear fixture %s", name)
	}
	if len(collection) == 0 {
		return nil
	}
	documents := make([]interface{}, 0, len(collection))
	for position, record := range collection {
		documents = append(documents, fixtureDocument{
			Collection: name,
			Position:   position,
			Record:     bson.M(record.Fields),
		})
	}
	if _, err := s.collection.InsertMany(ctx, documents); err != nil {
		return errors.Wrapf(err, "failed to insert fixture %s", name)
	}
	return nil
}

func (s *MongoStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx, readpref.Primary())
}

func (s *MongoStore) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return s.client.Disconnect(ctx)
}

// fromBSON converts decoded BSON documents and arrays into plain maps and slices.
func fromBSON(document bson.M) map[string]interface{} {
	out := make(map[string]interface{}, len(document))
	for key, value := range document {
		out[key] = fromBSONValue(value)
	}
	return out
}

func fromBSONValue(value interface{}) interface{} {
	switch v := value.(type) {
	case bson.M:
		return fromBSON(v)
	case bson.D:
		return fromBSON(v.Map())
	case bson.A:
		out := make([]interface{}, len(v))
		for i, item := range v {
			out[i] = fromBSONValue(item)
		}
		return out
	default:
		return v
	}
}
