package profiles

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/perono/internal/session"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// DefaultCollection is the collection profiles are written to.
const DefaultCollection = "user"

type MongoStore struct {
	client *mongo.Client
	coll   *mongo.Collection
}

// NewMongoStore writes into coll. Close is a no-op for stores built this
// way.
func NewMongoStore(coll *mongo.Collection) *MongoStore {
	return &MongoStore{coll: coll}
}

// ConnectMongo dials uri, checks the connection and returns a store over
// database/collection.
func ConnectMongo(ctx context.Context, uri, database, collection string) (*MongoStore, error) {
	cli, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := cli.Ping(pingCtx, nil); err != nil {
		_ = cli.Disconnect(ctx)
		return nil, fmt.Errorf("mongo ping: %w", err)
	}

	if collection == "" {
		collection = DefaultCollection
	}
	return &MongoStore{client: cli, coll: cli.Database(database).Collection(collection)}, nil
}

func (s *MongoStore) Create(ctx context.Context, p session.UserProfile) error {
	p.CreatedAt = p.CreatedAt.UTC()
	_, err := s.coll.ReplaceOne(ctx, bson.M{"uid": p.UserID}, p, options.Replace().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("mongo replace %s: %w", p.UserID, err)
	}
	return nil
}

func (s *MongoStore) Close(ctx context.Context) error {
	if s.client == nil {
		return nil
	}
	return s.client.Disconnect(ctx)
}
