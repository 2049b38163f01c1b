package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/sademarquez/comunicaciones-storefront/internal/domain"
)

// MongoStore keeps the cart as a single upserted document whose payload is
// the same JSON value the other backends store.
type MongoStore struct {
	collection *mongo.Collection
	key        string
}

type cartDocument struct {
	Key       string    `bson:"_id"`
	Payload   string    `bson:"payload"`
	UpdatedAt time.Time `bson:"updated_at"`
}

func NewMongoStore(db *mongo.Database, key string) *MongoStore {
	if key == "" {
		key = DefaultKey
	}
	return &MongoStore{
		collection: db.Collection("carts"),
		key:        key,
	}
}

func (m *MongoStore) Load(ctx context.Context) (domain.Cart, error) {
	var doc cartDocument
	err := m.collection.FindOne(ctx, bson.M{"_id": m.key}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return domain.Cart{}, ErrCartNotFound
	}
	if err != nil {
		return domain.Cart{}, fmt.Errorf("failed to load cart: %w", err)
	}
	return unmarshalLines([]byte(doc.Payload))
}

func (m *MongoStore) Save(ctx context.Context, cart domain.Cart) error {
	data, err := marshalLines(cart)
	if err != nil {
		return fmt.Errorf("marshal cart failed: %w", err)
	}

	doc := cartDocument{
		Key:       m.key,
		Payload:   string(data),
		UpdatedAt: time.Now(),
	}
	opts := options.Replace().SetUpsert(true)
	if _, err := m.collection.ReplaceOne(ctx, bson.M{"_id": m.key}, doc, opts); err != nil {
		return fmt.Errorf("failed to save cart: %w", err)
	}
	return nil
}

// ConnectMongo opens a MongoDB connection and verifies it with a ping.
func ConnectMongo(ctx context.Context, uri, database string) (*mongo.Database, error) {
	clientOpts := options.Client().
		ApplyURI(uri).
		SetConnectTimeout(10 * time.Second).
		SetServerSelectionTimeout(5 * time.Second)

	client, err := mongo.Connect(ctx, clientOpts)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	return client.Database(database), nil
}
