package snapshot

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"stormfins/club-app/internal/domain"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Default connection timeout
const defaultTimeout = 10 * time.Second

// The state blob lives in a single well-known document, mirroring the
// remote endpoint's one-document model.
const stateDocID = "club-state"

// ConnectDB establishes a connection to MongoDB using the provided URI and
// verifies it with a ping.
func ConnectDB(uri string) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}

	pingCtx, pingCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer pingCancel()
	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		disconnectCtx, disconnectCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer disconnectCancel()
		_ = client.Disconnect(disconnectCtx)
		return nil, err
	}
	return client, nil
}

// DisconnectDB gracefully disconnects the MongoDB client.
func DisconnectDB(client *mongo.Client) error {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()
	return client.Disconnect(ctx)
}

// stateDocument wraps the JSON-encoded state. The blob is stored as raw JSON
// rather than BSON so the document is byte-for-byte what the remote endpoint
// would hold.
type stateDocument struct {
	ID        string    `bson:"_id"`
	Payload   []byte    `bson:"payload"`
	UpdatedAt time.Time `bson:"updatedAt"`
}

// MongoStore keeps the state blob as a single document in a collection.
type MongoStore struct {
	collection *mongo.Collection
}

// NewMongoStore creates a snapshot store over the given database and
// collection name.
func NewMongoStore(db *mongo.Database, collection string) *MongoStore {
	return &MongoStore{collection: db.Collection(collection)}
}

// Load fetches and decodes the state document. A missing document is not an
// error; no snapshot has been written yet.
func (m *MongoStore) Load(ctx context.Context) (*domain.State, error) {
	var doc stateDocument
	err := m.collection.FindOne(ctx, bson.M{"_id": stateDocID}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	var state domain.State
	if err := json.Unmarshal(doc.Payload, &state); err != nil {
		return nil, err
	}
	return &state, nil
}

// Save upserts the state document.
func (m *MongoStore) Save(ctx context.Context, state *domain.State) error {
	payload, err := json.Marshal(state.Sanitized())
	if err != nil {
		return err
	}
	doc := stateDocument{
		ID:        stateDocID,
		Payload:   payload,
		UpdatedAt: time.Now(),
	}
	opts := options.Replace().SetUpsert(true)
	_, err = m.collection.ReplaceOne(ctx, bson.M{"_id": stateDocID}, doc, opts)
	return err
}
