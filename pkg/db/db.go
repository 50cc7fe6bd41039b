package db

import (
	"context"
	"fmt"

	"speech-corpus/pkg/domain"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Client wraps the MongoDB client used for the searchable speech mirror.
type Client struct {
	mongoClient *mongo.Client
	database    *mongo.Database
	collection  *mongo.Collection
}

// NewClient creates a MongoDB client for the given connection string,
// database and collection.
func NewClient(connectionString, databaseName, collectionName string) *Client {
	clientOptions := options.Client().ApplyURI(connectionString)

	mongoClient, err := mongo.NewClient(clientOptions)
	if err != nil {
		// Error surfaces from Connect()
		return &Client{}
	}

	database := mongoClient.Database(databaseName)
	collection := database.Collection(collectionName)

	return &Client{
		mongoClient: mongoClient,
		database:    database,
		collection:  collection,
	}
}

// Connect establishes the connection to MongoDB.
func (c *Client) Connect(ctx context.Context) error {
	if c.mongoClient == nil {
		return fmt.Errorf("mongo client not initialized")
	}
	if err := c.mongoClient.Connect(ctx); err != nil {
		return fmt.Errorf("connect to mongo: %w", err)
	}
	return c.mongoClient.Ping(ctx, nil)
}

// Close closes the MongoDB connection.
func (c *Client) Close(ctx context.Context) error {
	if c.mongoClient == nil {
		return nil
	}
	return c.mongoClient.Disconnect(ctx)
}

// SaveSpeech upserts a speech keyed by its corpus-relative identifier, so
// mirroring the same file twice overwrites rather than duplicates.
func (c *Client) SaveSpeech(ctx context.Context, speech *domain.Speech) error {
	if c.collection == nil {
		return fmt.Errorf("collection not initialized")
	}

	filter := bson.M{
		"politician": speech.Politician,
		"category":   speech.Category,
		"filename":   speech.Filename,
	}
	update := bson.M{"$set": speech}
	opts := options.Update().SetUpsert(true)

	_, err := c.collection.UpdateOne(ctx, filter, update, opts)
	return err
}

// GetAllKeys fetches the corpus-relative keys of every stored speech as a
// set, used to skip already-mirrored files.
func (c *Client) GetAllKeys(ctx context.Context) (map[string]bool, error) {
	if c.collection == nil {
		return nil, fmt.Errorf("collection not initialized")
	}

	projection := bson.M{"politician": 1, "category": 1, "filename": 1, "_id": 0}
	cursor, err := c.collection.Find(ctx, bson.M{}, options.Find().SetProjection(projection))
	if err != nil {
		return nil, fmt.Errorf("query speech keys: %w", err)
	}
	defer cursor.Close(ctx)

	keys := make(map[string]bool)
	for cursor.Next(ctx) {
		var result domain.Speech
		if err := cursor.Decode(&result); err != nil {
			continue // Skip invalid documents
		}
		keys[result.Key()] = true
	}

	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %w", err)
	}

	return keys, nil
}
