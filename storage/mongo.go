package storage

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const collectionName = "sessions"

type MongoStorage struct {
	client     *mongo.Client
	collection *mongo.Collection
	log        *slog.Logger
}

func NewMongoStorage(uri, database string, log *slog.Logger) (*MongoStorage, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connecting to MongoDB: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("pinging MongoDB: %w", err)
	}

	collection := client.Database(database).Collection(collectionName)

	// Create index on user_id for faster lookups
	_, err = collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "user_id", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		log.Warn("creating index", slog.String("error", err.Error()))
	}

	return &MongoStorage{
		client:     client,
		collection: collection,
		log:        log,
	}, nil
}

func (m *MongoStorage) Get(userID string) (*Session, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var session Session
	err := m.collection.FindOne(ctx, bson.M{"user_id": userID}).Decode(&session)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("finding session: %w", err)
	}
	return &session, nil
}

func (m *MongoStorage) GetOrCreate(userID string) (*Session, error) {
	session, err := m.Get(userID)
	if err != nil {
		return nil, err
	}
	if session != nil {
		return session, nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	session = &Session{
		UserID:    userID,
		UpdatedAt: time.Now(),
	}
	if _, err = m.collection.InsertOne(ctx, session); err != nil {
		return nil, fmt.Errorf("creating session: %w", err)
	}
	return session, nil
}

func (m *MongoStorage) UpdateImage(userID, path, encoded string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	update := bson.M{
		"$set": bson.M{
			"image_path":   path,
			"image_base64": encoded,
			"updated_at":   time.Now(),
		},
		"$setOnInsert": bson.M{
			"user_id": userID,
		},
	}
	opts := options.Update().SetUpsert(true)
	_, err := m.collection.UpdateOne(ctx, bson.M{"user_id": userID}, update, opts)
	if err != nil {
		return fmt.Errorf("updating session image: %w", err)
	}
	return nil
}

func (m *MongoStorage) Delete(userID string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := m.collection.DeleteOne(ctx, bson.M{"user_id": userID})
	if err != nil {
		return fmt.Errorf("deleting session: %w", err)
	}
	return nil
}

func (m *MongoStorage) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return m.client.Disconnect(ctx)
}
