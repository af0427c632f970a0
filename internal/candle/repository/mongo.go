package repository

import (
	"context"
	"time"

	"github.com/joelle-memorial/backend/internal/candle"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoRepo implements a MongoDB-backed candle repository.
type MongoRepo struct {
	col *mongo.Collection
}

func NewMongoRepo(col *mongo.Collection) *MongoRepo {
	idxModel := mongo.IndexModel{Keys: bson.D{{Key: "litAt", Value: -1}}}
	col.Indexes().CreateOne(context.Background(), idxModel)
	return &MongoRepo{col: col}
}

func (m *MongoRepo) Create(ctx context.Context, c *candle.Candle) (string, error) {
	if c.ID == "" {
		c.ID = primitive.NewObjectID().Hex()
	}
	c.LitAt = time.Now().UTC()
	_, err := m.col.InsertOne(ctx, c)
	if err != nil {
		return "", err
	}
	return c.ID, nil
}

func (m *MongoRepo) Recent(ctx context.Context, limit int) ([]*candle.Candle, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "litAt", Value: -1}}).
		SetLimit(int64(limit))
	cur, err := m.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	out := []*candle.Candle{}
	for cur.Next(ctx) {
		var c candle.Candle
		if err := cur.Decode(&c); err != nil {
			return nil, err
		}
		out = append(out, &c)
	}
	return out, cur.Err()
}

func (m *MongoRepo) Count(ctx context.Context) (int64, error) {
	return m.col.CountDocuments(ctx, bson.M{})
}
