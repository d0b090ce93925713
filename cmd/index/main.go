package main

import (
	"context"
	"log"
	"time"

	"gin-jobs/internal/config"
	"gin-jobs/internal/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func main() {
	log.Println("Starting migration...")

	cfg := config.Load()

	mongoDB := database.NewMongoDB(cfg.MongoURI, cfg.MongoDatabase)
	defer mongoDB.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	createIndexes(ctx, mongoDB.Database)

	log.Println("Migration completed successfully!")
}

func createIndexes(ctx context.Context, db *mongo.Database) {
	// Users indexes
	createIndex(ctx, db, "users", bson.D{{Key: "email", Value: 1}}, &options.IndexOptions{
		Unique: ptrBool(true),
	})
	createIndex(ctx, db, "users", bson.D{{Key: "resetPasswordToken", Value: 1}}, nil)

	// Jobs indexes. The text index backs topic statistics and keyword
	// search, the 2dsphere index backs radius search.
	createIndex(ctx, db, "jobs", bson.D{
		{Key: "title", Value: "text"},
		{Key: "description", Value: "text"},
	}, nil)
	createIndex(ctx, db, "jobs", bson.D{{Key: "location.coordinates", Value: "2dsphere"}}, nil)
	createIndex(ctx, db, "jobs", bson.D{{Key: "slug", Value: 1}}, nil)
	createIndex(ctx, db, "jobs", bson.D{{Key: "postingDate", Value: -1}}, nil)
	createIndex(ctx, db, "jobs", bson.D{{Key: "user", Value: 1}}, nil)

	createIndex(ctx, db, "jobs", bson.D{{Key: "applicants.userId", Value: 1}}, nil)
}

func createIndex(ctx context.Context, db *mongo.Database, collection string, keys bson.D, opts *options.IndexOptions) {
	indexModel := mongo.IndexModel{
		Keys:    keys,
		Options: opts,
	}

	name, err := db.Collection(collection).Indexes().CreateOne(ctx, indexModel)
	if err != nil {
		log.Printf("Warning: Failed to create index on %s: %v", collection, err)
		return
	}

	log.Printf("Created index %s on %s", name, collection)
}

func ptrBool(b bool) *bool {
	return &b
}
