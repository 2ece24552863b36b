package database

import (
	"context"
	"log"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var Client *mongo.Client
var Users *mongo.Collection
var Posts *mongo.Collection
var Herbs *mongo.Collection
var Spaces *mongo.Collection
var Stats *mongo.Collection
var Recommendations *mongo.Collection
var PushSubs *mongo.Collection

// VisitCountID is the fixed document id of the site visit counter in
// the stats collection.
const VisitCountID = "visitCount"

func DatabaseName() string {
	if name := os.Getenv("MONGO_DB"); name != "" {
		return name
	}
	return "herbgarden"
}

func ConnectMongo() error {
	// Read MongoDB URI from environment variable
	uri := os.Getenv("MONGODB_URI")
	if uri == "" {
		log.Println("MONGODB_URI not set, using default localhost")
		uri = "mongodb://127.0.0.1:27017"
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	var err error
	Client, err = mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return err
	}

	// Ping MongoDB
	if err := Client.Ping(ctx, nil); err != nil {
		return err
	}

	db := Client.Database(DatabaseName())
	Users = db.Collection("users")
	Posts = db.Collection("posts")
	Herbs = db.Collection("herbs")
	Spaces = db.Collection("spaces")
	Stats = db.Collection("stats")
	Recommendations = db.Collection("herbal_recommendations")
	PushSubs = db.Collection("push_subscriptions")

	log.Println("Connected to MongoDB successfully")
	return nil
}

func DisconnectMongo() error {
	if Client == nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := Client.Disconnect(ctx); err != nil {
		return err
	}

	log.Println("Disconnected from MongoDB")
	return nil
}
