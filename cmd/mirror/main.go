package main

import (
	"context"
	"flag"
	"log"

	"speech-corpus/pkg/db"
	"speech-corpus/pkg/mirror"
)

func main() {
	var (
		rawRoot    = flag.String("raw", "data/raw", "raw corpus root directory")
		mongoURI   = flag.String("mongo", "mongodb://localhost:27017", "MongoDB connection string")
		database   = flag.String("db", "speechcorpus", "MongoDB database name")
		collection = flag.String("collection", "speeches", "MongoDB collection name")
	)
	flag.Parse()

	ctx := context.Background()

	client := db.NewClient(*mongoURI, *database, *collection)
	if err := client.Connect(ctx); err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer client.Close(ctx)

	m, err := mirror.New(mirror.Config{Mongo: client, RawRoot: *rawRoot})
	if err != nil {
		log.Fatalf("Failed to create mirror: %v", err)
	}

	mirrored, skipped, err := m.Run(ctx)
	if err != nil {
		log.Fatalf("Mirror run failed: %v", err)
	}
	log.Printf("Mirrored %d new speeches (%d already present)", mirrored, skipped)
}
