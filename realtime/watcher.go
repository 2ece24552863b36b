// Package realtime bridges MongoDB change streams to the WebSocket
// hub. This is the server-side stand-in for the document store's
// subscription feeds: every insert/update/delete on a watched
// collection is pushed to all connected clients.
package realtime

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"herbgarden/websocket"
)

type Watcher struct {
	manager *websocket.Manager
}

func NewWatcher(manager *websocket.Manager) *Watcher {
	return &Watcher{manager: manager}
}

// Watch tails the collection's change stream until ctx is cancelled,
// reopening the stream after transient errors. entity names the event
// prefix, e.g. "post" yields post_created / post_updated /
// post_deleted.
func (w *Watcher) Watch(ctx context.Context, coll *mongo.Collection, entity string) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.D{
			{Key: "operationType", Value: bson.D{
				{Key: "$in", Value: bson.A{"insert", "update", "replace", "delete"}},
			}},
		}}},
	}

	for {
		if ctx.Err() != nil {
			return
		}

		stream, err := coll.Watch(ctx, pipeline,
			options.ChangeStream().SetFullDocument(options.UpdateLookup))
		if err != nil {
			// Change streams need a replica set; without one the live
			// feed is simply unavailable and clients fall back to
			// refetching.
			log.Printf("Change stream unavailable for %s: %v", coll.Name(), err)
			select {
			case <-ctx.Done():
				return
			case <-time.After(10 * time.Second):
				continue
			}
		}

		w.consume(ctx, stream, entity)
		stream.Close(context.Background())
	}
}

type changeEvent struct {
	OperationType string `bson:"operationType"`
	FullDocument  bson.M `bson:"fullDocument"`
	DocumentKey   struct {
		ID string `bson:"_id"`
	} `bson:"documentKey"`
}

func (w *Watcher) consume(ctx context.Context, stream *mongo.ChangeStream, entity string) {
	for stream.Next(ctx) {
		var ev changeEvent
		if err := stream.Decode(&ev); err != nil {
			log.Printf("Change stream decode error: %v", err)
			continue
		}

		switch ev.OperationType {
		case "insert":
			w.manager.BroadcastEvent(entity+"_created", ev.FullDocument)
		case "update", "replace":
			// fullDocument can be nil if the doc was deleted between
			// the update and the lookup.
			if ev.FullDocument != nil {
				w.manager.BroadcastEvent(entity+"_updated", ev.FullDocument)
			}
		case "delete":
			w.manager.BroadcastEvent(entity+"_deleted", map[string]string{"id": ev.DocumentKey.ID})
		}
	}

	if err := stream.Err(); err != nil && ctx.Err() == nil {
		log.Printf("Change stream error on %s, reopening: %v", entity, err)
	}
}
