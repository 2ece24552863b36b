package handlers

import (
	"context"
	"errors"
	"log"
	"strings"

	"github.com/SherClockHolmes/webpush-go"
	"go.mongodb.org/mongo-driver/mongo"

	"herbgarden/database"
	"herbgarden/websocket"
)

// Common constants and variables shared across all handler files
const fallbackAvatar = "https://upload.wikimedia.org/wikipedia/commons/8/89/Portrait_Placeholder.png"

var wsManager *websocket.Manager
var vapidPrivateKey string

// PushSubscription struct for push notifications
type PushSubscription struct {
	ID     string               `bson:"_id"`
	UserID string               `bson:"userId"`
	Sub    webpush.Subscription `bson:"sub"`
}

// SetWebSocketManager sets the global WebSocket manager
func SetWebSocketManager(manager *websocket.Manager) {
	wsManager = manager
}

// withTransaction runs fn inside a MongoDB transaction so that paired
// document writes (post counters + author reputation, bookmark set +
// user bookmark list) apply together or not at all. Standalone
// deployments reject transactions; there fn is re-run outside a
// session, which degrades to the sequential writes the app always
// shipped with.
func withTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	session, err := database.Client.StartSession()
	if err != nil {
		return fn(ctx)
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		return nil, fn(sc)
	})
	if err != nil && transactionsUnsupported(err) {
		log.Printf("Transactions unsupported, applying writes sequentially: %v", err)
		return fn(ctx)
	}
	return err
}

func transactionsUnsupported(err error) bool {
	var cmdErr mongo.CommandError
	if errors.As(err, &cmdErr) && cmdErr.Code == 20 { // IllegalOperation
		return true
	}
	return strings.Contains(err.Error(), "Transaction numbers are only allowed")
}
