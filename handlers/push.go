package handlers

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/SherClockHolmes/webpush-go"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"herbgarden/database"
)

func init() {
	// Initialize VAPID keys if not set in environment
	if os.Getenv("VAPID_PUBLIC_KEY") == "" || os.Getenv("VAPID_PRIVATE_KEY") == "" {
		publicKey, privateKey, err := webpush.GenerateVAPIDKeys()
		if err != nil {
			log.Printf("Failed to generate VAPID keys: %v", err)
			return
		}

		// In-memory only; production sets these as environment
		// variables so subscriptions survive restarts.
		os.Setenv("VAPID_PUBLIC_KEY", publicKey)
		os.Setenv("VAPID_PRIVATE_KEY", privateKey)

		log.Println("⚠️  Generated new VAPID keys - for production, set these as environment variables:")
		log.Printf("   VAPID_PUBLIC_KEY: %s", publicKey)
		log.Printf("   VAPID_PRIVATE_KEY: %s", privateKey)
	}

	vapidPrivateKey = os.Getenv("VAPID_PRIVATE_KEY")
}

func GetVapidPublicKey(c *gin.Context) {
	publicKey := os.Getenv("VAPID_PUBLIC_KEY")
	if publicKey == "" {
		c.JSON(http.StatusOK, gin.H{
			"error":   "VAPID public key not configured",
			"message": "Contact administrator",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"publicKey": publicKey})
}

func SubscribePush(c *gin.Context) {
	var req struct {
		Endpoint string `json:"endpoint" binding:"required"`
		Keys     struct {
			P256dh string `json:"p256dh" binding:"required"`
			Auth   string `json:"auth" binding:"required"`
		} `json:"keys" binding:"required"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID := c.GetString("userId")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pushSub := PushSubscription{
		ID:     uuid.NewString(),
		UserID: userID,
		Sub: webpush.Subscription{
			Endpoint: req.Endpoint,
			Keys: webpush.Keys{
				P256dh: req.Keys.P256dh,
				Auth:   req.Keys.Auth,
			},
		},
	}

	// Upsert: update if exists, insert if not
	_, err := database.PushSubs.UpdateOne(
		ctx,
		bson.M{"userId": userID},
		bson.M{"$set": bson.M{"userId": pushSub.UserID, "sub": pushSub.Sub}, "$setOnInsert": bson.M{"_id": pushSub.ID}},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		log.Printf("Failed to save subscription: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save subscription"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Push subscription saved successfully",
		"userId":  userID,
	})
}

// NotifyUser sends a web push to the user's registered subscription,
// if any. Failures are logged, never surfaced to the caller.
func NotifyUser(userID, title, body string) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var sub PushSubscription
	err := database.PushSubs.FindOne(ctx, bson.M{"userId": userID}).Decode(&sub)
	if err == mongo.ErrNoDocuments {
		return
	}
	if err != nil {
		log.Printf("Failed to load push subscription for user %s: %v", userID, err)
		return
	}

	payloadBytes, err := json.Marshal(map[string]string{
		"title": title,
		"body":  body,
	})
	if err != nil {
		log.Printf("Failed to marshal push payload: %v", err)
		return
	}

	resp, err := webpush.SendNotification(payloadBytes, &sub.Sub, &webpush.Options{
		Subscriber:      "mailto:admin@herbgarden.app",
		VAPIDPublicKey:  os.Getenv("VAPID_PUBLIC_KEY"),
		VAPIDPrivateKey: vapidPrivateKey,
		TTL:             30,
	})
	if err != nil {
		log.Printf("Failed to send push notification to user %s: %v", userID, err)
		return
	}
	defer resp.Body.Close()

	// If the subscription is gone (410), drop it
	if resp.StatusCode == http.StatusGone {
		if _, err := database.PushSubs.DeleteOne(ctx, bson.M{"userId": userID}); err != nil {
			log.Printf("Failed to delete expired subscription: %v", err)
		}
	}
}
