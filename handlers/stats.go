package handlers

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"herbgarden/database"
	"herbgarden/models"
)

// Stats endpoints back the admin dashboard. They are read-mostly and
// unauthenticated, matching the original deployment. Per the original
// API contract they answer 200 on success and 500 with {error}
// otherwise.

// ActiveWindow is how recent lastActive must be for a user to count
// as currently active.
const ActiveWindow = 5 * time.Minute

// ActiveCutoff returns the lastActive lower bound for the active-user
// query. Timestamps are stored as RFC3339 UTC strings, which order
// lexicographically, so a plain $gt string comparison is correct.
func ActiveCutoff(now time.Time) string {
	return now.UTC().Add(-ActiveWindow).Format(time.RFC3339)
}

// DayKey returns the lastActiveDate value for the given instant.
func DayKey(now time.Time) string {
	return now.UTC().Format("2006-01-02")
}

// MonthKey returns the lastActiveMonth value for the given instant.
func MonthKey(now time.Time) string {
	return now.UTC().Format("2006-01")
}

// GetUsers lists every account for the admin dashboard.
func GetUsers(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	cursor, err := database.Users.Find(ctx, bson.M{})
	if err != nil {
		log.Printf("GetUsers error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch users"})
		return
	}
	defer cursor.Close(ctx)

	var users []models.User
	if err := cursor.All(ctx, &users); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch users"})
		return
	}

	listed := make([]gin.H, len(users))
	for i, u := range users {
		displayName := u.DisplayName
		if displayName == "" {
			displayName = "Anonymous"
		}
		listed[i] = gin.H{
			"uid":         u.ID,
			"email":       u.Email,
			"displayName": displayName,
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"totalUsers": len(listed),
		"users":      listed,
	})
}

func activeUsers(c *gin.Context, filter bson.M, label string) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	cursor, err := database.Users.Find(ctx, filter)
	if err != nil {
		log.Printf("Error fetching %s: %v", label, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch " + label})
		return
	}
	defer cursor.Close(ctx)

	users := []models.User{}
	if err := cursor.All(ctx, &users); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch " + label})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		label + "Count": len(users),
		label:           users,
	})
}

// GetActiveUsers lists users seen within the last five minutes.
func GetActiveUsers(c *gin.Context) {
	activeUsers(c, bson.M{"lastActive": bson.M{"$gt": ActiveCutoff(time.Now())}}, "activeUsers")
}

// GetDailyActiveUsers lists users active today (UTC).
func GetDailyActiveUsers(c *gin.Context) {
	activeUsers(c, bson.M{"lastActiveDate": DayKey(time.Now())}, "dailyActiveUsers")
}

// GetMonthlyActiveUsers lists users active this month (UTC).
func GetMonthlyActiveUsers(c *gin.Context) {
	activeUsers(c, bson.M{"lastActiveMonth": MonthKey(time.Now())}, "monthlyActiveUsers")
}

type visitCountDoc struct {
	ID    string `bson:"_id"`
	Count int64  `bson:"count"`
}

// GetVisitCount reads the site visit counter; a missing document
// reads as zero.
func GetVisitCount(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var doc visitCountDoc
	err := database.Stats.FindOne(ctx, bson.M{"_id": database.VisitCountID}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		c.JSON(http.StatusOK, gin.H{"visitCount": 0})
		return
	}
	if err != nil {
		log.Printf("GetVisitCount error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch visit count"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"visitCount": doc.Count})
}

// IncrementVisitCount bumps the counter atomically and returns the
// new value.
func IncrementVisitCount(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var doc visitCountDoc
	err := database.Stats.FindOneAndUpdate(ctx,
		bson.M{"_id": database.VisitCountID},
		bson.M{"$inc": bson.M{"count": 1}},
		options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After),
	).Decode(&doc)
	if err != nil {
		log.Printf("IncrementVisitCount error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update visit count"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"visitCount": doc.Count})
}
