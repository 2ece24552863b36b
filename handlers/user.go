package handlers

import (
	"context"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"herbgarden/database"
	"herbgarden/models"
)

type UpdateProfileRequest struct {
	DisplayName string `json:"displayName"`
	Bio         string `json:"bio"`
	ProfilePic  string `json:"profilePic"`
}

func GetMyProfile(c *gin.Context) {
	userID := c.GetString("userId")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var user models.User
	err := database.Users.FindOne(ctx, bson.M{"_id": userID}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		c.JSON(http.StatusNotFound, gin.H{"error": "Profile not found"})
		return
	}
	if err != nil {
		log.Printf("GetMyProfile database error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch profile"})
		return
	}

	if user.ProfilePic == "" {
		user.ProfilePic = fallbackAvatar
	}

	c.JSON(http.StatusOK, user)
}

func UpdateMyProfile(c *gin.Context) {
	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON data"})
		return
	}

	userID := c.GetString("userId")

	set := bson.M{}
	if req.DisplayName != "" {
		set["displayName"] = req.DisplayName
	}
	if req.Bio != "" {
		set["bio"] = req.Bio
	}
	if req.ProfilePic != "" {
		set["profilePic"] = req.ProfilePic
	}

	if len(set) == 0 {
		c.JSON(http.StatusOK, gin.H{"message": "No changes to update"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	result, err := database.Users.UpdateOne(ctx, bson.M{"_id": userID}, bson.M{"$set": set})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update profile"})
		return
	}
	if result.MatchedCount == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	// Display name changes only affect future posts and comments; the
	// denormalized userName on existing documents is left as written.
	c.JSON(http.StatusOK, gin.H{"message": "Profile updated successfully"})
}

// GetUser returns the public slice of a profile: display name,
// reputation, badges, bio and bookmark lists.
func GetUser(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var user models.User
	err := database.Users.FindOne(ctx, bson.M{"_id": c.Param("id")}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch user"})
		return
	}

	displayName := user.DisplayName
	if displayName == "" {
		displayName = "Anonymous"
	}
	profilePic := user.ProfilePic
	if profilePic == "" {
		profilePic = fallbackAvatar
	}

	c.JSON(http.StatusOK, gin.H{
		"uid":             user.ID,
		"displayName":     displayName,
		"profilePic":      profilePic,
		"reputation":      user.Reputation,
		"bio":             user.Bio,
		"badges":          user.Badges,
		"bookmarks":       user.Bookmarks,
		"bookmarkedHerbs": user.BookmarkedHerbs,
	})
}

// GetLeaderboard lists the top users by reputation.
func GetLeaderboard(c *gin.Context) {
	limit := int64(10)
	if raw := c.Query("limit"); raw != "" {
		if n, err := strconv.ParseInt(raw, 10, 64); err == nil && n > 0 && n <= 100 {
			limit = n
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	findOptions := options.Find().
		SetSort(bson.D{{Key: "reputation", Value: -1}}).
		SetLimit(limit)

	cursor, err := database.Users.Find(ctx, bson.M{}, findOptions)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch leaderboard"})
		return
	}
	defer cursor.Close(ctx)

	var users []models.User
	if err := cursor.All(ctx, &users); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to decode leaderboard"})
		return
	}

	entries := make([]gin.H, len(users))
	for i, u := range users {
		displayName := u.DisplayName
		if displayName == "" {
			displayName = "Anonymous"
		}
		entries[i] = gin.H{
			"uid":         u.ID,
			"displayName": displayName,
			"reputation":  u.Reputation,
			"badges":      u.Badges,
		}
	}

	c.JSON(http.StatusOK, entries)
}

// UpdateMyActivity stamps the activity fields the stats endpoints
// filter on. The frontend calls this on login and navigation.
func UpdateMyActivity(c *gin.Context) {
	userID := c.GetString("userId")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	now := time.Now().UTC()
	result, err := database.Users.UpdateOne(ctx, bson.M{"_id": userID}, bson.M{"$set": bson.M{
		"lastActive":      now.Format(time.RFC3339),
		"lastActiveDate":  now.Format("2006-01-02"),
		"lastActiveMonth": now.Format("2006-01"),
	}})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update activity"})
		return
	}
	if result.MatchedCount == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Activity updated"})
}
