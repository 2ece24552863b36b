package handlers

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"herbgarden/database"
	"herbgarden/models"
)

type CreateSpaceRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	CoverImage  string `json:"coverImage"`
}

// CreateSpace creates a sub-community with the creator as its first
// member.
func CreateSpace(c *gin.Context) {
	var req CreateSpaceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID := c.GetString("userId")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	space := models.Space{
		ID:          uuid.NewString(),
		Name:        req.Name,
		Description: req.Description,
		CoverImage:  req.CoverImage,
		CreatedBy:   userID,
		Members:     []string{userID},
		CreatedAt:   time.Now().Unix(),
	}

	if _, err := database.Spaces.InsertOne(ctx, space); err != nil {
		log.Printf("CreateSpace insert error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create space"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Space created successfully",
		"spaceId": space.ID,
	})
}

func GetSpaces(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	cursor, err := database.Spaces.Find(ctx, bson.M{})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch spaces"})
		return
	}
	defer cursor.Close(ctx)

	spaces := []models.Space{}
	if err := cursor.All(ctx, &spaces); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to decode spaces"})
		return
	}

	c.JSON(http.StatusOK, spaces)
}

func GetSpace(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var space models.Space
	err := database.Spaces.FindOne(ctx, bson.M{"_id": c.Param("id")}).Decode(&space)
	if err == mongo.ErrNoDocuments {
		c.JSON(http.StatusNotFound, gin.H{"error": "Space not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch space"})
		return
	}

	c.JSON(http.StatusOK, space)
}

// JoinSpace adds the caller to the member set; joining twice is a
// no-op thanks to $addToSet.
func JoinSpace(c *gin.Context) {
	userID := c.GetString("userId")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	result, err := database.Spaces.UpdateOne(ctx, bson.M{"_id": c.Param("id")},
		bson.M{"$addToSet": bson.M{"members": userID}})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to join space"})
		return
	}
	if result.MatchedCount == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Space not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Joined space"})
}

func LeaveSpace(c *gin.Context) {
	userID := c.GetString("userId")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	result, err := database.Spaces.UpdateOne(ctx, bson.M{"_id": c.Param("id")},
		bson.M{"$pull": bson.M{"members": userID}})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to leave space"})
		return
	}
	if result.MatchedCount == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Space not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Left space"})
}
