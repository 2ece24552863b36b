package handlers

import (
	"context"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"herbgarden/database"
	"herbgarden/engine"
	"herbgarden/models"
)

type HerbRequest struct {
	Name                 string `json:"name" binding:"required"`
	BotanicalName        string `json:"botanicalName"`
	CommonNames          string `json:"commonNames"`
	Region               string `json:"region"`
	Type                 string `json:"type"`
	Habitat              string `json:"habitat"`
	Description          string `json:"description"`
	MedicinalUses        string `json:"medicinalUses"`
	MethodsOfCultivation string `json:"methodsOfCultivation"`
	ImageSrc             string `json:"imageSrc"`
	Multimedia1          string `json:"multimedia1"`
	Multimedia2          string `json:"multimedia2"`
	Multimedia3          string `json:"multimedia3"`
	Multimedia4          string `json:"multimedia4"`
	AudioSrc             string `json:"audioSrc"`
	SketchfabModelURL    string `json:"sketchfabModelUrl"`
}

func GetHerbs(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	cursor, err := database.Herbs.Find(ctx, bson.M{})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch herbs"})
		return
	}
	defer cursor.Close(ctx)

	herbs := []models.Herb{}
	if err := cursor.All(ctx, &herbs); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to decode herbs"})
		return
	}

	c.JSON(http.StatusOK, herbs)
}

func GetHerb(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var herb models.Herb
	err := database.Herbs.FindOne(ctx, bson.M{"_id": c.Param("id")}).Decode(&herb)
	if err == mongo.ErrNoDocuments {
		c.JSON(http.StatusNotFound, gin.H{"error": "Herb not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch herb"})
		return
	}

	c.JSON(http.StatusOK, herb)
}

func CreateHerb(c *gin.Context) {
	var req HerbRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID := c.GetString("userId")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var user models.User
	if err := database.Users.FindOne(ctx, bson.M{"_id": userID}).Decode(&user); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found"})
		return
	}

	herb := models.Herb{
		ID:                   uuid.NewString(),
		Name:                 req.Name,
		BotanicalName:        req.BotanicalName,
		CommonNames:          req.CommonNames,
		Region:               req.Region,
		Type:                 req.Type,
		Habitat:              req.Habitat,
		Description:          req.Description,
		MedicinalUses:        req.MedicinalUses,
		MethodsOfCultivation: req.MethodsOfCultivation,
		ImageSrc:             req.ImageSrc,
		Multimedia1:          req.Multimedia1,
		Multimedia2:          req.Multimedia2,
		Multimedia3:          req.Multimedia3,
		Multimedia4:          req.Multimedia4,
		AudioSrc:             req.AudioSrc,
		SketchfabModelURL:    req.SketchfabModelURL,
		BookmarkedBy:         []string{},
		PostedBy:             user.ID,
		IsAdmin:              isAdminEmail(user.Email),
		CreatedAt:            time.Now().Unix(),
	}

	if _, err := database.Herbs.InsertOne(ctx, herb); err != nil {
		log.Printf("CreateHerb insert error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create herb"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Herb created successfully",
		"herbId":  herb.ID,
	})
}

func UpdateHerb(c *gin.Context) {
	var req HerbRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"name":                 req.Name,
		"botanicalName":        req.BotanicalName,
		"commonNames":          req.CommonNames,
		"region":               req.Region,
		"type":                 req.Type,
		"habitat":              req.Habitat,
		"description":          req.Description,
		"medicinalUses":        req.MedicinalUses,
		"methodsOfCultivation": req.MethodsOfCultivation,
		"imageSrc":             req.ImageSrc,
		"multimedia1":          req.Multimedia1,
		"multimedia2":          req.Multimedia2,
		"multimedia3":          req.Multimedia3,
		"multimedia4":          req.Multimedia4,
		"audioSrc":             req.AudioSrc,
		"sketchfabModelUrl":    req.SketchfabModelURL,
	}}

	result, err := database.Herbs.UpdateOne(ctx, bson.M{"_id": c.Param("id")}, update)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update herb"})
		return
	}
	if result.MatchedCount == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Herb not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Herb updated successfully"})
}

func DeleteHerb(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	result, err := database.Herbs.DeleteOne(ctx, bson.M{"_id": c.Param("id")})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete herb"})
		return
	}
	if result.DeletedCount == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Herb not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Herb deleted successfully"})
}

// ToggleBookmarkHerb flips the caller's bookmark on a herb, keeping
// the herb's bookmarkedBy set and the user's bookmarkedHerbs list in
// step.
func ToggleBookmarkHerb(c *gin.Context) {
	userID := c.GetString("userId")
	herbID := c.Param("id")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var herb models.Herb
	err := database.Herbs.FindOne(ctx, bson.M{"_id": herbID}).Decode(&herb)
	if err == mongo.ErrNoDocuments {
		c.JSON(http.StatusNotFound, gin.H{"error": "Herb not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch herb"})
		return
	}

	var bookmarked bool
	herb.BookmarkedBy, bookmarked = engine.ToggleBookmark(herb.BookmarkedBy, userID)

	herbUpdate := bson.M{"$addToSet": bson.M{"bookmarkedBy": userID}}
	userUpdate := bson.M{"$addToSet": bson.M{"bookmarkedHerbs": herbID}}
	if !bookmarked {
		herbUpdate = bson.M{"$pull": bson.M{"bookmarkedBy": userID}}
		userUpdate = bson.M{"$pull": bson.M{"bookmarkedHerbs": herbID}}
	}

	err = withTransaction(ctx, func(ctx context.Context) error {
		if _, err := database.Herbs.UpdateOne(ctx, bson.M{"_id": herbID}, herbUpdate); err != nil {
			return err
		}
		_, err := database.Users.UpdateOne(ctx, bson.M{"_id": userID}, userUpdate)
		return err
	})
	if err != nil {
		log.Printf("ToggleBookmarkHerb update error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update bookmark"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":    "Bookmark updated",
		"bookmarked": bookmarked,
	})
}

// GetRecommendations looks up herb suggestions for a disease. Disease
// names are stored lower-cased, so the query is folded before the
// exact match.
func GetRecommendations(c *gin.Context) {
	disease := NormalizeDisease(c.Query("disease"))
	if disease == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "disease query parameter is required"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var entry models.RecommendationEntry
	err := database.Recommendations.FindOne(ctx, bson.M{"disease": disease}).Decode(&entry)
	if err == mongo.ErrNoDocuments {
		c.JSON(http.StatusNotFound, gin.H{"error": "No recommendations found for that disease"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch recommendations"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"disease":         entry.Disease,
		"recommendations": entry.Recommendations,
	})
}

// NormalizeDisease folds a user-typed disease name to the stored key
// form.
func NormalizeDisease(q string) string {
	return strings.ToLower(strings.TrimSpace(q))
}

func isAdminEmail(email string) bool {
	admin := os.Getenv("ADMIN_EMAIL")
	return admin != "" && email == admin
}
