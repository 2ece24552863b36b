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
	"go.mongodb.org/mongo-driver/mongo/options"

	"herbgarden/database"
	"herbgarden/engine"
	"herbgarden/models"
)

type CreatePostRequest struct {
	Content    string   `json:"content" binding:"required"`
	PostType   string   `json:"postType" binding:"required,oneof=question experience media tip"`
	Categories []string `json:"categories"`
	Media      []string `json:"media"`
	SpaceID    string   `json:"spaceId"`
}

func CreatePost(c *gin.Context) {
	var req CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID := c.GetString("userId")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var user models.User
	err := database.Users.FindOne(ctx, bson.M{"_id": userID}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	if req.Categories == nil {
		req.Categories = []string{}
	}
	if req.Media == nil {
		req.Media = []string{}
	}

	post := models.Post{
		ID:             uuid.NewString(),
		Content:        req.Content,
		UserID:         user.ID,
		UserName:       user.DisplayName,
		UserProfilePic: user.ProfilePic,
		PostType:       req.PostType,
		Categories:     req.Categories,
		Media:          req.Media,
		SpaceID:        req.SpaceID,
		Likes:          0,
		Dislikes:       0,
		LikedBy:        []string{},
		DislikedBy:     []string{},
		BookmarkedBy:   []string{},
		ReportedBy:     []string{},
		Comments:       []models.Comment{},
		CreatedAt:      time.Now().Unix(),
	}

	if _, err := database.Posts.InsertOne(ctx, post); err != nil {
		log.Printf("CreatePost insert error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create post"})
		return
	}

	// Award points for creating a post
	if _, err := database.Users.UpdateOne(ctx, bson.M{"_id": user.ID},
		bson.M{"$inc": bson.M{"reputation": engine.RepPostCreated}}); err != nil {
		log.Printf("CreatePost reputation update error: %v", err)
	}

	// Badge check against the live post count at creation time.
	count, err := database.Posts.CountDocuments(ctx, bson.M{"userId": user.ID})
	if err != nil {
		log.Printf("CreatePost badge count error: %v", err)
	} else if newBadges := engine.NewBadges(user.Badges, int(count)); len(newBadges) > 0 {
		if _, err := database.Users.UpdateOne(ctx, bson.M{"_id": user.ID},
			bson.M{"$addToSet": bson.M{"badges": bson.M{"$each": newBadges}}}); err != nil {
			log.Printf("CreatePost badge update error: %v", err)
		}
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Post created successfully",
		"postId":  post.ID,
	})
}

// GetPostMeta serves the post type and category vocabulary the post
// composer builds its pickers from.
func GetPostMeta(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"postTypes":  models.PostTypes,
		"categories": models.DefaultCategories,
	})
}

// GetPosts lists community posts, optionally filtered by category,
// postType or spaceId. order=asc|desc sorts by creation time.
func GetPosts(c *gin.Context) {
	filter := bson.M{}
	if category := c.Query("category"); category != "" {
		filter["categories"] = category
	}
	if postType := c.Query("postType"); postType != "" {
		filter["postType"] = postType
	}
	if spaceID := c.Query("spaceId"); spaceID != "" {
		filter["spaceId"] = spaceID
	}

	order := -1
	if c.Query("order") == "asc" {
		order = 1
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	findOptions := options.Find().SetSort(bson.D{{Key: "createdAt", Value: order}})
	cursor, err := database.Posts.Find(ctx, filter, findOptions)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch posts"})
		return
	}
	defer cursor.Close(ctx)

	posts := []models.Post{}
	if err := cursor.All(ctx, &posts); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to decode posts"})
		return
	}

	c.JSON(http.StatusOK, posts)
}

func GetPost(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var post models.Post
	err := database.Posts.FindOne(ctx, bson.M{"_id": c.Param("id")}).Decode(&post)
	if err == mongo.ErrNoDocuments {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch post"})
		return
	}

	c.JSON(http.StatusOK, post)
}

type VoteRequest struct {
	Direction string `json:"direction" binding:"required,oneof=upvote downvote"`
}

// VotePost applies the tri-state vote toggle. Counters and membership
// arrays go through $inc / $addToSet / $pull so concurrent voters
// cannot overwrite each other, and the author reputation update rides
// in the same transaction.
func VotePost(c *gin.Context) {
	var req VoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID := c.GetString("userId")
	postID := c.Param("id")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var post models.Post
	err := database.Posts.FindOne(ctx, bson.M{"_id": postID}).Decode(&post)
	if err == mongo.ErrNoDocuments {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch post"})
		return
	}

	vc, err := engine.ApplyVote(&post, userID, engine.Direction(req.Direction))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	inc := bson.M{}
	if vc.LikesDelta != 0 {
		inc["likes"] = vc.LikesDelta
	}
	if vc.DislikesDelta != 0 {
		inc["dislikes"] = vc.DislikesDelta
	}

	addToSet := bson.M{}
	if vc.AddLikedBy {
		addToSet["likedBy"] = userID
	}
	if vc.AddDislikedBy {
		addToSet["dislikedBy"] = userID
	}

	pull := bson.M{}
	if vc.PullLikedBy {
		pull["likedBy"] = userID
	}
	if vc.PullDislikedBy {
		pull["dislikedBy"] = userID
	}

	update := bson.M{"$inc": inc}
	if len(addToSet) > 0 {
		update["$addToSet"] = addToSet
	}
	if len(pull) > 0 {
		update["$pull"] = pull
	}

	err = withTransaction(ctx, func(ctx context.Context) error {
		if _, err := database.Posts.UpdateOne(ctx, bson.M{"_id": postID}, update); err != nil {
			return err
		}
		if vc.AuthorRepDelta != 0 {
			if _, err := database.Users.UpdateOne(ctx, bson.M{"_id": post.UserID},
				bson.M{"$inc": bson.M{"reputation": vc.AuthorRepDelta}}); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		log.Printf("VotePost update error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record vote"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "Vote recorded",
		"likes":    post.Likes,
		"dislikes": post.Dislikes,
	})
}

type AddCommentRequest struct {
	Text            string `json:"text" binding:"required"`
	ParentCommentID string `json:"parentCommentId"`
}

// AddComment appends a comment to the post's embedded tree, top-level
// or under parentCommentId. An unknown parent is rejected with 404
// rather than silently dropping the comment. The commenting user gets
// +3 reputation; the post author gets a push notification.
func AddComment(c *gin.Context) {
	var req AddCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID := c.GetString("userId")
	postID := c.Param("id")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var user models.User
	err := database.Users.FindOne(ctx, bson.M{"_id": userID}).Decode(&user)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found"})
		return
	}

	var post models.Post
	err = database.Posts.FindOne(ctx, bson.M{"_id": postID}).Decode(&post)
	if err == mongo.ErrNoDocuments {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch post"})
		return
	}

	comment := engine.NewComment(user.ID, user.DisplayName, user.ProfilePic, req.Text, req.ParentCommentID)
	if err := engine.InsertComment(&post, comment); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Parent comment not found"})
		return
	}

	// The embedded tree cannot be mutated at depth with array
	// operators, so the whole comments field is rewritten inside the
	// same transaction as the reputation increment.
	err = withTransaction(ctx, func(ctx context.Context) error {
		if _, err := database.Posts.UpdateOne(ctx, bson.M{"_id": postID},
			bson.M{"$set": bson.M{"comments": post.Comments}}); err != nil {
			return err
		}
		_, err := database.Users.UpdateOne(ctx, bson.M{"_id": user.ID},
			bson.M{"$inc": bson.M{"reputation": engine.RepCommentAdded}})
		return err
	})
	if err != nil {
		log.Printf("AddComment update error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add comment"})
		return
	}

	if post.UserID != user.ID {
		go NotifyUser(post.UserID, "New comment on your post", user.DisplayName+" commented: "+req.Text)
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":   "Comment added",
		"commentId": comment.ID,
	})
}

// UpvoteComment toggles the caller's upvote on a comment anywhere in
// the post's tree, with ±1 reputation to the comment author.
func UpvoteComment(c *gin.Context) {
	userID := c.GetString("userId")
	postID := c.Param("id")
	commentID := c.Param("commentId")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var post models.Post
	err := database.Posts.FindOne(ctx, bson.M{"_id": postID}).Decode(&post)
	if err == mongo.ErrNoDocuments {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch post"})
		return
	}

	cvc, err := engine.ToggleCommentUpvote(&post, commentID, userID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Comment not found"})
		return
	}

	err = withTransaction(ctx, func(ctx context.Context) error {
		if _, err := database.Posts.UpdateOne(ctx, bson.M{"_id": postID},
			bson.M{"$set": bson.M{"comments": post.Comments}}); err != nil {
			return err
		}
		if cvc.AuthorID == "" {
			return nil
		}
		_, err := database.Users.UpdateOne(ctx, bson.M{"_id": cvc.AuthorID},
			bson.M{"$inc": bson.M{"reputation": cvc.AuthorRepDelta}})
		return err
	})
	if err != nil {
		log.Printf("UpvoteComment update error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record comment vote"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Comment vote recorded",
		"upvoted": cvc.Upvoted,
	})
}

// ToggleBookmarkPost flips the caller's bookmark on a post, updating
// the post's bookmarkedBy set and the user's bookmarks list together.
func ToggleBookmarkPost(c *gin.Context) {
	userID := c.GetString("userId")
	postID := c.Param("id")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var post models.Post
	err := database.Posts.FindOne(ctx, bson.M{"_id": postID}).Decode(&post)
	if err == mongo.ErrNoDocuments {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch post"})
		return
	}

	var bookmarked bool
	post.BookmarkedBy, bookmarked = engine.ToggleBookmark(post.BookmarkedBy, userID)

	postUpdate := bson.M{"$addToSet": bson.M{"bookmarkedBy": userID}}
	userUpdate := bson.M{"$addToSet": bson.M{"bookmarks": postID}}
	if !bookmarked {
		postUpdate = bson.M{"$pull": bson.M{"bookmarkedBy": userID}}
		userUpdate = bson.M{"$pull": bson.M{"bookmarks": postID}}
	}

	err = withTransaction(ctx, func(ctx context.Context) error {
		if _, err := database.Posts.UpdateOne(ctx, bson.M{"_id": postID}, postUpdate); err != nil {
			return err
		}
		_, err := database.Users.UpdateOne(ctx, bson.M{"_id": userID}, userUpdate)
		return err
	})
	if err != nil {
		log.Printf("ToggleBookmarkPost update error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update bookmark"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":    "Bookmark updated",
		"bookmarked": bookmarked,
	})
}

// ReportPost is monotonic: a user can report a post once and there is
// no un-report. Moderation itself stays manual.
func ReportPost(c *gin.Context) {
	userID := c.GetString("userId")
	postID := c.Param("id")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	result, err := database.Posts.UpdateOne(ctx, bson.M{"_id": postID},
		bson.M{"$addToSet": bson.M{"reportedBy": userID}})
	if err != nil {
		log.Printf("ReportPost update error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to report post"})
		return
	}
	if result.MatchedCount == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Post reported"})
}

// DeletePost removes the caller's own post. Badges earned from it are
// never revoked.
func DeletePost(c *gin.Context) {
	userID := c.GetString("userId")
	postID := c.Param("id")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var post models.Post
	err := database.Posts.FindOne(ctx, bson.M{"_id": postID}).Decode(&post)
	if err == mongo.ErrNoDocuments {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch post"})
		return
	}

	if post.UserID != userID {
		c.JSON(http.StatusForbidden, gin.H{"error": "Not your post"})
		return
	}

	if _, err := database.Posts.DeleteOne(ctx, bson.M{"_id": postID}); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete post"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Post deleted"})
}
