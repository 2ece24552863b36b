package engine

import (
	"time"

	"github.com/google/uuid"

	"herbgarden/models"
)

// NewComment builds a fresh leaf node. parentID may be empty for a
// top-level comment.
func NewComment(userID, userName, profilePic, text, parentID string) models.Comment {
	return models.Comment{
		ID:              uuid.NewString(),
		UserID:          userID,
		UserName:        userName,
		UserProfilePic:  profilePic,
		Text:            text,
		Upvotes:         0,
		UpvotedBy:       []string{},
		Replies:         []models.Comment{},
		ParentCommentID: parentID,
		CreatedAt:       time.Now().UTC().Format(time.RFC3339),
	}
}

// CommentIndex is a flat id→node view over a post's embedded comment
// tree, built in one walk so parent lookup and upvote targeting are
// O(1) instead of per-level recursion.
type CommentIndex map[string]*models.Comment

func IndexComments(comments []models.Comment) CommentIndex {
	idx := make(CommentIndex)
	var walk func(list []models.Comment)
	walk = func(list []models.Comment) {
		for i := range list {
			c := &list[i]
			idx[c.ID] = c
			walk(c.Replies)
		}
	}
	walk(comments)
	return idx
}

// InsertComment appends the comment to the post's top-level list, or
// to the replies of its parent when ParentCommentID is set. A missing
// parent is an error: the comment is rejected, never silently dropped.
func InsertComment(post *models.Post, c models.Comment) error {
	if c.ParentCommentID == "" {
		post.Comments = append(post.Comments, c)
		return nil
	}
	parent, ok := IndexComments(post.Comments)[c.ParentCommentID]
	if !ok {
		return ErrParentCommentNotFound
	}
	parent.Replies = append(parent.Replies, c)
	return nil
}

// CommentVoteChange reports the outcome of a comment upvote toggle.
type CommentVoteChange struct {
	AuthorID       string
	Upvoted        bool // true when the toggle added the vote
	AuthorRepDelta int
}

// ToggleCommentUpvote flips userID's upvote on the comment with the
// given id anywhere in the tree, keeping Upvotes == len(UpvotedBy).
func ToggleCommentUpvote(post *models.Post, commentID, userID string) (CommentVoteChange, error) {
	c, ok := IndexComments(post.Comments)[commentID]
	if !ok {
		return CommentVoteChange{}, ErrCommentNotFound
	}
	if contains(c.UpvotedBy, userID) {
		c.UpvotedBy = remove(c.UpvotedBy, userID)
		c.Upvotes--
		return CommentVoteChange{AuthorID: c.UserID, Upvoted: false, AuthorRepDelta: -RepCommentUpvote}, nil
	}
	c.UpvotedBy = append(c.UpvotedBy, userID)
	c.Upvotes++
	return CommentVoteChange{AuthorID: c.UserID, Upvoted: true, AuthorRepDelta: RepCommentUpvote}, nil
}

// CountComments returns the total number of nodes in the tree.
func CountComments(comments []models.Comment) int {
	n := 0
	for i := range comments {
		n += 1 + CountComments(comments[i].Replies)
	}
	return n
}
