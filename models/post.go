package models

// Post types and default categories offered by the community UI.
var PostTypes = []string{"question", "experience", "media", "tip"}

var DefaultCategories = []string{
	"Digestion",
	"Immunity",
	"Haircare",
	"Skincare",
	"Stress",
	"DIY Remedies",
	"General",
	"Other",
}

// Comment is a node in the tree embedded inside its post document.
// Invariant: Upvotes == len(UpvotedBy).
type Comment struct {
	ID              string    `bson:"id" json:"id"`
	UserID          string    `bson:"userId" json:"userId"`
	UserName        string    `bson:"userName" json:"userName"`
	UserProfilePic  string    `bson:"userProfilePic,omitempty" json:"userProfilePic,omitempty"`
	Text            string    `bson:"text" json:"text"`
	Upvotes         int       `bson:"upvotes" json:"upvotes"`
	UpvotedBy       []string  `bson:"upvotedBy" json:"upvotedBy"`
	Replies         []Comment `bson:"replies" json:"replies"`
	ParentCommentID string    `bson:"parentCommentId,omitempty" json:"parentCommentId,omitempty"`
	CreatedAt       string    `bson:"createdAt" json:"createdAt"` // RFC3339
}

// Post invariants: LikedBy and DislikedBy are disjoint,
// Likes == len(LikedBy) and Dislikes == len(DislikedBy).
type Post struct {
	ID             string    `bson:"_id" json:"id"`
	Content        string    `bson:"content" json:"content"`
	UserID         string    `bson:"userId" json:"userId"`
	UserName       string    `bson:"userName" json:"userName"`
	UserProfilePic string    `bson:"userProfilePic,omitempty" json:"userProfilePic,omitempty"`
	PostType       string    `bson:"postType" json:"postType"`
	Categories     []string  `bson:"categories" json:"categories"`
	Media          []string  `bson:"media" json:"media"`
	SpaceID        string    `bson:"spaceId,omitempty" json:"spaceId,omitempty"`
	Likes          int       `bson:"likes" json:"likes"`
	Dislikes       int       `bson:"dislikes" json:"dislikes"`
	LikedBy        []string  `bson:"likedBy" json:"likedBy"`
	DislikedBy     []string  `bson:"dislikedBy" json:"dislikedBy"`
	BookmarkedBy   []string  `bson:"bookmarkedBy" json:"bookmarkedBy"`
	ReportedBy     []string  `bson:"reportedBy" json:"reportedBy"`
	Comments       []Comment `bson:"comments" json:"comments"`
	CreatedAt      int64     `bson:"createdAt" json:"createdAt"`
}
