package models

// Space is a named sub-community. Membership is toggled by
// join/leave; spaces are never auto-deleted.
type Space struct {
	ID          string   `bson:"_id" json:"id"`
	Name        string   `bson:"name" json:"name"`
	Description string   `bson:"description" json:"description"`
	CoverImage  string   `bson:"coverImage" json:"coverImage"`
	CreatedBy   string   `bson:"createdBy" json:"createdBy"`
	Members     []string `bson:"members" json:"members"`
	CreatedAt   int64    `bson:"createdAt" json:"createdAt"`
}
