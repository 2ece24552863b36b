package models

// User is the single document per account in the users collection.
// Reputation and badges are only ever written by the engine paths.
type User struct {
	ID              string   `bson:"_id" json:"uid"`
	Email           string   `bson:"email" json:"email"`
	PasswordHash    *string  `bson:"passwordHash,omitempty" json:"-"`
	AuthProvider    string   `bson:"authProvider" json:"authProvider"`
	DisplayName     string   `bson:"displayName" json:"displayName"`
	ProfilePic      string   `bson:"profilePic" json:"profilePic"`
	Bio             string   `bson:"bio" json:"bio"`
	Reputation      int      `bson:"reputation" json:"reputation"`
	Badges          []string `bson:"badges" json:"badges"`
	Bookmarks       []string `bson:"bookmarks" json:"bookmarks"`             // post ids
	BookmarkedHerbs []string `bson:"bookmarkedHerbs" json:"bookmarkedHerbs"` // herb ids
	CreatedAt       int64    `bson:"createdAt" json:"createdAt"`

	// Activity stamps consumed by the stats endpoints.
	LastActive      string `bson:"lastActive,omitempty" json:"lastActive,omitempty"`           // RFC3339
	LastActiveDate  string `bson:"lastActiveDate,omitempty" json:"lastActiveDate,omitempty"`   // YYYY-MM-DD
	LastActiveMonth string `bson:"lastActiveMonth,omitempty" json:"lastActiveMonth,omitempty"` // YYYY-MM
}
