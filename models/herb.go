package models

// Herb is a catalog entry with its multimedia detail fields. It is
// independent of the forum documents; users reference it only through
// their bookmarkedHerbs list.
type Herb struct {
	ID                   string   `bson:"_id" json:"id"`
	Name                 string   `bson:"name" json:"name"`
	BotanicalName        string   `bson:"botanicalName" json:"botanicalName"`
	CommonNames          string   `bson:"commonNames" json:"commonNames"`
	Region               string   `bson:"region" json:"region"`
	Type                 string   `bson:"type" json:"type"`
	Habitat              string   `bson:"habitat" json:"habitat"`
	Description          string   `bson:"description" json:"description"`
	MedicinalUses        string   `bson:"medicinalUses" json:"medicinalUses"`
	MethodsOfCultivation string   `bson:"methodsOfCultivation" json:"methodsOfCultivation"`
	ImageSrc             string   `bson:"imageSrc" json:"imageSrc"`
	Multimedia1          string   `bson:"multimedia1" json:"multimedia1"`
	Multimedia2          string   `bson:"multimedia2" json:"multimedia2"`
	Multimedia3          string   `bson:"multimedia3" json:"multimedia3"`
	Multimedia4          string   `bson:"multimedia4" json:"multimedia4"`
	AudioSrc             string   `bson:"audioSrc" json:"audioSrc"`
	SketchfabModelURL    string   `bson:"sketchfabModelUrl" json:"sketchfabModelUrl"`
	BookmarkedBy         []string `bson:"bookmarkedBy" json:"bookmarkedBy"`
	PostedBy             string   `bson:"postedBy" json:"postedBy"`
	IsAdmin              bool     `bson:"isAdmin" json:"isAdmin"`
	CreatedAt            int64    `bson:"createdAt" json:"createdAt"`
}
