package models

// RecommendationEntry maps a disease name (stored lower-cased) to the
// herbs suggested for it.
type RecommendationEntry struct {
	ID              string           `bson:"_id" json:"id"`
	Disease         string           `bson:"disease" json:"disease"`
	Recommendations []Recommendation `bson:"recommendations" json:"recommendations"`
}

type Recommendation struct {
	Herb        string `bson:"herb" json:"herb"`
	UsedFor     string `bson:"usedFor" json:"usedFor"`
	Preparation string `bson:"preparation" json:"preparation"`
	Dosage      string `bson:"dosage" json:"dosage"`
	Caution     string `bson:"caution,omitempty" json:"caution,omitempty"`
}
