package engine

// Badge thresholds keyed by total post count at creation time. Badges
// are monotonic: once granted they are never revoked, even if posts
// are deleted later.
var badgeThresholds = map[int]string{
	1:  "First Post",
	10: "10 Posts",
	50: "50 Posts",
}

// NewBadges returns the badges earned at postCount that the user does
// not already hold. The count must equal a threshold exactly, matching
// the award-at-creation evaluation.
func NewBadges(existing []string, postCount int) []string {
	badge, ok := badgeThresholds[postCount]
	if !ok || contains(existing, badge) {
		return nil
	}
	return []string{badge}
}
