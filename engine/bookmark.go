package engine

// ToggleBookmark flips member's presence in a bookmark set, returning
// the updated set and whether the member is now present. Bookmarking a
// post or herb is two mirrored applications of this flip: the user id
// toggled in the entity's bookmarkedBy set and the entity id toggled
// in the user's bookmark list. Handlers map the result onto paired
// $addToSet / $pull writes, so applying the toggle twice restores both
// sets.
func ToggleBookmark(set []string, member string) ([]string, bool) {
	if contains(set, member) {
		return remove(set, member), false
	}
	return append(set, member), true
}
