package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"herbgarden/models"
)

func TestToggleBookmarkAcquireAndClear(t *testing.T) {
	post := newTestPost()

	var bookmarked bool
	post.BookmarkedBy, bookmarked = ToggleBookmark(post.BookmarkedBy, "reader")
	assert.True(t, bookmarked)
	assert.Contains(t, post.BookmarkedBy, "reader")

	post.BookmarkedBy, bookmarked = ToggleBookmark(post.BookmarkedBy, "reader")
	assert.False(t, bookmarked)
	assert.NotContains(t, post.BookmarkedBy, "reader")
}

// Toggling a post bookmark twice restores both sides of the paired
// write: the post's bookmarkedBy set and the user's bookmarks list.
func TestToggleBookmarkPostRoundTrip(t *testing.T) {
	post := newTestPost()
	post.BookmarkedBy = []string{"earlier-reader"}
	user := models.User{ID: "reader", Bookmarks: []string{"post-0"}}

	var onPost, onUser bool
	post.BookmarkedBy, onPost = ToggleBookmark(post.BookmarkedBy, user.ID)
	user.Bookmarks, onUser = ToggleBookmark(user.Bookmarks, post.ID)
	assert.True(t, onPost)
	assert.True(t, onUser)

	post.BookmarkedBy, onPost = ToggleBookmark(post.BookmarkedBy, user.ID)
	user.Bookmarks, onUser = ToggleBookmark(user.Bookmarks, post.ID)
	assert.False(t, onPost)
	assert.False(t, onUser)

	assert.Equal(t, []string{"earlier-reader"}, post.BookmarkedBy)
	assert.Equal(t, []string{"post-0"}, user.Bookmarks)
}

// Same round trip for herbs, where the user side is bookmarkedHerbs.
func TestToggleBookmarkHerbRoundTrip(t *testing.T) {
	herb := models.Herb{ID: "herb-1", Name: "Tulsi", BookmarkedBy: []string{}}
	user := models.User{ID: "reader", BookmarkedHerbs: []string{}}

	herb.BookmarkedBy, _ = ToggleBookmark(herb.BookmarkedBy, user.ID)
	user.BookmarkedHerbs, _ = ToggleBookmark(user.BookmarkedHerbs, herb.ID)
	herb.BookmarkedBy, _ = ToggleBookmark(herb.BookmarkedBy, user.ID)
	user.BookmarkedHerbs, _ = ToggleBookmark(user.BookmarkedHerbs, herb.ID)

	assert.Equal(t, []string{}, herb.BookmarkedBy)
	assert.Equal(t, []string{}, user.BookmarkedHerbs)
}

func TestToggleBookmarkIndependentUsers(t *testing.T) {
	herb := models.Herb{ID: "herb-1", BookmarkedBy: []string{}}

	herb.BookmarkedBy, _ = ToggleBookmark(herb.BookmarkedBy, "alice")
	herb.BookmarkedBy, _ = ToggleBookmark(herb.BookmarkedBy, "bob")

	// alice clearing her bookmark must not disturb bob's.
	var bookmarked bool
	herb.BookmarkedBy, bookmarked = ToggleBookmark(herb.BookmarkedBy, "alice")
	assert.False(t, bookmarked)
	assert.Equal(t, []string{"bob"}, herb.BookmarkedBy)
}
