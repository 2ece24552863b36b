package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"herbgarden/models"
)

func TestNewComment(t *testing.T) {
	c := NewComment("u1", "Asha", "", "Tulsi tea worked for me", "")

	assert.NotEmpty(t, c.ID)
	assert.Equal(t, "u1", c.UserID)
	assert.Equal(t, 0, c.Upvotes)
	assert.Empty(t, c.UpvotedBy)
	assert.Empty(t, c.Replies)
	assert.NotEmpty(t, c.CreatedAt)

	c2 := NewComment("u2", "Ravi", "", "Same here", c.ID)
	assert.NotEqual(t, c.ID, c2.ID)
	assert.Equal(t, c.ID, c2.ParentCommentID)
}

func TestInsertCommentTopLevel(t *testing.T) {
	post := newTestPost()

	err := InsertComment(&post, NewComment("u1", "Asha", "", "first", ""))
	require.NoError(t, err)

	assert.Len(t, post.Comments, 1)
	assert.Equal(t, "first", post.Comments[0].Text)
}

func TestInsertCommentUnderParent(t *testing.T) {
	post := newTestPost()

	parent := NewComment("u1", "Asha", "", "parent", "")
	sibling := NewComment("u2", "Ravi", "", "sibling", "")
	require.NoError(t, InsertComment(&post, parent))
	require.NoError(t, InsertComment(&post, sibling))

	reply := NewComment("u3", "Meera", "", "reply", parent.ID)
	require.NoError(t, InsertComment(&post, reply))

	// Exactly the parent gains a reply; the sibling is untouched.
	assert.Len(t, post.Comments, 2)
	assert.Len(t, post.Comments[0].Replies, 1)
	assert.Len(t, post.Comments[1].Replies, 0)
	assert.Equal(t, "reply", post.Comments[0].Replies[0].Text)
}

func TestInsertCommentDeepNesting(t *testing.T) {
	post := newTestPost()

	parentID := ""
	var leafID string
	for i := 0; i < 5; i++ {
		c := NewComment("u1", "Asha", "", "level", parentID)
		require.NoError(t, InsertComment(&post, c))
		parentID = c.ID
		leafID = c.ID
	}

	assert.Equal(t, 5, CountComments(post.Comments))

	// The deepest node is reachable through the index.
	idx := IndexComments(post.Comments)
	leaf, ok := idx[leafID]
	require.True(t, ok)
	assert.Empty(t, leaf.Replies)
}

func TestInsertCommentUnknownParentRejected(t *testing.T) {
	post := newTestPost()
	require.NoError(t, InsertComment(&post, NewComment("u1", "Asha", "", "top", "")))

	err := InsertComment(&post, NewComment("u2", "Ravi", "", "orphan", "no-such-id"))
	assert.ErrorIs(t, err, ErrParentCommentNotFound)

	// The comment must not be dropped into the tree anywhere.
	assert.Equal(t, 1, CountComments(post.Comments))
}

func TestToggleCommentUpvote(t *testing.T) {
	post := newTestPost()
	c := NewComment("author2", "Asha", "", "upvote me", "")
	require.NoError(t, InsertComment(&post, c))

	cvc, err := ToggleCommentUpvote(&post, c.ID, "voter")
	require.NoError(t, err)
	assert.True(t, cvc.Upvoted)
	assert.Equal(t, "author2", cvc.AuthorID)
	assert.Equal(t, RepCommentUpvote, cvc.AuthorRepDelta)
	assert.Equal(t, 1, post.Comments[0].Upvotes)
	assert.Contains(t, post.Comments[0].UpvotedBy, "voter")

	// Second toggle by the same user reverses the first.
	cvc, err = ToggleCommentUpvote(&post, c.ID, "voter")
	require.NoError(t, err)
	assert.False(t, cvc.Upvoted)
	assert.Equal(t, -RepCommentUpvote, cvc.AuthorRepDelta)
	assert.Equal(t, 0, post.Comments[0].Upvotes)
	assert.NotContains(t, post.Comments[0].UpvotedBy, "voter")
}

func TestToggleCommentUpvoteNestedTarget(t *testing.T) {
	post := newTestPost()
	parent := NewComment("u1", "Asha", "", "parent", "")
	require.NoError(t, InsertComment(&post, parent))
	reply := NewComment("u2", "Ravi", "", "reply", parent.ID)
	require.NoError(t, InsertComment(&post, reply))

	cvc, err := ToggleCommentUpvote(&post, reply.ID, "voter")
	require.NoError(t, err)
	assert.Equal(t, "u2", cvc.AuthorID)

	assert.Equal(t, 1, post.Comments[0].Replies[0].Upvotes)
	assert.Equal(t, 0, post.Comments[0].Upvotes, "parent counters must not move")
}

func TestToggleCommentUpvoteUnknownComment(t *testing.T) {
	post := newTestPost()
	_, err := ToggleCommentUpvote(&post, "missing", "voter")
	assert.ErrorIs(t, err, ErrCommentNotFound)
}

func TestCountComments(t *testing.T) {
	post := newTestPost()
	assert.Equal(t, 0, CountComments(post.Comments))

	a := NewComment("u1", "A", "", "a", "")
	require.NoError(t, InsertComment(&post, a))
	require.NoError(t, InsertComment(&post, NewComment("u2", "B", "", "b", "")))
	require.NoError(t, InsertComment(&post, NewComment("u3", "C", "", "c", a.ID)))

	assert.Equal(t, 3, CountComments(post.Comments))
}

func TestIndexCommentsCoversWholeTree(t *testing.T) {
	comments := []models.Comment{
		{ID: "a", Replies: []models.Comment{
			{ID: "b", Replies: []models.Comment{{ID: "c"}}},
		}},
		{ID: "d"},
	}

	idx := IndexComments(comments)
	assert.Len(t, idx, 4)
	for _, id := range []string{"a", "b", "c", "d"} {
		assert.Contains(t, idx, id)
	}
}
