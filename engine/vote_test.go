package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"herbgarden/models"
)

func newTestPost() models.Post {
	return models.Post{
		ID:         "post-1",
		Content:    "Tulsi helps cough",
		UserID:     "author",
		UserName:   "Author",
		PostType:   "experience",
		Categories: []string{"Immunity"},
		LikedBy:    []string{},
		DislikedBy: []string{},
	}
}

// checkInvariants asserts the counter/membership invariants that must
// hold after every vote call.
func checkInvariants(t *testing.T, p *models.Post) {
	t.Helper()
	assert.Equal(t, len(p.LikedBy), p.Likes, "likes must equal likedBy cardinality")
	assert.Equal(t, len(p.DislikedBy), p.Dislikes, "dislikes must equal dislikedBy cardinality")
	for _, u := range p.LikedBy {
		assert.NotContains(t, p.DislikedBy, u, "a user may hold at most one vote state")
	}
}

func TestApplyVoteAcquireUpvote(t *testing.T) {
	post := newTestPost()

	vc, err := ApplyVote(&post, "voter", Upvote)
	require.NoError(t, err)

	assert.Equal(t, 1, post.Likes)
	assert.Contains(t, post.LikedBy, "voter")
	assert.Equal(t, RepUpvoteGained, vc.AuthorRepDelta)
	assert.True(t, vc.AddLikedBy)
	assert.False(t, vc.PullLikedBy)
	checkInvariants(t, &post)
}

func TestApplyVoteTogglePairIsIdempotent(t *testing.T) {
	post := newTestPost()

	vc1, err := ApplyVote(&post, "voter", Upvote)
	require.NoError(t, err)
	vc2, err := ApplyVote(&post, "voter", Upvote)
	require.NoError(t, err)

	assert.Equal(t, 0, post.Likes)
	assert.Equal(t, 0, post.Dislikes)
	assert.NotContains(t, post.LikedBy, "voter")
	assert.Equal(t, 0, vc1.AuthorRepDelta+vc2.AuthorRepDelta, "toggle pair must cancel out reputation")
	checkInvariants(t, &post)
}

func TestApplyVoteSwitchFromUpToDown(t *testing.T) {
	post := newTestPost()

	_, err := ApplyVote(&post, "voter", Upvote)
	require.NoError(t, err)

	vc, err := ApplyVote(&post, "voter", Downvote)
	require.NoError(t, err)

	assert.Equal(t, 0, post.Likes)
	assert.Equal(t, 1, post.Dislikes)
	assert.NotContains(t, post.LikedBy, "voter")
	assert.Contains(t, post.DislikedBy, "voter")
	// Losing the upvote (-2) and acquiring the downvote (-1).
	assert.Equal(t, -3, vc.AuthorRepDelta)
	assert.True(t, vc.AddDislikedBy)
	assert.True(t, vc.PullLikedBy)
	checkInvariants(t, &post)
}

func TestApplyVoteSwitchFromDownToUp(t *testing.T) {
	post := newTestPost()

	_, err := ApplyVote(&post, "voter", Downvote)
	require.NoError(t, err)

	vc, err := ApplyVote(&post, "voter", Upvote)
	require.NoError(t, err)

	assert.Equal(t, 1, post.Likes)
	assert.Equal(t, 0, post.Dislikes)
	assert.Equal(t, 3, vc.AuthorRepDelta)
	checkInvariants(t, &post)
}

func TestApplyVoteClearDownvote(t *testing.T) {
	post := newTestPost()

	_, err := ApplyVote(&post, "voter", Downvote)
	require.NoError(t, err)

	vc, err := ApplyVote(&post, "voter", Downvote)
	require.NoError(t, err)

	assert.Equal(t, 0, post.Dislikes)
	assert.Equal(t, RepDownvoteLost, vc.AuthorRepDelta)
	assert.True(t, vc.PullDislikedBy)
	checkInvariants(t, &post)
}

func TestApplyVoteInvalidDirection(t *testing.T) {
	post := newTestPost()

	_, err := ApplyVote(&post, "voter", Direction("sideways"))
	assert.ErrorIs(t, err, ErrInvalidDirection)
	assert.Equal(t, 0, post.Likes)
}

func TestApplyVoteIndependentVoters(t *testing.T) {
	post := newTestPost()

	_, err := ApplyVote(&post, "alice", Upvote)
	require.NoError(t, err)
	_, err = ApplyVote(&post, "bob", Upvote)
	require.NoError(t, err)
	_, err = ApplyVote(&post, "carol", Downvote)
	require.NoError(t, err)

	assert.Equal(t, 2, post.Likes)
	assert.Equal(t, 1, post.Dislikes)
	checkInvariants(t, &post)

	// alice clearing her vote must not disturb bob or carol.
	_, err = ApplyVote(&post, "alice", Upvote)
	require.NoError(t, err)
	assert.Equal(t, 1, post.Likes)
	assert.Contains(t, post.LikedBy, "bob")
	assert.Contains(t, post.DislikedBy, "carol")
	checkInvariants(t, &post)
}

// B upvotes A's post, then switches to a downvote. The author's
// reputation drops by 3 from its post-upvote peak.
func TestApplyVoteScenarioUpThenSwitch(t *testing.T) {
	post := newTestPost()
	authorRep := 0

	vc, err := ApplyVote(&post, "B", Upvote)
	require.NoError(t, err)
	authorRep += vc.AuthorRepDelta
	assert.Equal(t, 1, post.Likes)
	assert.Equal(t, 2, authorRep)

	vc, err = ApplyVote(&post, "B", Downvote)
	require.NoError(t, err)
	authorRep += vc.AuthorRepDelta
	assert.Equal(t, 0, post.Likes)
	assert.Equal(t, 1, post.Dislikes)
	assert.Equal(t, -1, authorRep)
}
