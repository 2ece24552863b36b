package engine

import "herbgarden/models"

// VoteChange describes how a vote call altered a post, in terms the
// persistence layer can map onto $inc / $addToSet / $pull so that
// concurrent voters never overwrite each other's membership entries.
type VoteChange struct {
	LikesDelta     int
	DislikesDelta  int
	AddLikedBy     bool
	PullLikedBy    bool
	AddDislikedBy  bool
	PullDislikedBy bool

	// AuthorRepDelta is applied to the post author's reputation.
	AuthorRepDelta int
}

// Changed reports whether the vote had any effect.
func (vc VoteChange) Changed() bool {
	return vc.LikesDelta != 0 || vc.DislikesDelta != 0
}

// ApplyVote applies tri-state toggle voting (none / up / down) for
// userID on the post, mutating it in place and returning the change.
// Requesting the held state clears it, requesting the opposite state
// switches, requesting from the neutral state acquires it. After the
// call Likes == len(LikedBy), Dislikes == len(DislikedBy) and the two
// sets stay disjoint.
func ApplyVote(post *models.Post, userID string, dir Direction) (VoteChange, error) {
	hasUp := contains(post.LikedBy, userID)
	hasDown := contains(post.DislikedBy, userID)

	var vc VoteChange
	switch dir {
	case Upvote:
		if hasUp {
			post.LikedBy = remove(post.LikedBy, userID)
			post.Likes--
			vc.PullLikedBy = true
			vc.LikesDelta = -1
			vc.AuthorRepDelta = RepUpvoteLost
			return vc, nil
		}
		post.LikedBy = append(post.LikedBy, userID)
		post.Likes++
		vc.AddLikedBy = true
		vc.LikesDelta = 1
		vc.AuthorRepDelta = RepUpvoteGained
		if hasDown {
			post.DislikedBy = remove(post.DislikedBy, userID)
			post.Dislikes--
			vc.PullDislikedBy = true
			vc.DislikesDelta = -1
			vc.AuthorRepDelta += RepDownvoteLost
		}
		return vc, nil

	case Downvote:
		if hasDown {
			post.DislikedBy = remove(post.DislikedBy, userID)
			post.Dislikes--
			vc.PullDislikedBy = true
			vc.DislikesDelta = -1
			vc.AuthorRepDelta = RepDownvoteLost
			return vc, nil
		}
		post.DislikedBy = append(post.DislikedBy, userID)
		post.Dislikes++
		vc.AddDislikedBy = true
		vc.DislikesDelta = 1
		vc.AuthorRepDelta = RepDownvoteGained
		if hasUp {
			post.LikedBy = remove(post.LikedBy, userID)
			post.Likes--
			vc.PullLikedBy = true
			vc.LikesDelta = -1
			vc.AuthorRepDelta += RepUpvoteLost
		}
		return vc, nil
	}

	return VoteChange{}, ErrInvalidDirection
}
