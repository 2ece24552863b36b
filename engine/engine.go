// Package engine holds the reputation and post mutation rules: toggle
// semantics for votes, bookmarks and comment upvotes, threaded comment
// insertion, and badge thresholds. It works on decoded documents and
// performs no I/O; handlers translate the returned changes into atomic
// MongoDB update operators.
package engine

import "errors"

var (
	ErrInvalidDirection      = errors.New("invalid vote direction")
	ErrParentCommentNotFound = errors.New("parent comment not found")
	ErrCommentNotFound       = errors.New("comment not found")
)

// Direction of a post vote.
type Direction string

const (
	Upvote   Direction = "upvote"
	Downvote Direction = "downvote"
)

// Reputation deltas applied to content authors. Vote deltas target the
// post author, not the voter; switching sides applies both (net ±3).
const (
	RepPostCreated    = 10
	RepCommentAdded   = 3
	RepUpvoteGained   = 2
	RepUpvoteLost     = -2
	RepDownvoteGained = -1
	RepDownvoteLost   = 1
	RepCommentUpvote  = 1
)

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

// remove reuses list's backing array; callers always reassign the
// result over the input.
func remove(list []string, s string) []string {
	out := list[:0]
	for _, v := range list {
		if v != s {
			out = append(out, v)
		}
	}
	return out
}
