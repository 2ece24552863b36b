package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewBadges(t *testing.T) {
	tests := []struct {
		name      string
		existing  []string
		postCount int
		want      []string
	}{
		{"first post", nil, 1, []string{"First Post"}},
		{"second post earns nothing", []string{"First Post"}, 2, nil},
		{"tenth post", []string{"First Post"}, 10, []string{"10 Posts"}},
		{"fiftieth post", []string{"First Post", "10 Posts"}, 50, []string{"50 Posts"}},
		{"already held", []string{"First Post"}, 1, nil},
		{"between thresholds", []string{"First Post", "10 Posts"}, 11, nil},
		{"zero posts", nil, 0, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NewBadges(tt.existing, tt.postCount))
		})
	}
}
