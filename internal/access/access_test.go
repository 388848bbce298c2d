package access

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanUpdateStatus(t *testing.T) {
	assert.True(t, CanUpdateStatus(Actor{ID: 1, Role: "government"}))
	assert.False(t, CanUpdateStatus(Actor{ID: 1, Role: "user"}))

	// Ownership is irrelevant for status updates
	assert.False(t, CanUpdateStatus(Actor{ID: 42, Role: "user"}))
}

func TestCanDeleteReport(t *testing.T) {
	owner := int64(7)

	assert.True(t, CanDeleteReport(Actor{ID: 7, Role: "user"}, &owner), "owner may delete their own report")
	assert.False(t, CanDeleteReport(Actor{ID: 8, Role: "user"}, &owner), "non-owner non-government may not delete")
	assert.True(t, CanDeleteReport(Actor{ID: 8, Role: "government"}, &owner), "government may delete any report")

	// Orphaned report (owner account deleted): only government
	assert.False(t, CanDeleteReport(Actor{ID: 7, Role: "user"}, nil))
	assert.True(t, CanDeleteReport(Actor{ID: 7, Role: "government"}, nil))
}

func TestCanDeleteComment(t *testing.T) {
	assert.True(t, CanDeleteComment(Actor{ID: 3, Role: "user"}, 3))
	assert.False(t, CanDeleteComment(Actor{ID: 4, Role: "user"}, 3))
	assert.True(t, CanDeleteComment(Actor{ID: 4, Role: "government"}, 3))
}
