package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRelationFilterKind(t *testing.T) {
	userID, postID := int64(1), int64(2)

	tests := []struct {
		name   string
		filter RelationFilter
		want   FilterKind
	}{
		{"neither", RelationFilter{}, FilterNone},
		{"user only", RelationFilter{UserID: &userID}, FilterByUser},
		{"post only", RelationFilter{PostID: &postID}, FilterByPost},
		{"both", RelationFilter{UserID: &userID, PostID: &postID}, FilterByUserAndPost},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.filter.Kind())
		})
	}
}

func TestFilterKindString(t *testing.T) {
	assert.Equal(t, "none", FilterNone.String())
	assert.Equal(t, "by_user_and_post", FilterByUserAndPost.String())
}
