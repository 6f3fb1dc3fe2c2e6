package handler

import (
	"testing"

	"github.com/deppfellow/blog-backend/internal/errs"
	"github.com/deppfellow/blog-backend/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptionalID(t *testing.T) {
	id, err := optionalID("userId", "")
	require.NoError(t, err)
	assert.Nil(t, id)

	id, err = optionalID("userId", "17")
	require.NoError(t, err)
	require.NotNil(t, id)
	assert.Equal(t, int64(17), *id)

	_, err = optionalID("userId", "99999999999999999999")
	var httpErr *errs.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, 400, httpErr.Status)
	assert.Equal(t, "userId", httpErr.Errors[0].Field)
}

func TestListRelationRequest_Filter(t *testing.T) {
	tests := []struct {
		name string
		req  ListRelationRequest
		want model.FilterKind
	}{
		{"none", ListRelationRequest{}, model.FilterNone},
		{"user", ListRelationRequest{UserID: "1"}, model.FilterByUser},
		{"post", ListRelationRequest{PostID: "2"}, model.FilterByPost},
		{"both", ListRelationRequest{UserID: "1", PostID: "2"}, model.FilterByUserAndPost},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			filter, err := tt.req.Filter()
			require.NoError(t, err)
			assert.Equal(t, tt.want, filter.Kind())
		})
	}
}

func TestRequestValidation(t *testing.T) {
	assert.NoError(t, (&IDRequest{ID: 1}).Validate())
	assert.Error(t, (&IDRequest{}).Validate())
	assert.Error(t, (&ListRelationRequest{PostID: "abc"}).Validate())
	assert.Error(t, (&CreateLikeRequest{model.LikeCreatePayload{UserID: 1}}).Validate())
	assert.NoError(t, (&UpdateCommentRequest{ID: 3, CommentUpdatePayload: model.CommentUpdatePayload{Text: "x"}}).Validate())
}
