package sqlerr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/deppfellow/blog-backend/internal/errs"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapCode(t *testing.T) {
	tests := map[string]Code{
		"23502": NotNullViolation,
		"23503": ForeignKeyViolation,
		"23505": UniqueViolation,
		"23514": CheckViolation,
		"40001": SerializationFailed,
		"40P01": DeadlockDetected,
		"25006": ReadOnlyTransaction,
		"42P01": Other,
	}

	for state, want := range tests {
		assert.Equal(t, want, MapCode(state), state)
	}
}

func TestConvertPgError_RecoversForeignKeyColumn(t *testing.T) {
	pgErr := &pgconn.PgError{
		Severity:       "ERROR",
		Code:           "23503",
		Message:        `insert or update on table "post_like" violates foreign key constraint "post_like_post_id_fkey"`,
		TableName:      "post_like",
		ConstraintName: "post_like_post_id_fkey",
	}

	sqlErr := ConvertPgError(pgErr)

	assert.Equal(t, ForeignKeyViolation, sqlErr.Code)
	assert.Equal(t, SeverityError, sqlErr.Severity)
	assert.Equal(t, "post_id", sqlErr.ColumnName)

	var unwrapped *pgconn.PgError
	require.True(t, errors.As(sqlErr, &unwrapped))
	assert.Same(t, pgErr, unwrapped)
}

func TestWrap(t *testing.T) {
	assert.NoError(t, Wrap(nil, "insert post"))

	pgErr := &pgconn.PgError{Code: "23505", ConstraintName: "user_username_key"}
	err := Wrap(pgErr, "insert user")

	assert.Contains(t, err.Error(), "insert user: ")
	assert.Equal(t, UniqueViolation, ErrCode(err))

	plain := Wrap(errors.New("connection reset"), "find posts")
	assert.EqualError(t, plain, "find posts: connection reset")
	assert.Equal(t, Other, ErrCode(plain))
}

func TestHandleError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
		wantMsg    string
	}{
		{
			name: "foreign key from driver",
			err: Wrap(&pgconn.PgError{
				Code:           "23503",
				TableName:      "comment",
				ConstraintName: "comment_user_id_fkey",
			}, "insert comment"),
			wantStatus: http.StatusBadRequest,
			wantCode:   "USER_NOT_FOUND",
			wantMsg:    "The referenced User does not exist",
		},
		{
			name: "foreign key already converted",
			err: fmt.Errorf("insert like: %w", &Error{
				Code:       ForeignKeyViolation,
				TableName:  "post_like",
				ColumnName: "post_id",
			}),
			wantStatus: http.StatusBadRequest,
			wantCode:   "POST_NOT_FOUND",
			wantMsg:    "The referenced Post does not exist",
		},
		{
			name: "unique violation names the column",
			err: &pgconn.PgError{
				Code:           "23505",
				TableName:      "user",
				ConstraintName: "user_username_key",
			},
			wantStatus: http.StatusBadRequest,
			wantCode:   "USER_ALREADY_EXISTS",
			wantMsg:    "A User with this Username already exists",
		},
		{
			name: "not null",
			err: &pgconn.PgError{
				Code:       "23502",
				TableName:  "post",
				ColumnName: "title",
			},
			wantStatus: http.StatusBadRequest,
			wantCode:   "POST_REQUIRED",
			wantMsg:    "The Title is required",
		},
		{
			name:       "serialization failure is a server error",
			err:        &pgconn.PgError{Code: "40001"},
			wantStatus: http.StatusInternalServerError,
			wantCode:   "INTERNAL_SERVER_ERROR",
			wantMsg:    "Internal Server Error",
		},
		{
			name:       "no rows",
			err:        fmt.Errorf("find post: %w", pgx.ErrNoRows),
			wantStatus: http.StatusNotFound,
			wantCode:   "NOT_FOUND",
			wantMsg:    "Resource not found",
		},
		{
			name:       "unknown",
			err:        errors.New("boom"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   "INTERNAL_SERVER_ERROR",
			wantMsg:    "Internal Server Error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var httpErr *errs.HTTPError
			require.ErrorAs(t, HandleError(tt.err), &httpErr)
			assert.Equal(t, tt.wantStatus, httpErr.Status)
			assert.Equal(t, tt.wantCode, httpErr.Code)
			assert.Equal(t, tt.wantMsg, httpErr.Message)
		})
	}
}

func TestHandleError_PassesHTTPErrorThrough(t *testing.T) {
	original := errs.NewTooManyRequestsError()
	assert.Same(t, original, HandleError(original))
}
