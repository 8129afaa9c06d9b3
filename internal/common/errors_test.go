package common

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKindOf(t *testing.T) {
	assert.Equal(t, KindNotFound, KindOf(NotFound("missing")))
	assert.Equal(t, KindUnauthorized, KindOf(Unauthorized("no")))
	assert.Equal(t, KindConflict, KindOf(Conflict("taken")))
	assert.Equal(t, KindBadRequest, KindOf(BadRequest("bad")))
	assert.Equal(t, KindInternal, KindOf(Internal("boom")))

	// plain errors count as internal, wrapped kinds survive
	assert.Equal(t, KindInternal, KindOf(errors.New("db down")))
	assert.Equal(t, KindConflict, KindOf(fmt.Errorf("wrap: %w", Conflict("taken"))))
}

func TestWriteError_StatusMapping(t *testing.T) {
	tests := []struct {
		err        error
		wantStatus int
		wantBody   string
	}{
		{NotFound("User with id: 9 not found"), http.StatusNotFound, "User with id: 9 not found"},
		{Unauthorized("Invalid username"), http.StatusUnauthorized, "Invalid username"},
		{Conflict("Username is taken"), http.StatusConflict, "Username is taken"},
		{BadRequest("You can only delete your sent messages!"), http.StatusBadRequest, "You can only delete your sent messages!"},
		{Internal("zero rows"), http.StatusInternalServerError, "internal server error"},
		{errors.New("db down"), http.StatusInternalServerError, "internal server error"},
	}

	for _, tc := range tests {
		rec := httptest.NewRecorder()
		WriteError(rec, tc.err)
		require.Equal(t, tc.wantStatus, rec.Code)
		assert.Contains(t, rec.Body.String(), tc.wantBody)
	}
}
