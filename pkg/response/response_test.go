package response

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) Response {
	t.Helper()
	var resp Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func TestSuccess(t *testing.T) {
	rec := httptest.NewRecorder()
	Success(rec, 200, "done", map[string]string{"key": "value"})

	assert.Equal(t, 200, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	resp := decodeBody(t, rec)
	assert.True(t, resp.Success)
	assert.Equal(t, "done", resp.Message)
	assert.NotNil(t, resp.Data)
}

func TestErrorHelpers(t *testing.T) {
	cases := []struct {
		name string
		fn   func(rec *httptest.ResponseRecorder)
		code int
	}{
		{"bad request", func(rec *httptest.ResponseRecorder) { BadRequest(rec, "nope") }, 400},
		{"unauthorized", func(rec *httptest.ResponseRecorder) { Unauthorized(rec, "") }, 401},
		{"forbidden", func(rec *httptest.ResponseRecorder) { Forbidden(rec, "") }, 403},
		{"not found", func(rec *httptest.ResponseRecorder) { NotFound(rec, "") }, 404},
		{"conflict", func(rec *httptest.ResponseRecorder) { Conflict(rec, "") }, 409},
		{"internal", func(rec *httptest.ResponseRecorder) { InternalServerError(rec, "") }, 500},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			tc.fn(rec)

			assert.Equal(t, tc.code, rec.Code)
			resp := decodeBody(t, rec)
			assert.False(t, resp.Success)
			assert.NotEmpty(t, resp.Message)
		})
	}
}

func TestValidationError(t *testing.T) {
	rec := httptest.NewRecorder()
	ValidationError(rec, map[string]string{"Email": "Email is required"})

	assert.Equal(t, 400, rec.Code)
	resp := decodeBody(t, rec)
	assert.False(t, resp.Success)
	assert.Equal(t, "Validation failed", resp.Message)
	assert.NotNil(t, resp.Error)
}
