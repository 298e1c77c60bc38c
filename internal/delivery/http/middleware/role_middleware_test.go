package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"clinic-api/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func requestWithRole(roleID int) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	ctx := context.WithValue(req.Context(), RoleIDKey, roleID)
	return req.WithContext(ctx)
}

func TestRequireRole_Allows(t *testing.T) {
	called := false
	h := RequireRole(entity.RoleIDDoctor)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, requestWithRole(entity.RoleIDDoctor))

	assert.True(t, called)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRequireRole_Forbids(t *testing.T) {
	called := false
	h := RequireRole(entity.RoleIDAdmin)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, requestWithRole(entity.RoleIDPatient))

	assert.False(t, called)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRequireRole_MissingRole(t *testing.T) {
	h := RequireRole(entity.RoleIDAdmin)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run without a role in context")
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireDoctorOrAdmin(t *testing.T) {
	for roleID, want := range map[int]int{
		entity.RoleIDAdmin:   http.StatusOK,
		entity.RoleIDDoctor:  http.StatusOK,
		entity.RoleIDPatient: http.StatusForbidden,
	} {
		rec := httptest.NewRecorder()
		RequireDoctorOrAdmin(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})).
			ServeHTTP(rec, requestWithRole(roleID))

		assert.Equal(t, want, rec.Code, "role %d", roleID)
	}
}
