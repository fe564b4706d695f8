package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func adminRequest(t *testing.T, claims map[string]interface{}) *http.Request {
	ja := jwtauth.New("HS256", []byte("test-secret-key"), nil)
	token, _, err := ja.Encode(claims)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/admins", nil)
	return req.WithContext(jwtauth.NewContext(context.Background(), token, nil))
}

func callAdminOnly(req *http.Request) (*httptest.ResponseRecorder, bool) {
	reached := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reached = true
		w.WriteHeader(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	AdminOnly(next).ServeHTTP(rec, req)
	return rec, reached
}

func TestAdminOnly_AllowsAdmin(t *testing.T) {
	req := adminRequest(t, map[string]interface{}{"user_id": "u1", "is_admin": true, "type": "access"})

	rec, reached := callAdminOnly(req)
	assert.True(t, reached)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAdminOnly_RejectsNonAdmin(t *testing.T) {
	req := adminRequest(t, map[string]interface{}{"user_id": "u1", "is_admin": false, "type": "access"})

	rec, reached := callAdminOnly(req)
	assert.False(t, reached)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestAdminOnly_RejectsMissingOrNonBoolClaim(t *testing.T) {
	missing := adminRequest(t, map[string]interface{}{"user_id": "u1", "type": "access"})
	rec, reached := callAdminOnly(missing)
	assert.False(t, reached)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	nonBool := adminRequest(t, map[string]interface{}{"user_id": "u1", "is_admin": "yes", "type": "access"})
	rec, reached = callAdminOnly(nonBool)
	assert.False(t, reached)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}
