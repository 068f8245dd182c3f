package common

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testTokenManager() *TokenManager {
	return NewTokenManager("test-secret", "eduverse")
}

func TestTokenRoundTrip(t *testing.T) {
	tm := testTokenManager()

	token, err := tm.Generate(42, "alice")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := tm.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, uint64(42), claims.UserID)
	assert.Equal(t, "alice", claims.Handle)
	assert.Equal(t, "eduverse", claims.Issuer)
}

func TestValidate_RejectsGarbage(t *testing.T) {
	_, err := testTokenManager().Validate("not.a.token")
	assert.Error(t, err)
}

func TestValidate_RejectsTampering(t *testing.T) {
	tm := testTokenManager()
	token, err := tm.Generate(42, "alice")
	require.NoError(t, err)

	_, err = tm.Validate(token + "x")
	assert.Error(t, err)
}

func TestValidate_RejectsWrongSecret(t *testing.T) {
	token, err := testTokenManager().Generate(42, "alice")
	require.NoError(t, err)

	other := NewTokenManager("other-secret", "eduverse")
	_, err = other.Validate(token)
	assert.Error(t, err)
}

func TestValidate_RejectsWrongIssuer(t *testing.T) {
	foreign := NewTokenManager("test-secret", "someone-else")
	token, err := foreign.Generate(42, "alice")
	require.NoError(t, err)

	_, err = testTokenManager().Validate(token)
	assert.Error(t, err)
}

func TestAuthMiddleware(t *testing.T) {
	tm := testTokenManager()

	var gotUserID uint64
	var gotOK bool
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserID, gotOK = UserIDFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})
	handler := tm.Middleware(next)

	t.Run("missing header", func(t *testing.T) {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("malformed header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Token abc")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("invalid token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer bogus")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("valid token reaches the handler", func(t *testing.T) {
		token, err := tm.Generate(7, "bob")
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.True(t, gotOK)
		assert.Equal(t, uint64(7), gotUserID)
	})
}
