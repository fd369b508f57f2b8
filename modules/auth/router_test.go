package auth_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/sessionkit/modules/auth"
)

func newRouterEnv(t *testing.T) (http.Handler, *authEnv) {
	t.Helper()

	env := newAuthEnv(t)
	return auth.Router(env.svc, env.gate), env
}

func doJSON(t *testing.T, handler http.Handler, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	r := httptest.NewRequest(method, path, &buf)
	r.RemoteAddr = "203.0.113.5:443"
	r.Header.Set("User-Agent", uaChromeMac)
	r.Header.Set("Content-Type", "application/json")
	if token != "" {
		r.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, r)
	return w
}

func login(t *testing.T, handler http.Handler, username, password string) string {
	t.Helper()

	w := doJSON(t, handler, "POST", "/login", "", map[string]string{
		"username": username,
		"password": password,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		AccessToken string `json:"access_token"`
		TokenType   string `json:"token_type"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, "bearer", resp.TokenType)
	require.NotEmpty(t, resp.AccessToken)
	return resp.AccessToken
}

func TestLoginEndpoint(t *testing.T) {
	t.Parallel()

	handler, _ := newRouterEnv(t)

	t.Run("success sets cookie and returns token", func(t *testing.T) {
		t.Parallel()

		w := doJSON(t, handler, "POST", "/login", "", map[string]string{
			"username": "alice",
			"password": "correct-password",
		})
		require.Equal(t, http.StatusOK, w.Code)

		cookies := w.Result().Cookies()
		require.Len(t, cookies, 1)
		assert.Equal(t, "session_token", cookies[0].Name)
		assert.NotEmpty(t, cookies[0].Value)
		assert.True(t, cookies[0].HttpOnly)
	})

	t.Run("wrong password is 401", func(t *testing.T) {
		t.Parallel()

		w := doJSON(t, handler, "POST", "/login", "", map[string]string{
			"username": "alice",
			"password": "wrong",
		})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.JSONEq(t, `{"error":"invalid credentials"}`, w.Body.String())
	})

	t.Run("unknown user is the same 401", func(t *testing.T) {
		t.Parallel()

		w := doJSON(t, handler, "POST", "/login", "", map[string]string{
			"username": "nobody",
			"password": "correct-password",
		})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.JSONEq(t, `{"error":"invalid credentials"}`, w.Body.String())
	})

	t.Run("malformed body is 400", func(t *testing.T) {
		t.Parallel()

		r := httptest.NewRequest("POST", "/login", bytes.NewBufferString("{not json"))
		r.RemoteAddr = "203.0.113.5:443"
		r.Header.Set("User-Agent", uaChromeMac)
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, r)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestSessionEndpoint(t *testing.T) {
	t.Parallel()

	handler, _ := newRouterEnv(t)
	token := login(t, handler, "alice", "correct-password")

	t.Run("authenticated", func(t *testing.T) {
		w := doJSON(t, handler, "GET", "/session", token, nil)
		require.Equal(t, http.StatusOK, w.Code)

		var info struct {
			Username string `json:"username"`
			Role     string `json:"role"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &info))
		assert.Equal(t, "alice", info.Username)
		assert.Equal(t, "user", info.Role)
	})

	t.Run("no credential is 401", func(t *testing.T) {
		w := doJSON(t, handler, "GET", "/session", "", nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("garbage credential is 403", func(t *testing.T) {
		w := doJSON(t, handler, "GET", "/session", "garbage-token", nil)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}

func TestLogoutEndpoint(t *testing.T) {
	t.Parallel()

	handler, _ := newRouterEnv(t)
	token := login(t, handler, "alice", "correct-password")

	w := doJSON(t, handler, "POST", "/logout", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	// Cookie cleared.
	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Empty(t, cookies[0].Value)
	assert.Negative(t, cookies[0].MaxAge)

	// The session is gone; the token no longer authenticates.
	w = doJSON(t, handler, "GET", "/session", token, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	t.Run("second logout with the revoked token still acks", func(t *testing.T) {
		w := doJSON(t, handler, "POST", "/logout", token, nil)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"status":"logged out"}`, w.Body.String())
	})

	t.Run("garbage token still acks", func(t *testing.T) {
		w := doJSON(t, handler, "POST", "/logout", "garbage-token", nil)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"status":"logged out"}`, w.Body.String())

		// And the cookie is cleared either way.
		cookies := w.Result().Cookies()
		require.Len(t, cookies, 1)
		assert.Empty(t, cookies[0].Value)
	})

	t.Run("missing credential is 403", func(t *testing.T) {
		w := doJSON(t, handler, "POST", "/logout", "", nil)
		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.JSONEq(t, `{"error":"invalid or expired session"}`, w.Body.String())
	})
}

func TestTokenBoundToClient(t *testing.T) {
	t.Parallel()

	handler, _ := newRouterEnv(t)
	token := login(t, handler, "alice", "correct-password")

	// Same token from a different address: rejected and destroyed.
	r := httptest.NewRequest("GET", "/session", nil)
	r.RemoteAddr = "198.51.100.7:443"
	r.Header.Set("User-Agent", uaChromeMac)
	r.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, r)
	assert.Equal(t, http.StatusForbidden, w.Code)

	// The legitimate client lost the session too.
	w2 := doJSON(t, handler, "GET", "/session", token, nil)
	assert.Equal(t, http.StatusForbidden, w2.Code)
}
