package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"bloglist-backend/handlers"
	"bloglist-backend/store"
)

var testKey = []byte("test-secret")

// newApp wires a fresh echo instance with the full route table, the
// extraction chain and the error mapper over an in-memory store.
func newApp(t *testing.T) (*echo.Echo, *store.Memory) {
	t.Helper()
	st := store.NewMemory()
	e := echo.New()
	handlers.New(st, testKey).Register(e, true)
	return e, st
}

// do performs a JSON request against the app, optionally with a bearer token.
func do(t *testing.T, e *echo.Echo, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		req = httptest.NewRequest(method, path, bytes.NewReader(payload))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

// decode unmarshals a response body into a generic JSON value.
func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	out := map[string]interface{}{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func decodeList(t *testing.T, rec *httptest.ResponseRecorder) []map[string]interface{} {
	t.Helper()
	var out []map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

// signup creates a user through the API and returns its id.
func signup(t *testing.T, e *echo.Echo, username, name, password string) string {
	t.Helper()
	rec := do(t, e, http.MethodPost, "/api/users", "", map[string]string{
		"username": username,
		"name":     name,
		"password": password,
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	id, _ := decode(t, rec)["id"].(string)
	require.NotEmpty(t, id)
	return id
}

// login signs in through the API and returns the bearer token.
func login(t *testing.T, e *echo.Echo, username, password string) string {
	t.Helper()
	rec := do(t, e, http.MethodPost, "/api/login", "", map[string]string{
		"username": username,
		"password": password,
	})
	require.Equal(t, http.StatusOK, rec.Code)
	token, _ := decode(t, rec)["token"].(string)
	require.NotEmpty(t, token)
	return token
}

// blogCount returns the current size of the blog collection as seen by the API.
func blogCount(t *testing.T, e *echo.Echo) int {
	t.Helper()
	rec := do(t, e, http.MethodGet, "/api/blogs", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	return len(decodeList(t, rec))
}
