package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func postJSON(r http.Handler, path string, body interface{}) *httptest.ResponseRecorder {
	jsonBody, _ := json.Marshal(body)
	req, _ := http.NewRequest("POST", path, bytes.NewBuffer(jsonBody))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRegisterUser(t *testing.T) {
	h, _ := setupTestHandler()
	r := setupTestRouter(h)

	t.Run("Successful registration", func(t *testing.T) {
		w := postJSON(r, "/api/User/register", map[string]string{
			"name":     "Alice",
			"email":    "alice@example.com",
			"password": "hunter22",
		})

		assert.Equal(t, http.StatusOK, w.Code)

		var resp map[string]interface{}
		json.Unmarshal(w.Body.Bytes(), &resp)
		assert.Equal(t, "Alice", resp["userName"])
		assert.Equal(t, "alice@example.com", resp["email"])
		assert.NotZero(t, resp["id"])
		assert.NotContains(t, w.Body.String(), "hunter22")
	})

	t.Run("Duplicate email", func(t *testing.T) {
		w := postJSON(r, "/api/User/register", map[string]string{
			"name":     "Alice Again",
			"email":    "alice@example.com",
			"password": "hunter23",
		})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Email already exists")
	})

	t.Run("Missing fields", func(t *testing.T) {
		w := postJSON(r, "/api/User/register", map[string]string{"name": "NoEmail"})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Short password", func(t *testing.T) {
		w := postJSON(r, "/api/User/register", map[string]string{
			"name":     "Bob",
			"email":    "bob@example.com",
			"password": "12345",
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestLoginUser(t *testing.T) {
	h, _ := setupTestHandler()
	r := setupTestRouter(h)

	postJSON(r, "/api/User/register", map[string]string{
		"name":     "Carol",
		"email":    "carol@example.com",
		"password": "correct-horse",
	})

	t.Run("Successful login", func(t *testing.T) {
		w := postJSON(r, "/api/User/login", map[string]string{
			"email":    "carol@example.com",
			"password": "correct-horse",
		})

		assert.Equal(t, http.StatusOK, w.Code)

		var resp map[string]interface{}
		json.Unmarshal(w.Body.Bytes(), &resp)
		assert.NotEmpty(t, resp["jwttoken"])
		assert.NotZero(t, resp["userid"])
	})

	t.Run("Wrong password", func(t *testing.T) {
		w := postJSON(r, "/api/User/login", map[string]string{
			"email":    "carol@example.com",
			"password": "wrong",
		})

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "Invalid email or password")
	})

	t.Run("Unknown email gives identical message", func(t *testing.T) {
		w := postJSON(r, "/api/User/login", map[string]string{
			"email":    "nobody@example.com",
			"password": "whatever",
		})

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "Invalid email or password")
	})

	t.Run("Missing credentials", func(t *testing.T) {
		w := postJSON(r, "/api/User/login", map[string]string{"email": "carol@example.com"})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
