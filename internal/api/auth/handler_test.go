package auth

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"focusdash-app/config"
	"focusdash-app/internal/testutil"

	"github.com/gin-gonic/gin"
)

func authRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/register", Register)
	r.POST("/login", Login)
	return r
}

func postJSON(t *testing.T, r *gin.Engine, path string, body map[string]interface{}) *httptest.ResponseRecorder {
	t.Helper()

	raw, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal body: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBuffer(raw))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRegisterAndLogin(t *testing.T) {
	testutil.SetupDB(t)
	config.JWT_SECRET = "test-secret"
	r := authRouter()

	w := postJSON(t, r, "/register", map[string]interface{}{
		"name":     "Ada",
		"email":    "ada@example.com",
		"password": "sup3rsecret",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("register: expected 200, got %d: %s", w.Code, w.Body.String())
	}

	w = postJSON(t, r, "/login", map[string]interface{}{
		"email":    "ada@example.com",
		"password": "sup3rsecret",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("login: expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp map[string]string
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decode login response: %v", err)
	}
	if resp["token"] == "" {
		t.Errorf("Expected a JWT in the login response")
	}
}

func TestRegister_WeakPassword(t *testing.T) {
	testutil.SetupDB(t)
	r := authRouter()

	tests := []struct {
		name     string
		password string
	}{
		{"too short", "ab1"},
		{"no digits", "onlyletters"},
		{"no letters", "1234567890"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := postJSON(t, r, "/register", map[string]interface{}{
				"name":     "Ada",
				"email":    "ada@example.com",
				"password": tt.password,
			})
			if w.Code != http.StatusBadRequest {
				t.Errorf("Expected 400 for weak password, got %d", w.Code)
			}
		})
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	testutil.SetupDB(t)
	r := authRouter()

	body := map[string]interface{}{
		"name":     "Ada",
		"email":    "ada@example.com",
		"password": "sup3rsecret",
	}
	if w := postJSON(t, r, "/register", body); w.Code != http.StatusOK {
		t.Fatalf("first register: expected 200, got %d", w.Code)
	}
	if w := postJSON(t, r, "/register", body); w.Code != http.StatusConflict {
		t.Errorf("Expected 409 for duplicate email, got %d", w.Code)
	}
}

func TestLogin_InvalidCredentials(t *testing.T) {
	testutil.SetupDB(t)
	config.JWT_SECRET = "test-secret"
	r := authRouter()

	if w := postJSON(t, r, "/register", map[string]interface{}{
		"name":     "Ada",
		"email":    "ada@example.com",
		"password": "sup3rsecret",
	}); w.Code != http.StatusOK {
		t.Fatalf("register: expected 200, got %d", w.Code)
	}

	w := postJSON(t, r, "/login", map[string]interface{}{
		"email":    "ada@example.com",
		"password": "wrongpass1",
	})
	if w.Code != http.StatusUnauthorized {
		t.Errorf("Expected 401 for wrong password, got %d", w.Code)
	}

	w = postJSON(t, r, "/login", map[string]interface{}{
		"email":    "nobody@example.com",
		"password": "sup3rsecret",
	})
	if w.Code != http.StatusUnauthorized {
		t.Errorf("Expected 401 for unknown user, got %d", w.Code)
	}
}
