package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"fixdesk/models"
	"fixdesk/utils"

	"github.com/gin-gonic/gin"
)

func runAuth(t *testing.T, authHeader string) (*httptest.ResponseRecorder, *gin.Context) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	if authHeader != "" {
		c.Request.Header.Set("Authorization", authHeader)
	}
	JWTAuthMiddleware()(c)
	return w, c
}

func TestJWTAuthMiddlewareAcceptsValidToken(t *testing.T) {
	token, err := utils.GenerateToken("user-42", "user@building.example", time.Hour)
	if err != nil {
		t.Fatalf("generating token: %v", err)
	}

	w, c := runAuth(t, "Bearer "+token)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body: %s", w.Code, w.Body.String())
	}
	if got := c.GetString("userID"); got != "user-42" {
		t.Fatalf("userID = %q, want %q", got, "user-42")
	}
	v, ok := c.Get("sessionUser")
	if !ok {
		t.Fatal("sessionUser not set on the context")
	}
	user, ok := v.(models.SessionUser)
	if !ok || user.Email != "user@building.example" {
		t.Fatalf("sessionUser = %#v, want the token's email claim", v)
	}
}

func TestJWTAuthMiddlewareRejectsBadInput(t *testing.T) {
	tests := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"not a bearer token", "Basic abc123"},
		{"empty bearer token", "Bearer "},
		{"garbage token", "Bearer not.a.jwt"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w, _ := runAuth(t, tc.header)
			if w.Code != http.StatusUnauthorized {
				t.Fatalf("status = %d, want 401", w.Code)
			}
		})
	}
}

func TestJWTAuthMiddlewareRejectsExpiredToken(t *testing.T) {
	token, err := utils.GenerateToken("user-42", "user@building.example", -time.Minute)
	if err != nil {
		t.Fatalf("generating token: %v", err)
	}

	w, _ := runAuth(t, "Bearer "+token)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401 for an expired token", w.Code)
	}
}
