package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/orderdash/backend/internal/application/adapter"
)

// fakeTokenService accepts a single known token.
type fakeTokenService struct {
	valid string
	email string
}

func (f *fakeTokenService) GenerateAccessToken(email string) (string, error) {
	return f.valid, nil
}

func (f *fakeTokenService) ValidateAccessToken(token string) (*adapter.TokenClaims, error) {
	if token != f.valid {
		return nil, errors.New("invalid token")
	}
	return &adapter.TokenClaims{Email: f.email}, nil
}

func newAuthedRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	auth := NewAuthMiddleware(&fakeTokenService{valid: "good-token", email: "owner@orderdash.test"})
	router := gin.New()
	router.GET("/protected", auth.Authenticate(), func(c *gin.Context) {
		email, _ := GetUserEmailFromContext(c)
		c.String(http.StatusOK, email)
	})
	return router
}

func request(router *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	recorder := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	router.ServeHTTP(recorder, req)
	return recorder
}

func TestAuthenticateAcceptsValidBearerToken(t *testing.T) {
	router := newAuthedRouter(t)

	recorder := request(router, "Bearer good-token")

	if recorder.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", recorder.Code, recorder.Body.String())
	}
	if recorder.Body.String() != "owner@orderdash.test" {
		t.Fatalf("expected the claims email in context, got %q", recorder.Body.String())
	}
}

func TestAuthenticateRejectsBadRequests(t *testing.T) {
	router := newAuthedRouter(t)

	cases := []struct {
		name     string
		header   string
		wantCode string
	}{
		{"missing header", "", "AUTH-010002"},
		{"wrong scheme", "Basic abc123", "AUTH-010003"},
		{"empty token", "Bearer ", "AUTH-010002"},
		{"invalid token", "Bearer forged-token", "AUTH-010003"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			recorder := request(router, tc.header)
			if recorder.Code != http.StatusUnauthorized {
				t.Fatalf("expected 401, got %d", recorder.Code)
			}
			if !strings.Contains(recorder.Body.String(), tc.wantCode) {
				t.Fatalf("expected code %s in body, got %s", tc.wantCode, recorder.Body.String())
			}
		})
	}
}
