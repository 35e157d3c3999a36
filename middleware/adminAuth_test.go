package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"geolumiere/config"
	"geolumiere/models"
	"geolumiere/utils"
)

type stubAuthService struct {
	active bool
}

func (s *stubAuthService) Login(context.Context, string, string) (string, *models.User, error) {
	return "", nil, nil
}

func (s *stubAuthService) Logout(context.Context, string) error { return nil }

func (s *stubAuthService) IsSessionActive(context.Context, string) (bool, error) {
	return s.active, nil
}

func adminTestRouter(svc *stubAuthService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/admin", AdminAuthMiddleware(svc), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"adminID": c.GetString("adminID")})
	})
	return r
}

func requestWithToken(r *gin.Engine, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAdminAuthMiddleware(t *testing.T) {
	config.AppConfig.JWTSecret = "test-secret"

	valid, err := utils.GenerateToken("admin-1", "admin@geolumiere.bj", time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	expired, err := utils.GenerateToken("admin-1", "admin@geolumiere.bj", -time.Minute)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	cases := []struct {
		name   string
		token  string
		active bool
		want   int
	}{
		{"no token", "", true, http.StatusUnauthorized},
		{"valid token, active session", valid, true, http.StatusOK},
		{"valid token, revoked session", valid, false, http.StatusUnauthorized},
		// A garbage token must fail on the signature check even when the
		// session store would vouch for it.
		{"malformed token, active session", "not-a-jwt", true, http.StatusUnauthorized},
		{"expired token, active session", expired, true, http.StatusUnauthorized},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := requestWithToken(adminTestRouter(&stubAuthService{active: tc.active}), tc.token)
			if w.Code != tc.want {
				t.Errorf("status = %d, want %d", w.Code, tc.want)
			}
		})
	}
}

func TestAdminAuthMiddlewareRejectsForeignSignature(t *testing.T) {
	config.AppConfig.JWTSecret = "other-secret"
	forged, err := utils.GenerateToken("admin-1", "admin@geolumiere.bj", time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	config.AppConfig.JWTSecret = "test-secret"
	w := requestWithToken(adminTestRouter(&stubAuthService{active: true}), forged)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want %d", w.Code, http.StatusUnauthorized)
	}
}
