package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"certifica_condo/internal/domain/entities"

	"github.com/gin-gonic/gin"
)

func newAuthRouter(a *Authenticator, roles ...entities.Role) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	chain := []gin.HandlerFunc{a.Authenticate()}
	if len(roles) > 0 {
		chain = append(chain, RequireRole(roles...))
	}
	chain = append(chain, func(c *gin.Context) {
		actor, _ := ActorFrom(c)
		c.String(http.StatusOK, string(actor.Role)+":"+actor.ID)
	})
	r.GET("/me", chain...)
	return r
}

func doGet(r http.Handler, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthenticate(t *testing.T) {
	a := NewAuthenticator("secret", "certifica-condo")
	token, err := a.IssueToken(entities.Actor{Role: entities.RoleEmpresa, ID: "emp-1"}, time.Hour)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	t.Run("valid token", func(t *testing.T) {
		w := doGet(newAuthRouter(a), token)
		if w.Code != http.StatusOK || w.Body.String() != "empresa:emp-1" {
			t.Fatalf("expected 200 empresa:emp-1, got %d %q", w.Code, w.Body.String())
		}
	})

	t.Run("missing token", func(t *testing.T) {
		if w := doGet(newAuthRouter(a), ""); w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("wrong secret", func(t *testing.T) {
		other := NewAuthenticator("other", "certifica-condo")
		if w := doGet(newAuthRouter(other), token); w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("wrong issuer", func(t *testing.T) {
		other := NewAuthenticator("secret", "someone-else")
		if w := doGet(newAuthRouter(other), token); w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("expired", func(t *testing.T) {
		later := NewAuthenticator("secret", "certifica-condo")
		later.now = func() time.Time { return time.Now().Add(2 * time.Hour) }
		if w := doGet(newAuthRouter(later), token); w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("role not allowed", func(t *testing.T) {
		if w := doGet(newAuthRouter(a, entities.RoleAdmin), token); w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})
}

func TestIssueToken_RejectsUnknownRole(t *testing.T) {
	a := NewAuthenticator("secret", "x")
	if _, err := a.IssueToken(entities.Actor{Role: "root", ID: "1"}, time.Hour); err == nil {
		t.Fatalf("expected error for unknown role")
	}
}
