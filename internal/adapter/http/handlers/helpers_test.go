package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"certifica_condo/internal/adapter/http/middleware"
	"certifica_condo/internal/domain/entities"

	"github.com/gin-gonic/gin"
)

var (
	adminActor = entities.Actor{Role: entities.RoleAdmin, ID: "adm-1"}
	condoActor = entities.Actor{Role: entities.RoleCondominio, ID: "cond-1"}
	empActor   = entities.Actor{Role: entities.RoleEmpresa, ID: "emp-1"}
)

// route builds a router with one handler; a nil actor means unauthenticated.
func route(method, path string, actor *entities.Actor, h gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	if actor != nil {
		r.Handle(method, path, middleware.WithActor(*actor), h)
	} else {
		r.Handle(method, path, h)
	}
	return r
}

func serve(r http.Handler, method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func errorCode(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("response is not json: %s", w.Body.String())
	}
	code, _ := body["code"].(string)
	return code
}
