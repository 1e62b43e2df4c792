package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"pneutrack/backend/internal/auth"
	"pneutrack/backend/internal/constants"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func requestAs(role constants.Role) *http.Request {
	req := httptest.NewRequest("GET", "/", nil)
	claims := &auth.SessionClaims{UserEmail: "x@company.com", UserRole: role, SessionID: "s"}
	return req.WithContext(auth.SetUserClaims(req.Context(), claims))
}

func TestIsManagerMiddleware(t *testing.T) {
	handler := IsManagerMiddleware()(okHandler())

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, requestAs(constants.RoleManager))
	if rr.Code != http.StatusOK {
		t.Errorf("manager should pass, got %d", rr.Code)
	}

	rr = httptest.NewRecorder()
	handler.ServeHTTP(rr, requestAs(constants.RoleTechnician))
	if rr.Code != http.StatusForbidden {
		t.Errorf("technician should be refused, got %d", rr.Code)
	}

	// no claims at all
	rr = httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest("GET", "/", nil))
	if rr.Code != http.StatusForbidden {
		t.Errorf("anonymous should be refused, got %d", rr.Code)
	}
}

func TestIsTechnicianMiddleware(t *testing.T) {
	handler := IsTechnicianMiddleware()(okHandler())

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, requestAs(constants.RoleTechnician))
	if rr.Code != http.StatusOK {
		t.Errorf("technician should pass, got %d", rr.Code)
	}

	rr = httptest.NewRecorder()
	handler.ServeHTTP(rr, requestAs(constants.RoleManager))
	if rr.Code != http.StatusForbidden {
		t.Errorf("manager should be refused, got %d", rr.Code)
	}
}

func TestRequestIDMiddleware(t *testing.T) {
	var seen string
	handler := RequestIDMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = RequestIDFromContext(r.Context())
	}))

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest("GET", "/", nil))

	if seen == "" {
		t.Errorf("expected a generated request id in context")
	}
	if rr.Header().Get("X-Request-ID") != seen {
		t.Errorf("response header should carry the same request id")
	}

	// caller-supplied ids survive
	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set("X-Request-ID", "fixed-id")
	rr = httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	if seen != "fixed-id" {
		t.Errorf("expected caller id to be kept, got %q", seen)
	}
}
