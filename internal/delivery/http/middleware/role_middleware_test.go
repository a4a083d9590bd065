package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"medicore/internal/domain/entity"
)

func requestWithRole(role string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	ctx := context.WithValue(req.Context(), RoleKey, role)
	return req.WithContext(ctx)
}

func TestRequireRole(t *testing.T) {
	tests := []struct {
		name     string
		role     string
		wantCode int
	}{
		{"admin allowed", "admin", http.StatusOK},
		{"doctor allowed", "doctor", http.StatusOK},
		{"nurse forbidden", "nurse", http.StatusForbidden},
		{"receptionist forbidden", "receptionist", http.StatusForbidden},
	}

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	guard := RequireRole(entity.RoleAdmin, entity.RoleDoctor)(next)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			guard.ServeHTTP(rec, requestWithRole(tt.role))
			if rec.Code != tt.wantCode {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantCode)
			}
		})
	}
}

func TestRequireRoleMissingContext(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler should not run without role in context")
	})
	guard := RequireAdmin(next)

	rec := httptest.NewRecorder()
	guard.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusUnauthorized)
	}
}

func TestRequireAdminOrDoctor(t *testing.T) {
	called := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	})
	guard := RequireAdminOrDoctor(next)

	rec := httptest.NewRecorder()
	guard.ServeHTTP(rec, requestWithRole("doctor"))
	if !called {
		t.Error("expected handler to run for doctor role")
	}
}
