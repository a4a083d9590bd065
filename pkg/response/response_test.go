package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func decode(t *testing.T, rec *httptest.ResponseRecorder) Response {
	t.Helper()
	var resp Response
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response body: %v", err)
	}
	return resp
}

func TestSuccess(t *testing.T) {
	rec := httptest.NewRecorder()
	Success(rec, http.StatusCreated, "Created", map[string]int{"id": 1})

	if rec.Code != http.StatusCreated {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusCreated)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q, want application/json", ct)
	}

	resp := decode(t, rec)
	if !resp.Success {
		t.Error("expected success = true")
	}
	if resp.Message != "Created" {
		t.Errorf("message = %q, want %q", resp.Message, "Created")
	}
}

func TestSuccessWithMeta(t *testing.T) {
	rec := httptest.NewRecorder()
	SuccessWithMeta(rec, http.StatusOK, "OK", []int{1, 2, 3}, &Meta{Skip: 0, Limit: 20, Count: 3})

	resp := decode(t, rec)
	if resp.Meta == nil {
		t.Fatal("expected meta to be set")
	}
	if resp.Meta.Count != 3 {
		t.Errorf("meta.count = %d, want 3", resp.Meta.Count)
	}
	if resp.Meta.Limit != 20 {
		t.Errorf("meta.limit = %d, want 20", resp.Meta.Limit)
	}
}

func TestValidationError(t *testing.T) {
	rec := httptest.NewRecorder()
	ValidationError(rec, map[string]string{"Email": "Email must be a valid email address"})

	if rec.Code != http.StatusUnprocessableEntity {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusUnprocessableEntity)
	}
	resp := decode(t, rec)
	if resp.Success {
		t.Error("expected success = false")
	}
	if resp.Error == nil {
		t.Error("expected error payload to be set")
	}
}

func TestBusinessRuleViolation(t *testing.T) {
	rec := httptest.NewRecorder()
	BusinessRuleViolation(rec, "Time slot is already booked")

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
	resp := decode(t, rec)
	if resp.Message != "Time slot is already booked" {
		t.Errorf("message = %q", resp.Message)
	}
}

func TestErrorHelpers(t *testing.T) {
	tests := []struct {
		name string
		call func(w http.ResponseWriter)
		code int
	}{
		{"unauthorized", func(w http.ResponseWriter) { Unauthorized(w, "") }, http.StatusUnauthorized},
		{"forbidden", func(w http.ResponseWriter) { Forbidden(w, "") }, http.StatusForbidden},
		{"not found", func(w http.ResponseWriter) { NotFound(w, "Patient not found") }, http.StatusNotFound},
		{"conflict", func(w http.ResponseWriter) { Conflict(w, "Username already exists") }, http.StatusConflict},
		{"internal", func(w http.ResponseWriter) { InternalServerError(w, "") }, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			tt.call(rec)
			if rec.Code != tt.code {
				t.Errorf("status = %d, want %d", rec.Code, tt.code)
			}
			resp := decode(t, rec)
			if resp.Success {
				t.Error("expected success = false")
			}
			if resp.Message == "" {
				t.Error("expected a default message")
			}
		})
	}
}
