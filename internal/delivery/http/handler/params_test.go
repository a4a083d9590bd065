package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
)

func requestWithVars(vars map[string]string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	return mux.SetURLVars(req, vars)
}

func TestPathID(t *testing.T) {
	tests := []struct {
		name   string
		vars   map[string]string
		wantID int
		wantOK bool
	}{
		{"valid id", map[string]string{"id": "42"}, 42, true},
		{"zero id", map[string]string{"id": "0"}, 0, false},
		{"negative id", map[string]string{"id": "-3"}, 0, false},
		{"non numeric", map[string]string{"id": "abc"}, 0, false},
		{"missing", map[string]string{}, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, ok := pathID(requestWithVars(tt.vars), "id")
			if id != tt.wantID || ok != tt.wantOK {
				t.Errorf("pathID() = (%d, %v), want (%d, %v)", id, ok, tt.wantID, tt.wantOK)
			}
		})
	}
}

func TestPagination(t *testing.T) {
	tests := []struct {
		name      string
		query     string
		wantSkip  int
		wantLimit int
	}{
		{"defaults", "", 0, 20},
		{"explicit", "skip=40&limit=50", 40, 50},
		{"negative skip clamped", "skip=-5", 0, 20},
		{"limit above max", "limit=500", 0, 20},
		{"zero limit", "limit=0", 0, 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/?"+tt.query, nil)
			skip, limit := pagination(req)
			if skip != tt.wantSkip || limit != tt.wantLimit {
				t.Errorf("pagination() = (%d, %d), want (%d, %d)", skip, limit, tt.wantSkip, tt.wantLimit)
			}
		})
	}
}

func TestQueryInt(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/?doctor_id=7&bad=x", nil)
	if got := queryInt(req, "doctor_id"); got != 7 {
		t.Errorf("queryInt(doctor_id) = %d, want 7", got)
	}
	if got := queryInt(req, "bad"); got != 0 {
		t.Errorf("queryInt(bad) = %d, want 0", got)
	}
	if got := queryInt(req, "missing"); got != 0 {
		t.Errorf("queryInt(missing) = %d, want 0", got)
	}
}
