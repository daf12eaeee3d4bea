// Localescout - Business Review Analytics and Location Scouting
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/localescout

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
)

func serveSession(t *testing.T, opts SessionOptions, req *http.Request) (*httptest.ResponseRecorder, string) {
	t.Helper()
	var got string
	handler := Session(opts)(func(w http.ResponseWriter, r *http.Request) {
		got = GetSessionID(r.Context())
	})
	rec := httptest.NewRecorder()
	handler(rec, req)
	return rec, got
}

func TestSession_IssuesCookie(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec, id := serveSession(t, SessionOptions{Secure: true}, req)

	if _, err := uuid.Parse(id); err != nil {
		t.Fatalf("session ID %q is not a UUID", id)
	}
	cookies := rec.Result().Cookies()
	if len(cookies) != 1 {
		t.Fatalf("cookies = %d, want 1", len(cookies))
	}
	c := cookies[0]
	if c.Name != SessionCookie || c.Value != id {
		t.Errorf("cookie = %s=%s, want %s=%s", c.Name, c.Value, SessionCookie, id)
	}
	if !c.HttpOnly || !c.Secure {
		t.Error("session cookie should be HttpOnly and Secure")
	}
	if c.MaxAge != int((24 * time.Hour).Seconds()) {
		t.Errorf("MaxAge = %d", c.MaxAge)
	}
	if rec.Header().Get(SessionHeader) != id {
		t.Error("session ID not echoed in header")
	}
}

func TestSession_Sources(t *testing.T) {
	tests := []struct {
		name       string
		header     string
		cookie     string
		want       string
		wantIssued bool
	}{
		{"header wins", "api-client-1", "browser-1", "api-client-1", false},
		{"cookie", "", "browser-1", "browser-1", false},
		{"bad header falls back to cookie", "bad id!", "browser-1", "browser-1", false},
		{"bad cookie issues new", "", "<script>", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set(SessionHeader, tt.header)
			}
			if tt.cookie != "" {
				req.AddCookie(&http.Cookie{Name: SessionCookie, Value: tt.cookie})
			}

			rec, id := serveSession(t, SessionOptions{}, req)
			issued := len(rec.Result().Cookies()) > 0
			if issued != tt.wantIssued {
				t.Errorf("issued = %v, want %v", issued, tt.wantIssued)
			}
			if tt.want != "" && id != tt.want {
				t.Errorf("session = %q, want %q", id, tt.want)
			}
		})
	}
}

func TestValidSessionID(t *testing.T) {
	valid := []string{"a", "abc-DEF_123", uuid.New().String()}
	invalid := []string{"", "has space", "semi;colon", string(make([]byte, maxSessionIDLength+1))}
	for _, id := range valid {
		if !validSessionID(id) {
			t.Errorf("%q should be valid", id)
		}
	}
	for _, id := range invalid {
		if validSessionID(id) {
			t.Errorf("%q should be invalid", id)
		}
	}
}
