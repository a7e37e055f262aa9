// MusicFlow - Content-Based Music Recommendation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/musicflow

package api

import (
	"crypto/tls"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestNewChiMiddlewareFromSecurity(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		origins     []string
		reqs        int
		window      time.Duration
		wantOrigins []string
		wantReqs    int
		wantWindow  time.Duration
	}{
		{"defaults", nil, 0, 0, []string{"*"}, 100, time.Minute},
		{"explicit", []string{"https://example.com"}, 10, time.Second, []string{"https://example.com"}, 10, time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			m := NewChiMiddlewareFromSecurity(tt.origins, tt.reqs, tt.window, false)
			if len(m.config.CORSAllowedOrigins) != len(tt.wantOrigins) || m.config.CORSAllowedOrigins[0] != tt.wantOrigins[0] {
				t.Errorf("origins = %v, want %v", m.config.CORSAllowedOrigins, tt.wantOrigins)
			}
			if m.config.RateLimitRequests != tt.wantReqs || m.config.RateLimitWindow != tt.wantWindow {
				t.Errorf("rate limit = %d/%s, want %d/%s",
					m.config.RateLimitRequests, m.config.RateLimitWindow, tt.wantReqs, tt.wantWindow)
			}
			if m.config.RateLimitOnLimit == nil {
				t.Error("limit handler not set")
			}
		})
	}
}

func TestRateLimit_Disabled(t *testing.T) {
	t.Parallel()

	m := NewChiMiddlewareFromSecurity(nil, 1, time.Minute, true)
	h := m.RateLimit()(okHandler())

	for i := 0; i < 5; i++ {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		if rec.Code != http.StatusOK {
			t.Fatalf("request %d status = %d", i, rec.Code)
		}
	}
}

func TestAPISecurityHeaders_HSTS(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		setup    func(*http.Request)
		wantHSTS bool
	}{
		{"plain", func(*http.Request) {}, false},
		{"tls", func(r *http.Request) { r.TLS = &tls.ConnectionState{} }, true},
		{"proxy", func(r *http.Request) { r.Header.Set("X-Forwarded-Proto", "https") }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			tt.setup(req)
			rec := httptest.NewRecorder()
			APISecurityHeaders()(okHandler()).ServeHTTP(rec, req)

			got := rec.Header().Get("Strict-Transport-Security") != ""
			if got != tt.wantHSTS {
				t.Errorf("HSTS present = %v, want %v", got, tt.wantHSTS)
			}
		})
	}
}

func TestSanitizeLogValue(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in, want string
	}{
		{"plain", "plain"},
		{"line\nbreak", `line\x0abreak`},
		{"tab\there", `tab\x09here`},
		{"del\x7f", `del\x7f`},
	}
	for _, tt := range tests {
		if got := sanitizeLogValue(tt.in); got != tt.want {
			t.Errorf("sanitizeLogValue(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
