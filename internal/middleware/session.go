// Localescout - Business Review Analytics and Location Scouting
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/localescout

package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/tomtom215/localescout/internal/logging"
)

const (
	// SessionHeader lets API clients pick their own session.
	SessionHeader = "X-Session-ID"

	// SessionCookie is issued to browsers without a session.
	SessionCookie = "ls_session"

	maxSessionIDLength = 64
)

// SessionOptions configures the session cookie.
type SessionOptions struct {
	// MaxAge of the issued cookie. Zero means 24h.
	MaxAge time.Duration
	// Secure marks the cookie HTTPS-only.
	Secure bool
}

// Session attaches a session ID to every request. The ID comes from the
// X-Session-ID header, then the ls_session cookie; when neither holds a
// usable ID a new UUID is issued as a cookie. The ID is echoed in the
// X-Session-ID response header.
func Session(opts SessionOptions) func(http.HandlerFunc) http.HandlerFunc {
	if opts.MaxAge <= 0 {
		opts.MaxAge = 24 * time.Hour
	}

	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get(SessionHeader)
			if !validSessionID(id) {
				id = ""
				if c, err := r.Cookie(SessionCookie); err == nil && validSessionID(c.Value) {
					id = c.Value
				}
			}

			if id == "" {
				id = uuid.New().String()
				http.SetCookie(w, &http.Cookie{
					Name:     SessionCookie,
					Value:    id,
					Path:     "/",
					MaxAge:   int(opts.MaxAge.Seconds()),
					HttpOnly: true,
					Secure:   opts.Secure,
					SameSite: http.SameSiteLaxMode,
				})
			}
			w.Header().Set(SessionHeader, id)

			next(w, r.WithContext(logging.ContextWithSessionID(r.Context(), id)))
		}
	}
}

// GetSessionID returns the session ID attached by Session.
func GetSessionID(ctx context.Context) string {
	return logging.SessionIDFromContext(ctx)
}

// validSessionID accepts 1-64 characters of [A-Za-z0-9_-].
func validSessionID(id string) bool {
	if id == "" || len(id) > maxSessionIDLength {
		return false
	}
	for _, c := range id {
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9', c == '-', c == '_':
		default:
			return false
		}
	}
	return true
}
