// Copyright (c) 2026 Citeline. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/taibuivan/citeline/internal/platform/apperr"
	"github.com/taibuivan/citeline/internal/platform/constants"
	"github.com/taibuivan/citeline/internal/platform/ctxkey"
	"github.com/taibuivan/citeline/internal/platform/respond"
	"github.com/taibuivan/citeline/internal/platform/sec"
)

// KeyVerifier defines the interface needed to verify opaque API keys in middleware.
//
// # Why an interface?
//
// Defining KeyVerifier here decouples the middleware from the `auth` service
// implementation, allowing us to easily inject mocks during unit testing.
type KeyVerifier interface {
	VerifyKey(ctx context.Context, key string) (*sec.Principal, error)
}

// Authenticate extracts and verifies the opaque API key from the Authorization header.
//
// # Flow
//  1. Check for 'Authorization: key <token>' header.
//  2. If absent, request proceeds as anonymous.
//  3. If present, look up and validate the key via [KeyVerifier]. The lookup
//     also refreshes the token's idle TTL in the cache.
//  4. Inject [*sec.Principal] into the request context for downstream use.
//
// # Parameters
//   - verifier: The KeyVerifier instance.
//
// # Returns
//   - An [http.Handler] middleware.
func Authenticate(verifier KeyVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			authHeader := request.Header.Get(constants.HeaderAuthorization)

			// ── 1. Anonymous Access ───────────────────────────────────────────
			if authHeader == "" {
				next.ServeHTTP(writer, request)
				return
			}

			// ── 2. Format Validation ──────────────────────────────────────────
			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || strings.ToLower(parts[0]) != "key" {
				respond.Error(writer, request, apperr.Unauthorized("Invalid authorization format"))
				return
			}

			// ── 3. Key Verification ───────────────────────────────────────────
			key := parts[1]
			principal, err := verifier.VerifyKey(request.Context(), key)
			if err != nil {
				respond.Error(writer, request, apperr.Unauthorized("Invalid or expired token"))
				return
			}

			// ── 4. Context Injection ──────────────────────────────────────────
			ctx := context.WithValue(request.Context(), ctxkey.KeyPrincipal, principal)
			next.ServeHTTP(writer, request.WithContext(ctx))
		})
	}
}

// RequireAuth blocks requests that are not authenticated.
//
// # Usage
//
// Must be registered in the router AFTER [Authenticate].
//
// # Flow
//  1. Check if [*sec.Principal] exists in context.
//  2. If missing, abort with HTTP 401 Unauthorized.
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		principal := GetPrincipal(request.Context())
		if principal == nil {
			respond.Error(writer, request, apperr.Unauthorized("Authentication required"))
			return
		}
		next.ServeHTTP(writer, request)
	})
}

// RequireGroup blocks requests if the authenticated user is not in the required group.
//
// # Usage
//
// Must be registered in the router AFTER [Authenticate]. It automatically implies
// [RequireAuth] so you don't need to mount both.
//
// # Flow
//  1. Check if [*sec.Principal] exists in context (implies AuthN).
//  2. Check if any of the user's groups meets or exceeds the target group
//     using [sec.Group.AtLeast].
//  3. If insufficient, abort with HTTP 403 Forbidden.
func RequireGroup(group sec.Group) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			principal := GetPrincipal(request.Context())

			// ── 1. Authentication Check ───────────────────────────────────────
			if principal == nil {
				respond.Error(writer, request, apperr.Unauthorized("Authentication required"))
				return
			}

			// ── 2. Authorization Check ────────────────────────────────────────
			if !principal.In(group) {
				respond.Error(writer, request, apperr.Forbidden("Insufficient permissions"))
				return
			}

			next.ServeHTTP(writer, request)
		})
	}
}

// GetPrincipal retrieves the [*sec.Principal] from the [context.Context].
//
// # Returns
//   - A pointer to [*sec.Principal] if the user is authenticated.
//   - nil if the user is anonymous.
func GetPrincipal(ctx context.Context) *sec.Principal {
	principal, ok := ctx.Value(ctxkey.KeyPrincipal).(*sec.Principal)
	if !ok {
		return nil
	}
	return principal
}
