// Copyright (c) 2026 Citeline. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

import "time"

// # Token Lifetimes

const (
	// AuthTokenTTL is the idle window of an access token. Every verified
	// use of the token restarts the window; a token unused for this long
	// expires out of the store.
	AuthTokenTTL = time.Hour

	// ConfirmTokenTTL is the fixed lifetime of an account confirmation
	// token, counted from issue. It is never refreshed.
	ConfirmTokenTTL = 15 * time.Minute
)
