// Copyright (c) 2026 Citeline. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

import "context"

// Repository stores tokens in volatile storage. Expiry is the store's
// responsibility: a saved token disappears when its TTL runs out, and a
// lookup after that point reports not-found.
type Repository interface {
	// SaveAuthToken writes the token under its key with the idle TTL.
	SaveAuthToken(context context.Context, token *AuthToken) error

	// GetAuthToken looks up a token by key. A missing or expired key is
	// NOT_FOUND.
	GetAuthToken(context context.Context, key string) (*AuthToken, error)

	// RefreshAuthToken persists the token again and restarts its idle TTL.
	RefreshAuthToken(context context.Context, token *AuthToken) error

	// DeleteAuthToken removes a token by key. Deleting an absent key is
	// not an error.
	DeleteAuthToken(context context.Context, key string) error

	// SaveConfirmToken writes the token under its key with the fixed TTL.
	// A user holds at most one outstanding confirm token: saving revokes
	// any token previously issued to the same user.
	SaveConfirmToken(context context.Context, token *ConfirmToken) error

	// GetConfirmToken looks up a confirmation token by key. A missing or
	// expired key is NOT_FOUND.
	GetConfirmToken(context context.Context, key string) (*ConfirmToken, error)

	// DeleteConfirmToken removes a confirmation token by key.
	DeleteConfirmToken(context context.Context, key string) error
}
