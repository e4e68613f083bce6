// Copyright (c) 2026 Citeline. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

import (
	"context"
	"log/slog"

	"github.com/taibuivan/citeline/internal/platform/apperr"
	"github.com/taibuivan/citeline/internal/platform/document"
	"github.com/taibuivan/citeline/internal/platform/metrics"
	"github.com/taibuivan/citeline/internal/platform/sec"
	"github.com/taibuivan/citeline/internal/users/account"
)

// UserDirectory is the slice of the account service the auth flows need:
// credential lookup and persisting lifecycle changes (login rotation,
// confirmation). Satisfied by [account.Service].
type UserDirectory interface {
	GetUser(context context.Context, id document.ID) (*account.User, error)
	GetUserByEmail(context context.Context, email string) (*account.User, error)
	Update(context context.Context, id document.ID, user *account.User) error
}

type Service struct {
	users   UserDirectory
	tokens  Repository
	logger  *slog.Logger
	metrics *metrics.Metrics
}

func NewService(users UserDirectory, tokens Repository, logger *slog.Logger, m *metrics.Metrics) *Service {
	return &Service{
		users:   users,
		tokens:  tokens,
		logger:  logger,
		metrics: m,
	}
}

// errInvalidCredentials is the uniform rejection for every credential
// failure. Unknown email and wrong password are indistinguishable to the
// caller, so the response never confirms whether an account exists.
func errInvalidCredentials() error {
	return apperr.Unauthorized("Invalid login credentials")
}

// # Login Flow

/*
Authenticate verifies an email/password pair and returns the account.

Every failure mode: unknown email, account without a credential, or a
wrong password, yields the same UNAUTHORIZED error.
*/
func (service *Service) Authenticate(context context.Context, email, password string) (*account.User, error) {
	user, err := service.users.GetUserByEmail(context, email)
	if err != nil {
		if apperr.IsCode(err, "NOT_FOUND") {
			service.metrics.IncrementLogin("failure")
			return nil, errInvalidCredentials()
		}
		return nil, err
	}

	ok, err := user.CheckPassword(password)
	if err != nil || !ok {
		service.metrics.IncrementLogin("failure")
		return nil, errInvalidCredentials()
	}

	return user, nil
}

/*
Login authenticates the credential pair, rotates the account's login
timestamps, and issues a fresh access token with a cached user snapshot.
*/
func (service *Service) Login(context context.Context, email, password string) (*AuthToken, error) {
	user, err := service.Authenticate(context, email, password)
	if err != nil {
		return nil, err
	}

	user.TouchLogin()
	if err := service.users.Update(context, user.ID, user); err != nil {
		return nil, err
	}

	token := &AuthToken{
		User: CachedUser{
			ID:     user.ID.String(),
			Groups: user.Groups,
		},
	}
	token.Clean()
	if err := token.Validate(); err != nil {
		return nil, err
	}

	if err := service.tokens.SaveAuthToken(context, token); err != nil {
		return nil, err
	}

	service.metrics.IncrementLogin("success")
	service.logger.Info("user_logged_in", slog.String("user_id", user.ID.String()))
	return token, nil
}

/*
VerifyKey resolves an access token key to its principal.

A successful verification touches the token and restarts its idle TTL, so
an actively used token never expires. The principal is built from the
cached snapshot without a user lookup.
*/
func (service *Service) VerifyKey(context context.Context, key string) (*sec.Principal, error) {
	if !sec.ValidateKey(key) {
		return nil, apperr.Unauthorized("Invalid access token")
	}

	token, err := service.tokens.GetAuthToken(context, key)
	if err != nil {
		if apperr.IsCode(err, "NOT_FOUND") {
			return nil, apperr.Unauthorized("Invalid access token")
		}
		return nil, err
	}

	token.Touch()
	if err := service.tokens.RefreshAuthToken(context, token); err != nil {
		return nil, err
	}

	return token.Principal(), nil
}

// Logout deletes the access token. Logging out an already-expired token
// succeeds.
func (service *Service) Logout(context context.Context, key string) error {
	if err := service.tokens.DeleteAuthToken(context, key); err != nil {
		return err
	}

	service.logger.Info("user_logged_out")
	return nil
}

// # Confirmation Flow

/*
IssueConfirmToken creates a single-use confirmation token for the user.
The key is handed to an out-of-band delivery channel; this service only
stores it.
*/
func (service *Service) IssueConfirmToken(context context.Context, userID document.ID) (*ConfirmToken, error) {
	if _, err := service.users.GetUser(context, userID); err != nil {
		return nil, err
	}

	token := &ConfirmToken{UserID: userID}
	token.Clean()
	if err := token.Validate(); err != nil {
		return nil, err
	}

	if err := service.tokens.SaveConfirmToken(context, token); err != nil {
		return nil, err
	}

	service.logger.Info("confirm_token_issued", slog.String("user_id", userID.String()))
	return token, nil
}

/*
ConfirmUser redeems a confirmation token: the target account gains the
default groups and its confirmation timestamp, and the token is consumed.
A second redemption of the same key is NOT_FOUND.
*/
func (service *Service) ConfirmUser(context context.Context, key string) (*account.User, error) {
	token, err := service.tokens.GetConfirmToken(context, key)
	if err != nil {
		return nil, err
	}

	user, err := service.users.GetUser(context, token.UserID)
	if err != nil {
		return nil, err
	}

	user.Confirm()
	if err := service.users.Update(context, user.ID, user); err != nil {
		return nil, err
	}

	if err := service.tokens.DeleteConfirmToken(context, key); err != nil {
		return nil, err
	}

	service.logger.Info("user_confirmed", slog.String("user_id", user.ID.String()))
	return user, nil
}
