// Copyright (c) 2026 Citeline. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/citeline/internal/platform/apperr"
	"github.com/taibuivan/citeline/internal/platform/document"
	"github.com/taibuivan/citeline/internal/platform/sec"
	"github.com/taibuivan/citeline/internal/users/account"
	"github.com/taibuivan/citeline/internal/users/auth"
	"github.com/taibuivan/citeline/pkg/uuidv7"
)

const testPassword = "D34dSp1d3r$"

// memoryTokens is an in-memory Repository. It does not simulate expiry;
// TTL enforcement belongs to Redis.
type memoryTokens struct {
	authTokens    map[string]*auth.AuthToken
	confirmTokens map[string]*auth.ConfirmToken
	confirmByUser map[document.ID]string
	refreshes     int
}

func newMemoryTokens() *memoryTokens {
	return &memoryTokens{
		authTokens:    make(map[string]*auth.AuthToken),
		confirmTokens: make(map[string]*auth.ConfirmToken),
		confirmByUser: make(map[document.ID]string),
	}
}

func (s *memoryTokens) SaveAuthToken(_ context.Context, token *auth.AuthToken) error {
	copied := *token
	s.authTokens[token.Key] = &copied
	return nil
}

func (s *memoryTokens) GetAuthToken(_ context.Context, key string) (*auth.AuthToken, error) {
	token, ok := s.authTokens[key]
	if !ok {
		return nil, apperr.NotFound("Token")
	}
	copied := *token
	return &copied, nil
}

func (s *memoryTokens) RefreshAuthToken(ctx context.Context, token *auth.AuthToken) error {
	s.refreshes++
	return s.SaveAuthToken(ctx, token)
}

func (s *memoryTokens) DeleteAuthToken(_ context.Context, key string) error {
	delete(s.authTokens, key)
	return nil
}

func (s *memoryTokens) SaveConfirmToken(_ context.Context, token *auth.ConfirmToken) error {
	// One outstanding token per user, per the Repository contract.
	if previous, ok := s.confirmByUser[token.UserID]; ok && previous != token.Key {
		delete(s.confirmTokens, previous)
	}

	copied := *token
	s.confirmTokens[token.Key] = &copied
	s.confirmByUser[token.UserID] = token.Key
	return nil
}

func (s *memoryTokens) GetConfirmToken(_ context.Context, key string) (*auth.ConfirmToken, error) {
	token, ok := s.confirmTokens[key]
	if !ok {
		return nil, apperr.NotFound("Token")
	}
	copied := *token
	return &copied, nil
}

func (s *memoryTokens) DeleteConfirmToken(_ context.Context, key string) error {
	delete(s.confirmTokens, key)
	return nil
}

// countingDirectory is an in-memory UserDirectory that counts lookups, to
// prove token verification never resolves the user.
type countingDirectory struct {
	users   map[document.ID]*account.User
	lookups int
}

func newCountingDirectory(users ...*account.User) *countingDirectory {
	d := &countingDirectory{users: make(map[document.ID]*account.User)}
	for _, u := range users {
		d.users[u.ID] = u
	}
	return d
}

func (d *countingDirectory) GetUser(_ context.Context, id document.ID) (*account.User, error) {
	d.lookups++
	u, ok := d.users[id]
	if !ok {
		return nil, apperr.NotFound("User")
	}
	return u, nil
}

func (d *countingDirectory) GetUserByEmail(_ context.Context, email string) (*account.User, error) {
	d.lookups++
	for _, u := range d.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, apperr.NotFound("User")
}

func (d *countingDirectory) Update(_ context.Context, id document.ID, u *account.User) error {
	if _, ok := d.users[id]; !ok {
		return apperr.NotFound("User")
	}
	d.users[id] = u
	return nil
}

func newTestUser(t *testing.T) *account.User {
	t.Helper()

	u := &account.User{
		ID:    document.ID(uuidv7.New()),
		Email: "test@example.com",
	}
	require.NoError(t, u.SetPassword(testPassword))
	u.Clean()
	return u
}

func newTestService(t *testing.T, users ...*account.User) (*auth.Service, *countingDirectory, *memoryTokens) {
	t.Helper()

	directory := newCountingDirectory(users...)
	tokens := newMemoryTokens()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return auth.NewService(directory, tokens, logger, nil), directory, tokens
}

/*
TestAuthToken_Clean verifies key generation happens once, the issued
timestamp is stable, and the touched timestamp always moves.
*/
func TestAuthToken_Clean(t *testing.T) {
	token := &auth.AuthToken{User: auth.CachedUser{ID: uuidv7.New()}}

	token.Clean()
	require.Len(t, token.Key, sec.KeyLength)
	require.False(t, token.Issued.IsZero())
	assert.Equal(t, token.Issued, token.Touched)

	key, issued := token.Key, token.Issued
	token.Clean()
	assert.Equal(t, key, token.Key)
	assert.Equal(t, issued, token.Issued)
	assert.False(t, token.Touched.Before(issued))
}

func TestConfirmToken_Clean(t *testing.T) {
	token := &auth.ConfirmToken{UserID: document.ID(uuidv7.New())}

	token.Clean()
	require.Len(t, token.Key, sec.KeyLength)

	key, issued := token.Key, token.Issued
	token.Clean()
	assert.Equal(t, key, token.Key)
	assert.Equal(t, issued, token.Issued)
}

/*
TestAuthToken_Serialize verifies the wire shape: the key, the nested cached
user, and both timestamps.
*/
func TestAuthToken_Serialize(t *testing.T) {
	userID := uuidv7.New()
	token := &auth.AuthToken{
		User: auth.CachedUser{ID: userID, Groups: []sec.Group{sec.GroupUsers}},
	}
	token.Clean()

	out := token.Serialize()

	assert.Equal(t, token.Key, out["key"])
	assert.NotNil(t, out["issued"])
	assert.NotNil(t, out["touched"])

	user, ok := out["user"].(document.Map)
	require.True(t, ok)
	assert.Equal(t, userID, user["id"])
	assert.Equal(t, []string{"users"}, user["groups"])
}

func TestAuthToken_RoundTrip(t *testing.T) {
	token := &auth.AuthToken{
		User: auth.CachedUser{ID: uuidv7.New(), Groups: []sec.Group{sec.GroupStaff}},
	}
	token.Clean()

	restored := &auth.AuthToken{}
	require.NoError(t, restored.Deserialize(token.Serialize()))

	assert.Equal(t, token.Key, restored.Key)
	assert.Equal(t, token.User, restored.User)
	assert.Equal(t, document.FormatTime(token.Issued), document.FormatTime(restored.Issued))
}

/*
TestService_Login verifies a successful login rotates the account's login
timestamps and stores a token whose snapshot mirrors the account.
*/
func TestService_Login(t *testing.T) {
	user := newTestUser(t)
	user.Confirm()
	service, directory, tokens := newTestService(t, user)

	token, err := service.Login(context.Background(), "test@example.com", testPassword)
	require.NoError(t, err)

	assert.Len(t, token.Key, sec.KeyLength)
	assert.Equal(t, user.ID.String(), token.User.ID)
	assert.Equal(t, user.Groups, token.User.Groups)

	stored := directory.users[user.ID]
	assert.NotNil(t, stored.LastLogin)

	_, ok := tokens.authTokens[token.Key]
	assert.True(t, ok)
}

/*
TestService_Login_Uniform verifies unknown email and wrong password are
indistinguishable failures.
*/
func TestService_Login_Uniform(t *testing.T) {
	user := newTestUser(t)
	service, _, _ := newTestService(t, user)

	_, errUnknown := service.Login(context.Background(), "nobody@example.com", testPassword)
	_, errWrong := service.Login(context.Background(), "test@example.com", "Wr0ngPassw0rd$")

	require.Error(t, errUnknown)
	require.Error(t, errWrong)
	assert.True(t, apperr.IsCode(errUnknown, "UNAUTHORIZED"))
	assert.Equal(t, errUnknown.Error(), errWrong.Error())
}

/*
TestService_VerifyKey verifies token verification builds the principal from
the cached snapshot alone and refreshes the idle window.
*/
func TestService_VerifyKey(t *testing.T) {
	user := newTestUser(t)
	user.Confirm()
	service, directory, tokens := newTestService(t, user)

	token, err := service.Login(context.Background(), "test@example.com", testPassword)
	require.NoError(t, err)

	lookupsAfterLogin := directory.lookups

	principal, err := service.VerifyKey(context.Background(), token.Key)
	require.NoError(t, err)

	assert.Equal(t, user.ID.String(), principal.UserID)
	assert.True(t, principal.In(sec.GroupUsers))

	// Verification reads only the token store.
	assert.Equal(t, lookupsAfterLogin, directory.lookups)
	assert.Equal(t, 1, tokens.refreshes)
}

func TestService_VerifyKey_Invalid(t *testing.T) {
	service, _, _ := newTestService(t)

	_, err := service.VerifyKey(context.Background(), "not a key")
	assert.True(t, apperr.IsCode(err, "UNAUTHORIZED"))

	_, err = service.VerifyKey(context.Background(), sec.NewKey())
	assert.True(t, apperr.IsCode(err, "UNAUTHORIZED"))
}

func TestService_Logout(t *testing.T) {
	user := newTestUser(t)
	service, _, tokens := newTestService(t, user)

	token, err := service.Login(context.Background(), "test@example.com", testPassword)
	require.NoError(t, err)

	require.NoError(t, service.Logout(context.Background(), token.Key))
	_, ok := tokens.authTokens[token.Key]
	assert.False(t, ok)

	// Logging out twice is not an error.
	assert.NoError(t, service.Logout(context.Background(), token.Key))
}

/*
TestService_ConfirmUser verifies redemption is single-use: the account is
confirmed, the token is consumed, and a replay is NOT_FOUND.
*/
func TestService_ConfirmUser(t *testing.T) {
	user := newTestUser(t)
	service, directory, _ := newTestService(t, user)

	token, err := service.IssueConfirmToken(context.Background(), user.ID)
	require.NoError(t, err)
	require.Len(t, token.Key, sec.KeyLength)

	confirmed, err := service.ConfirmUser(context.Background(), token.Key)
	require.NoError(t, err)

	assert.NotNil(t, confirmed.Confirmed)
	assert.Contains(t, confirmed.Groups, sec.GroupUsers)
	assert.NotNil(t, directory.users[user.ID].Confirmed)

	_, err = service.ConfirmUser(context.Background(), token.Key)
	assert.True(t, apperr.IsCode(err, "NOT_FOUND"))
}

/*
TestService_IssueConfirmToken_ReplacesPrior verifies a user holds at most
one outstanding confirm token: re-issuing revokes the earlier key, so only
the latest one redeems.
*/
func TestService_IssueConfirmToken_ReplacesPrior(t *testing.T) {
	user := newTestUser(t)
	service, _, tokens := newTestService(t, user)

	first, err := service.IssueConfirmToken(context.Background(), user.ID)
	require.NoError(t, err)

	second, err := service.IssueConfirmToken(context.Background(), user.ID)
	require.NoError(t, err)
	require.NotEqual(t, first.Key, second.Key)

	_, stillStored := tokens.confirmTokens[first.Key]
	assert.False(t, stillStored)

	_, err = service.ConfirmUser(context.Background(), first.Key)
	assert.True(t, apperr.IsCode(err, "NOT_FOUND"))

	_, err = service.ConfirmUser(context.Background(), second.Key)
	assert.NoError(t, err)
}

func TestService_IssueConfirmToken_UnknownUser(t *testing.T) {
	service, _, _ := newTestService(t)

	_, err := service.IssueConfirmToken(context.Background(), document.ID(uuidv7.New()))
	assert.True(t, apperr.IsCode(err, "NOT_FOUND"))
}
