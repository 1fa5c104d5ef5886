package auth

import (
	"context"
	"errors"
	"strings"
	"testing"

	"sunainscent-api/internal/data/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeUsers struct {
	users map[string]*entity.User
	err   error
	calls int
}

func (f *fakeUsers) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.users[email], nil
}

func newFakeUsers(emails ...string) *fakeUsers {
	f := &fakeUsers{users: map[string]*entity.User{}}
	for _, email := range emails {
		f.users[email] = &entity.User{Email: email, FirstName: "Test"}
	}
	return f
}

func TestResolver_ResolveUser(t *testing.T) {
	t.Parallel()

	tokens := newTestTokens(t)
	users := newFakeUsers("alice@x.com", "admin@x.com")
	r := NewResolver(tokens, users, "admin@x.com", zap.NewNop())

	token, _, err := tokens.IssueUserToken("alice@x.com")
	require.NoError(t, err)

	p, err := r.ResolveUser(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, "alice@x.com", p.Email())
	assert.False(t, p.IsAdmin())
	assert.Same(t, users.users["alice@x.com"], p.User)

	adminToken, _, err := tokens.IssueUserToken("admin@x.com")
	require.NoError(t, err)

	p, err = r.ResolveUser(context.Background(), adminToken)
	require.NoError(t, err)
	assert.True(t, p.IsAdmin())
}

func TestResolver_ResolveUser_AdminEmailIsCaseSensitive(t *testing.T) {
	t.Parallel()

	tokens := newTestTokens(t)
	r := NewResolver(tokens, newFakeUsers("Admin@x.com"), "admin@x.com", zap.NewNop())

	token, _, err := tokens.IssueUserToken("Admin@x.com")
	require.NoError(t, err)

	p, err := r.ResolveUser(context.Background(), token)
	require.NoError(t, err)
	assert.False(t, p.IsAdmin())
}

func TestResolver_ResolveUser_NoAdminConfigured(t *testing.T) {
	t.Parallel()

	tokens := newTestTokens(t)
	r := NewResolver(tokens, newFakeUsers("alice@x.com"), "", zap.NewNop())

	token, _, err := tokens.IssueUserToken("alice@x.com")
	require.NoError(t, err)

	p, err := r.ResolveUser(context.Background(), token)
	require.NoError(t, err)
	assert.False(t, p.IsAdmin())
}

func TestResolver_ResolveUser_Failures(t *testing.T) {
	t.Parallel()

	tokens := newTestTokens(t)

	t.Run("unknown subject", func(t *testing.T) {
		users := newFakeUsers()
		r := NewResolver(tokens, users, "", zap.NewNop())

		token, _, err := tokens.IssueUserToken("ghost@x.com")
		require.NoError(t, err)

		_, err = r.ResolveUser(context.Background(), token)
		assert.ErrorIs(t, err, ErrUnauthorized)
		assert.Equal(t, 1, users.calls)
	})

	t.Run("bad token skips the store", func(t *testing.T) {
		users := newFakeUsers("alice@x.com")
		r := NewResolver(tokens, users, "", zap.NewNop())

		_, err := r.ResolveUser(context.Background(), "garbage")
		assert.ErrorIs(t, err, ErrUnauthorized)
		assert.ErrorIs(t, err, ErrInvalidToken)
		assert.Zero(t, users.calls)
	})

	t.Run("tampered signature", func(t *testing.T) {
		users := newFakeUsers("alice@x.com")
		r := NewResolver(tokens, users, "", zap.NewNop())

		token, _, err := tokens.IssueUserToken("alice@x.com")
		require.NoError(t, err)
		// Flip the first signature character; all six of its bits are data.
		sig := strings.LastIndexByte(token, '.') + 1
		swap := byte('A')
		if token[sig] == 'A' {
			swap = 'B'
		}
		tampered := token[:sig] + string(swap) + token[sig+1:]

		_, err = r.ResolveUser(context.Background(), tampered)
		assert.ErrorIs(t, err, ErrUnauthorized)
		assert.Zero(t, users.calls)
	})

	t.Run("empty subject", func(t *testing.T) {
		users := newFakeUsers("")
		r := NewResolver(tokens, users, "", zap.NewNop())

		token, _, err := tokens.IssueUserToken("")
		require.NoError(t, err)

		_, err = r.ResolveUser(context.Background(), token)
		assert.ErrorIs(t, err, ErrUnauthorized)
		assert.Zero(t, users.calls)
	})

	t.Run("store failure", func(t *testing.T) {
		storeErr := errors.New("connection refused")
		users := &fakeUsers{err: storeErr}
		r := NewResolver(tokens, users, "", zap.NewNop())

		token, _, err := tokens.IssueUserToken("alice@x.com")
		require.NoError(t, err)

		_, err = r.ResolveUser(context.Background(), token)
		assert.ErrorIs(t, err, ErrServiceUnavailable)
		assert.NotErrorIs(t, err, ErrUnauthorized)
		assert.ErrorIs(t, err, storeErr)
	})
}

func TestResolver_ResolveAdmin(t *testing.T) {
	t.Parallel()

	tokens := newTestTokens(t)
	users := newFakeUsers()
	r := NewResolver(tokens, users, "admin@x.com", zap.NewNop())

	token, _, err := tokens.IssueAdminToken("admin@x.com")
	require.NoError(t, err)

	p, err := r.ResolveAdmin(token)
	require.NoError(t, err)
	assert.Equal(t, "admin@x.com", p.Email())
	assert.True(t, p.IsAdmin())
	assert.Zero(t, users.calls)
}

func TestResolver_ResolveAdmin_RejectsUserTokens(t *testing.T) {
	t.Parallel()

	tokens := newTestTokens(t)
	r := NewResolver(tokens, newFakeUsers("admin@x.com"), "admin@x.com", zap.NewNop())

	// A user token for the admin email is still not an admin token.
	token, _, err := tokens.IssueUserToken("admin@x.com")
	require.NoError(t, err)

	_, err = r.ResolveAdmin(token)
	assert.ErrorIs(t, err, ErrForbidden)

	_, err = r.ResolveAdmin("garbage")
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestResolver_ResolveUser_RejectsAdminTokens(t *testing.T) {
	t.Parallel()

	tokens := newTestTokens(t)
	users := newFakeUsers("admin@x.com")
	r := NewResolver(tokens, users, "admin@x.com", zap.NewNop())

	// An account exists for the admin email, but an admin-login token is
	// still not a user token.
	token, _, err := tokens.IssueAdminToken("admin@x.com")
	require.NoError(t, err)

	p, err := r.ResolveUser(context.Background(), token)
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.Nil(t, p)
	assert.Zero(t, users.calls)
}
