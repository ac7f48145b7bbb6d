package auth

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dnavault.com/internal/domain"
)

func newTestRedis(t *testing.T) *redis.Client {
	t.Helper()
	s, err := miniredis.Run()
	if err != nil {
		t.Fatalf("start miniredis: %v", err)
	}
	t.Cleanup(s.Close)

	rdb := redis.NewClient(&redis.Options{Addr: s.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return rdb
}

func TestTokenRoundTrip(t *testing.T) {
	m := NewTokenManager("test-secret", time.Hour, nil)

	token, err := m.Issue(42)
	require.NoError(t, err)

	id, err := m.Resolve(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), id)
}

func TestResolveRejectsGarbageAndWrongSecret(t *testing.T) {
	m := NewTokenManager("test-secret", time.Hour, nil)
	ctx := context.Background()

	_, err := m.Resolve(ctx, "not.a.token")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	other := NewTokenManager("other-secret", time.Hour, nil)
	token, err := other.Issue(1)
	require.NoError(t, err)

	_, err = m.Resolve(ctx, token)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestResolveRejectsExpiredToken(t *testing.T) {
	m := NewTokenManager("test-secret", -time.Minute, nil)
	token, err := m.Issue(1)
	require.NoError(t, err)

	_, err = m.Resolve(context.Background(), token)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestRevokeBlocksTokenUntilExpiry(t *testing.T) {
	denylist := NewDenylist(newTestRedis(t))
	m := NewTokenManager("test-secret", time.Hour, denylist)
	ctx := context.Background()

	token, err := m.Issue(7)
	require.NoError(t, err)

	// Usable before revocation
	id, err := m.Resolve(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, uint(7), id)

	require.NoError(t, m.Revoke(ctx, token))

	_, err = m.Resolve(ctx, token)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	// A fresh token is unaffected
	token2, err := m.Issue(7)
	require.NoError(t, err)
	_, err = m.Resolve(ctx, token2)
	assert.NoError(t, err)
}

func TestNilDenylistIsInert(t *testing.T) {
	var d *Denylist
	ctx := context.Background()

	require.NoError(t, d.Revoke(ctx, "tok", time.Hour))
	revoked, err := d.IsRevoked(ctx, "tok")
	require.NoError(t, err)
	assert.False(t, revoked)
}
