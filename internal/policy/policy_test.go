package policy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dnavault.com/internal/domain"
)

func TestAuthorizeNilRequesterIsHardDeny(t *testing.T) {
	for _, op := range []Operation{OpCreate, OpListOwn, OpListAll, OpSearch} {
		_, err := Authorize(nil, op, 0)
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrUnauthorized, "op %d", op)
	}
}

func TestAuthorizeCreate(t *testing.T) {
	member := &domain.Requester{ID: 7}

	dec, err := Authorize(member, OpCreate, 0)
	require.NoError(t, err)
	assert.Equal(t, ScopeOwner, dec.Scope)
	assert.Equal(t, uint(7), dec.OwnerID)

	// Explicitly naming yourself is fine
	dec, err = Authorize(member, OpCreate, 7)
	require.NoError(t, err)
	assert.Equal(t, uint(7), dec.OwnerID)

	// Attributing the row to someone else is not, admin or no admin
	_, err = Authorize(member, OpCreate, 8)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	admin := &domain.Requester{ID: 1, IsAdmin: true}
	_, err = Authorize(admin, OpCreate, 8)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestAuthorizeListOwnScopesToRequester(t *testing.T) {
	dec, err := Authorize(&domain.Requester{ID: 42}, OpListOwn, 0)
	require.NoError(t, err)
	assert.Equal(t, ScopeOwner, dec.Scope)
	assert.Equal(t, uint(42), dec.OwnerID)
}

func TestAuthorizeListAllRequiresAdmin(t *testing.T) {
	_, err := Authorize(&domain.Requester{ID: 2}, OpListAll, 0)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrForbidden)
	// Role denial must not look like an authentication failure
	assert.NotErrorIs(t, err, domain.ErrUnauthorized)

	dec, err := Authorize(&domain.Requester{ID: 1, IsAdmin: true}, OpListAll, 0)
	require.NoError(t, err)
	assert.Equal(t, ScopeAll, dec.Scope)
}

func TestAuthorizeSearchIsGlobalAndFlagged(t *testing.T) {
	dec, err := Authorize(&domain.Requester{ID: 3}, OpSearch, 0)
	require.NoError(t, err)
	assert.Equal(t, ScopeAll, dec.Scope)
	assert.True(t, dec.Broad)
}
