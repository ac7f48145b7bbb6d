package auth

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

const denylistPrefix = "auth:revoked:"

// Denylist records revoked tokens in redis until their natural expiry.
// A nil *Denylist (or one built from a nil client) is inert: Revoke is a
// no-op and IsRevoked always reports false, so token revocation degrades to
// client-side logout when redis is not configured.
type Denylist struct {
	rdb *redis.Client
}

func NewDenylist(rdb *redis.Client) *Denylist {
	if rdb == nil {
		return nil
	}
	return &Denylist{rdb: rdb}
}

// Revoke marks token as unusable for ttl. Tokens past their expiry need no
// entry, so ttl <= 0 is a no-op.
func (d *Denylist) Revoke(ctx context.Context, token string, ttl time.Duration) error {
	if d == nil || ttl <= 0 {
		return nil
	}
	return d.rdb.Set(ctx, denylistPrefix+token, "1", ttl).Err()
}

// IsRevoked reports whether token has been revoked. Lookup errors are
// surfaced so a broken redis does not silently re-admit revoked tokens.
func (d *Denylist) IsRevoked(ctx context.Context, token string) (bool, error) {
	if d == nil {
		return false, nil
	}
	n, err := d.rdb.Exists(ctx, denylistPrefix+token).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
