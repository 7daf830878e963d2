package cache

import (
	"context"
	"fmt"
)

// Well-known preference keys. These mirror the session flags the admin panel
// persists between page loads.
const (
	PrefTheme       = "theme"
	PrefDisplayName = "displayName"
)

// PreferenceCache stores per-user display preferences as plain key-value
// pairs. Preferences never expire; they are removed explicitly.
type PreferenceCache struct {
	redis *RedisClient
}

// NewPreferenceCache creates a new PreferenceCache.
func NewPreferenceCache(redis *RedisClient) *PreferenceCache {
	return &PreferenceCache{redis: redis}
}

func (c *PreferenceCache) key(userID int, name string) string {
	return fmt.Sprintf("pref:%d:%s", userID, name)
}

// Set stores one preference value for a user.
func (c *PreferenceCache) Set(ctx context.Context, userID int, name, value string) error {
	return c.redis.Set(ctx, c.key(userID, name), value, 0)
}

// Get retrieves one preference value. A missing key returns ("", nil).
func (c *PreferenceCache) Get(ctx context.Context, userID int, name string) (string, error) {
	v, err := c.redis.Get(ctx, c.key(userID, name))
	if IsNil(err) {
		return "", nil
	}
	return v, err
}

// Remove deletes one preference.
func (c *PreferenceCache) Remove(ctx context.Context, userID int, name string) error {
	return c.redis.Delete(ctx, c.key(userID, name))
}
