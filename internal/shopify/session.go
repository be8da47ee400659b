package shopify

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	errx "github.com/airep24/server/internal/core/error"
	logx "github.com/airep24/server/pkg/logger"
)

// SessionStore resolves the offline access token the OAuth flow stored for a
// shop. A shop with no token has never installed (or has uninstalled) the app.
type SessionStore struct {
	rdb        redis.Cmdable
	apiVersion string
}

func NewSessionStore(rdb redis.Cmdable, apiVersion string) *SessionStore {
	if apiVersion == "" {
		apiVersion = DefaultAPIVersion
	}
	return &SessionStore{rdb: rdb, apiVersion: apiVersion}
}

func (s *SessionStore) tokenKey(shop string) string {
	return fmt.Sprintf("shop:%s:token", shop)
}

// AdminClientFor builds an AdminClient for the shop, or an auth error when
// the shop has no stored session.
func (s *SessionStore) AdminClientFor(ctx context.Context, shop string) (*AdminClient, error) {
	key := s.tokenKey(shop)

	token, err := s.rdb.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errx.NewAuth(fmt.Errorf("no session for shop %s", shop), "Shop not authorized")
		}
		logx.Error().Err(err).Str("key", key).Msg("failed to load shop session from redis")
		return nil, errx.WrapRedis(err)
	}
	if token == "" {
		return nil, errx.NewAuth(fmt.Errorf("empty session token for shop %s", shop), "Shop not authorized")
	}
	return NewAdminClient(shop, token, WithAPIVersion(s.apiVersion)), nil
}
