package repo

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/airep24/server/internal/assistant/model"
	errx "github.com/airep24/server/internal/core/error"
	logx "github.com/airep24/server/pkg/logger"
)

// RedisStoreRepository backs the per-shop configuration the admin app writes:
// assistant profile, knowledge base entries, and widget appearance. All keys
// are namespaced by the shop's myshopify domain.
type RedisStoreRepository struct {
	rdb redis.Cmdable
}

func NewRedisStoreRepository(rdb redis.Cmdable) *RedisStoreRepository {
	return &RedisStoreRepository{rdb: rdb}
}

func (r *RedisStoreRepository) profileKey(shop string) string {
	return fmt.Sprintf("shop:%s:profile", shop)
}

func (r *RedisStoreRepository) knowledgeKey(shop string) string {
	return fmt.Sprintf("shop:%s:knowledge", shop)
}

func (r *RedisStoreRepository) widgetKey(shop string) string {
	return fmt.Sprintf("shop:%s:widget", shop)
}

// ActiveProfile loads the shop's assistant profile. A shop that has never
// saved a profile yields (nil, nil); callers decide how to degrade.
func (r *RedisStoreRepository) ActiveProfile(ctx context.Context, shop string) (*model.CharacterProfile, error) {
	key := r.profileKey(shop)

	raw, err := r.rdb.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		logx.Error().Err(err).Str("key", key).Msg("failed to load profile from redis")
		return nil, errx.WrapRedis(err)
	}

	var p model.CharacterProfile
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		logx.Error().Err(err).Str("shop", shop).Msg("failed to unmarshal profile")
		return nil, fmt.Errorf("unmarshal profile: %w", err)
	}
	if !p.IsActive {
		return nil, nil
	}
	return &p, nil
}

// List returns up to limit knowledge base entries for the shop, oldest first.
func (r *RedisStoreRepository) List(ctx context.Context, shop string, limit int) ([]model.KnowledgeItem, error) {
	key := r.knowledgeKey(shop)

	stop := int64(-1)
	if limit > 0 {
		stop = int64(limit) - 1
	}
	rows, err := r.rdb.LRange(ctx, key, 0, stop).Result()
	if err != nil {
		if err == redis.Nil {
			return []model.KnowledgeItem{}, nil
		}
		logx.Error().Err(err).Str("key", key).Msg("failed to load knowledge base from redis")
		return nil, errx.WrapRedis(err)
	}

	items := make([]model.KnowledgeItem, 0, len(rows))
	for i, s := range rows {
		var item model.KnowledgeItem
		if err := json.Unmarshal([]byte(s), &item); err != nil {
			logx.Error().Err(err).Str("shop", shop).Int("index", i).Msg("failed to unmarshal knowledge item")
			return nil, fmt.Errorf("unmarshal knowledge item at index %d: %w", i, err)
		}
		items = append(items, item)
	}
	return items, nil
}

// Get loads the widget appearance config, or (nil, nil) when unset.
func (r *RedisStoreRepository) Get(ctx context.Context, shop string) (*model.WidgetConfig, error) {
	key := r.widgetKey(shop)

	raw, err := r.rdb.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		logx.Error().Err(err).Str("key", key).Msg("failed to load widget config from redis")
		return nil, errx.WrapRedis(err)
	}

	var cfg model.WidgetConfig
	if err := json.Unmarshal([]byte(raw), &cfg); err != nil {
		logx.Error().Err(err).Str("shop", shop).Msg("failed to unmarshal widget config")
		return nil, fmt.Errorf("unmarshal widget config: %w", err)
	}
	return &cfg, nil
}
