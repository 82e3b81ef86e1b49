package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/infofatec/alertboard/internal/alertboard/model"
	"github.com/infofatec/alertboard/internal/config"
)

const (
	listKey = "alertboard:alerts:list"
	listTTL = 30 * time.Second
)

// Cache holds the rendered alert list between client polls. Lookups are
// best-effort: any cache failure means a store read, never a caller error.
type Cache interface {
	GetList(ctx context.Context) ([]*model.Alert, bool)
	SetList(ctx context.Context, alerts []*model.Alert)
	Invalidate(ctx context.Context)
}

// NewFromConfig returns a redis cache, or a NoopCache when no addr is set.
func NewFromConfig(c *config.RedisConfig) Cache {
	if c == nil || c.Addr == "" {
		return NoopCache{}
	}
	rdb := redis.NewClient(&redis.Options{Addr: c.Addr, Password: c.Password, DB: c.DB})
	return &RedisCache{rdb: rdb}
}

type RedisCache struct {
	rdb *redis.Client
}

// cachedAlert carries ImageKey explicitly; model.Alert hides it from JSON so
// a plain marshal would drop it in the round-trip.
type cachedAlert struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	ImageURL  *string   `json:"imageUrl"`
	ImageKey  string    `json:"imageKey"`
	CreatedAt time.Time `json:"createdAt"`
}

func encodeList(alerts []*model.Alert) ([]byte, error) {
	records := make([]cachedAlert, 0, len(alerts))
	for _, a := range alerts {
		records = append(records, cachedAlert{
			ID:        a.ID,
			Text:      a.Text,
			ImageURL:  a.ImageURL,
			ImageKey:  a.ImageKey,
			CreatedAt: a.CreatedAt,
		})
	}
	return json.Marshal(records)
}

func decodeList(data []byte) ([]*model.Alert, error) {
	var records []cachedAlert
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, err
	}
	alerts := make([]*model.Alert, 0, len(records))
	for _, r := range records {
		alerts = append(alerts, &model.Alert{
			ID:        r.ID,
			Text:      r.Text,
			ImageURL:  r.ImageURL,
			ImageKey:  r.ImageKey,
			CreatedAt: r.CreatedAt,
		})
	}
	return alerts, nil
}

func (c *RedisCache) GetList(ctx context.Context) ([]*model.Alert, bool) {
	data, err := c.rdb.Get(ctx, listKey).Bytes()
	if err != nil {
		return nil, false
	}
	alerts, err := decodeList(data)
	if err != nil {
		return nil, false
	}
	return alerts, true
}

func (c *RedisCache) SetList(ctx context.Context, alerts []*model.Alert) {
	data, err := encodeList(alerts)
	if err != nil {
		return
	}
	_ = c.rdb.Set(ctx, listKey, data, listTTL).Err()
}

func (c *RedisCache) Invalidate(ctx context.Context) {
	_ = c.rdb.Del(ctx, listKey).Err()
}

// NoopCache disables caching; every List hits the record store.
type NoopCache struct{}

func (NoopCache) GetList(ctx context.Context) ([]*model.Alert, bool) { return nil, false }
func (NoopCache) SetList(ctx context.Context, alerts []*model.Alert) {}
func (NoopCache) Invalidate(ctx context.Context)                     {}
