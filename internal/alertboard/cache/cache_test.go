package cache

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/infofatec/alertboard/internal/alertboard/model"
	"github.com/infofatec/alertboard/internal/config"
)

func TestNewFromConfigWithoutAddr(t *testing.T) {
	for _, c := range []*config.RedisConfig{nil, {}} {
		if _, ok := NewFromConfig(c).(NoopCache); !ok {
			t.Fatalf("expected NoopCache for config %+v", c)
		}
	}
}

func TestNewFromConfigWithAddr(t *testing.T) {
	c := NewFromConfig(&config.RedisConfig{Addr: "localhost:6379"})
	if _, ok := c.(*RedisCache); !ok {
		t.Fatalf("expected RedisCache, got %T", c)
	}
}

func TestListRoundTripKeepsImageKey(t *testing.T) {
	url := "https://cdn.example.com/alert-board/a.jpg"
	alerts := []*model.Alert{
		{ID: "1", Text: "with image", ImageKey: "alert-board/a.jpg", ImageURL: &url,
			CreatedAt: time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)},
		{ID: "2", Text: "no image",
			CreatedAt: time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)},
	}

	data, err := encodeList(alerts)
	if err != nil {
		t.Fatalf("encodeList failed: %v", err)
	}
	got, err := decodeList(data)
	if err != nil {
		t.Fatalf("decodeList failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 alerts, got %d", len(got))
	}
	// model.Alert hides ImageKey from JSON; the cache codec must keep it
	if got[0].ImageKey != "alert-board/a.jpg" {
		t.Fatalf("image key lost in round-trip: %+v", got[0])
	}
	if got[0].ImageURL == nil || *got[0].ImageURL != url {
		t.Fatalf("image url lost in round-trip: %+v", got[0])
	}
	if got[1].ImageKey != "" || got[1].ImageURL != nil || got[1].HasImage() {
		t.Fatalf("image-less alert gained a reference: %+v", got[1])
	}
	if !got[0].CreatedAt.Equal(alerts[0].CreatedAt) {
		t.Fatalf("createdAt changed in round-trip: %v", got[0].CreatedAt)
	}

	// the direct marshal really would drop the key
	direct, err := json.Marshal(alerts[0])
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if dropped, _ := decodeList([]byte("[" + string(direct) + "]")); len(dropped) != 1 || dropped[0].ImageKey != "" {
		t.Fatalf("expected plain model JSON to carry no image key, got %+v", dropped)
	}
}

func TestDecodeListRejectsGarbage(t *testing.T) {
	if _, err := decodeList([]byte("{not json")); err == nil {
		t.Fatal("expected decode error")
	}
}

func TestNoopCache(t *testing.T) {
	ctx := context.Background()
	var c Cache = NoopCache{}

	c.SetList(ctx, []*model.Alert{{ID: "1", Text: "x"}})
	if alerts, ok := c.GetList(ctx); ok || alerts != nil {
		t.Fatal("NoopCache must never report a hit")
	}
	c.Invalidate(ctx)
}
