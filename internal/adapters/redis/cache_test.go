package redisad_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"

	redisad "pansiyon_cms/internal/adapters/redis"
	"pansiyon_cms/internal/domain"
)

func TestCache_RoundTrip(t *testing.T) {
	mr := miniredis.RunT(t)
	c := redisad.New(mr.Addr(), "", 0)
	ctx := context.Background()

	var missed domain.HomeContent
	ok, err := c.Get(ctx, "content:page.home:en", &missed)
	if err != nil || ok {
		t.Fatalf("expected clean miss, ok=%v err=%v", ok, err)
	}

	doc := domain.HomeContent{
		Sections: map[string]domain.SectionSetting{"hero": {Enabled: true, Order: 1}},
		Hero:     domain.HomeHero{TitleMain: "Pansiyon Lavanta"},
	}
	if err := c.Set(ctx, "content:page.home:en", doc, 60); err != nil {
		t.Fatalf("set: %v", err)
	}

	var got domain.HomeContent
	ok, err = c.Get(ctx, "content:page.home:en", &got)
	if err != nil || !ok {
		t.Fatalf("expected hit, ok=%v err=%v", ok, err)
	}
	if got.Hero.TitleMain != "Pansiyon Lavanta" || !got.Sections["hero"].Enabled {
		t.Fatalf("round trip lost data: %+v", got)
	}

	if err := c.Del(ctx, "content:page.home:en"); err != nil {
		t.Fatalf("del: %v", err)
	}
	ok, _ = c.Get(ctx, "content:page.home:en", &got)
	if ok {
		t.Fatalf("expected miss after delete")
	}
}

func TestCache_TTLExpires(t *testing.T) {
	mr := miniredis.RunT(t)
	c := redisad.New(mr.Addr(), "", 0)
	ctx := context.Background()

	if err := c.Set(ctx, "content:page.contact:tr", map[string]string{"x": "y"}, 1); err != nil {
		t.Fatalf("set: %v", err)
	}
	mr.FastForward(2 * time.Second)

	var got map[string]string
	ok, _ := c.Get(ctx, "content:page.contact:tr", &got)
	if ok {
		t.Fatalf("expected expiry after TTL")
	}
}
