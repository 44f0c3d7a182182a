package cache

import (
	"context"
	"errors"
	"testing"
	"time"
)

type figures struct {
	Booked int     `json:"booked"`
	Price  float64 `json:"price"`
}

func TestNewServiceWithoutClientIsNoop(t *testing.T) {
	svc := NewService(nil)
	if _, ok := svc.(noopService); !ok {
		t.Fatalf("expected noop service, got %T", svc)
	}
	if err := svc.Ping(context.Background()); err != nil {
		t.Errorf("ping: %v", err)
	}
}

func TestNoopAlwaysMisses(t *testing.T) {
	svc := NewNoopService()
	ctx := context.Background()
	if err := svc.Set(ctx, "k", figures{Booked: 1}, time.Minute); err != nil {
		t.Fatal(err)
	}
	var got figures
	if err := svc.Get(ctx, "k", &got); !errors.Is(err, ErrCacheMiss) {
		t.Errorf("expected miss, got %v", err)
	}
}

func TestNoopGetOrSetCallsFetcherEveryTime(t *testing.T) {
	svc := NewNoopService()
	calls := 0
	fetch := func() (interface{}, error) {
		calls++
		return figures{Booked: 3, Price: 20}, nil
	}

	for i := 0; i < 2; i++ {
		var got figures
		if err := svc.GetOrSet(context.Background(), "k", time.Minute, fetch, &got); err != nil {
			t.Fatal(err)
		}
		if got.Booked != 3 || got.Price != 20 {
			t.Errorf("got %+v", got)
		}
	}
	if calls != 2 {
		t.Errorf("fetcher calls = %d, want 2", calls)
	}
}

func TestGetOrSetPropagatesFetcherError(t *testing.T) {
	boom := errors.New("boom")
	var got figures
	err := NewNoopService().GetOrSet(context.Background(), "k", time.Minute, func() (interface{}, error) {
		return nil, boom
	}, &got)
	if !errors.Is(err, boom) {
		t.Errorf("expected fetcher error, got %v", err)
	}
}
