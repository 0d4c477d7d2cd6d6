package storage

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestMemoryLifecycle(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := NewMemory()

	if _, err := store.Load(ctx, "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	if err := store.Save(ctx, "k", []byte(`[]`)); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	payload, err := store.Load(ctx, "k")
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if string(payload) != `[]` {
		t.Fatalf("unexpected payload %q", payload)
	}

	// stored bytes must not alias caller buffers
	payload[0] = 'x'
	again, _ := store.Load(ctx, "k")
	if string(again) != `[]` {
		t.Fatalf("payload aliased caller buffer: %q", again)
	}

	if err := store.Delete(ctx, "k"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, err := store.Load(ctx, "k"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
}

func TestRedisMapsMissingKey(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	sentinel := errors.New("nil reply")
	client := &fakeRedis{values: map[string]string{}, notFound: sentinel}
	store := NewRedis(client, sentinel, time.Hour)

	if _, err := store.Load(ctx, "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	if err := store.Save(ctx, "k", []byte(`[{"quantity":1}]`)); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	payload, err := store.Load(ctx, "k")
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if string(payload) != `[{"quantity":1}]` {
		t.Fatalf("unexpected payload %q", payload)
	}
	if client.lastTTL != time.Hour {
		t.Fatalf("expected ttl passthrough, got %v", client.lastTTL)
	}

	if err := store.Delete(ctx, "k"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, err := store.Load(ctx, "k"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
}

type fakeRedis struct {
	values   map[string]string
	notFound error
	lastTTL  time.Duration
}

func (f *fakeRedis) Get(_ context.Context, key string) (string, error) {
	value, ok := f.values[key]
	if !ok {
		return "", f.notFound
	}
	return value, nil
}

func (f *fakeRedis) Set(_ context.Context, key string, value any, ttl time.Duration) error {
	f.lastTTL = ttl
	f.values[key] = value.(string)
	return nil
}

func (f *fakeRedis) Del(_ context.Context, keys ...string) error {
	for _, key := range keys {
		delete(f.values, key)
	}
	return nil
}
