package redis

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
)

func TestSetGetDelLifecycle(t *testing.T) {
	ctx := context.Background()
	mock := newMockCmdable()
	client := &Client{store: mock}

	key := client.CartKey("calabar_cart", "session-1")
	if err := client.Set(ctx, key, `[{"quantity":2}]`, 10*time.Minute); err != nil {
		t.Fatalf("set failed: %v", err)
	}
	value, err := client.Get(ctx, key)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if value != `[{"quantity":2}]` {
		t.Fatalf("expected stored value, got %q", value)
	}

	if err := client.Del(ctx, key); err != nil {
		t.Fatalf("del failed: %v", err)
	}
	if _, err := client.Get(ctx, key); err == nil || err != redis.Nil {
		t.Fatalf("expected redis.Nil after delete, got %v", err)
	}
}

func TestCartKeyNamespacing(t *testing.T) {
	client := &Client{}
	if got := client.CartKey("calabar_cart", "abc"); got != "calabar:calabar_cart:abc" {
		t.Fatalf("unexpected cart key %s", got)
	}
	if got := client.CartKey("calabar_cart", ""); got != "calabar:calabar_cart" {
		t.Fatalf("session-less key should skip empty parts, got %s", got)
	}
}

func TestUninitializedClientErrors(t *testing.T) {
	client := &Client{}
	ctx := context.Background()
	if err := client.Set(ctx, "k", "v", 0); err == nil {
		t.Fatal("expected error from uninitialized Set")
	}
	if _, err := client.Get(ctx, "k"); err == nil {
		t.Fatal("expected error from uninitialized Get")
	}
	if err := client.Ping(ctx); err == nil {
		t.Fatal("expected error from uninitialized Ping")
	}
}

type mockCmdable struct {
	data map[string]string
}

func newMockCmdable() *mockCmdable {
	return &mockCmdable{data: make(map[string]string)}
}

func (m *mockCmdable) Ping(context.Context) *redis.StatusCmd {
	return redis.NewStatusResult("PONG", nil)
}

func (m *mockCmdable) Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd {
	m.data[key] = fmt.Sprint(value)
	return redis.NewStatusResult("OK", nil)
}

func (m *mockCmdable) Get(ctx context.Context, key string) *redis.StringCmd {
	v, ok := m.data[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(v, nil)
}

func (m *mockCmdable) Del(ctx context.Context, keys ...string) *redis.IntCmd {
	for _, key := range keys {
		delete(m.data, key)
	}
	return redis.NewIntResult(int64(len(keys)), nil)
}
