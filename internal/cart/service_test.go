package cart

import (
	"context"
	"fmt"
	"testing"

	"github.com/calabarlabs/storefront-backend/pkg/storage"
)

type stubKV struct {
	data    map[string][]byte
	loadErr error
	saveErr error
	saves   int
}

func newStubKV() *stubKV {
	return &stubKV{data: map[string][]byte{}}
}

func (s *stubKV) Load(_ context.Context, key string) ([]byte, error) {
	if s.loadErr != nil {
		return nil, s.loadErr
	}
	payload, ok := s.data[key]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return payload, nil
}

func (s *stubKV) Save(_ context.Context, key string, payload []byte) error {
	s.saves++
	if s.saveErr != nil {
		return s.saveErr
	}
	s.data[key] = payload
	return nil
}

func (s *stubKV) Delete(_ context.Context, key string) error {
	delete(s.data, key)
	return nil
}

func plainKeys(sessionID string) string {
	return "calabar_cart:" + sessionID
}

func TestServiceRequiresDependencies(t *testing.T) {
	t.Parallel()

	if _, err := NewService(nil, plainKeys, nil, nil); err == nil {
		t.Fatal("expected error for missing storage backend")
	}
	if _, err := NewService(newStubKV(), nil, nil, nil); err == nil {
		t.Fatal("expected error for missing key builder")
	}
}

func TestServicePersistsMutations(t *testing.T) {
	t.Parallel()

	kv := newStubKV()
	svc, err := NewService(kv, plainKeys, nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ctx := context.Background()

	lines, err := svc.Add(ctx, "sess", product("1", 45000))
	if err != nil {
		t.Fatalf("unexpected add error: %v", err)
	}
	if lines.Count() != 1 {
		t.Fatalf("expected count 1, got %d", lines.Count())
	}
	if _, ok := kv.data[plainKeys("sess")]; !ok {
		t.Fatal("expected mutation to be written under the session key")
	}

	lines, err = svc.Add(ctx, "sess", product("1", 45000))
	if err != nil {
		t.Fatalf("unexpected add error: %v", err)
	}
	if len(lines) != 1 || lines[0].Quantity != 2 {
		t.Fatalf("expected single line with quantity 2, got %+v", lines)
	}

	reloaded, err := svc.Get(ctx, "sess")
	if err != nil {
		t.Fatalf("unexpected get error: %v", err)
	}
	if reloaded.Count() != 2 {
		t.Fatalf("expected rehydrated count 2, got %d", reloaded.Count())
	}
}

func TestServiceIsolatesSessions(t *testing.T) {
	t.Parallel()

	kv := newStubKV()
	svc, err := NewService(kv, plainKeys, nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ctx := context.Background()

	if _, err := svc.Add(ctx, "alpha", product("1", 45000)); err != nil {
		t.Fatalf("unexpected add error: %v", err)
	}
	other, err := svc.Get(ctx, "beta")
	if err != nil {
		t.Fatalf("unexpected get error: %v", err)
	}
	if other.Count() != 0 {
		t.Fatalf("expected empty cart for other session, got %+v", other)
	}
}

func TestServiceGetFallsBackToEmptyCart(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("missing record", func(t *testing.T) {
		t.Parallel()
		svc, err := NewService(newStubKV(), plainKeys, nil, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		lines, err := svc.Get(ctx, "fresh")
		if err != nil {
			t.Fatalf("unexpected get error: %v", err)
		}
		if len(lines) != 0 {
			t.Fatalf("expected empty cart, got %+v", lines)
		}
	})

	t.Run("corrupt payload", func(t *testing.T) {
		t.Parallel()
		kv := newStubKV()
		kv.data[plainKeys("sess")] = []byte("{{{{")
		svc, err := NewService(kv, plainKeys, nil, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		lines, err := svc.Get(ctx, "sess")
		if err != nil {
			t.Fatalf("unexpected get error: %v", err)
		}
		if len(lines) != 0 {
			t.Fatalf("expected corrupt payload to read as empty cart, got %+v", lines)
		}
	})

	t.Run("backend failure", func(t *testing.T) {
		t.Parallel()
		kv := newStubKV()
		kv.loadErr = fmt.Errorf("backend unavailable")
		svc, err := NewService(kv, plainKeys, nil, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		lines, err := svc.Get(ctx, "sess")
		if err != nil {
			t.Fatalf("unexpected get error: %v", err)
		}
		if len(lines) != 0 {
			t.Fatalf("expected backend failure to read as empty cart, got %+v", lines)
		}
	})
}

func TestServiceMutationSurvivesPersistFailure(t *testing.T) {
	t.Parallel()

	kv := newStubKV()
	kv.saveErr = fmt.Errorf("write refused")
	svc, err := NewService(kv, plainKeys, nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	lines, err := svc.Add(context.Background(), "sess", product("1", 45000))
	if err != nil {
		t.Fatalf("persist failures must not surface to the caller: %v", err)
	}
	if lines.Count() != 1 {
		t.Fatalf("expected in-flight cart to carry the mutation, got %+v", lines)
	}
	if kv.saves != 1 {
		t.Fatalf("expected one save attempt, got %d", kv.saves)
	}
}

func TestServiceClearRemovesAllLines(t *testing.T) {
	t.Parallel()

	kv := newStubKV()
	svc, err := NewService(kv, plainKeys, nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ctx := context.Background()

	if _, err := svc.Add(ctx, "sess", product("1", 45000)); err != nil {
		t.Fatalf("unexpected add error: %v", err)
	}
	if _, err := svc.Add(ctx, "sess", product("2", 35000)); err != nil {
		t.Fatalf("unexpected add error: %v", err)
	}

	lines, err := svc.Clear(ctx, "sess")
	if err != nil {
		t.Fatalf("unexpected clear error: %v", err)
	}
	if len(lines) != 0 {
		t.Fatalf("expected empty cart after clear, got %+v", lines)
	}

	reloaded, err := svc.Get(ctx, "sess")
	if err != nil {
		t.Fatalf("unexpected get error: %v", err)
	}
	if len(reloaded) != 0 {
		t.Fatalf("expected cleared cart to persist, got %+v", reloaded)
	}
}
