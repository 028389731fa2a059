package pathcache

import (
	"context"
	"errors"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"

	"github.com/katalvlaran/jumpgrid/gridgraph"
)

func TestNull(t *testing.T) {
	ctx := context.Background()
	c := NewNull()
	defer c.Close()

	if err := c.Set(ctx, "key", []byte("value"), time.Hour); err != nil {
		t.Errorf("Set error: %v", err)
	}
	data, hit, err := c.Get(ctx, "key")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if hit || data != nil {
		t.Error("Null should never store data")
	}
	if err := c.Delete(ctx, "key"); err != nil {
		t.Errorf("Delete error: %v", err)
	}
}

func TestKey(t *testing.T) {
	a, b := gridgraph.Coord{X: 1, Y: 2}, gridgraph.Coord{X: 3, Y: 4}
	k1 := Key("fp", a, b)
	if k1 != Key("fp", a, b) {
		t.Error("Key should be deterministic")
	}
	if k1 == Key("fp", b, a) {
		t.Error("Key should depend on direction")
	}
	if k1 == Key("other", a, b) {
		t.Error("Key should depend on the grid fingerprint")
	}
	if !strings.HasPrefix(k1, "jumpgrid:path:") || len(k1) != len("jumpgrid:path:")+64 {
		t.Errorf("unexpected key format %q", k1)
	}
}

func TestEncodeDecode(t *testing.T) {
	in := Entry{Found: true, Path: []gridgraph.Coord{{X: 0, Y: 0}, {X: 3, Y: 3}}, Cost: 4.2}
	data, err := Encode(in)
	if err != nil {
		t.Fatalf("Encode error: %v", err)
	}
	out, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode error: %v", err)
	}
	if !out.Found || out.Cost != in.Cost || len(out.Path) != 2 || out.Path[1] != in.Path[1] {
		t.Errorf("round trip mismatch: %+v", out)
	}

	for _, bad := range []string{"not json", `{"found":true}`} {
		if _, err := Decode([]byte(bad)); !errors.Is(err, ErrBadEntry) {
			t.Errorf("Decode(%q) = %v, want ErrBadEntry", bad, err)
		}
	}
}

func TestLookup_MalformedIsMiss(t *testing.T) {
	ctx := context.Background()
	m := NewMemory(4)
	_ = m.Set(ctx, "k", []byte("garbage"), 0)

	_, ok, err := Lookup(ctx, m, "k")
	if err != nil || ok {
		t.Fatalf("Lookup = %v, %v; want miss", ok, err)
	}
	if m.Len() != 0 {
		t.Error("malformed entry should be deleted")
	}

	want := Entry{Found: false}
	if err := Store(ctx, m, "k", want, 0); err != nil {
		t.Fatalf("Store error: %v", err)
	}
	got, ok, err := Lookup(ctx, m, "k")
	if err != nil || !ok || got.Found {
		t.Fatalf("Lookup = %+v, %v, %v", got, ok, err)
	}
}

func TestMemory_LRU(t *testing.T) {
	ctx := context.Background()
	m := NewMemory(2)

	_ = m.Set(ctx, "a", []byte("1"), 0)
	_ = m.Set(ctx, "b", []byte("2"), 0)
	if _, ok, _ := m.Get(ctx, "a"); !ok { // a is now most recent
		t.Fatal("a should be cached")
	}
	_ = m.Set(ctx, "c", []byte("3"), 0) // evicts b

	if _, ok, _ := m.Get(ctx, "b"); ok {
		t.Error("b should have been evicted")
	}
	for _, k := range []string{"a", "c"} {
		if _, ok, _ := m.Get(ctx, k); !ok {
			t.Errorf("%s should be cached", k)
		}
	}
	if m.Len() != 2 {
		t.Errorf("Len = %d, want 2", m.Len())
	}
}

func TestMemory_TTL(t *testing.T) {
	ctx := context.Background()
	m := NewMemory(8)
	now := time.Unix(1000, 0)
	m.now = func() time.Time { return now }

	_ = m.Set(ctx, "short", []byte("x"), time.Minute)
	_ = m.Set(ctx, "forever", []byte("y"), 0)

	now = now.Add(30 * time.Second)
	if _, ok, _ := m.Get(ctx, "short"); !ok {
		t.Error("short should still be cached")
	}
	now = now.Add(time.Minute)
	if _, ok, _ := m.Get(ctx, "short"); ok {
		t.Error("short should have expired")
	}
	if _, ok, _ := m.Get(ctx, "forever"); !ok {
		t.Error("entries without TTL never expire")
	}
}

func TestMemory_CopiesData(t *testing.T) {
	ctx := context.Background()
	m := NewMemory(1)
	buf := []byte("abc")
	_ = m.Set(ctx, "k", buf, 0)
	buf[0] = 'z'
	got, _, _ := m.Get(ctx, "k")
	if string(got) != "abc" {
		t.Errorf("Get = %q, want abc", got)
	}
}

func TestMemory_DeleteAndClose(t *testing.T) {
	ctx := context.Background()
	m := NewMemory(0)
	if m.capacity != DefaultCapacity {
		t.Errorf("capacity = %d, want default", m.capacity)
	}
	_ = m.Set(ctx, "a", []byte("1"), 0)
	_ = m.Set(ctx, "b", []byte("2"), 0)
	_ = m.Delete(ctx, "a")
	if _, ok, _ := m.Get(ctx, "a"); ok {
		t.Error("a should be deleted")
	}
	_ = m.Close()
	if m.Len() != 0 {
		t.Error("Close should drop everything")
	}
}

// newTestRedis returns a Redis cache backed by an in-process server, or by
// the live server at JUMPGRID_REDIS_ADDR when set. mr is nil in the latter case.
func newTestRedis(t *testing.T) (*Redis, *miniredis.Miniredis) {
	t.Helper()
	if addr := os.Getenv("JUMPGRID_REDIS_ADDR"); addr != "" {
		r, err := NewRedis(context.Background(), RedisConfig{Addr: addr, Prefix: "jumpgrid-test:"})
		if err != nil {
			t.Fatalf("NewRedis: %v", err)
		}
		t.Cleanup(func() { _ = r.Close() })
		return r, nil
	}
	mr := miniredis.RunT(t)
	r, err := NewRedis(context.Background(), RedisConfig{Addr: mr.Addr(), Prefix: "jumpgrid-test:"})
	if err != nil {
		t.Fatalf("NewRedis: %v", err)
	}
	t.Cleanup(func() { _ = r.Close() })

	return r, mr
}

func TestRedis(t *testing.T) {
	ctx := context.Background()
	r, mr := newTestRedis(t)

	key := Key("redis-test", gridgraph.Coord{}, gridgraph.Coord{X: 1})
	defer r.Delete(ctx, key)

	if _, ok, err := r.Get(ctx, key); err != nil || ok {
		t.Fatalf("fresh key: ok=%v err=%v", ok, err)
	}
	if err := r.Set(ctx, key, []byte("v"), time.Minute); err != nil {
		t.Fatalf("Set: %v", err)
	}
	data, ok, err := r.Get(ctx, key)
	if err != nil || !ok || string(data) != "v" {
		t.Fatalf("Get = %q, %v, %v", data, ok, err)
	}
	if mr != nil && !mr.Exists("jumpgrid-test:"+key) {
		t.Error("key should be stored under the prefix")
	}
	if err := r.Delete(ctx, key); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, ok, _ := r.Get(ctx, key); ok {
		t.Error("key should be gone")
	}
}

func TestRedis_Expiry(t *testing.T) {
	ctx := context.Background()
	r, mr := newTestRedis(t)
	if mr == nil {
		t.Skip("needs the in-process server to move time forward")
	}

	key := Key("redis-ttl", gridgraph.Coord{}, gridgraph.Coord{Y: 1})
	if err := Store(ctx, r, key, Entry{Found: true, Path: []gridgraph.Coord{{}, {Y: 1}}, Cost: 1}, time.Minute); err != nil {
		t.Fatalf("Store: %v", err)
	}
	e, ok, err := Lookup(ctx, r, key)
	if err != nil || !ok || e.Cost != 1 {
		t.Fatalf("Lookup = %+v, %v, %v", e, ok, err)
	}
	mr.FastForward(2 * time.Minute)
	if _, ok, _ := Lookup(ctx, r, key); ok {
		t.Error("entry should have expired")
	}
}

func TestRedis_ServerError(t *testing.T) {
	ctx := context.Background()
	r, mr := newTestRedis(t)
	if mr == nil {
		t.Skip("needs the in-process server to inject errors")
	}

	mr.SetError("ERR injected failure")
	_, _, err := r.Get(ctx, "k")
	if err == nil || !strings.Contains(err.Error(), "redis get") {
		t.Errorf("Get error = %v, want wrapped redis get error", err)
	}
	if err := r.Set(ctx, "k", []byte("v"), 0); err == nil || !strings.Contains(err.Error(), "redis set") {
		t.Errorf("Set error = %v, want wrapped redis set error", err)
	}
	if err := r.Delete(ctx, "k"); err == nil || !strings.Contains(err.Error(), "redis del") {
		t.Errorf("Delete error = %v, want wrapped redis del error", err)
	}
}

func TestNewRedis_Unreachable(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()
	if _, err := NewRedis(ctx, RedisConfig{Addr: "127.0.0.1:1"}); err == nil {
		t.Error("expected connection error")
	}
}
