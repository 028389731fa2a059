package pathcache

import (
	"context"
	"time"
)

// Null caches nothing. It is what a Planner uses when no cache is given, so
// every query runs a fresh search.
type Null struct{}

// NewNull returns the no-op cache.
func NewNull() Cache { return Null{} }

func (Null) Get(context.Context, string) ([]byte, bool, error) { return nil, false, nil }

func (Null) Set(context.Context, string, []byte, time.Duration) error { return nil }

func (Null) Delete(context.Context, string) error { return nil }

func (Null) Close() error { return nil }
