// Package store maps page lists to and from a durable key-value store, one
// key per page.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"go.uber.org/zap"
)

// ErrNotPersisted is returned when saving a page that has no storage key.
var ErrNotPersisted = errors.New("page is not persisted")

// KV is the durable side: whole values under string keys.
type KV interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte) error
	Close() error
}

type Adapter struct {
	kv  KV
	log *zap.Logger
}

func New(kv KV, log *zap.Logger) *Adapter {
	if log == nil {
		log = zap.NewNop()
	}
	return &Adapter{kv: kv, log: log.Named("store")}
}

// Load reads the list stored under key. ok is false when nothing usable is
// stored: a missing key, a read failure or a payload that does not decode.
// None of those are surfaced; the caller keeps its default list.
func Load[R any](ctx context.Context, a *Adapter, key string) (items []R, ok bool) {
	items, ok, err := Fetch[R](ctx, a, key)
	if err != nil {
		a.log.Warn("read failed, using empty list", zap.String("key", key), zap.Error(err))
		return nil, false
	}
	return items, ok
}

// Fetch is Load for callers that must tell a failing store from an empty
// one. Only read failures are returned; a payload that does not decode is
// still treated as nothing stored.
func Fetch[R any](ctx context.Context, a *Adapter, key string) (items []R, ok bool, err error) {
	if key == "" {
		return nil, false, nil
	}
	b, found, err := a.kv.Get(ctx, key)
	if err != nil {
		return nil, false, fmt.Errorf("load %s: %w", key, err)
	}
	if !found {
		return nil, false, nil
	}
	if err := json.Unmarshal(b, &items); err != nil {
		a.log.Warn("stored value is not a valid list, ignoring", zap.String("key", key), zap.Error(err))
		return nil, false, nil
	}
	if items == nil {
		items = []R{}
	}
	return items, true, nil
}

// Save overwrites key with the full list.
func Save[R any](ctx context.Context, a *Adapter, key string, items []R) error {
	if key == "" {
		return ErrNotPersisted
	}
	if items == nil {
		items = []R{}
	}
	b, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("json marshal: %w", err)
	}
	if err := a.kv.Set(ctx, key, b); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	a.log.Debug("saved", zap.String("key", key), zap.Int("count", len(items)))
	return nil
}

// ClearStored writes an empty list under key.
func (a *Adapter) ClearStored(ctx context.Context, key string) error {
	if key == "" {
		return ErrNotPersisted
	}
	if err := a.kv.Set(ctx, key, []byte("[]")); err != nil {
		return fmt.Errorf("clear %s: %w", key, err)
	}
	a.log.Info("cleared", zap.String("key", key))
	return nil
}

func (a *Adapter) Close() error { return a.kv.Close() }
