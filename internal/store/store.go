// Package store persists the last validated inputs and the page theme in a
// small key-value store.
package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/JiachengMa-26/Real-Estate-ROI-NPV-Tool/internal/config"
)

// ErrUnknownDriver is returned by Open for an unsupported driver name.
var ErrUnknownDriver = errors.New("unknown store driver")

// KVStore is a string key-value store. Get reports ok=false for a missing key.
type KVStore interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	Close() error
}

// Open builds the backend selected by the settings.
func Open(s config.StoreSettings) (KVStore, error) {
	switch s.Driver {
	case config.DriverMemory:
		return NewMemoryStore(), nil
	case config.DriverFile:
		return NewFileStore(s.Path), nil
	case config.DriverSQLite:
		return NewSQLiteStore(s.Path)
	case config.DriverRedis:
		return NewRedisStore(s.Addr, s.Password, s.DB), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, s.Driver)
	}
}
