package store

import (
	"context"
	"io"
	"log/slog"
	"sync"

	"storefront/internal/domain/repository"

	"github.com/pkg/errors"
)

var errQuotaExceeded = errors.New("quota exceeded")

// fakeKV is an in-memory KeyValueStore whose writes can be made to fail.
type fakeKV struct {
	mu      sync.Mutex
	data    map[string]string
	failSet bool
	getErr  error
	sets    int
}

func newFakeKV() *fakeKV {
	return &fakeKV{data: make(map[string]string)}
}

func (f *fakeKV) Get(_ context.Context, key string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.getErr != nil {
		return "", f.getErr
	}
	v, ok := f.data[key]
	if !ok {
		return "", repository.ErrKeyNotFound
	}

	return v, nil
}

func (f *fakeKV) Set(_ context.Context, key, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.sets++
	if f.failSet {
		return errQuotaExceeded
	}
	f.data[key] = value

	return nil
}

func (f *fakeKV) setFailing(fail bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failSet = fail
}

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
