package blobstore

import (
	"context"

	"golang.org/x/time/rate"
)

// Throttle wraps a Store with a bandwidth limit on blob payload bytes.
// Useful when bulk-syncing dictionary snapshots next to latency-sensitive
// traffic. A bytesPerSec of 0 or less returns the store unwrapped.
func Throttle(store Store, bytesPerSec float64) Store {
	if bytesPerSec <= 0 {
		return store
	}
	// Sub-1 rates would truncate to a zero burst, and a zero burst can
	// never admit a byte.
	burst := int(bytesPerSec)
	if burst < 1 {
		burst = 1
	}
	return &throttledStore{
		inner:   store,
		limiter: rate.NewLimiter(rate.Limit(bytesPerSec), burst),
	}
}

type throttledStore struct {
	inner   Store
	limiter *rate.Limiter
}

// waitN reserves n payload bytes, in burst-sized chunks so that blobs
// larger than one second of bandwidth still pass.
func (s *throttledStore) waitN(ctx context.Context, n int) error {
	burst := s.limiter.Burst()
	for n > 0 {
		chunk := n
		if chunk > burst {
			chunk = burst
		}
		if err := s.limiter.WaitN(ctx, chunk); err != nil {
			return err
		}
		n -= chunk
	}
	return nil
}

func (s *throttledStore) Put(ctx context.Context, name string, data []byte) error {
	if err := s.waitN(ctx, len(data)); err != nil {
		return err
	}
	return s.inner.Put(ctx, name, data)
}

func (s *throttledStore) Get(ctx context.Context, name string) ([]byte, error) {
	data, err := s.inner.Get(ctx, name)
	if err != nil {
		return nil, err
	}
	if err := s.waitN(ctx, len(data)); err != nil {
		return nil, err
	}
	return data, nil
}

func (s *throttledStore) Delete(ctx context.Context, name string) error {
	return s.inner.Delete(ctx, name)
}

func (s *throttledStore) List(ctx context.Context, prefix string) ([]string, error) {
	return s.inner.List(ctx, prefix)
}
