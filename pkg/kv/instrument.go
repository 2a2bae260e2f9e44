package kv

import "context"

// OpRecorder receives one call per store operation. Implementations must be
// safe for concurrent use.
type OpRecorder interface {
	ObserveGet(collection string, found bool)
	ObserveSet(collection string)
	ObserveDelete(collection string)
}

type instrumentedStore struct {
	next Store
	rec  OpRecorder
}

// Instrument decorates a store with per-collection operation counters.
func Instrument(next Store, rec OpRecorder) Store {
	if rec == nil {
		return next
	}
	return &instrumentedStore{next: next, rec: rec}
}

func (s *instrumentedStore) Get(ctx context.Context, key string, dest any) (bool, error) {
	found, err := s.next.Get(ctx, key, dest)
	s.rec.ObserveGet(Collection(key), found)
	return found, err
}

func (s *instrumentedStore) Set(ctx context.Context, key string, value any) error {
	err := s.next.Set(ctx, key, value)
	if err == nil {
		s.rec.ObserveSet(Collection(key))
	}
	return err
}

func (s *instrumentedStore) Delete(ctx context.Context, key string) error {
	err := s.next.Delete(ctx, key)
	if err == nil {
		s.rec.ObserveDelete(Collection(key))
	}
	return err
}

func (s *instrumentedStore) Keys(ctx context.Context, prefix string) ([]string, error) {
	return s.next.Keys(ctx, prefix)
}

func (s *instrumentedStore) Close() error {
	return s.next.Close()
}
