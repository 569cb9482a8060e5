package cache

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
)

// spillStore is the cold tier: one file per evicted entry under a
// scratch directory owned exclusively by this cache instance. The
// directory is created lazily on the first spill and removed by clear,
// after which it may be created again.
type spillStore[K comparable, V any] struct {
	parent string       // where the scratch directory is created; "" means os.TempDir
	dir    string       // "" until the first spill
	index  map[K]string // key -> spill file path
	codec  Codec[V]
}

func newSpillStore[K comparable, V any](parent string, codec Codec[V]) *spillStore[K, V] {
	return &spillStore[K, V]{
		parent: parent,
		index:  make(map[K]string),
		codec:  codec,
	}
}

func (s *spillStore[K, V]) len() int {
	return len(s.index)
}

func (s *spillStore[K, V]) has(key K) bool {
	_, ok := s.index[key]
	return ok
}

func (s *spillStore[K, V]) keys() []K {
	keys := make([]K, 0, len(s.index))
	for key := range s.index {
		keys = append(keys, key)
	}
	return keys
}

func (s *spillStore[K, V]) ensureDir() error {
	if s.dir != "" {
		return nil
	}
	dir, err := os.MkdirTemp(s.parent, "spillover-")
	if err != nil {
		return fmt.Errorf("%w: %v", ErrScratchDir, err)
	}
	s.dir = dir
	return nil
}

// entryFileName derives a unique spill file name. The fixed-width digest
// keeps arbitrary key text filesystem-safe; the uuid token keeps repeated
// spill cycles of the same key from ever reusing a stale file.
func entryFileName(keyText string) string {
	return fmt.Sprintf("%016x-%s.entry", xxhash.Sum64String(keyText), uuid.NewString())
}

// persist writes key's value to a newly created uniquely named file and
// records the mapping. A failed persist registers no mapping and leaves
// no partial file behind.
func (s *spillStore[K, V]) persist(key K, value V) error {
	if err := s.ensureDir(); err != nil {
		return err
	}
	payload, err := s.codec.Marshal(value)
	if err != nil {
		return fmt.Errorf("%w: encode key %v: %v", ErrSpillWrite, key, err)
	}
	keyText := fmt.Sprint(key)
	path := filepath.Join(s.dir, entryFileName(keyText))
	if err := os.WriteFile(path, encodeEnvelope(keyText, payload), 0o600); err != nil {
		os.Remove(path)
		return fmt.Errorf("%w: key %v: %v", ErrSpillWrite, key, err)
	}
	s.index[key] = path
	return nil
}

// retrieve reads and decodes key's spill file. The mapping and the file
// are left in place.
func (s *spillStore[K, V]) retrieve(key K) (V, error) {
	var zero V
	path, ok := s.index[key]
	if !ok {
		return zero, fmt.Errorf("%w: key %v has no spill file", ErrSpillRead, key)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return zero, fmt.Errorf("%w: key %v: %v", ErrSpillRead, key, err)
	}
	_, payload, err := decodeEnvelope(data)
	if err != nil {
		return zero, fmt.Errorf("key %v: %w", key, err)
	}
	var value V
	if err := s.codec.Unmarshal(payload, &value); err != nil {
		return zero, fmt.Errorf("%w: key %v: %v", ErrCorrupt, key, err)
	}
	return value, nil
}

// drop deletes key's spill file and forgets the mapping. Unknown keys
// are a no-op.
func (s *spillStore[K, V]) drop(key K) error {
	path, ok := s.index[key]
	if !ok {
		return nil
	}
	if err := os.Remove(path); err != nil {
		return fmt.Errorf("%w: key %v: %v", ErrSpillDelete, key, err)
	}
	delete(s.index, key)
	return nil
}

// clear deletes every spill file and the scratch directory, returning
// the store to its pre-first-spill state. The first deletion failure
// aborts; files already deleted stay forgotten.
func (s *spillStore[K, V]) clear() error {
	for key, path := range s.index {
		if err := os.Remove(path); err != nil {
			return fmt.Errorf("%w: key %v: %v", ErrSpillDelete, key, err)
		}
		delete(s.index, key)
	}
	if s.dir != "" {
		if err := os.Remove(s.dir); err != nil {
			return fmt.Errorf("%w: %v", ErrScratchDir, err)
		}
		s.dir = ""
	}
	return nil
}
