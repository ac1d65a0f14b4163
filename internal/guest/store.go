// Package guest persists guest-scoped state as keyed JSON blobs on the
// service host, independent of the database.
package guest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/rs/zerolog"
)

// Store defines keyed blob persistence for guest scope.
type Store interface {
	// Get decodes the blob stored under key into v. It reports false when no blob exists.
	Get(ctx context.Context, key string, v any) (bool, error)

	// Put replaces the blob stored under key.
	Put(ctx context.Context, key string, v any) error

	// Delete removes the blob stored under key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
}

// memoryStore implements Store in process memory.
type memoryStore struct {
	mu    sync.RWMutex
	blobs map[string][]byte
}

// NewMemoryStore creates a Store that lives only as long as the process.
func NewMemoryStore() Store {
	return &memoryStore{blobs: make(map[string][]byte)}
}

func (s *memoryStore) Get(ctx context.Context, key string, v any) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	s.mu.RLock()
	data, ok := s.blobs[key]
	s.mu.RUnlock()

	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(data, v); err != nil {
		return false, fmt.Errorf("failed to decode blob %s: %w", key, err)
	}
	return true, nil
}

func (s *memoryStore) Put(ctx context.Context, key string, v any) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode blob %s: %w", key, err)
	}

	s.mu.Lock()
	s.blobs[key] = data
	s.mu.Unlock()
	return nil
}

func (s *memoryStore) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	delete(s.blobs, key)
	s.mu.Unlock()
	return nil
}

// fileStore implements Store with one JSON file per key.
type fileStore struct {
	dir    string
	mu     sync.Mutex
	logger zerolog.Logger
}

var keyReplacer = strings.NewReplacer("/", "_", "\\", "_", ":", "_", "..", "_")

// NewFileStore creates a Store under dir, creating the directory if needed.
func NewFileStore(dir string, logger zerolog.Logger) (Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create guest store directory %s: %w", dir, err)
	}

	logger = logger.With().Str("component", "guest-store").Logger()
	logger.Info().Str("dir", dir).Msg("guest store initialised")

	return &fileStore{dir: dir, logger: logger}, nil
}

func (s *fileStore) path(key string) string {
	return filepath.Join(s.dir, keyReplacer.Replace(key)+".json")
}

func (s *fileStore) Get(ctx context.Context, key string, v any) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	s.mu.Lock()
	data, err := os.ReadFile(s.path(key))
	s.mu.Unlock()

	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		s.logger.Error().Err(err).Str("key", key).Msg("failed to read guest blob")
		return false, fmt.Errorf("failed to read blob %s: %w", key, err)
	}

	if err := json.Unmarshal(data, v); err != nil {
		s.logger.Error().Err(err).Str("key", key).Msg("failed to decode guest blob")
		return false, fmt.Errorf("failed to decode blob %s: %w", key, err)
	}
	return true, nil
}

// Put writes to a temporary file and renames it over the target so a reader
// never observes a partially written blob.
func (s *fileStore) Put(ctx context.Context, key string, v any) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode blob %s: %w", key, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	tmp, err := os.CreateTemp(s.dir, "blob-*.tmp")
	if err != nil {
		s.logger.Error().Err(err).Str("key", key).Msg("failed to create temp blob")
		return fmt.Errorf("failed to write blob %s: %w", key, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write blob %s: %w", key, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to write blob %s: %w", key, err)
	}

	if err := os.Rename(tmpName, s.path(key)); err != nil {
		os.Remove(tmpName)
		s.logger.Error().Err(err).Str("key", key).Msg("failed to replace guest blob")
		return fmt.Errorf("failed to write blob %s: %w", key, err)
	}
	return nil
}

func (s *fileStore) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path(key)); err != nil && !errors.Is(err, os.ErrNotExist) {
		s.logger.Error().Err(err).Str("key", key).Msg("failed to delete guest blob")
		return fmt.Errorf("failed to delete blob %s: %w", key, err)
	}
	return nil
}
