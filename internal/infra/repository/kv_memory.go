package repository

import (
	"context"
	"sync"

	repo "minishop/internal/repository"
)

// プロセス内だけの保存枠（テスト・一時起動用）
type KeyValueMemoryStore struct {
	mu   sync.RWMutex
	data map[string][]byte
}

func NewKeyValueMemoryStore() *KeyValueMemoryStore {
	return &KeyValueMemoryStore{data: map[string][]byte{}}
}

func (s *KeyValueMemoryStore) Get(ctx context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.data[key]
	if !ok {
		return nil, repo.ErrNotFound
	}
	return append([]byte(nil), v...), nil
}

func (s *KeyValueMemoryStore) Set(ctx context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data[key] = append([]byte(nil), value...)
	return nil
}
