package repository

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"sync"

	repo "minishop/internal/repository"
)

var validKey = regexp.MustCompile(`^[A-Za-z0-9_.-]+$`)

// 1キー1ファイル（<dir>/<key>.json）
type KeyValueFileStore struct {
	dir string
	mu  sync.Mutex
}

// DI
func NewKeyValueFileStore(dir string) (*KeyValueFileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create store dir: %w", err)
	}
	return &KeyValueFileStore{dir: dir}, nil
}

func (s *KeyValueFileStore) path(key string) (string, error) {
	if !validKey.MatchString(key) {
		return "", fmt.Errorf("invalid key %q", key)
	}
	return filepath.Join(s.dir, key+".json"), nil
}

func (s *KeyValueFileStore) Get(ctx context.Context, key string) ([]byte, error) {
	p, err := s.path(key)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(p)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, repo.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return data, nil
}

// 一時ファイルに書いてからrenameで置き換える
func (s *KeyValueFileStore) Set(ctx context.Context, key string, value []byte) error {
	p, err := s.path(key)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	tmp, err := os.CreateTemp(s.dir, key+".*.tmp")
	if err != nil {
		return err
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if _, err := tmp.Write(value); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), p)
}
