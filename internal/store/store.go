package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

func (s *implStore) Path(key string) string {
	return filepath.Join(s.root, filepath.FromSlash(key))
}

func (s *implStore) Exists(key string) bool {
	_, err := os.Stat(s.Path(key))
	return err == nil
}

func (s *implStore) ReadText(key string) (string, error) {
	data, err := os.ReadFile(s.Path(key))
	if err != nil {
		return "", fmt.Errorf("read %s: %w", key, err)
	}
	return string(data), nil
}

func (s *implStore) WriteText(key, content string) error {
	path := s.Path(key)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create directory for %s: %w", key, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}
	return nil
}

func (s *implStore) ReadJSON(key string, v interface{}) error {
	data, err := os.ReadFile(s.Path(key))
	if err != nil {
		return fmt.Errorf("read %s: %w", key, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("decode %s: %w", key, err)
	}
	return nil
}

func (s *implStore) WriteJSON(key string, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	return s.WriteText(key, string(data)+"\n")
}
