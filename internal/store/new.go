package store

import (
	"fmt"
	"os"
)

type implStore struct {
	root string
}

// New creates a filesystem-backed Store rooted at the given directory.
func New(root string) (Store, error) {
	if root == "" {
		return nil, fmt.Errorf("store root is required")
	}
	if err := os.MkdirAll(root, 0755); err != nil {
		return nil, fmt.Errorf("create store root: %w", err)
	}
	return &implStore{root: root}, nil
}
