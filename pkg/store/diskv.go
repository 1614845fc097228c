package store

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterbourgon/diskv/v3"
)

const (
	fileExt = ".json"
	tempDir = ".tmp"
)

// DiskvBackend keeps one file per key under a base directory.
type DiskvBackend struct {
	d        *diskv.Diskv
	basePath string
}

// NewDiskv creates a file backed Backend rooted at basePath.
func NewDiskv(basePath string) (*DiskvBackend, error) {
	if strings.TrimSpace(basePath) == "" {
		return nil, errors.New("store: base path required")
	}
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return nil, fmt.Errorf("store: ensure base path: %w", err)
	}
	return &DiskvBackend{d: diskv.New(diskv.Options{
		BasePath:          basePath,
		TempDir:           filepath.Join(basePath, tempDir),
		AdvancedTransform: keyToPathTransform,
		InverseTransform:  pathToKeyTransform,
		// No cache: Watch relies on reads observing writes from other processes.
		CacheSizeMax: 0,
	}), basePath: basePath}, nil
}

func (b *DiskvBackend) Read(ctx context.Context, key string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if !b.d.Has(key) {
		return nil, ErrNotFound
	}
	val, err := b.d.Read(key)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return val, nil
}

func (b *DiskvBackend) Write(ctx context.Context, key string, value []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return b.d.Write(key, value)
}

func (b *DiskvBackend) Close() error {
	return nil
}

// Path returns the file holding key.
func (b *DiskvBackend) Path(key string) string {
	return filepath.Join(b.basePath, toFileName(key))
}

func keyToPathTransform(key string) *diskv.PathKey {
	return &diskv.PathKey{
		Path:     []string{},
		FileName: toFileName(key),
	}
}

func pathToKeyTransform(pathKey *diskv.PathKey) string {
	return fromFileName(pathKey.FileName)
}

// toFileName makes any key safe to use as a file name.
func toFileName(key string) string {
	return base64.RawURLEncoding.EncodeToString([]byte(key)) + fileExt
}

func fromFileName(name string) string {
	key, err := base64.RawURLEncoding.DecodeString(strings.TrimSuffix(name, fileExt))
	if err != nil {
		return fmt.Sprintf("fromFileName: %s", err)
	}
	return string(key)
}
