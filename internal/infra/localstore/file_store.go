// Package localstore provides the durable cart identifier list, the
// process-local analog of the browser's single localStorage entry.
package localstore

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"

	"tilemart/config"
	"tilemart/internal/domain/repository"

	"github.com/pkg/errors"
)

// fileStore persists the identifier list as a JSON array in a single file.
type fileStore struct {
	path string
}

// NewFileStore is the constructor for fileStore.
func NewFileStore(cfg *config.Config) repository.CartRepository {
	return &fileStore{path: cfg.Cart.StorePath}
}

// Load reads the persisted identifier list. A missing file is an empty cart.
func (s *fileStore) Load(ctx context.Context) ([]int64, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}

		return nil, errors.Wrap(err, "failed to read cart store")
	}

	var tileIDs []int64
	if err := json.Unmarshal(data, &tileIDs); err != nil {
		return nil, errors.Wrap(err, "failed to decode cart store")
	}

	return tileIDs, nil
}

// Save rewrites the full identifier list. The write goes through a temp file
// and rename so a crash never leaves a truncated store.
func (s *fileStore) Save(ctx context.Context, tileIDs []int64) error {
	if tileIDs == nil {
		tileIDs = []int64{}
	}

	data, err := json.Marshal(tileIDs)
	if err != nil {
		return errors.Wrap(err, "failed to encode cart store")
	}

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, ".cart-*.tmp")
	if err != nil {
		return errors.Wrap(err, "failed to create temp cart store")
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())

		return errors.Wrap(err, "failed to write cart store")
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())

		return errors.Wrap(err, "failed to close cart store")
	}

	if err := os.Rename(tmp.Name(), s.path); err != nil {
		os.Remove(tmp.Name())

		return errors.Wrap(err, "failed to replace cart store")
	}

	return nil
}
