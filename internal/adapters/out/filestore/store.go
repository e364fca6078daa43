// Package filestore persists the order collection as one JSON document on disk.
// Saves write a temporary file next to the target and rename it into place, so a
// crash mid-save leaves the previous document intact.
package filestore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	"catering/internal/core/domain/model/order"
	"catering/internal/pkg/errs"
)

// Store implements ports.OrderPersistence on a single file.
type Store struct {
	path string
	now  func() time.Time
	mu   sync.Mutex
}

func NewStore(path string) (*Store, error) {
	if path == "" {
		return nil, errs.NewValueIsRequiredError("path")
	}
	return &Store{path: path, now: time.Now}, nil
}

func (s *Store) Path() string {
	return s.path
}

// Load reads the document. A missing file is an empty collection.
func (s *Store) Load(ctx context.Context) ([]order.Order, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return []order.Order{}, nil
	}
	if err != nil {
		return nil, err
	}

	var doc document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("decode %s: %w", s.path, err)
	}
	if doc.Version != formatVersion {
		return nil, errs.NewValueIsInvalidErrorWithCause("version",
			fmt.Errorf("%s has format version %d, expected %d", s.path, doc.Version, formatVersion))
	}

	orders := make([]order.Order, 0, len(doc.Orders))
	for _, r := range doc.Orders {
		o, err := toDomain(r)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, nil
}

// Save replaces the document with orders.
func (s *Store) Save(ctx context.Context, orders []order.Order) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	doc := document{
		Version: formatVersion,
		SavedAt: s.now().UTC(),
		Orders:  make([]orderRecord, 0, len(orders)),
	}
	for _, o := range orders {
		doc.Orders = append(doc.Orders, fromDomain(o))
	}

	raw, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return err
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if _, err := tmp.Write(raw); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}

	return os.Rename(tmp.Name(), s.path)
}
