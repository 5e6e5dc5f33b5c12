package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jask/clipboard/internal/config"
	"github.com/jask/clipboard/internal/model"
)

// Store loads and saves the whole roster.
type Store interface {
	Load(ctx context.Context) (*model.Roster, error)
	Save(ctx context.Context, r *model.Roster) error
	Path() string
}

// ErrDataLoad matches every DataLoadError via errors.Is.
var ErrDataLoad = errors.New("data load error")

// DataLoadError means persisted state was unreadable or held a record that
// fails entity validation.
type DataLoadError struct {
	Path string
	Err  error
}

func (e *DataLoadError) Error() string {
	return fmt.Sprintf("load %s: %v", e.Path, e.Err)
}

func (e *DataLoadError) Unwrap() []error { return []error{ErrDataLoad, e.Err} }

// Open returns the store the config names.
func Open(cfg config.StorageConfig) (Store, error) {
	switch strings.ToLower(strings.TrimSpace(cfg.Backend)) {
	case "", "json":
		return NewJSONStore(cfg.Path), nil
	case "sqlite":
		return OpenSQLite(cfg.Path)
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Backend)
	}
}
