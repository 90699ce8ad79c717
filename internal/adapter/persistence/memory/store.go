// Package memory keeps catalog rows and configurations in process memory.
//
// It enforces the same rules as the durable backends (unique ids, references
// to active rows of the same namespace, closed enums) and serves local
// development and tests.
package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"carport_configurator/internal/domain/entities"
	"carport_configurator/internal/usecase/interfaces"

	"github.com/google/btree"
)

const btreeDegree = 16

// Store is shared by the catalog and configuration repositories so that a
// configuration create can see the catalog atomically.
type Store struct {
	mu     sync.RWMutex
	spaces map[string]*space
}

type space struct {
	catalog   map[entities.EntityKind]map[string]entities.CatalogEntity
	configs   map[string]entities.Configuration
	byCreated *btree.BTreeG[createdKey]
}

// createdKey orders configurations newest first, ties broken by id.
type createdKey struct {
	createdAt time.Time
	id        string
}

func newestFirst(a, b createdKey) bool {
	if !a.createdAt.Equal(b.createdAt) {
		return a.createdAt.After(b.createdAt)
	}
	return a.id < b.id
}

func NewStore() *Store {
	return &Store{spaces: make(map[string]*space)}
}

func (s *Store) Catalog() *CatalogRepository {
	return &CatalogRepository{store: s}
}

func (s *Store) Configurations() *ConfigurationRepository {
	return &ConfigurationRepository{store: s}
}

func newSpace() *space {
	return &space{
		catalog:   make(map[entities.EntityKind]map[string]entities.CatalogEntity),
		configs:   make(map[string]entities.Configuration),
		byCreated: btree.NewG[createdKey](btreeDegree, newestFirst),
	}
}

// space returns the partition of ns, creating it on first write. Callers hold mu for writing.
func (s *Store) space(ns entities.Namespace) *space {
	sp, ok := s.spaces[ns.Prefix()]
	if !ok {
		sp = newSpace()
		s.spaces[ns.Prefix()] = sp
	}
	return sp
}

// view returns the partition of ns for reading, or an empty one. Callers hold mu.
func (s *Store) view(ns entities.Namespace) *space {
	if sp, ok := s.spaces[ns.Prefix()]; ok {
		return sp
	}
	return newSpace()
}

func checkContext(ctx context.Context, ns entities.Namespace) error {
	if ns.IsZero() {
		return entities.ErrUnknownProductLine
	}
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %w", interfaces.ErrStorageUnavailable, err)
	}
	return nil
}
