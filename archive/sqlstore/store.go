// SPDX-License-Identifier: MIT

// Package sqlstore persists archive entries in a SQL database through gorm.
// A Store satisfies archive.Archiver and archive.Unarchiver, so vectors and
// matrices use it exactly like the in-memory archive:
//
//	store, err := sqlstore.Open(cfg.Database)
//	err = matrix.Write(m.Const(), "weights", store)
//	w, err := matrix.Read[float64]("weights", store, matrix.RowMajor)
//
// Writing an existing name replaces its value. With postgres read replicas
// configured, reads are routed to the replicas.
package sqlstore

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/plugin/dbresolver"

	"github.com/katalvlaran/linalg/archive"
	"github.com/katalvlaran/linalg/config"
	"github.com/katalvlaran/linalg/errs"
	"github.com/katalvlaran/linalg/logger"
)

// Store is a database-backed archive. It is safe for concurrent use.
type Store struct {
	db    *gorm.DB
	ctx   context.Context
	reads *singleflight.Group
}

var (
	_ archive.Archiver   = (*Store)(nil)
	_ archive.Unarchiver = (*Store)(nil)
)

// Open connects to the configured database, migrates the entry table and
// registers the read/write resolver when more than one connection is given.
func Open(cfg config.Database) (*Store, error) {
	conns, err := cfg.Connect()
	if err != nil {
		return nil, fmt.Errorf("sqlstore.Open: %w", err)
	}

	db, err := gorm.Open(conns.Sources[0], &gorm.Config{
		SkipDefaultTransaction: true,
		PrepareStmt:            true,
	})
	if err != nil {
		return nil, fmt.Errorf("sqlstore.Open: %w", err)
	}

	if conns.Routed() {
		err = db.Use(dbresolver.Register(dbresolver.Config{
			Sources:           conns.Sources,
			Replicas:          conns.Replicas,
			Policy:            dbresolver.StrictRoundRobinPolicy(),
			TraceResolverMode: true,
		}))
		if err != nil {
			logger.Sugar().Errorf("failed to register database resolver: %v", err)
			return nil, fmt.Errorf("sqlstore.Open: %w", err)
		}
	}
	logger.Sugar().Debugw("sqlstore opened", "sources", len(conns.Sources), "replicas", len(conns.Replicas))

	return New(db)
}

// New wraps an open connection and migrates the entry table.
func New(db *gorm.DB) (*Store, error) {
	if err := db.Clauses(dbresolver.Write).AutoMigrate(&Entry{}); err != nil {
		return nil, fmt.Errorf("sqlstore.New: migrate: %w", err)
	}

	return &Store{db: db, ctx: context.Background(), reads: &singleflight.Group{}}, nil
}

// WithContext returns a Store whose queries run under ctx.
func (s *Store) WithContext(ctx context.Context) *Store {
	return &Store{db: s.db, ctx: ctx, reads: s.reads}
}

// DB exposes the underlying connection.
func (s *Store) DB() *gorm.DB { return s.db }

func (s *Store) session() *gorm.DB { return s.db.WithContext(s.ctx) }

func storeErrorf(method, name string, err error) error {
	return fmt.Errorf("Store.%s(%q): %w", method, name, err)
}

func (s *Store) put(e *Entry) error {
	return s.session().Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		UpdateAll: true,
	}).Create(e).Error
}

// WriteInt stores value under name.
func (s *Store) WriteInt(name string, value int) error {
	if err := s.put(&Entry{Name: name, Kind: kindInt, Int: int64(value)}); err != nil {
		return storeErrorf("WriteInt", name, err)
	}

	return nil
}

// WriteFloats stores values under name. A nil slice is stored as empty.
func (s *Store) WriteFloats(name string, values []float64) error {
	if values == nil {
		values = []float64{}
	}
	if err := s.put(&Entry{Name: name, Kind: kindFloats, Floats: FloatsField(values)}); err != nil {
		return storeErrorf("WriteFloats", name, err)
	}
	logger.Sugar().Debugw("sqlstore write", "name", name, "values", len(values))

	return nil
}

func (s *Store) get(method, name, kind string) (*Entry, error) {
	var e Entry
	err := s.session().Where("name = ?", name).First(&e).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, storeErrorf(method, name, errs.New(errs.BadFormat, "no entry"))
	}
	if err != nil {
		return nil, storeErrorf(method, name, err)
	}
	if e.Kind != kind {
		return nil, storeErrorf(method, name, errs.New(errs.IllegalValue, "entry holds %s, not %s", e.Kind, kind))
	}

	return &e, nil
}

// ReadInt loads the int stored under name.
func (s *Store) ReadInt(name string) (int, error) {
	e, err := s.get("ReadInt", name, kindInt)
	if err != nil {
		return 0, err
	}

	return int(e.Int), nil
}

// ReadFloats loads the array stored under name. Concurrent reads of the same
// name share one query.
func (s *Store) ReadFloats(name string) ([]float64, error) {
	v, err, _ := s.reads.Do(name, func() (any, error) {
		e, err := s.get("ReadFloats", name, kindFloats)
		if err != nil {
			return nil, err
		}
		return []float64(e.Floats), nil
	})
	if err != nil {
		return nil, err
	}
	shared := v.([]float64)
	out := make([]float64, len(shared))
	copy(out, shared)

	return out, nil
}

// Names lists the stored names in insertion order.
func (s *Store) Names() ([]string, error) {
	var names []string
	if err := s.session().Model(&Entry{}).Order("id").Pluck("name", &names).Error; err != nil {
		return nil, fmt.Errorf("Store.Names: %w", err)
	}

	return names, nil
}

// Delete removes name; deleting a missing name is not an error.
func (s *Store) Delete(name string) error {
	if err := s.session().Where("name = ?", name).Delete(&Entry{}).Error; err != nil {
		return storeErrorf("Delete", name, err)
	}

	return nil
}

// Close releases the connection pool.
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}

	return sqlDB.Close()
}
