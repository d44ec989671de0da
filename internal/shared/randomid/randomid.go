// Package randomid assigns the 5-digit surrogate keys used across the record
// tables. Keys are drawn uniformly from [10000, 99999] and rejection-sampled
// against the target table until unused. There is no locking between the
// existence check and the caller's insert; a concurrent collision surfaces as
// the insert's unique-constraint failure.
package randomid

import (
	"context"
	"fmt"
	"math/rand/v2"

	"gorm.io/gorm"
)

const (
	Min = 10000
	Max = 99999
)

// Store answers whether an id is already taken in a table.
//
//go:generate mockgen -source=randomid.go -destination=mock/randomid_mock.go -package=mock
type Store interface {
	IDExists(ctx context.Context, table string, id int) (bool, error)
}

// tables that may receive generated ids; guards the dynamic table name.
var allowedTables = map[string]bool{
	"activerecords":          true,
	"employeesalaryrequests": true,
	"payslip_history":        true,
	"leave_requests":         true,
	"overtime_requests":      true,
	"employee_evaluations":   true,
	"attendance_records":     true,
	"training_programs":      true,
	"disciplinary_actions":   true,
	"grievances":             true,
	"benefits":               true,
}

type Generator struct {
	store Store
	draw  func() int
}

func NewGenerator(store Store) *Generator {
	return &Generator{
		store: store,
		draw:  func() int { return rand.IntN(Max-Min+1) + Min },
	}
}

// NewGeneratorWithDraw injects the draw function; used by tests.
func NewGeneratorWithDraw(store Store, draw func() int) *Generator {
	return &Generator{store: store, draw: draw}
}

// Next returns an id not currently present in table. Retries are unbounded;
// with 90,000 candidate values per table that terminates in practice.
func (g *Generator) Next(ctx context.Context, table string) (int, error) {
	if !allowedTables[table] {
		return 0, fmt.Errorf("randomid: table %q not registered for generated ids", table)
	}
	for {
		id := g.draw()
		taken, err := g.store.IDExists(ctx, table, id)
		if err != nil {
			return 0, err
		}
		if !taken {
			return id, nil
		}
	}
}

// InRange reports whether id is a well-formed 5-digit surrogate key.
func InRange(id int) bool {
	return id >= Min && id <= Max
}

type gormStore struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) Store {
	return &gormStore{db: db}
}

func (s *gormStore) IDExists(ctx context.Context, table string, id int) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).
		Table(table).
		Where("id = ?", id).
		Count(&count).Error
	return count > 0, err
}
