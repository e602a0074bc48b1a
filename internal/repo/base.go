package repo

import (
	"context"

	"github.com/delacruzjs/wishlists-backend/pkg/db"
	pkgerrors "github.com/delacruzjs/wishlists-backend/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Entity is satisfied by persisted models with a server-generated integer
// primary key. A zero ID means the entity has not been persisted yet.
type Entity interface {
	GetID() uint
}

// Base provides a shared foundation for domain repositories.
type Base struct {
	db *gorm.DB
}

// NewBase constructs a Base repository backed by the provided GORM connection.
func NewBase(db *gorm.DB) Base {
	return Base{db: db}
}

// DB returns the GORM connection bound to the supplied context (if any).
func (b Base) DB(ctx context.Context) *gorm.DB {
	if ctx == nil {
		return b.db
	}
	return b.db.WithContext(ctx)
}

// Gateway applies the generic persistence operations shared by every entity
// kind. Associations are never written implicitly: persisting a parent does
// not persist children attached in memory, and vice versa.
type Gateway[T Entity] struct {
	Base
	preloads []string
}

// NewGateway builds a gateway for the entity type. Preloads name the
// associations loaded on every read.
func NewGateway[T Entity](db *gorm.DB, preloads ...string) Gateway[T] {
	return Gateway[T]{Base: NewBase(db), preloads: preloads}
}

// WithTx returns a gateway bound to the provided transaction.
func (g Gateway[T]) WithTx(tx *gorm.DB) Gateway[T] {
	return Gateway[T]{Base: NewBase(tx), preloads: g.preloads}
}

// Create inserts the entity and assigns its server-generated id. An entity
// that already carries an id is rejected rather than silently reset.
func (g Gateway[T]) Create(ctx context.Context, entity *T) error {
	if (*entity).GetID() != 0 {
		return pkgerrors.New(pkgerrors.CodeValidation, "create called with an ID already assigned")
	}
	return g.DB(ctx).Omit(clause.Associations).Create(entity).Error
}

// Update persists in-place changes to an already-created entity.
func (g Gateway[T]) Update(ctx context.Context, entity *T) error {
	if (*entity).GetID() == 0 {
		return pkgerrors.New(pkgerrors.CodeValidation, "update called with empty ID")
	}
	return g.DB(ctx).Omit(clause.Associations).Save(entity).Error
}

// Delete removes the entity's row. Deleting an absent row is not an error.
func (g Gateway[T]) Delete(ctx context.Context, entity *T) error {
	return g.DB(ctx).Delete(entity).Error
}

// Find returns the entity by id, or nil when no row matches.
func (g Gateway[T]) Find(ctx context.Context, id uint) (*T, error) {
	var entity T
	if err := g.read(ctx).First(&entity, id).Error; err != nil {
		if db.IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

// All returns every row of the entity kind in storage order.
func (g Gateway[T]) All(ctx context.Context) ([]T, error) {
	var entities []T
	if err := g.read(ctx).Find(&entities).Error; err != nil {
		return nil, err
	}
	return entities, nil
}

func (g Gateway[T]) read(ctx context.Context) *gorm.DB {
	query := g.DB(ctx)
	for _, preload := range g.preloads {
		query = query.Preload(preload)
	}
	return query
}
