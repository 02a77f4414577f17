// Package postgres provides the GORM-based implementation of the Unit of Work
// pattern. A unit of work spans one business transaction: every repository
// obtained from it shares a single database transaction, so a vendor swap or
// a multi-source reservation commits atomically or not at all.
//
// Basic usage:
//
//	factory := NewGormUnitOfWorkFactory(db)
//	uow := factory.Create()
//
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() { _ = uow.Rollback(ctx) }()
//
//	if err := uow.QuoteRepository().Add(ctx, quote); err != nil {
//	    return err
//	}
//
//	return uow.Commit(ctx)
package postgres

import (
	"context"

	"grocery/internal/adapters/out/postgres/assignmentrepo"
	"grocery/internal/adapters/out/postgres/inventoryrepo"
	"grocery/internal/adapters/out/postgres/quoterepo"
	"grocery/internal/adapters/out/postgres/weatherrepo"
	"grocery/internal/core/ports"

	"gorm.io/gorm"
)

var _ ports.UnitOfWorkFactory = (*GormUnitOfWorkFactory)(nil)

// GormUnitOfWorkFactory creates UnitOfWork instances using a shared GORM
// database connection. Each business operation gets a fresh unit of work
// with its own transaction state.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

// NewGormUnitOfWorkFactory creates a factory for GORM-based unit of work instances.
func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create produces a new UnitOfWork instance ready for transaction management.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{db: f.db}
}

// GormUnitOfWork coordinates one database transaction across the platform's
// repositories. Repositories obtained before Begin operate on the bare
// connection; after Begin they share the transaction until Commit or Rollback.
type GormUnitOfWork struct {
	db *gorm.DB
	tx *gorm.DB
}

// Begin initiates a new database transaction for the unit of work.
// Calling Begin again on an instance with an open transaction is a no-op,
// so handlers can layer defensive Begins without nesting transactions.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		err := uow.tx.Error
		uow.tx = nil
		return err
	}

	return nil
}

// Commit finalizes all changes made within the current transaction.
// Returns gorm.ErrInvalidTransaction when no transaction is open.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return err
}

// Rollback discards all changes made within the current transaction.
// Returns gorm.ErrInvalidTransaction when no transaction is open.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	return err
}

// AssignmentRepository returns an assignment repository bound to the current transaction.
func (uow *GormUnitOfWork) AssignmentRepository() ports.AssignmentRepository {
	return assignmentrepo.NewGormAssignmentRepository(uow.conn())
}

// AllocationRuleRepository returns an allocation rule repository bound to the current transaction.
func (uow *GormUnitOfWork) AllocationRuleRepository() ports.AllocationRuleRepository {
	return assignmentrepo.NewGormAllocationRuleRepository(uow.conn())
}

// InventoryRepository returns an inventory repository bound to the current transaction.
func (uow *GormUnitOfWork) InventoryRepository() ports.InventoryRepository {
	return inventoryrepo.NewGormInventoryRepository(uow.conn())
}

// WeatherRuleRepository returns a weather rule repository bound to the current transaction.
func (uow *GormUnitOfWork) WeatherRuleRepository() ports.WeatherRuleRepository {
	return weatherrepo.NewGormWeatherRuleRepository(uow.conn())
}

// QuoteRepository returns a quote repository bound to the current transaction.
func (uow *GormUnitOfWork) QuoteRepository() ports.QuoteRepository {
	return quoterepo.NewGormQuoteRepository(uow.conn())
}

func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}
