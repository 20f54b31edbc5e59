package postgres

import (
	"context"
	"fmt"

	"cotiza/internal/domain/repository"

	"gorm.io/gorm"
)

type gormTransactionManager struct {
	db *gorm.DB
}

// gormRepositoryFactory hands out repositories bound to one open transaction.
// A GORM transaction handle is itself a *gorm.DB, so the repository
// constructors work unchanged against it.
type gormRepositoryFactory struct {
	tx *gorm.DB
}

func (f *gormRepositoryFactory) NewProposalRepository() repository.ProposalRepository {
	return NewProposalRepository(f.tx)
}

func (f *gormRepositoryFactory) NewSolicitudRepository() repository.SolicitudRepository {
	return NewSolicitudRepository(f.tx)
}

// NewTransactionManager creates the GORM-backed TransactionManager.
func NewTransactionManager(db *gorm.DB) repository.TransactionManager {
	return &gormTransactionManager{db: db}
}

// Execute runs fn inside one database transaction. fn receives a factory
// whose repositories all share that transaction; any error from fn rolls the
// whole batch back. A panic inside fn also rolls back, then propagates.
func (tm *gormTransactionManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	tx := tm.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return fmt.Errorf("failed to begin transaction: %w", tx.Error)
	}

	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			panic(r)
		}
	}()

	if err := fn(&gormRepositoryFactory{tx: tx}); err != nil {
		if rbErr := tx.Rollback().Error; rbErr != nil {
			return fmt.Errorf("transaction rollback failed: %v (original error: %w)", rbErr, err)
		}

		return err
	}

	if err := tx.Commit().Error; err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
