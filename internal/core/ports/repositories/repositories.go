package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"
)

// TransactionManager defines database transaction control shared by
// repositories that need multi-statement writes.
type TransactionManager interface {
	Begin(ctx context.Context) (pgx.Tx, error)
	Commit(ctx context.Context, tx pgx.Tx) error
	Rollback(ctx context.Context, tx pgx.Tx) error
}

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	SupplierRepo          SupplierRepositoryFacade
	TaxRepo               TaxRepositoryFacade
	ProductTypeRepo       ProductTypeRepositoryFacade
	ProductRepo           ProductRepositoryFacade
	PaymentMethodTypeRepo PaymentMethodTypeRepositoryFacade
	PaymentMethodRepo     PaymentMethodRepositoryFacade
	ReceiptRepo           ReceiptRepositoryFacade
}
