package pgsql

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/gridlined/Itemizer/internal/apperrors"
	portsrepo "github.com/gridlined/Itemizer/internal/core/ports/repositories"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	supplierRepo := newPgxSupplierRepository(dbPool)
	taxRepo := newPgxTaxRepository(dbPool)
	productTypeRepo := newPgxProductTypeRepository(dbPool)
	productRepo := newPgxProductRepository(dbPool)
	paymentMethodTypeRepo := newPgxPaymentMethodTypeRepository(dbPool)
	paymentMethodRepo := newPgxPaymentMethodRepository(dbPool)
	receiptRepo := newPgxReceiptRepository(dbPool)

	return portsrepo.RepositoryProvider{
		SupplierRepo:          supplierRepo,
		TaxRepo:               taxRepo,
		ProductTypeRepo:       productTypeRepo,
		ProductRepo:           productRepo,
		PaymentMethodTypeRepo: paymentMethodTypeRepo,
		PaymentMethodRepo:     paymentMethodRepo,
		ReceiptRepo:           receiptRepo,
	}
}

// uniqueViolation is the Postgres error code for a unique constraint breach.
const uniqueViolation = "23505"

// translateDuplicate maps unique constraint violations to ErrDuplicate so the
// handlers can answer 409 without knowing about Postgres error codes.
func translateDuplicate(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return apperrors.ErrDuplicate
	}
	return err
}
