package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/gridlined/Itemizer/internal/apperrors"
	"github.com/gridlined/Itemizer/internal/core/domain"
	portsrepo "github.com/gridlined/Itemizer/internal/core/ports/repositories"
	"github.com/gridlined/Itemizer/internal/models"
	"github.com/gridlined/Itemizer/internal/utils/mapping"
)

const defaultListLimit = 50

type PgxSupplierRepository struct {
	BaseRepository
}

// newPgxSupplierRepository creates a new repository for supplier data.
func newPgxSupplierRepository(pool *pgxpool.Pool) portsrepo.SupplierRepositoryFacade {
	return &PgxSupplierRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.SupplierRepositoryFacade = (*PgxSupplierRepository)(nil)

const supplierColumns = `supplier_id, name, street, city, state, postal_code, phone, website, created_at, created_by, last_updated_at, last_updated_by`

func scanSupplier(row pgx.CollectableRow) (models.Supplier, error) {
	var s models.Supplier
	err := row.Scan(
		&s.SupplierID,
		&s.Name,
		&s.Street,
		&s.City,
		&s.State,
		&s.PostalCode,
		&s.Phone,
		&s.Website,
		&s.CreatedAt,
		&s.CreatedBy,
		&s.LastUpdatedAt,
		&s.LastUpdatedBy,
	)
	return s, err
}

// SaveSupplier inserts a new supplier.
func (r *PgxSupplierRepository) SaveSupplier(ctx context.Context, supplier domain.Supplier) error {
	model := mapping.ToModelSupplier(supplier)

	query := `
		INSERT INTO suppliers (` + supplierColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`

	_, err := r.Pool.Exec(ctx, query,
		model.SupplierID,
		model.Name,
		model.Street,
		model.City,
		model.State,
		model.PostalCode,
		model.Phone,
		model.Website,
		model.CreatedAt,
		model.CreatedBy,
		model.LastUpdatedAt,
		model.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save supplier %s: %w", model.SupplierID, translateDuplicate(err))
	}
	return nil
}

// FindSupplierByID retrieves a supplier by its ID.
func (r *PgxSupplierRepository) FindSupplierByID(ctx context.Context, supplierID string) (*domain.Supplier, error) {
	query := `SELECT ` + supplierColumns + ` FROM suppliers WHERE supplier_id = $1;`

	rows, err := r.Pool.Query(ctx, query, supplierID)
	if err != nil {
		return nil, fmt.Errorf("failed to query supplier %s: %w", supplierID, err)
	}
	model, err := pgx.CollectOneRow(rows, scanSupplier)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find supplier %s: %w", supplierID, err)
	}

	supplier := mapping.ToDomainSupplier(model)
	return &supplier, nil
}

// ListSuppliers retrieves suppliers ordered by name.
func (r *PgxSupplierRepository) ListSuppliers(ctx context.Context, limit, offset int) ([]domain.Supplier, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	if offset < 0 {
		offset = 0
	}

	query := `SELECT ` + supplierColumns + ` FROM suppliers ORDER BY name, supplier_id LIMIT $1 OFFSET $2;`

	rows, err := r.Pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query suppliers: %w", err)
	}
	suppliers, err := pgx.CollectRows(rows, scanSupplier)
	if err != nil {
		return nil, fmt.Errorf("failed to scan suppliers: %w", err)
	}

	return mapping.ToDomainSupplierSlice(suppliers), nil
}

// SearchSuppliersByName retrieves suppliers whose name contains the query,
// case-insensitively.
func (r *PgxSupplierRepository) SearchSuppliersByName(ctx context.Context, query string, limit int) ([]domain.Supplier, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}

	sqlQuery := `
		SELECT ` + supplierColumns + `
		FROM suppliers
		WHERE name ILIKE '%' || $1 || '%'
		ORDER BY name, supplier_id
		LIMIT $2;
	`

	rows, err := r.Pool.Query(ctx, sqlQuery, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to search suppliers: %w", err)
	}
	suppliers, err := pgx.CollectRows(rows, scanSupplier)
	if err != nil {
		return nil, fmt.Errorf("failed to scan suppliers: %w", err)
	}

	return mapping.ToDomainSupplierSlice(suppliers), nil
}

// UpdateSupplier updates an existing supplier.
func (r *PgxSupplierRepository) UpdateSupplier(ctx context.Context, supplier domain.Supplier) error {
	model := mapping.ToModelSupplier(supplier)

	query := `
		UPDATE suppliers SET
			name = $2,
			street = $3,
			city = $4,
			state = $5,
			postal_code = $6,
			phone = $7,
			website = $8,
			last_updated_at = $9,
			last_updated_by = $10
		WHERE supplier_id = $1;
	`

	tag, err := r.Pool.Exec(ctx, query,
		model.SupplierID,
		model.Name,
		model.Street,
		model.City,
		model.State,
		model.PostalCode,
		model.Phone,
		model.Website,
		model.LastUpdatedAt,
		model.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update supplier %s: %w", model.SupplierID, translateDuplicate(err))
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteSupplier removes a supplier.
func (r *PgxSupplierRepository) DeleteSupplier(ctx context.Context, supplierID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM suppliers WHERE supplier_id = $1;`, supplierID)
	if err != nil {
		return fmt.Errorf("failed to delete supplier %s: %w", supplierID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
