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

type PgxTaxRepository struct {
	BaseRepository
}

// newPgxTaxRepository creates a new repository for tax data.
func newPgxTaxRepository(pool *pgxpool.Pool) portsrepo.TaxRepositoryFacade {
	return &PgxTaxRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.TaxRepositoryFacade = (*PgxTaxRepository)(nil)

const taxColumns = `tax_id, name, created_at, created_by, last_updated_at, last_updated_by`

func scanTax(row pgx.CollectableRow) (models.Tax, error) {
	var t models.Tax
	err := row.Scan(
		&t.TaxID,
		&t.Name,
		&t.CreatedAt,
		&t.CreatedBy,
		&t.LastUpdatedAt,
		&t.LastUpdatedBy,
	)
	return t, err
}

// SaveTax inserts a new tax.
func (r *PgxTaxRepository) SaveTax(ctx context.Context, tax domain.Tax) error {
	model := mapping.ToModelTax(tax)

	query := `
		INSERT INTO taxes (` + taxColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6);
	`

	_, err := r.Pool.Exec(ctx, query,
		model.TaxID,
		model.Name,
		model.CreatedAt,
		model.CreatedBy,
		model.LastUpdatedAt,
		model.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save tax %s: %w", model.TaxID, translateDuplicate(err))
	}
	return nil
}

// FindTaxByID retrieves a tax by its ID.
func (r *PgxTaxRepository) FindTaxByID(ctx context.Context, taxID string) (*domain.Tax, error) {
	query := `SELECT ` + taxColumns + ` FROM taxes WHERE tax_id = $1;`

	rows, err := r.Pool.Query(ctx, query, taxID)
	if err != nil {
		return nil, fmt.Errorf("failed to query tax %s: %w", taxID, err)
	}
	model, err := pgx.CollectOneRow(rows, scanTax)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find tax %s: %w", taxID, err)
	}

	tax := mapping.ToDomainTax(model)
	return &tax, nil
}

// ListTaxes retrieves all taxes ordered by name.
func (r *PgxTaxRepository) ListTaxes(ctx context.Context) ([]domain.Tax, error) {
	query := `SELECT ` + taxColumns + ` FROM taxes ORDER BY name, tax_id;`

	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query taxes: %w", err)
	}
	taxes, err := pgx.CollectRows(rows, scanTax)
	if err != nil {
		return nil, fmt.Errorf("failed to scan taxes: %w", err)
	}

	return mapping.ToDomainTaxSlice(taxes), nil
}

// UpdateTax updates an existing tax.
func (r *PgxTaxRepository) UpdateTax(ctx context.Context, tax domain.Tax) error {
	model := mapping.ToModelTax(tax)

	query := `
		UPDATE taxes SET
			name = $2,
			last_updated_at = $3,
			last_updated_by = $4
		WHERE tax_id = $1;
	`

	tag, err := r.Pool.Exec(ctx, query,
		model.TaxID,
		model.Name,
		model.LastUpdatedAt,
		model.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update tax %s: %w", model.TaxID, translateDuplicate(err))
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteTax removes a tax.
func (r *PgxTaxRepository) DeleteTax(ctx context.Context, taxID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM taxes WHERE tax_id = $1;`, taxID)
	if err != nil {
		return fmt.Errorf("failed to delete tax %s: %w", taxID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
