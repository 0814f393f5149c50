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

type PgxPaymentMethodTypeRepository struct {
	BaseRepository
}

// newPgxPaymentMethodTypeRepository creates a new repository for payment method type data.
func newPgxPaymentMethodTypeRepository(pool *pgxpool.Pool) portsrepo.PaymentMethodTypeRepositoryFacade {
	return &PgxPaymentMethodTypeRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.PaymentMethodTypeRepositoryFacade = (*PgxPaymentMethodTypeRepository)(nil)

const paymentMethodTypeColumns = `payment_method_type_id, name, created_at, created_by, last_updated_at, last_updated_by`

func scanPaymentMethodType(row pgx.CollectableRow) (models.PaymentMethodType, error) {
	var t models.PaymentMethodType
	err := row.Scan(
		&t.PaymentMethodTypeID,
		&t.Name,
		&t.CreatedAt,
		&t.CreatedBy,
		&t.LastUpdatedAt,
		&t.LastUpdatedBy,
	)
	return t, err
}

// SavePaymentMethodType inserts a new payment method type.
func (r *PgxPaymentMethodTypeRepository) SavePaymentMethodType(ctx context.Context, methodType domain.PaymentMethodType) error {
	model := mapping.ToModelPaymentMethodType(methodType)

	query := `
		INSERT INTO payment_method_types (` + paymentMethodTypeColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6);
	`

	_, err := r.Pool.Exec(ctx, query,
		model.PaymentMethodTypeID,
		model.Name,
		model.CreatedAt,
		model.CreatedBy,
		model.LastUpdatedAt,
		model.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save payment method type %s: %w", model.PaymentMethodTypeID, translateDuplicate(err))
	}
	return nil
}

// FindPaymentMethodTypeByID retrieves a payment method type by its ID.
func (r *PgxPaymentMethodTypeRepository) FindPaymentMethodTypeByID(ctx context.Context, typeID string) (*domain.PaymentMethodType, error) {
	query := `SELECT ` + paymentMethodTypeColumns + ` FROM payment_method_types WHERE payment_method_type_id = $1;`

	rows, err := r.Pool.Query(ctx, query, typeID)
	if err != nil {
		return nil, fmt.Errorf("failed to query payment method type %s: %w", typeID, err)
	}
	model, err := pgx.CollectOneRow(rows, scanPaymentMethodType)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find payment method type %s: %w", typeID, err)
	}

	methodType := mapping.ToDomainPaymentMethodType(model)
	return &methodType, nil
}

// ListPaymentMethodTypes retrieves all payment method types ordered by name.
func (r *PgxPaymentMethodTypeRepository) ListPaymentMethodTypes(ctx context.Context) ([]domain.PaymentMethodType, error) {
	query := `SELECT ` + paymentMethodTypeColumns + ` FROM payment_method_types ORDER BY name, payment_method_type_id;`

	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query payment method types: %w", err)
	}
	types, err := pgx.CollectRows(rows, scanPaymentMethodType)
	if err != nil {
		return nil, fmt.Errorf("failed to scan payment method types: %w", err)
	}

	return mapping.ToDomainPaymentMethodTypeSlice(types), nil
}

// UpdatePaymentMethodType updates an existing payment method type.
func (r *PgxPaymentMethodTypeRepository) UpdatePaymentMethodType(ctx context.Context, methodType domain.PaymentMethodType) error {
	model := mapping.ToModelPaymentMethodType(methodType)

	query := `
		UPDATE payment_method_types SET
			name = $2,
			last_updated_at = $3,
			last_updated_by = $4
		WHERE payment_method_type_id = $1;
	`

	tag, err := r.Pool.Exec(ctx, query,
		model.PaymentMethodTypeID,
		model.Name,
		model.LastUpdatedAt,
		model.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update payment method type %s: %w", model.PaymentMethodTypeID, translateDuplicate(err))
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeletePaymentMethodType removes a payment method type.
func (r *PgxPaymentMethodTypeRepository) DeletePaymentMethodType(ctx context.Context, typeID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM payment_method_types WHERE payment_method_type_id = $1;`, typeID)
	if err != nil {
		return fmt.Errorf("failed to delete payment method type %s: %w", typeID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

type PgxPaymentMethodRepository struct {
	BaseRepository
}

// newPgxPaymentMethodRepository creates a new repository for payment method data.
func newPgxPaymentMethodRepository(pool *pgxpool.Pool) portsrepo.PaymentMethodRepositoryFacade {
	return &PgxPaymentMethodRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.PaymentMethodRepositoryFacade = (*PgxPaymentMethodRepository)(nil)

// paymentMethodJoinColumns selects a payment method joined with its type row.
const paymentMethodJoinColumns = `
	pm.payment_method_id, pm.bank, pm.last4, pm.payment_method_type_id,
	pm.created_at, pm.created_by, pm.last_updated_at, pm.last_updated_by,
	pmt.payment_method_type_id, pmt.name,
	pmt.created_at, pmt.created_by, pmt.last_updated_at, pmt.last_updated_by`

type paymentMethodJoinRow struct {
	method     models.PaymentMethod
	methodType models.PaymentMethodType
}

func scanPaymentMethodJoin(row pgx.CollectableRow) (paymentMethodJoinRow, error) {
	var j paymentMethodJoinRow
	err := row.Scan(
		&j.method.PaymentMethodID,
		&j.method.Bank,
		&j.method.Last4,
		&j.method.PaymentMethodTypeID,
		&j.method.CreatedAt,
		&j.method.CreatedBy,
		&j.method.LastUpdatedAt,
		&j.method.LastUpdatedBy,
		&j.methodType.PaymentMethodTypeID,
		&j.methodType.Name,
		&j.methodType.CreatedAt,
		&j.methodType.CreatedBy,
		&j.methodType.LastUpdatedAt,
		&j.methodType.LastUpdatedBy,
	)
	return j, err
}

// SavePaymentMethod inserts a new payment method.
func (r *PgxPaymentMethodRepository) SavePaymentMethod(ctx context.Context, method domain.PaymentMethod) error {
	model := mapping.ToModelPaymentMethod(method)

	query := `
		INSERT INTO payment_methods (payment_method_id, bank, last4, payment_method_type_id, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`

	_, err := r.Pool.Exec(ctx, query,
		model.PaymentMethodID,
		model.Bank,
		model.Last4,
		model.PaymentMethodTypeID,
		model.CreatedAt,
		model.CreatedBy,
		model.LastUpdatedAt,
		model.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save payment method %s: %w", model.PaymentMethodID, translateDuplicate(err))
	}
	return nil
}

// FindPaymentMethodByID retrieves a payment method with its type resolved.
func (r *PgxPaymentMethodRepository) FindPaymentMethodByID(ctx context.Context, methodID string) (*domain.PaymentMethod, error) {
	query := `
		SELECT ` + paymentMethodJoinColumns + `
		FROM payment_methods pm
		JOIN payment_method_types pmt ON pmt.payment_method_type_id = pm.payment_method_type_id
		WHERE pm.payment_method_id = $1;
	`

	rows, err := r.Pool.Query(ctx, query, methodID)
	if err != nil {
		return nil, fmt.Errorf("failed to query payment method %s: %w", methodID, err)
	}
	join, err := pgx.CollectOneRow(rows, scanPaymentMethodJoin)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find payment method %s: %w", methodID, err)
	}

	method := mapping.ToDomainPaymentMethod(join.method, join.methodType)
	return &method, nil
}

// ListPaymentMethods retrieves payment methods ordered by bank, type name, last4.
func (r *PgxPaymentMethodRepository) ListPaymentMethods(ctx context.Context) ([]domain.PaymentMethod, error) {
	query := `
		SELECT ` + paymentMethodJoinColumns + `
		FROM payment_methods pm
		JOIN payment_method_types pmt ON pmt.payment_method_type_id = pm.payment_method_type_id
		ORDER BY pm.bank, pmt.name, pm.last4 NULLS FIRST, pm.payment_method_id;
	`

	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query payment methods: %w", err)
	}
	joins, err := pgx.CollectRows(rows, scanPaymentMethodJoin)
	if err != nil {
		return nil, fmt.Errorf("failed to scan payment methods: %w", err)
	}

	methods := make([]domain.PaymentMethod, 0, len(joins))
	for _, j := range joins {
		methods = append(methods, mapping.ToDomainPaymentMethod(j.method, j.methodType))
	}
	return methods, nil
}

// UpdatePaymentMethod updates an existing payment method.
func (r *PgxPaymentMethodRepository) UpdatePaymentMethod(ctx context.Context, method domain.PaymentMethod) error {
	model := mapping.ToModelPaymentMethod(method)

	query := `
		UPDATE payment_methods SET
			bank = $2,
			last4 = $3,
			payment_method_type_id = $4,
			last_updated_at = $5,
			last_updated_by = $6
		WHERE payment_method_id = $1;
	`

	tag, err := r.Pool.Exec(ctx, query,
		model.PaymentMethodID,
		model.Bank,
		model.Last4,
		model.PaymentMethodTypeID,
		model.LastUpdatedAt,
		model.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update payment method %s: %w", model.PaymentMethodID, translateDuplicate(err))
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeletePaymentMethod removes a payment method.
func (r *PgxPaymentMethodRepository) DeletePaymentMethod(ctx context.Context, methodID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM payment_methods WHERE payment_method_id = $1;`, methodID)
	if err != nil {
		return fmt.Errorf("failed to delete payment method %s: %w", methodID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
