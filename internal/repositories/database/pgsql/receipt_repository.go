package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/gridlined/Itemizer/internal/apperrors"
	"github.com/gridlined/Itemizer/internal/core/domain"
	portsrepo "github.com/gridlined/Itemizer/internal/core/ports/repositories"
	"github.com/gridlined/Itemizer/internal/models"
	"github.com/gridlined/Itemizer/internal/utils/mapping"
)

type PgxReceiptRepository struct {
	BaseRepository
}

// newPgxReceiptRepository creates a new repository for receipt aggregates.
func newPgxReceiptRepository(pool *pgxpool.Pool) portsrepo.ReceiptRepositoryFacade {
	return &PgxReceiptRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.ReceiptRepositoryFacade = (*PgxReceiptRepository)(nil)

const receiptColumns = `receipt_id, supplier_id, receipt_date, receipt_time, image_path, created_at, created_by, last_updated_at, last_updated_by`

func scanReceipt(row pgx.CollectableRow) (models.Receipt, error) {
	var rcpt models.Receipt
	err := row.Scan(
		&rcpt.ReceiptID,
		&rcpt.SupplierID,
		&rcpt.Date,
		&rcpt.Time,
		&rcpt.ImagePath,
		&rcpt.CreatedAt,
		&rcpt.CreatedBy,
		&rcpt.LastUpdatedAt,
		&rcpt.LastUpdatedBy,
	)
	return rcpt, err
}

// queueChildInserts adds one insert per child row to the batch. All children
// of one receipt are written in a single round trip.
func queueChildInserts(batch *pgx.Batch, receipt domain.Receipt) {
	for _, item := range receipt.Items {
		m := mapping.ToModelItem(item)
		batch.Queue(
			`INSERT INTO receipt_items (item_id, receipt_id, product_id, quantity, unit_price, created_at, created_by, last_updated_at, last_updated_by)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);`,
			m.ItemID, m.ReceiptID, m.ProductID, m.Quantity, m.UnitPrice,
			m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
		)
	}
	for _, fee := range receipt.Fees {
		m := mapping.ToModelFee(fee)
		batch.Queue(
			`INSERT INTO receipt_fees (fee_id, receipt_id, name, quantity, amount, created_at, created_by, last_updated_at, last_updated_by)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);`,
			m.FeeID, m.ReceiptID, m.Name, m.Quantity, m.Amount,
			m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
		)
	}
	for _, discount := range receipt.Discounts {
		m := mapping.ToModelDiscount(discount)
		batch.Queue(
			`INSERT INTO receipt_discounts (discount_id, receipt_id, name, amount, created_at, created_by, last_updated_at, last_updated_by)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8);`,
			m.DiscountID, m.ReceiptID, m.Name, m.Amount,
			m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
		)
	}
	for _, charge := range receipt.TaxCharges {
		m := mapping.ToModelTaxCharge(charge)
		batch.Queue(
			`INSERT INTO receipt_tax_charges (tax_charge_id, receipt_id, tax_id, amount, created_at, created_by, last_updated_at, last_updated_by)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8);`,
			m.TaxChargeID, m.ReceiptID, m.TaxID, m.Amount,
			m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
		)
	}
	for _, gratuity := range receipt.Gratuities {
		m := mapping.ToModelGratuity(gratuity)
		batch.Queue(
			`INSERT INTO receipt_gratuities (gratuity_id, receipt_id, recipient, amount, created_at, created_by, last_updated_at, last_updated_by)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8);`,
			m.GratuityID, m.ReceiptID, m.To, m.Amount,
			m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
		)
	}
	for _, payment := range receipt.Payments {
		m := mapping.ToModelPayment(payment)
		batch.Queue(
			`INSERT INTO receipt_payments (payment_id, receipt_id, payment_method_id, amount, created_at, created_by, last_updated_at, last_updated_by)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8);`,
			m.PaymentID, m.ReceiptID, m.PaymentMethodID, m.Amount,
			m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
		)
	}
}

func sendBatch(ctx context.Context, tx pgx.Tx, batch *pgx.Batch) error {
	if batch.Len() == 0 {
		return nil
	}
	results := tx.SendBatch(ctx, batch)
	defer results.Close()
	for i := 0; i < batch.Len(); i++ {
		if _, err := results.Exec(); err != nil {
			return fmt.Errorf("failed to write receipt child row: %w", err)
		}
	}
	return results.Close()
}

// SaveReceipt persists a receipt and all of its children in one transaction.
func (r *PgxReceiptRepository) SaveReceipt(ctx context.Context, receipt domain.Receipt) error {
	model := mapping.ToModelReceipt(receipt)

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	query := `
		INSERT INTO receipts (` + receiptColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`

	_, err = tx.Exec(ctx, query,
		model.ReceiptID,
		model.SupplierID,
		model.Date,
		model.Time,
		model.ImagePath,
		model.CreatedAt,
		model.CreatedBy,
		model.LastUpdatedAt,
		model.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save receipt %s: %w", model.ReceiptID, translateDuplicate(err))
	}

	batch := &pgx.Batch{}
	queueChildInserts(batch, receipt)
	if err := sendBatch(ctx, tx, batch); err != nil {
		return err
	}

	return r.Commit(ctx, tx)
}

// UpdateReceipt updates the receipt row and replaces its children in one
// transaction.
func (r *PgxReceiptRepository) UpdateReceipt(ctx context.Context, receipt domain.Receipt) error {
	model := mapping.ToModelReceipt(receipt)

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	query := `
		UPDATE receipts SET
			supplier_id = $2,
			receipt_date = $3,
			receipt_time = $4,
			image_path = $5,
			last_updated_at = $6,
			last_updated_by = $7
		WHERE receipt_id = $1;
	`

	tag, err := tx.Exec(ctx, query,
		model.ReceiptID,
		model.SupplierID,
		model.Date,
		model.Time,
		model.ImagePath,
		model.LastUpdatedAt,
		model.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update receipt %s: %w", model.ReceiptID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	childTables := []string{
		"receipt_items",
		"receipt_fees",
		"receipt_discounts",
		"receipt_tax_charges",
		"receipt_gratuities",
		"receipt_payments",
	}
	for _, table := range childTables {
		if _, err := tx.Exec(ctx, `DELETE FROM `+table+` WHERE receipt_id = $1;`, model.ReceiptID); err != nil {
			return fmt.Errorf("failed to clear %s for receipt %s: %w", table, model.ReceiptID, err)
		}
	}

	batch := &pgx.Batch{}
	queueChildInserts(batch, receipt)
	if err := sendBatch(ctx, tx, batch); err != nil {
		return err
	}

	return r.Commit(ctx, tx)
}

// DeleteReceipt removes a receipt; child rows cascade.
func (r *PgxReceiptRepository) DeleteReceipt(ctx context.Context, receiptID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM receipts WHERE receipt_id = $1;`, receiptID)
	if err != nil {
		return fmt.Errorf("failed to delete receipt %s: %w", receiptID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// FindReceiptByID retrieves a receipt with all of its child collections loaded.
func (r *PgxReceiptRepository) FindReceiptByID(ctx context.Context, receiptID string) (*domain.Receipt, error) {
	query := `SELECT ` + receiptColumns + ` FROM receipts WHERE receipt_id = $1;`

	rows, err := r.Pool.Query(ctx, query, receiptID)
	if err != nil {
		return nil, fmt.Errorf("failed to query receipt %s: %w", receiptID, err)
	}
	model, err := pgx.CollectOneRow(rows, scanReceipt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find receipt %s: %w", receiptID, err)
	}

	receipts, err := r.assemble(ctx, []models.Receipt{model})
	if err != nil {
		return nil, err
	}
	return &receipts[0], nil
}

// ListReceipts retrieves receipts matching the filter with children loaded,
// ordered by date descending then time descending.
func (r *PgxReceiptRepository) ListReceipts(ctx context.Context, filter portsrepo.ListReceiptsFilter) ([]domain.Receipt, error) {
	query := `SELECT ` + receiptColumns + ` FROM receipts`
	var args []any
	var conditions []string

	if filter.From != nil {
		args = append(args, *filter.From)
		conditions = append(conditions, fmt.Sprintf("receipt_date >= $%d", len(args)))
	}
	if filter.To != nil {
		args = append(args, *filter.To)
		conditions = append(conditions, fmt.Sprintf("receipt_date <= $%d", len(args)))
	}
	if filter.SupplierID != "" {
		args = append(args, filter.SupplierID)
		conditions = append(conditions, fmt.Sprintf("supplier_id = $%d", len(args)))
	}
	for i, condition := range conditions {
		if i == 0 {
			query += " WHERE " + condition
		} else {
			query += " AND " + condition
		}
	}

	query += " ORDER BY receipt_date DESC, receipt_time DESC NULLS LAST, receipt_id"
	if filter.Limit > 0 {
		args = append(args, filter.Limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}
	if filter.Offset > 0 {
		args = append(args, filter.Offset)
		query += fmt.Sprintf(" OFFSET $%d", len(args))
	}
	query += ";"

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query receipts: %w", err)
	}
	receiptModels, err := pgx.CollectRows(rows, scanReceipt)
	if err != nil {
		return nil, fmt.Errorf("failed to scan receipts: %w", err)
	}

	return r.assemble(ctx, receiptModels)
}

// FindReceiptsByDateRange retrieves all receipts dated within [from, to]
// inclusive, with children loaded.
func (r *PgxReceiptRepository) FindReceiptsByDateRange(ctx context.Context, from, to time.Time) ([]domain.Receipt, error) {
	return r.ListReceipts(ctx, portsrepo.ListReceiptsFilter{From: &from, To: &to})
}

// assemble turns flat receipt rows into full aggregates, resolving suppliers
// and loading all six child collections for the whole batch at once.
func (r *PgxReceiptRepository) assemble(ctx context.Context, receiptModels []models.Receipt) ([]domain.Receipt, error) {
	if len(receiptModels) == 0 {
		return []domain.Receipt{}, nil
	}

	receiptIDs := make([]string, 0, len(receiptModels))
	supplierIDSet := make(map[string]struct{}, len(receiptModels))
	supplierIDs := make([]string, 0, len(receiptModels))
	for _, m := range receiptModels {
		receiptIDs = append(receiptIDs, m.ReceiptID)
		if _, seen := supplierIDSet[m.SupplierID]; !seen {
			supplierIDSet[m.SupplierID] = struct{}{}
			supplierIDs = append(supplierIDs, m.SupplierID)
		}
	}

	suppliers, err := r.loadSuppliers(ctx, supplierIDs)
	if err != nil {
		return nil, err
	}

	receipts := make([]domain.Receipt, 0, len(receiptModels))
	byID := make(map[string]*domain.Receipt, len(receiptModels))
	for _, m := range receiptModels {
		receipt := mapping.ToDomainReceipt(m)
		if supplier, ok := suppliers[m.SupplierID]; ok {
			receipt.Supplier = supplier
		}
		receipts = append(receipts, receipt)
		byID[receipt.ReceiptID] = &receipts[len(receipts)-1]
	}

	if err := r.loadChildren(ctx, receiptIDs, byID); err != nil {
		return nil, err
	}
	return receipts, nil
}

func (r *PgxReceiptRepository) loadSuppliers(ctx context.Context, supplierIDs []string) (map[string]*domain.Supplier, error) {
	query := `SELECT ` + supplierColumns + ` FROM suppliers WHERE supplier_id = ANY($1);`

	rows, err := r.Pool.Query(ctx, query, supplierIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to query receipt suppliers: %w", err)
	}
	supplierModels, err := pgx.CollectRows(rows, scanSupplier)
	if err != nil {
		return nil, fmt.Errorf("failed to scan receipt suppliers: %w", err)
	}

	suppliers := make(map[string]*domain.Supplier, len(supplierModels))
	for _, m := range supplierModels {
		supplier := mapping.ToDomainSupplier(m)
		suppliers[supplier.SupplierID] = &supplier
	}
	return suppliers, nil
}

// loadChildren fetches all six child collections for the given receipts and
// attaches them in insertion order.
func (r *PgxReceiptRepository) loadChildren(ctx context.Context, receiptIDs []string, byID map[string]*domain.Receipt) error {
	itemRows, err := r.Pool.Query(ctx, `
		SELECT item_id, receipt_id, product_id, quantity, unit_price, created_at, created_by, last_updated_at, last_updated_by
		FROM receipt_items WHERE receipt_id = ANY($1) ORDER BY created_at, item_id;`, receiptIDs)
	if err != nil {
		return fmt.Errorf("failed to query receipt items: %w", err)
	}
	items, err := pgx.CollectRows(itemRows, func(row pgx.CollectableRow) (models.Item, error) {
		var m models.Item
		err := row.Scan(&m.ItemID, &m.ReceiptID, &m.ProductID, &m.Quantity, &m.UnitPrice,
			&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy)
		return m, err
	})
	if err != nil {
		return fmt.Errorf("failed to scan receipt items: %w", err)
	}
	for _, m := range items {
		if receipt, ok := byID[m.ReceiptID]; ok {
			receipt.Items = append(receipt.Items, mapping.ToDomainItem(m))
		}
	}

	feeRows, err := r.Pool.Query(ctx, `
		SELECT fee_id, receipt_id, name, quantity, amount, created_at, created_by, last_updated_at, last_updated_by
		FROM receipt_fees WHERE receipt_id = ANY($1) ORDER BY created_at, fee_id;`, receiptIDs)
	if err != nil {
		return fmt.Errorf("failed to query receipt fees: %w", err)
	}
	fees, err := pgx.CollectRows(feeRows, func(row pgx.CollectableRow) (models.Fee, error) {
		var m models.Fee
		err := row.Scan(&m.FeeID, &m.ReceiptID, &m.Name, &m.Quantity, &m.Amount,
			&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy)
		return m, err
	})
	if err != nil {
		return fmt.Errorf("failed to scan receipt fees: %w", err)
	}
	for _, m := range fees {
		if receipt, ok := byID[m.ReceiptID]; ok {
			receipt.Fees = append(receipt.Fees, mapping.ToDomainFee(m))
		}
	}

	discountRows, err := r.Pool.Query(ctx, `
		SELECT discount_id, receipt_id, name, amount, created_at, created_by, last_updated_at, last_updated_by
		FROM receipt_discounts WHERE receipt_id = ANY($1) ORDER BY created_at, discount_id;`, receiptIDs)
	if err != nil {
		return fmt.Errorf("failed to query receipt discounts: %w", err)
	}
	discounts, err := pgx.CollectRows(discountRows, func(row pgx.CollectableRow) (models.Discount, error) {
		var m models.Discount
		err := row.Scan(&m.DiscountID, &m.ReceiptID, &m.Name, &m.Amount,
			&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy)
		return m, err
	})
	if err != nil {
		return fmt.Errorf("failed to scan receipt discounts: %w", err)
	}
	for _, m := range discounts {
		if receipt, ok := byID[m.ReceiptID]; ok {
			receipt.Discounts = append(receipt.Discounts, mapping.ToDomainDiscount(m))
		}
	}

	type taxChargeRow struct {
		charge  models.TaxCharge
		taxName string
	}
	taxRows, err := r.Pool.Query(ctx, `
		SELECT tc.tax_charge_id, tc.receipt_id, tc.tax_id, tc.amount, tc.created_at, tc.created_by, tc.last_updated_at, tc.last_updated_by, t.name
		FROM receipt_tax_charges tc
		JOIN taxes t ON t.tax_id = tc.tax_id
		WHERE tc.receipt_id = ANY($1) ORDER BY tc.created_at, tc.tax_charge_id;`, receiptIDs)
	if err != nil {
		return fmt.Errorf("failed to query receipt tax charges: %w", err)
	}
	taxCharges, err := pgx.CollectRows(taxRows, func(row pgx.CollectableRow) (taxChargeRow, error) {
		var m taxChargeRow
		err := row.Scan(&m.charge.TaxChargeID, &m.charge.ReceiptID, &m.charge.TaxID, &m.charge.Amount,
			&m.charge.CreatedAt, &m.charge.CreatedBy, &m.charge.LastUpdatedAt, &m.charge.LastUpdatedBy, &m.taxName)
		return m, err
	})
	if err != nil {
		return fmt.Errorf("failed to scan receipt tax charges: %w", err)
	}
	for _, m := range taxCharges {
		if receipt, ok := byID[m.charge.ReceiptID]; ok {
			receipt.TaxCharges = append(receipt.TaxCharges, mapping.ToDomainTaxCharge(m.charge, m.taxName))
		}
	}

	gratuityRows, err := r.Pool.Query(ctx, `
		SELECT gratuity_id, receipt_id, recipient, amount, created_at, created_by, last_updated_at, last_updated_by
		FROM receipt_gratuities WHERE receipt_id = ANY($1) ORDER BY created_at, gratuity_id;`, receiptIDs)
	if err != nil {
		return fmt.Errorf("failed to query receipt gratuities: %w", err)
	}
	gratuities, err := pgx.CollectRows(gratuityRows, func(row pgx.CollectableRow) (models.Gratuity, error) {
		var m models.Gratuity
		err := row.Scan(&m.GratuityID, &m.ReceiptID, &m.To, &m.Amount,
			&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy)
		return m, err
	})
	if err != nil {
		return fmt.Errorf("failed to scan receipt gratuities: %w", err)
	}
	for _, m := range gratuities {
		if receipt, ok := byID[m.ReceiptID]; ok {
			receipt.Gratuities = append(receipt.Gratuities, mapping.ToDomainGratuity(m))
		}
	}

	paymentRows, err := r.Pool.Query(ctx, `
		SELECT payment_id, receipt_id, payment_method_id, amount, created_at, created_by, last_updated_at, last_updated_by
		FROM receipt_payments WHERE receipt_id = ANY($1) ORDER BY created_at, payment_id;`, receiptIDs)
	if err != nil {
		return fmt.Errorf("failed to query receipt payments: %w", err)
	}
	payments, err := pgx.CollectRows(paymentRows, func(row pgx.CollectableRow) (models.Payment, error) {
		var m models.Payment
		err := row.Scan(&m.PaymentID, &m.ReceiptID, &m.PaymentMethodID, &m.Amount,
			&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy)
		return m, err
	})
	if err != nil {
		return fmt.Errorf("failed to scan receipt payments: %w", err)
	}
	for _, m := range payments {
		if receipt, ok := byID[m.ReceiptID]; ok {
			receipt.Payments = append(receipt.Payments, mapping.ToDomainPayment(m))
		}
	}

	return nil
}
