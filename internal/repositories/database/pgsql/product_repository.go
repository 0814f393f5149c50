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

type PgxProductTypeRepository struct {
	BaseRepository
}

// newPgxProductTypeRepository creates a new repository for product type data.
func newPgxProductTypeRepository(pool *pgxpool.Pool) portsrepo.ProductTypeRepositoryFacade {
	return &PgxProductTypeRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.ProductTypeRepositoryFacade = (*PgxProductTypeRepository)(nil)

const productTypeColumns = `product_type_id, name, created_at, created_by, last_updated_at, last_updated_by`

func scanProductType(row pgx.CollectableRow) (models.ProductType, error) {
	var pt models.ProductType
	err := row.Scan(
		&pt.ProductTypeID,
		&pt.Name,
		&pt.CreatedAt,
		&pt.CreatedBy,
		&pt.LastUpdatedAt,
		&pt.LastUpdatedBy,
	)
	return pt, err
}

// SaveProductType inserts a new product type.
func (r *PgxProductTypeRepository) SaveProductType(ctx context.Context, productType domain.ProductType) error {
	model := mapping.ToModelProductType(productType)

	query := `
		INSERT INTO product_types (` + productTypeColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6);
	`

	_, err := r.Pool.Exec(ctx, query,
		model.ProductTypeID,
		model.Name,
		model.CreatedAt,
		model.CreatedBy,
		model.LastUpdatedAt,
		model.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save product type %s: %w", model.ProductTypeID, translateDuplicate(err))
	}
	return nil
}

// FindProductTypeByID retrieves a product type by its ID.
func (r *PgxProductTypeRepository) FindProductTypeByID(ctx context.Context, productTypeID string) (*domain.ProductType, error) {
	query := `SELECT ` + productTypeColumns + ` FROM product_types WHERE product_type_id = $1;`

	rows, err := r.Pool.Query(ctx, query, productTypeID)
	if err != nil {
		return nil, fmt.Errorf("failed to query product type %s: %w", productTypeID, err)
	}
	model, err := pgx.CollectOneRow(rows, scanProductType)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find product type %s: %w", productTypeID, err)
	}

	productType := mapping.ToDomainProductType(model)
	return &productType, nil
}

// ListProductTypes retrieves all product types ordered by name.
func (r *PgxProductTypeRepository) ListProductTypes(ctx context.Context) ([]domain.ProductType, error) {
	query := `SELECT ` + productTypeColumns + ` FROM product_types ORDER BY name, product_type_id;`

	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query product types: %w", err)
	}
	types, err := pgx.CollectRows(rows, scanProductType)
	if err != nil {
		return nil, fmt.Errorf("failed to scan product types: %w", err)
	}

	return mapping.ToDomainProductTypeSlice(types), nil
}

// UpdateProductType updates an existing product type.
func (r *PgxProductTypeRepository) UpdateProductType(ctx context.Context, productType domain.ProductType) error {
	model := mapping.ToModelProductType(productType)

	query := `
		UPDATE product_types SET
			name = $2,
			last_updated_at = $3,
			last_updated_by = $4
		WHERE product_type_id = $1;
	`

	tag, err := r.Pool.Exec(ctx, query,
		model.ProductTypeID,
		model.Name,
		model.LastUpdatedAt,
		model.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update product type %s: %w", model.ProductTypeID, translateDuplicate(err))
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteProductType removes a product type; join rows cascade.
func (r *PgxProductTypeRepository) DeleteProductType(ctx context.Context, productTypeID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM product_types WHERE product_type_id = $1;`, productTypeID)
	if err != nil {
		return fmt.Errorf("failed to delete product type %s: %w", productTypeID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

type PgxProductRepository struct {
	BaseRepository
}

// newPgxProductRepository creates a new repository for product data.
func newPgxProductRepository(pool *pgxpool.Pool) portsrepo.ProductRepositoryFacade {
	return &PgxProductRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.ProductRepositoryFacade = (*PgxProductRepository)(nil)

const productColumns = `product_id, name, description, code, image_path, created_at, created_by, last_updated_at, last_updated_by`

func scanProduct(row pgx.CollectableRow) (models.Product, error) {
	var p models.Product
	err := row.Scan(
		&p.ProductID,
		&p.Name,
		&p.Description,
		&p.Code,
		&p.ImagePath,
		&p.CreatedAt,
		&p.CreatedBy,
		&p.LastUpdatedAt,
		&p.LastUpdatedBy,
	)
	return p, err
}

// loadTypesByProduct fetches the product type rows for the given products,
// keyed by product ID, in type-name order.
func (r *PgxProductRepository) loadTypesByProduct(ctx context.Context, productIDs []string) (map[string][]models.ProductType, error) {
	if len(productIDs) == 0 {
		return map[string][]models.ProductType{}, nil
	}

	query := `
		SELECT ppt.product_id, pt.product_type_id, pt.name, pt.created_at, pt.created_by, pt.last_updated_at, pt.last_updated_by
		FROM product_product_types ppt
		JOIN product_types pt ON pt.product_type_id = ppt.product_type_id
		WHERE ppt.product_id = ANY($1)
		ORDER BY pt.name, pt.product_type_id;
	`

	rows, err := r.Pool.Query(ctx, query, productIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to query product types by product: %w", err)
	}
	defer rows.Close()

	typesByProduct := make(map[string][]models.ProductType)
	for rows.Next() {
		var productID string
		var pt models.ProductType
		if err := rows.Scan(
			&productID,
			&pt.ProductTypeID,
			&pt.Name,
			&pt.CreatedAt,
			&pt.CreatedBy,
			&pt.LastUpdatedAt,
			&pt.LastUpdatedBy,
		); err != nil {
			return nil, fmt.Errorf("failed to scan product type row: %w", err)
		}
		typesByProduct[productID] = append(typesByProduct[productID], pt)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read product type rows: %w", err)
	}
	return typesByProduct, nil
}

// insertTypeAssociations writes the join rows for one product inside tx.
func insertTypeAssociations(ctx context.Context, tx pgx.Tx, productID string, types []domain.ProductType) error {
	for _, pt := range types {
		_, err := tx.Exec(ctx,
			`INSERT INTO product_product_types (product_id, product_type_id) VALUES ($1, $2);`,
			productID, pt.ProductTypeID,
		)
		if err != nil {
			return fmt.Errorf("failed to associate product %s with type %s: %w", productID, pt.ProductTypeID, err)
		}
	}
	return nil
}

// SaveProduct persists a new product along with its type associations.
func (r *PgxProductRepository) SaveProduct(ctx context.Context, product domain.Product) error {
	model := mapping.ToModelProduct(product)

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	query := `
		INSERT INTO products (` + productColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`

	_, err = tx.Exec(ctx, query,
		model.ProductID,
		model.Name,
		model.Description,
		model.Code,
		model.ImagePath,
		model.CreatedAt,
		model.CreatedBy,
		model.LastUpdatedAt,
		model.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save product %s: %w", model.ProductID, translateDuplicate(err))
	}

	if err := insertTypeAssociations(ctx, tx, model.ProductID, product.Types); err != nil {
		return err
	}

	return r.Commit(ctx, tx)
}

// FindProductByID retrieves a product with its type associations.
func (r *PgxProductRepository) FindProductByID(ctx context.Context, productID string) (*domain.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE product_id = $1;`

	rows, err := r.Pool.Query(ctx, query, productID)
	if err != nil {
		return nil, fmt.Errorf("failed to query product %s: %w", productID, err)
	}
	model, err := pgx.CollectOneRow(rows, scanProduct)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find product %s: %w", productID, err)
	}

	typesByProduct, err := r.loadTypesByProduct(ctx, []string{productID})
	if err != nil {
		return nil, err
	}

	product := mapping.ToDomainProduct(model, typesByProduct[productID])
	return &product, nil
}

// ListProducts retrieves products ordered by name with types attached.
func (r *PgxProductRepository) ListProducts(ctx context.Context, limit, offset int) ([]domain.Product, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	if offset < 0 {
		offset = 0
	}

	query := `SELECT ` + productColumns + ` FROM products ORDER BY name, product_id LIMIT $1 OFFSET $2;`

	rows, err := r.Pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	prodModels, err := pgx.CollectRows(rows, scanProduct)
	if err != nil {
		return nil, fmt.Errorf("failed to scan products: %w", err)
	}

	return r.attachTypes(ctx, prodModels)
}

// SearchProductsByName retrieves products whose name contains the query,
// case-insensitively.
func (r *PgxProductRepository) SearchProductsByName(ctx context.Context, query string, limit int) ([]domain.Product, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}

	sqlQuery := `
		SELECT ` + productColumns + `
		FROM products
		WHERE name ILIKE '%' || $1 || '%'
		ORDER BY name, product_id
		LIMIT $2;
	`

	rows, err := r.Pool.Query(ctx, sqlQuery, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to search products: %w", err)
	}
	prodModels, err := pgx.CollectRows(rows, scanProduct)
	if err != nil {
		return nil, fmt.Errorf("failed to scan products: %w", err)
	}

	return r.attachTypes(ctx, prodModels)
}

// attachTypes resolves type associations for a batch of product rows.
func (r *PgxProductRepository) attachTypes(ctx context.Context, prodModels []models.Product) ([]domain.Product, error) {
	productIDs := make([]string, 0, len(prodModels))
	for _, m := range prodModels {
		productIDs = append(productIDs, m.ProductID)
	}

	typesByProduct, err := r.loadTypesByProduct(ctx, productIDs)
	if err != nil {
		return nil, err
	}

	products := make([]domain.Product, 0, len(prodModels))
	for _, m := range prodModels {
		products = append(products, mapping.ToDomainProduct(m, typesByProduct[m.ProductID]))
	}
	return products, nil
}

// UpdateProduct updates a product and replaces its type associations.
func (r *PgxProductRepository) UpdateProduct(ctx context.Context, product domain.Product) error {
	model := mapping.ToModelProduct(product)

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	query := `
		UPDATE products SET
			name = $2,
			description = $3,
			code = $4,
			image_path = $5,
			last_updated_at = $6,
			last_updated_by = $7
		WHERE product_id = $1;
	`

	tag, err := tx.Exec(ctx, query,
		model.ProductID,
		model.Name,
		model.Description,
		model.Code,
		model.ImagePath,
		model.LastUpdatedAt,
		model.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update product %s: %w", model.ProductID, translateDuplicate(err))
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	if _, err := tx.Exec(ctx, `DELETE FROM product_product_types WHERE product_id = $1;`, model.ProductID); err != nil {
		return fmt.Errorf("failed to clear type associations for product %s: %w", model.ProductID, err)
	}
	if err := insertTypeAssociations(ctx, tx, model.ProductID, product.Types); err != nil {
		return err
	}

	return r.Commit(ctx, tx)
}

// DeleteProduct removes a product; join rows cascade.
func (r *PgxProductRepository) DeleteProduct(ctx context.Context, productID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM products WHERE product_id = $1;`, productID)
	if err != nil {
		return fmt.Errorf("failed to delete product %s: %w", productID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
