package catalog_repo

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"

	"barberdesk/internal/core/apperror"
	"barberdesk/internal/core/id"
	"barberdesk/internal/domain/catalogs/product"
	"barberdesk/internal/infrastructure/storage/postgres"
)

const productTable = "cat_products"

// ProductRepo implements product.Repository.
type ProductRepo struct {
	*BaseCatalogRepo[*product.Product]
}

// NewProductRepo creates a new product repository.
func NewProductRepo(txm *postgres.TxManager) *ProductRepo {
	return &ProductRepo{
		BaseCatalogRepo: NewBaseCatalogRepo[*product.Product](
			txm,
			productTable,
			postgres.ExtractDBColumns[product.Product](),
			func() *product.Product { return &product.Product{} },
		),
	}
}

// AdjustStock changes stock by delta (negative for a sale).
// Callers lock the row with GetForUpdate and check availability first;
// the WHERE guard is the final line of defense against going negative.
func (r *ProductRepo) AdjustStock(ctx context.Context, productID id.ID, delta int) error {
	q := r.Builder().
		Update(productTable).
		Set("stock", squirrel.Expr("stock + ?", delta)).
		Set("version", squirrel.Expr("version + 1")).
		Where(squirrel.Eq{"id": productID}).
		Where(squirrel.Expr("stock + ? >= 0", delta))

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build adjust stock: %w", err)
	}

	result, err := r.Querier(ctx).Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("adjust stock: %w", err)
	}

	if result.RowsAffected() == 0 {
		return apperror.NewIntegrity("stock adjustment rejected").
			WithDetail("product_id", productID.String()).
			WithDetail("delta", delta)
	}

	return nil
}

var _ product.Repository = (*ProductRepo)(nil)
