package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/almacen/internal/domain/entity"
	"github.com/jhoicas/almacen/internal/domain/repository"
)

var _ repository.BatchRepository = (*BatchRepo)(nil)

const batchColumns = `id, product_id, supplier_id, quantity, unit_cost, entry_date, expiration_date,
	created_at, created_by, last_modified_at, last_modified_by, is_deleted, deleted_at, deleted_by`

// BatchRepo implementación de BatchRepository sobre PostgreSQL (usable con pool o tx).
type BatchRepo struct {
	q Querier
}

// NewBatchRepository construye el adaptador de lotes. Pasar pool o tx (Querier).
func NewBatchRepository(q Querier) *BatchRepo {
	return &BatchRepo{q: q}
}

// Create persiste un lote nuevo con su cantidad completa.
func (r *BatchRepo) Create(b *entity.Batch) error {
	query := `
		INSERT INTO batches (` + batchColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	_, err := r.q.Exec(context.Background(), query,
		b.ID, b.ProductID, b.SupplierID, b.Quantity, b.UnitCost, b.EntryDate, b.ExpirationDate,
		b.CreatedAt, b.CreatedBy, b.LastModifiedAt, b.LastModifiedBy, b.IsDeleted, b.DeletedAt, b.DeletedBy,
	)
	if err != nil {
		return fmt.Errorf("insert batch: %w", err)
	}
	return nil
}

// GetByID obtiene un lote por ID, borrado o no (auditoría consultable).
func (r *BatchRepo) GetByID(id string) (*entity.Batch, error) {
	query := `SELECT ` + batchColumns + ` FROM batches WHERE id = $1`
	b, err := scanBatch(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get batch: %w", err)
	}
	return b, nil
}

// ListActiveByProduct devuelve los candidatos FIFO de un producto: cantidad > 0
// y no borrados, del más viejo al más nuevo (desempate por id). Con forUpdate
// bloquea las filas hasta el commit de la transacción en curso.
func (r *BatchRepo) ListActiveByProduct(productID string, forUpdate bool) ([]*entity.Batch, error) {
	query := `
		SELECT ` + batchColumns + `
		FROM batches
		WHERE product_id = $1 AND quantity > 0 AND NOT is_deleted
		ORDER BY entry_date ASC, id ASC`
	if forUpdate {
		query += ` FOR UPDATE`
	}
	rows, err := r.q.Query(context.Background(), query, productID)
	if err != nil {
		return nil, fmt.Errorf("list batches: %w", err)
	}
	defer rows.Close()
	return collectBatches(rows)
}

// ListActive devuelve todos los lotes con stock positivo, para reportes.
func (r *BatchRepo) ListActive() ([]*entity.Batch, error) {
	query := `
		SELECT ` + batchColumns + `
		FROM batches
		WHERE quantity > 0 AND NOT is_deleted
		ORDER BY product_id ASC, entry_date ASC, id ASC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list active batches: %w", err)
	}
	defer rows.Close()
	return collectBatches(rows)
}

// SumQuantityByProduct suma el stock de los lotes no borrados del producto.
// COALESCE cubre el caso sin lotes: 0, no error.
func (r *BatchRepo) SumQuantityByProduct(productID string) (int64, error) {
	var total int64
	err := r.q.QueryRow(context.Background(),
		`SELECT COALESCE(SUM(quantity), 0) FROM batches WHERE product_id = $1 AND NOT is_deleted`,
		productID,
	).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("sum stock: %w", err)
	}
	return total, nil
}

// UpdateQuantity persiste la nueva cantidad con estampa de modificación. Solo
// cantidad y auditoría cambian; el resto del lote es inmutable.
func (r *BatchRepo) UpdateQuantity(id string, quantity int64, actor string, now time.Time) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE batches SET quantity = $2, last_modified_at = $3, last_modified_by = $4 WHERE id = $1`,
		id, quantity, now, actor,
	)
	if err != nil {
		return fmt.Errorf("update batch quantity: %w", err)
	}
	return nil
}

// SoftDelete marca el lote como borrado sin eliminar la fila.
func (r *BatchRepo) SoftDelete(id, actor string, now time.Time) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE batches
		 SET is_deleted = TRUE, deleted_at = $2, deleted_by = $3, last_modified_at = $2, last_modified_by = $3
		 WHERE id = $1`,
		id, now, actor,
	)
	if err != nil {
		return fmt.Errorf("soft delete batch: %w", err)
	}
	return nil
}

func scanBatch(row pgx.Row) (*entity.Batch, error) {
	var b entity.Batch
	err := row.Scan(
		&b.ID, &b.ProductID, &b.SupplierID, &b.Quantity, &b.UnitCost, &b.EntryDate, &b.ExpirationDate,
		&b.CreatedAt, &b.CreatedBy, &b.LastModifiedAt, &b.LastModifiedBy, &b.IsDeleted, &b.DeletedAt, &b.DeletedBy,
	)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func collectBatches(rows pgx.Rows) ([]*entity.Batch, error) {
	var list []*entity.Batch
	for rows.Next() {
		b, err := scanBatch(rows)
		if err != nil {
			return nil, fmt.Errorf("scan batch: %w", err)
		}
		list = append(list, b)
	}
	return list, rows.Err()
}
