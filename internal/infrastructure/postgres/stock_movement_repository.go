package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/agristock/depot-api/internal/domain"
	"github.com/agristock/depot-api/internal/domain/entity"
	"github.com/agristock/depot-api/internal/domain/ledger"
	"github.com/agristock/depot-api/internal/domain/repository"
)

var _ repository.StockMovementRepository = (*StockMovementRepo)(nil)

// StockMovementRepo implementación de StockMovementRepository sobre
// PostgreSQL (usable con pool o tx).
type StockMovementRepo struct {
	q Querier
}

// NewStockMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewStockMovementRepository(q Querier) *StockMovementRepo {
	return &StockMovementRepo{q: q}
}

// Create persiste una nueva entrada del libro.
func (r *StockMovementRepo) Create(ctx context.Context, m *entity.StockMovement) error {
	query := `
		INSERT INTO stock_movements (
			id, client_id, type, product, total_weight,
			plastic_box_count, plastic_box_weight, wood_box_count, wood_box_weight,
			product_weight, date, recorded_by_user_id,
			comment, farmer_comment, is_comment_read, created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5,
			$6, $7, $8, $9,
			$10, $11, $12,
			NULLIF($13, ''), NULLIF($14, ''), $15, $16, $17
		)`
	_, err := r.q.Exec(ctx, query,
		m.ID, m.ClientID, m.Type, m.Product, m.TotalWeight,
		m.PlasticBoxCount, m.PlasticBoxWeight, m.WoodBoxCount, m.WoodBoxWeight,
		m.ProductWeight, m.Date, m.RecordedBy,
		m.Comment, m.FarmerComment, m.IsCommentRead, m.CreatedAt, m.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return wrapError("insert movement", err)
	}
	return nil
}

// GetByID obtiene una entrada por ID. Devuelve (nil, nil) si no existe.
func (r *StockMovementRepo) GetByID(ctx context.Context, id string) (*entity.StockMovement, error) {
	query := `
		SELECT id, client_id, type, product, total_weight,
		       plastic_box_count, plastic_box_weight, wood_box_count, wood_box_weight,
		       product_weight, date, recorded_by_user_id,
		       COALESCE(comment, ''), COALESCE(farmer_comment, ''), is_comment_read,
		       created_at, updated_at
		FROM stock_movements WHERE id = $1`
	var m entity.StockMovement
	err := r.q.QueryRow(ctx, query, id).Scan(
		&m.ID, &m.ClientID, &m.Type, &m.Product, &m.TotalWeight,
		&m.PlasticBoxCount, &m.PlasticBoxWeight, &m.WoodBoxCount, &m.WoodBoxWeight,
		&m.ProductWeight, &m.Date, &m.RecordedBy,
		&m.Comment, &m.FarmerComment, &m.IsCommentRead,
		&m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, wrapError("get movement", err)
	}
	return &m, nil
}

// List ejecuta un descriptor ledger.Query: filtro por alcance, orden fijo
// (fecha desc, created_at desc) y límite opcional aplicado después del
// orden. Cada fila viene con los nombres desnormalizados del cliente y de
// quien registró. Un alcance vacío devuelve cero filas sin tocar el almacén.
func (r *StockMovementRepo) List(ctx context.Context, q ledger.Query) ([]repository.MovementRow, error) {
	if q.Scope.IsEmpty() {
		return nil, nil
	}
	query := `
		SELECT m.id, m.client_id, m.type, m.product, m.total_weight,
		       m.plastic_box_count, m.plastic_box_weight, m.wood_box_count, m.wood_box_weight,
		       m.product_weight, m.date, m.recorded_by_user_id,
		       COALESCE(m.comment, ''), COALESCE(m.farmer_comment, ''), m.is_comment_read,
		       m.created_at, m.updated_at,
		       COALESCE(c.name, ''), COALESCE(u.name, '')
		FROM stock_movements m
		LEFT JOIN clients c ON c.id = m.client_id
		LEFT JOIN users   u ON u.id = m.recorded_by_user_id`
	var args []any
	if clientID, ok := q.Scope.ClientID(); ok {
		query += ` WHERE m.client_id = $1`
		args = append(args, clientID)
	}
	query += ` ORDER BY m.date DESC, m.created_at DESC`
	if q.Limit > 0 {
		query += fmt.Sprintf(` LIMIT $%d`, len(args)+1)
		args = append(args, q.Limit)
	}

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, wrapError("list movements", err)
	}
	defer rows.Close()

	var list []repository.MovementRow
	for rows.Next() {
		var row repository.MovementRow
		m := &row.Movement
		if err := rows.Scan(
			&m.ID, &m.ClientID, &m.Type, &m.Product, &m.TotalWeight,
			&m.PlasticBoxCount, &m.PlasticBoxWeight, &m.WoodBoxCount, &m.WoodBoxWeight,
			&m.ProductWeight, &m.Date, &m.RecordedBy,
			&m.Comment, &m.FarmerComment, &m.IsCommentRead,
			&m.CreatedAt, &m.UpdatedAt,
			&row.ClientName, &row.RecordedByName,
		); err != nil {
			return nil, wrapError("scan movement", err)
		}
		list = append(list, row)
	}
	return list, rows.Err()
}

// MarkCommentRead marca el comentario del agricultor como leído.
func (r *StockMovementRepo) MarkCommentRead(ctx context.Context, id string) error {
	tag, err := r.q.Exec(ctx,
		`UPDATE stock_movements SET is_comment_read = TRUE, updated_at = now() WHERE id = $1`,
		id,
	)
	if err != nil {
		return wrapError("mark comment read", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
