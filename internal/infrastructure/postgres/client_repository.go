package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/agristock/depot-api/internal/domain"
	"github.com/agristock/depot-api/internal/domain/entity"
	"github.com/agristock/depot-api/internal/domain/ledger"
	"github.com/agristock/depot-api/internal/domain/repository"
)

var _ repository.ClientRepository = (*ClientRepo)(nil)

// ClientRepo implementación de ClientRepository sobre PostgreSQL
// (usable con pool o tx).
type ClientRepo struct {
	q Querier
}

// NewClientRepository construye el adaptador. Pasar pool o tx (Querier).
func NewClientRepository(q Querier) *ClientRepo {
	return &ClientRepo{q: q}
}

// Create persiste un nuevo cliente.
func (r *ClientRepo) Create(ctx context.Context, client *entity.Client) error {
	query := `
		INSERT INTO clients (id, name, join_date, type, phone, address, email, comment, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NULLIF($8, ''), $9, $10)`
	_, err := r.q.Exec(ctx, query,
		client.ID, client.Name, client.JoinDate, client.Type, client.Phone,
		client.Address, client.Email, client.Comment, client.CreatedAt, client.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return wrapError("insert client", err)
	}
	return nil
}

// GetByID obtiene un cliente por ID. Devuelve (nil, nil) si no existe.
func (r *ClientRepo) GetByID(ctx context.Context, id string) (*entity.Client, error) {
	query := `
		SELECT id, name, join_date, type, phone, address, email, COALESCE(comment, ''), created_at, updated_at
		FROM clients WHERE id = $1`
	var c entity.Client
	err := r.q.QueryRow(ctx, query, id).Scan(
		&c.ID, &c.Name, &c.JoinDate, &c.Type, &c.Phone, &c.Address, &c.Email,
		&c.Comment, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, wrapError("get client", err)
	}
	return &c, nil
}

// List devuelve los clientes visibles bajo el alcance, ordenados por nombre.
// Un alcance vacío devuelve cero filas sin consultar el almacén.
func (r *ClientRepo) List(ctx context.Context, scope ledger.Scope) ([]*entity.Client, error) {
	if scope.IsEmpty() {
		return nil, nil
	}
	query := `
		SELECT id, name, join_date, type, phone, address, email, COALESCE(comment, ''), created_at, updated_at
		FROM clients`
	var args []any
	if clientID, ok := scope.ClientID(); ok {
		query += ` WHERE id = $1`
		args = append(args, clientID)
	}
	query += ` ORDER BY name`

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, wrapError("list clients", err)
	}
	defer rows.Close()

	var list []*entity.Client
	for rows.Next() {
		var c entity.Client
		if err := rows.Scan(
			&c.ID, &c.Name, &c.JoinDate, &c.Type, &c.Phone, &c.Address, &c.Email,
			&c.Comment, &c.CreatedAt, &c.UpdatedAt,
		); err != nil {
			return nil, wrapError("scan client", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}
